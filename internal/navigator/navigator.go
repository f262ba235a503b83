package navigator

import (
	"context"
	"errors"
	"log"
	"sync"

	"github.com/ailtonganem/Lara/internal/models"
	"github.com/ailtonganem/Lara/internal/services"
	"github.com/ailtonganem/Lara/internal/store"
)

// ErrUnavailable is returned for a navigation action that is not reachable
// from the current screen.
var ErrUnavailable = errors.New("navigation not available from this screen")

// SessionSource delivers the session-change events that are the machine's
// only autonomous trigger.
type SessionSource interface {
	OnSessionChange(func(*services.Session))
}

type ProfileSource interface {
	GetProfile(ctx context.Context, userID string) (*models.User, error)
}

type ContentSource interface {
	ListSubjects(ctx context.Context) []models.Subject
	ListModules(ctx context.Context, subjectID string) []models.Module
	ListActivities(ctx context.Context, subjectID, moduleID string) []models.Activity
}

type ApprovalSource interface {
	ListPending(ctx context.Context) ([]models.User, error)
}

// View is what a screen renders from: the position plus the data loaded for
// it. Only the fields relevant to the screen kind are populated.
type View struct {
	Screen     Screen
	Session    *services.Session
	Subjects   []models.Subject
	Modules    []models.Module
	Activities []models.Activity
	Pending    []models.User
}

// Navigator is the navigation state machine. A screen transition happens
// synchronously: the new position replaces the old one at once and the old
// screen's context is cancelled. The data fetch for the new screen then runs
// in the background; a fetch that finds its context cancelled on completion
// discards its result instead of rendering into a screen that is gone.
type Navigator struct {
	profiles  ProfileSource
	content   ContentSource
	approvals ApprovalSource
	render    func(View)

	mu      sync.Mutex
	session *services.Session
	screen  Screen
	cancel  context.CancelFunc

	// activities is the screen-local cache of the module-activities screen,
	// kept so selecting an activity within the screen needs no second read.
	activities []models.Activity
}

// New wires the navigator to its sources and subscribes it to session
// changes, which immediately resolves the initial screen.
func New(sessions SessionSource, profiles ProfileSource, content ContentSource, approvals ApprovalSource, render func(View)) *Navigator {
	n := &Navigator{
		profiles:  profiles,
		content:   content,
		approvals: approvals,
		render:    render,
		screen:    Screen{Kind: ScreenLoggedOut},
	}
	sessions.OnSessionChange(n.handleSessionChange)
	return n
}

// Screen returns the current navigation position.
func (n *Navigator) Screen() Screen {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.screen
}

// SelectActivity returns an activity from the current module-activities
// screen's cached list.
func (n *Navigator) SelectActivity(activityID string) (*models.Activity, bool) {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.screen.Kind != ScreenModuleActivities && n.screen.Kind != ScreenManageActivities {
		return nil, false
	}
	for _, a := range n.activities {
		if a.ID == activityID {
			activity := a
			return &activity, true
		}
	}
	return nil, false
}

func (n *Navigator) handleSessionChange(s *services.Session) {
	if s == nil {
		// Sign-out discards all drill-down position unconditionally.
		loggedOut := Screen{Kind: ScreenLoggedOut}
		ctx := n.transition(nil, loggedOut)
		go n.populate(ctx, nil, loggedOut)
		return
	}
	ctx := n.beginResolve(s)
	go n.resolveAndPopulate(ctx, s)
}

// beginResolve starts a fresh screen context for a new session, cancelling
// whatever was in flight. The previous screen stays in place until the
// profile lookup resolves, so Screen never reports a kind outside the
// declared set.
func (n *Navigator) beginResolve(s *services.Session) context.Context {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.cancel != nil {
		n.cancel()
	}
	ctx, cancel := context.WithCancel(context.Background())
	n.cancel = cancel
	n.session = s
	n.activities = nil
	return ctx
}

// resolveAndPopulate looks up the profile document for a fresh session,
// resolves the home screen from it, and loads that screen's data. A lookup
// fault is treated the same as a missing profile: the safe answer is the
// waiting screen.
func (n *Navigator) resolveAndPopulate(ctx context.Context, s *services.Session) {
	profile, err := n.profiles.GetProfile(ctx, s.UserID)
	if err != nil {
		if ctx.Err() != nil {
			return
		}
		if !errors.Is(err, store.ErrNotFound) {
			log.Printf("navigator: profile lookup for %s: %v", s.UserID, err)
		}
		profile = nil
	}
	screen := Screen{Kind: Resolve(true, profile)}
	n.mu.Lock()
	if ctx.Err() != nil {
		n.mu.Unlock()
		return
	}
	n.screen = screen
	n.mu.Unlock()
	n.populate(ctx, s, screen)
}

// OpenSubject drills from the student dashboard into a subject's modules.
func (n *Navigator) OpenSubject(subjectID string) error {
	return n.navigate(ScreenStudentHome, Screen{Kind: ScreenSubjectModules, SubjectID: subjectID})
}

// OpenModule drills from a subject's module list into a module's activities.
func (n *Navigator) OpenModule(subjectID, moduleID string) error {
	return n.navigate(ScreenSubjectModules, Screen{Kind: ScreenModuleActivities, SubjectID: subjectID, ModuleID: moduleID})
}

// ManageSubject drills from the admin dashboard into module management.
func (n *Navigator) ManageSubject(subjectID string) error {
	return n.navigate(ScreenAdminHome, Screen{Kind: ScreenManageModules, SubjectID: subjectID})
}

// ManageModule drills from module management into activity management.
func (n *Navigator) ManageModule(subjectID, moduleID string) error {
	return n.navigate(ScreenManageModules, Screen{Kind: ScreenManageActivities, SubjectID: subjectID, ModuleID: moduleID})
}

// Back returns to the parent screen, re-fetching its data rather than
// restoring a cached render.
func (n *Navigator) Back() error {
	n.mu.Lock()
	current := n.screen
	session := n.session
	n.mu.Unlock()

	var parent Screen
	switch current.Kind {
	case ScreenSubjectModules:
		parent = Screen{Kind: ScreenStudentHome}
	case ScreenModuleActivities:
		parent = Screen{Kind: ScreenSubjectModules, SubjectID: current.SubjectID}
	case ScreenManageModules:
		parent = Screen{Kind: ScreenAdminHome}
	case ScreenManageActivities:
		parent = Screen{Kind: ScreenManageModules, SubjectID: current.SubjectID}
	default:
		return ErrUnavailable
	}

	ctx := n.transition(session, parent)
	go n.populate(ctx, session, parent)
	return nil
}

// Refresh re-fetches the current screen's data. Screens call it after every
// confirmed write so the displayed list always reflects the store.
func (n *Navigator) Refresh() {
	n.mu.Lock()
	current := n.screen
	session := n.session
	n.mu.Unlock()

	ctx := n.transition(session, current)
	go n.populate(ctx, session, current)
}

func (n *Navigator) navigate(from ScreenKind, to Screen) error {
	n.mu.Lock()
	if n.screen.Kind != from {
		n.mu.Unlock()
		return ErrUnavailable
	}
	session := n.session
	n.mu.Unlock()

	ctx := n.transition(session, to)
	go n.populate(ctx, session, to)
	return nil
}

// transition replaces the current screen, cancelling the superseded screen's
// context, and hands back a fresh context owned by the new screen instance.
func (n *Navigator) transition(session *services.Session, to Screen) context.Context {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.cancel != nil {
		n.cancel()
	}
	ctx, cancel := context.WithCancel(context.Background())
	n.cancel = cancel
	n.session = session
	n.screen = to
	n.activities = nil
	return ctx
}

func (n *Navigator) populate(ctx context.Context, session *services.Session, screen Screen) {
	view := View{Screen: screen, Session: session}

	switch screen.Kind {
	case ScreenStudentHome:
		view.Subjects = n.content.ListSubjects(ctx)
	case ScreenSubjectModules, ScreenManageModules:
		view.Modules = n.content.ListModules(ctx, screen.SubjectID)
	case ScreenModuleActivities, ScreenManageActivities:
		view.Activities = n.content.ListActivities(ctx, screen.SubjectID, screen.ModuleID)
	case ScreenAdminHome:
		pending, err := n.approvals.ListPending(ctx)
		if err != nil {
			log.Printf("navigator: pending users: %v", err)
			pending = []models.User{}
		}
		view.Pending = pending
		view.Subjects = n.content.ListSubjects(ctx)
	}

	n.mu.Lock()
	if ctx.Err() != nil {
		// The owning screen was superseded while the fetch was in flight.
		n.mu.Unlock()
		return
	}
	view.Screen = n.screen
	n.activities = view.Activities
	render := n.render
	n.mu.Unlock()

	if render != nil {
		render(view)
	}
}
