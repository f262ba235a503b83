package navigator

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ailtonganem/Lara/internal/models"
	"github.com/ailtonganem/Lara/internal/services"
	"github.com/ailtonganem/Lara/internal/store"
	"github.com/ailtonganem/Lara/internal/store/inmem"
)

type env struct {
	db       *inmem.DB
	users    *inmem.UserRepository
	content  *inmem.ContentRepository
	auth     *services.AuthService
	admin    *services.AdminService
	sessions *services.SessionManager
	renders  chan View
	nav      *Navigator
}

func newEnv(t *testing.T) *env {
	t.Helper()
	e := &env{db: inmem.Open(), renders: make(chan View, 32)}
	e.users = inmem.NewUserRepository(e.db)
	e.content = inmem.NewContentRepository(e.db)
	e.auth = services.NewAuthService(inmem.NewAccountRepository(e.db), e.users, "test-secret")
	e.admin = services.NewAdminService(e.content)
	e.sessions = services.NewSessionManager(e.auth)
	contentSvc := services.NewContentService(e.content)
	approvals := services.NewApprovalService(e.users, nil)
	e.nav = New(e.sessions, e.auth, contentSvc, approvals, func(v View) { e.renders <- v })
	return e
}

// waitFor skims renders until one of the wanted kind arrives. Transient
// renders of other screens along the way are expected and skipped.
func (e *env) waitFor(t *testing.T, kind ScreenKind) View {
	t.Helper()
	deadline := time.After(2 * time.Second)
	for {
		select {
		case v := <-e.renders:
			if v.Screen.Kind == kind {
				return v
			}
		case <-deadline:
			t.Fatalf("timed out waiting for %s render", kind)
		}
	}
}

func (e *env) seedSubjectTree(t *testing.T) (subjectID, moduleID string) {
	t.Helper()
	ctx := context.Background()
	subject, err := e.admin.CreateSubject(ctx, services.SubjectInput{Name: "Math", OrderNum: orderOf(0)})
	require.NoError(t, err)
	module, err := e.admin.CreateModule(ctx, subject.ID, services.ModuleInput{Name: "Fractions", OrderNum: orderOf(0)})
	require.NoError(t, err)
	_, err = e.admin.CreateActivity(ctx, subject.ID, module.ID, services.ActivityInput{
		Title: "Intro", Kind: models.ActivityKindText, OrderNum: orderOf(0), Content: "Welcome",
	})
	require.NoError(t, err)
	return subject.ID, module.ID
}

func (e *env) signInApprovedStudent(t *testing.T) {
	t.Helper()
	ctx := context.Background()
	id, err := e.auth.Register(ctx, "student@example.com", "secret1")
	require.NoError(t, err)
	require.NoError(t, e.users.SetApproved(ctx, id, true))
	require.NoError(t, e.sessions.SignIn(ctx, "student@example.com", "secret1"))
}

func orderOf(n int) *int { return &n }

func TestInitialScreenIsLoggedOut(t *testing.T) {
	e := newEnv(t)
	v := e.waitFor(t, ScreenLoggedOut)
	assert.Nil(t, v.Session)
	assert.Equal(t, ScreenLoggedOut, e.nav.Screen().Kind)
}

func TestRegistrationLandsOnWaitingScreen(t *testing.T) {
	e := newEnv(t)
	e.waitFor(t, ScreenLoggedOut)

	require.NoError(t, e.sessions.Register(context.Background(), "new@example.com", "secret1"))
	v := e.waitFor(t, ScreenPendingApproval)
	require.NotNil(t, v.Session)
	assert.Equal(t, "new@example.com", v.Session.Email)
}

type profileStub struct{ err error }

func (p profileStub) GetProfile(ctx context.Context, userID string) (*models.User, error) {
	return nil, p.err
}

// An account whose profile document is missing, or whose lookup faults, must
// be parked on the waiting screen, not the dashboard.
func TestMissingProfileFallsBackToWaitingScreen(t *testing.T) {
	for name, lookupErr := range map[string]error{
		"missing profile": store.ErrNotFound,
		"lookup fault":    assert.AnError,
	} {
		t.Run(name, func(t *testing.T) {
			e := newEnv(t)
			renders := make(chan View, 32)
			sessions := services.NewSessionManager(e.auth)
			nav := New(sessions, profileStub{err: lookupErr}, services.NewContentService(e.content),
				services.NewApprovalService(e.users, nil), func(v View) { renders <- v })

			ctx := context.Background()
			id, err := e.auth.Register(ctx, "ghost@example.com", "secret1")
			require.NoError(t, err)
			require.NoError(t, e.users.SetApproved(ctx, id, true))
			require.NoError(t, sessions.SignIn(ctx, "ghost@example.com", "secret1"))

			deadline := time.After(2 * time.Second)
			for {
				select {
				case v := <-renders:
					if v.Screen.Kind == ScreenPendingApproval {
						assert.Equal(t, ScreenPendingApproval, nav.Screen().Kind)
						return
					}
					require.NotEqual(t, ScreenStudentHome, v.Screen.Kind)
				case <-deadline:
					t.Fatal("timed out waiting for pending_approval render")
				}
			}
		})
	}
}

func TestStudentDrillDownAndBack(t *testing.T) {
	e := newEnv(t)
	e.waitFor(t, ScreenLoggedOut)
	subjectID, moduleID := e.seedSubjectTree(t)
	e.signInApprovedStudent(t)

	home := e.waitFor(t, ScreenStudentHome)
	require.Len(t, home.Subjects, 1)

	require.NoError(t, e.nav.OpenSubject(subjectID))
	modules := e.waitFor(t, ScreenSubjectModules)
	require.Len(t, modules.Modules, 1)

	require.NoError(t, e.nav.OpenModule(subjectID, moduleID))
	activities := e.waitFor(t, ScreenModuleActivities)
	require.Len(t, activities.Activities, 1)

	activity, ok := e.nav.SelectActivity(activities.Activities[0].ID)
	require.True(t, ok)
	assert.Equal(t, "Intro", activity.Title)

	require.NoError(t, e.nav.Back())
	back := e.waitFor(t, ScreenSubjectModules)
	assert.Equal(t, subjectID, back.Screen.SubjectID)

	require.NoError(t, e.nav.Back())
	e.waitFor(t, ScreenStudentHome)
	assert.ErrorIs(t, e.nav.Back(), ErrUnavailable)
}

func TestNavigationUnavailableOffScreen(t *testing.T) {
	e := newEnv(t)
	e.waitFor(t, ScreenLoggedOut)

	assert.ErrorIs(t, e.nav.OpenSubject("s1"), ErrUnavailable)
	assert.ErrorIs(t, e.nav.OpenModule("s1", "m1"), ErrUnavailable)
	assert.ErrorIs(t, e.nav.ManageSubject("s1"), ErrUnavailable)
	assert.ErrorIs(t, e.nav.Back(), ErrUnavailable)

	e.signInApprovedStudent(t)
	e.waitFor(t, ScreenStudentHome)
	// Admin drill-downs stay unreachable for a student session.
	assert.ErrorIs(t, e.nav.ManageSubject("s1"), ErrUnavailable)
}

func TestSignOutDiscardsDrillDownPosition(t *testing.T) {
	e := newEnv(t)
	e.waitFor(t, ScreenLoggedOut)
	subjectID, _ := e.seedSubjectTree(t)
	e.signInApprovedStudent(t)
	e.waitFor(t, ScreenStudentHome)

	require.NoError(t, e.nav.OpenSubject(subjectID))
	e.waitFor(t, ScreenSubjectModules)

	e.sessions.SignOut()
	v := e.waitFor(t, ScreenLoggedOut)
	assert.Nil(t, v.Session)
	assert.Empty(t, v.Screen.SubjectID)
	assert.ErrorIs(t, e.nav.Back(), ErrUnavailable)
}

func TestAdminDrillDown(t *testing.T) {
	e := newEnv(t)
	e.waitFor(t, ScreenLoggedOut)
	subjectID, moduleID := e.seedSubjectTree(t)

	ctx := context.Background()
	id, err := e.auth.Register(ctx, "admin@example.com", "secret1")
	require.NoError(t, err)
	_, err = e.auth.Register(ctx, "waiting@example.com", "secret1")
	require.NoError(t, err)
	promoteToAdmin(t, e, id)
	require.NoError(t, e.sessions.SignIn(ctx, "admin@example.com", "secret1"))

	home := e.waitFor(t, ScreenAdminHome)
	require.Len(t, home.Subjects, 1)
	require.Len(t, home.Pending, 2)

	require.NoError(t, e.nav.ManageSubject(subjectID))
	e.waitFor(t, ScreenManageModules)
	require.NoError(t, e.nav.ManageModule(subjectID, moduleID))
	e.waitFor(t, ScreenManageActivities)
	require.NoError(t, e.nav.Back())
	e.waitFor(t, ScreenManageModules)
	require.NoError(t, e.nav.Back())
	e.waitFor(t, ScreenAdminHome)
}

func promoteToAdmin(t *testing.T, e *env, userID string) {
	t.Helper()
	require.NoError(t, e.users.SetRole(userID, models.RoleAdministrator))
}

// gatedProfiles blocks the profile lookup until released.
type gatedProfiles struct {
	profiles ProfileSource
	entered  chan struct{}
	release  chan struct{}
}

func (g *gatedProfiles) GetProfile(ctx context.Context, userID string) (*models.User, error) {
	close(g.entered)
	<-g.release
	return g.profiles.GetProfile(ctx, userID)
}

// While a fresh session's profile lookup is in flight, the machine keeps
// reporting the previous screen rather than an empty kind.
func TestScreenStaysValidWhileResolving(t *testing.T) {
	e := newEnv(t)
	e.waitFor(t, ScreenLoggedOut)

	gate := &gatedProfiles{profiles: e.auth, entered: make(chan struct{}), release: make(chan struct{})}
	renders := make(chan View, 32)
	sessions := services.NewSessionManager(e.auth)
	nav := New(sessions, gate, services.NewContentService(e.content),
		services.NewApprovalService(e.users, nil), func(v View) { renders <- v })

	ctx := context.Background()
	id, err := e.auth.Register(ctx, "slow@example.com", "secret1")
	require.NoError(t, err)
	require.NoError(t, e.users.SetApproved(ctx, id, true))
	require.NoError(t, sessions.SignIn(ctx, "slow@example.com", "secret1"))
	<-gate.entered

	assert.Equal(t, ScreenLoggedOut, nav.Screen().Kind)

	close(gate.release)
	deadline := time.After(2 * time.Second)
	for {
		select {
		case v := <-renders:
			if v.Screen.Kind == ScreenStudentHome {
				assert.Equal(t, ScreenStudentHome, nav.Screen().Kind)
				return
			}
		case <-deadline:
			t.Fatal("timed out waiting for student_home render")
		}
	}
}

// gatedContent blocks ListModules until released so a transition can race
// past an in-flight fetch.
type gatedContent struct {
	ContentSource
	entered  chan struct{}
	release  chan struct{}
	finished chan struct{}
}

func (g *gatedContent) ListModules(ctx context.Context, subjectID string) []models.Module {
	close(g.entered)
	<-g.release
	modules := g.ContentSource.ListModules(ctx, subjectID)
	defer close(g.finished)
	return modules
}

func TestSupersededFetchIsDiscarded(t *testing.T) {
	e := newEnv(t)
	e.waitFor(t, ScreenLoggedOut)
	subjectID, _ := e.seedSubjectTree(t)

	gate := &gatedContent{
		ContentSource: services.NewContentService(e.content),
		entered:       make(chan struct{}),
		release:       make(chan struct{}),
		finished:      make(chan struct{}),
	}
	renders := make(chan View, 32)
	approvals := services.NewApprovalService(e.users, nil)
	sessions := services.NewSessionManager(e.auth)
	nav := New(sessions, e.auth, gate, approvals, func(v View) { renders <- v })

	wait := func(kind ScreenKind) View {
		deadline := time.After(2 * time.Second)
		for {
			select {
			case v := <-renders:
				if v.Screen.Kind == kind {
					return v
				}
				t.Fatalf("unexpected %s render", v.Screen.Kind)
			case <-deadline:
				t.Fatalf("timed out waiting for %s render", kind)
			}
		}
	}
	wait(ScreenLoggedOut)

	ctx := context.Background()
	id, err := e.auth.Register(ctx, "racer@example.com", "secret1")
	require.NoError(t, err)
	require.NoError(t, e.users.SetApproved(ctx, id, true))
	require.NoError(t, sessions.SignIn(ctx, "racer@example.com", "secret1"))
	wait(ScreenStudentHome)

	require.NoError(t, nav.OpenSubject(subjectID))
	<-gate.entered

	// Navigate away while the modules fetch is still in flight. Its result
	// must never render.
	require.NoError(t, nav.Back())
	wait(ScreenStudentHome)

	close(gate.release)
	<-gate.finished

	select {
	case v := <-renders:
		t.Fatalf("stale fetch rendered a %s view", v.Screen.Kind)
	case <-time.After(100 * time.Millisecond):
	}
	assert.Equal(t, ScreenStudentHome, nav.Screen().Kind)
}
