// Package navigator holds the screen-selection rule and the navigation state
// machine that drives the client through the content hierarchy.
package navigator

import "github.com/ailtonganem/Lara/internal/models"

type ScreenKind string

const (
	ScreenLoggedOut        ScreenKind = "logged_out"
	ScreenPendingApproval  ScreenKind = "pending_approval"
	ScreenStudentHome      ScreenKind = "student_home"
	ScreenAdminHome        ScreenKind = "admin_home"
	ScreenSubjectModules   ScreenKind = "subject_modules"
	ScreenModuleActivities ScreenKind = "module_activities"
	ScreenManageModules    ScreenKind = "manage_modules"
	ScreenManageActivities ScreenKind = "manage_activities"
)

// Screen is the current navigation position. SubjectID and ModuleID are set
// only for drill-down screens.
type Screen struct {
	Kind      ScreenKind `json:"kind"`
	SubjectID string     `json:"subject_id,omitempty"`
	ModuleID  string     `json:"module_id,omitempty"`
}

// Resolve is the single authorization-resolution rule: the screen for an
// authenticated state is a pure function of the session and the profile
// document. A missing profile (nil) resolves to the waiting screen, the
// fail-safe for an account whose profile write never landed. Administrators
// get their dashboard regardless of the approval flag.
func Resolve(signedIn bool, profile *models.User) ScreenKind {
	switch {
	case !signedIn:
		return ScreenLoggedOut
	case profile == nil:
		return ScreenPendingApproval
	case profile.Role == models.RoleAdministrator:
		return ScreenAdminHome
	case profile.Approved:
		return ScreenStudentHome
	default:
		return ScreenPendingApproval
	}
}
