package navigator

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ailtonganem/Lara/internal/models"
)

func TestResolve(t *testing.T) {
	student := func(approved bool) *models.User {
		return &models.User{Role: models.RoleStudent, Approved: approved}
	}
	admin := func(approved bool) *models.User {
		return &models.User{Role: models.RoleAdministrator, Approved: approved}
	}

	tests := []struct {
		name     string
		signedIn bool
		profile  *models.User
		want     ScreenKind
	}{
		{"signed out", false, nil, ScreenLoggedOut},
		{"signed out ignores profile", false, student(true), ScreenLoggedOut},
		{"missing profile is fail-safe pending", true, nil, ScreenPendingApproval},
		{"unapproved student waits", true, student(false), ScreenPendingApproval},
		{"approved student gets dashboard", true, student(true), ScreenStudentHome},
		{"admin regardless of approval", true, admin(false), ScreenAdminHome},
		{"approved admin", true, admin(true), ScreenAdminHome},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Resolve(tt.signedIn, tt.profile))
		})
	}
}
