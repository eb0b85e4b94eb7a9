package role

import (
	"testing"
	"time"

	"github.com/shandysiswandi/otpgate/internal/auth/entity"
	"github.com/shandysiswandi/otpgate/internal/shared/identity"
	"github.com/stretchr/testify/assert"
)

func TestFromEmail(t *testing.T) {
	tests := []struct {
		email string
		want  identity.Role
	}{
		{email: "admin@test.com", want: identity.RoleAdmin},
		{email: "ADMIN@Test.com", want: identity.RoleAdmin},
		{email: "sysadmin@uni.edu", want: identity.RoleAdmin},
		{email: "faculty@test.com", want: identity.RoleFaculty},
		{email: "prof.x@uni.edu", want: identity.RoleFaculty},
		{email: "dr.sharma@uni.edu", want: identity.RoleFaculty},
		{email: "teacher1@uni.edu", want: identity.RoleFaculty},
		{email: "admin.prof@uni.edu", want: identity.RoleAdmin},
		{email: "student@test.com", want: identity.RoleStudent},
		{email: "dr@uni.edu", want: identity.RoleStudent},
		{email: "", want: identity.RoleStudent},
	}

	for _, tt := range tests {
		t.Run(tt.email, func(t *testing.T) {
			assert.Equal(t, tt.want, FromEmail(tt.email))
		})
	}
}

func TestDisplayName(t *testing.T) {
	assert.Equal(t, "Admin User", DisplayName(identity.RoleAdmin))
	assert.Equal(t, "Dr. Sharma", DisplayName(identity.RoleFaculty))
	assert.Equal(t, "John Student", DisplayName(identity.RoleStudent))
	assert.Equal(t, "John Student", DisplayName(identity.Role("ghost")))
}

func TestResolve(t *testing.T) {
	at := time.Date(2026, 1, 2, 10, 0, 0, 0, time.FixedZone("WIB", 7*3600))

	t.Run("selection wins over heuristic", func(t *testing.T) {
		got := Resolve(entity.CredentialAttempt{
			Email:         "admin@test.com",
			Password:      "x",
			RoleSelection: identity.RoleStudent,
		}, at)

		assert.Equal(t, identity.RoleStudent, got.Role)
		assert.Equal(t, "John Student", got.Name)
		assert.Equal(t, "admin@test.com", got.Email)
		assert.Equal(t, at.UTC(), got.LoginTime)
	})

	t.Run("heuristic without selection", func(t *testing.T) {
		got := Resolve(entity.CredentialAttempt{Email: " Prof.Lee@uni.edu "}, at)

		assert.Equal(t, identity.RoleFaculty, got.Role)
		assert.Equal(t, "Dr. Sharma", got.Name)
		assert.Equal(t, "Prof.Lee@uni.edu", got.Email)
	})

	t.Run("unknown selection falls back to student", func(t *testing.T) {
		got := Resolve(entity.CredentialAttempt{Email: "admin@x.y", RoleSelection: "dean"}, at)

		assert.Equal(t, identity.RoleStudent, got.Role)
		assert.NoError(t, got.Validate())
	})
}
