package identity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseRole(t *testing.T) {
	r, ok := ParseRole("  Faculty ")
	assert.True(t, ok)
	assert.Equal(t, RoleFaculty, r)

	r, ok = ParseRole("dean")
	assert.False(t, ok)
	assert.Equal(t, RoleStudent, r.Ensure())
}

func TestRecord_Validate(t *testing.T) {
	now := time.Now()

	assert.NoError(t, Record{Role: RoleAdmin, Name: "Admin User", LoginTime: now}.Validate())
	assert.ErrorIs(t, Record{Role: RoleAdmin}.Validate(), ErrRecordIncomplete)
	assert.ErrorIs(t, Record{Name: "x"}.Validate(), ErrRecordIncomplete)
	assert.ErrorIs(t, Record{Role: " ", Name: "x"}.Validate(), ErrRecordIncomplete)
}

func TestRedirectTable_Lookup(t *testing.T) {
	table := DefaultRedirectTable()

	assert.Equal(t, "pages/admin/dashboard.html", table.Lookup(RoleAdmin))
	assert.Equal(t, "pages/faculty/dashboard.html", table.Lookup(RoleFaculty))
	assert.Equal(t, "pages/student/dashboard.html", table.Lookup(RoleStudent))
	assert.Equal(t, "pages/student/dashboard.html", table.Lookup(Role("dean")))

	assert.Equal(t, "pages/student/dashboard.html", RedirectTable{}.Lookup(RoleAdmin))
	assert.Equal(t, "s.html", RedirectTable{RoleStudent: "s.html"}.Lookup(RoleFaculty))
}
