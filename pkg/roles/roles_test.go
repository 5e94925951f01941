package roles

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRoleIsValid(t *testing.T) {
	for _, r := range All {
		assert.True(t, r.IsValid(), r)
	}
	assert.False(t, Role("moderator").IsValid())
	assert.False(t, Role("Admin").IsValid())
}

func TestRoleDashboard(t *testing.T) {
	assert.Equal(t, "operator", Staff.Dashboard())
	assert.Equal(t, "technician", Technician.Dashboard())
	assert.Equal(t, "customer", Role("unknown").Dashboard())
}
