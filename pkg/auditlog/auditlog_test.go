package auditlog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type resource string

func (r resource) AuditResource() (string, string) { return "stock", string(r) }

func TestLogKeepsNewestFirst(t *testing.T) {
	a := NewAuditLog(2, nil)

	a.Log("create", "u1", nil, resource("a"))
	a.Log("update", "u1", map[string]any{"quantity": 3}, resource("a"))
	last := a.Log("delete", "u2", nil, resource("b"))

	entries := a.Entries()
	require.Len(t, entries, 2)
	assert.Equal(t, last.ID, entries[0].ID)
	assert.Equal(t, "delete", entries[0].Action)
	assert.Equal(t, "b", entries[0].ResourceID)
	assert.Equal(t, "update", entries[1].Action)
	assert.Equal(t, "stock", entries[1].ResourceType)
}

func TestUnlimited(t *testing.T) {
	a := NewAuditLog(0, nil)
	for i := 0; i < 5; i++ {
		a.Log("create", "", nil, resource("x"))
	}
	assert.Len(t, a.Entries(), 5)
}
