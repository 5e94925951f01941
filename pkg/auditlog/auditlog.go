package auditlog

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Entry is one recorded write.
type Entry struct {
	ID           string    `json:"id"`
	Action       string    `json:"action"`
	ResourceType string    `json:"resourceType"`
	ResourceID   string    `json:"resourceId"`
	UserID       string    `json:"userId,omitempty"`
	Data         any       `json:"data,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
}

// Auditable is anything that can describe itself as an audit target.
type Auditable interface {
	AuditResource() (resourceType, resourceID string)
}

// Auditlog keeps the most recent entries in memory and mirrors each one to
// the logger.
type Auditlog struct {
	mu      sync.RWMutex
	entries []Entry
	limit   int
	logger  *zap.Logger
}

func NewAuditLog(limit int, logger *zap.Logger) *Auditlog {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Auditlog{limit: limit, logger: logger}
}

func (a *Auditlog) Log(action, userID string, data any, item Auditable) Entry {
	resourceType, resourceID := item.AuditResource()
	entry := Entry{
		ID:           uuid.NewString(),
		Action:       action,
		ResourceType: resourceType,
		ResourceID:   resourceID,
		UserID:       userID,
		Data:         data,
		CreatedAt:    time.Now().UTC(),
	}

	a.mu.Lock()
	a.entries = append(a.entries, entry)
	if a.limit > 0 && len(a.entries) > a.limit {
		a.entries = append([]Entry(nil), a.entries[len(a.entries)-a.limit:]...)
	}
	a.mu.Unlock()

	a.logger.Info("audit",
		zap.String("action", action),
		zap.String("resource_type", resourceType),
		zap.String("resource_id", resourceID),
		zap.String("user_id", userID),
	)
	return entry
}

// Entries returns newest first.
func (a *Auditlog) Entries() []Entry {
	a.mu.RLock()
	defer a.mu.RUnlock()

	out := make([]Entry, len(a.entries))
	for i, entry := range a.entries {
		out[len(a.entries)-1-i] = entry
	}
	return out
}
