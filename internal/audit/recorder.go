// Package audit records operator-facing audit entries. Writes are
// best-effort: business data is authoritative, so a failed audit write
// is logged and swallowed, never propagated to the caller.
package audit

import (
	"context"
	"log/slog"
	"time"

	"pathway.app/server/common/id"
	"pathway.app/server/internal/events"
	"pathway.app/server/internal/model"
	"pathway.app/server/internal/store"
)

type Recorder interface {
	Record(ctx context.Context, action, description string, actorID *int64)
}

type recorder struct {
	audit    store.AuditStore
	producer events.Producer
}

// NewRecorder builds a Recorder writing to the audit_log table and
// mirroring each entry onto the event stream. producer may be nil.
func NewRecorder(auditStore store.AuditStore, producer events.Producer) Recorder {
	return &recorder{audit: auditStore, producer: producer}
}

func (r *recorder) Record(ctx context.Context, action, description string, actorID *int64) {
	entry := &model.AuditEntry{
		ID:          id.New(),
		Action:      action,
		Description: description,
		ActorID:     actorID,
		CreatedAt:   time.Now().UTC(),
	}

	if err := r.audit.Record(ctx, entry); err != nil {
		slog.ErrorContext(ctx, "audit write failed", "error", err, "action", action)
	}

	if r.producer != nil {
		if err := r.producer.Publish(ctx, events.AuditEvent{
			Action:      action,
			Description: description,
			ActorID:     actorID,
		}); err != nil {
			slog.ErrorContext(ctx, "audit event publish failed", "error", err, "action", action)
		}
	}
}

// Nop returns a Recorder that discards everything. Used in tests.
func Nop() Recorder {
	return nopRecorder{}
}

type nopRecorder struct{}

func (nopRecorder) Record(context.Context, string, string, *int64) {}
