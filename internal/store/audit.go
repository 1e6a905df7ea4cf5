package store

import (
	"context"

	"pathway.app/server/internal/model"
)

type auditStore struct {
	db DBTX
}

func (s *auditStore) Record(ctx context.Context, entry *model.AuditEntry) error {
	_, err := s.db.Exec(ctx, `
		INSERT INTO audit_log (id, action_type, description, created_by, created_at)
		VALUES ($1, $2, $3, $4, $5)`,
		entry.ID, entry.Action, entry.Description, entry.ActorID, entry.CreatedAt,
	)
	return err
}
