package store

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"

	"pathway.app/server/internal/model"
)

type conversationStore struct {
	db DBTX
}

const conversationColumns = `id, service_request_id, client_id, provider_id, status, created_at, updated_at`

func (s *conversationStore) GetByID(ctx context.Context, id int64) (*model.Conversation, error) {
	row := s.db.QueryRow(ctx, `
		SELECT `+conversationColumns+`
		FROM conversations
		WHERE id = $1`, id)
	return scanConversation(row)
}

func (s *conversationStore) GetByRequest(ctx context.Context, requestID int64) (*model.Conversation, error) {
	row := s.db.QueryRow(ctx, `
		SELECT `+conversationColumns+`
		FROM conversations
		WHERE service_request_id = $1`, requestID)
	return scanConversation(row)
}

// GetMembership resolves the conversation and the user owning its
// provider side in a single read. The LEFT JOIN keeps the conversation
// visible even if the provider row is gone; the gate then simply denies
// provider-side access.
func (s *conversationStore) GetMembership(ctx context.Context, id int64) (*model.ConversationMembership, error) {
	row := s.db.QueryRow(ctx, `
		SELECT c.id, c.service_request_id, c.client_id, c.provider_id, c.status, c.created_at, c.updated_at,
		       sp.user_id
		FROM conversations c
		LEFT JOIN providers sp ON sp.id = c.provider_id
		WHERE c.id = $1`, id)

	var m model.ConversationMembership
	err := row.Scan(
		&m.ID, &m.ServiceRequestID, &m.ClientID, &m.ProviderID, &m.Status,
		&m.CreatedAt, &m.UpdatedAt, &m.ProviderUserID,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &m, nil
}

func (s *conversationStore) Create(ctx context.Context, conv *model.Conversation) error {
	_, err := s.db.Exec(ctx, `
		INSERT INTO conversations (id, service_request_id, client_id, provider_id, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $6)`,
		conv.ID, conv.ServiceRequestID, conv.ClientID, conv.ProviderID, conv.Status, conv.CreatedAt,
	)
	return err
}

func (s *conversationStore) Touch(ctx context.Context, id int64, at time.Time) error {
	_, err := s.db.Exec(ctx, `
		UPDATE conversations SET updated_at = $1 WHERE id = $2`, at, id)
	return err
}

func (s *conversationStore) ListByClient(ctx context.Context, clientID int64) ([]model.ConversationSummary, error) {
	rows, err := s.db.Query(ctx, `
		SELECT c.id, c.service_request_id, c.client_id, c.provider_id, c.status, c.created_at, c.updated_at,
		       sr.title, sr.status,
		       sp.name, sp.service_type
		FROM conversations c
		JOIN service_requests sr ON sr.id = c.service_request_id
		JOIN providers sp ON sp.id = c.provider_id
		WHERE c.client_id = $1
		ORDER BY c.updated_at DESC`, clientID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.ConversationSummary
	for rows.Next() {
		var cs model.ConversationSummary
		if err := rows.Scan(
			&cs.ID, &cs.ServiceRequestID, &cs.ClientID, &cs.ProviderID, &cs.Status,
			&cs.CreatedAt, &cs.UpdatedAt,
			&cs.RequestTitle, &cs.RequestStatus,
			&cs.ProviderName, &cs.ServiceType,
		); err != nil {
			return nil, err
		}
		out = append(out, cs)
	}
	return out, rows.Err()
}

func (s *conversationStore) ListByProvider(ctx context.Context, providerID int64) ([]model.ConversationSummary, error) {
	rows, err := s.db.Query(ctx, `
		SELECT c.id, c.service_request_id, c.client_id, c.provider_id, c.status, c.created_at, c.updated_at,
		       sr.title, sr.status,
		       u.email, u.full_name
		FROM conversations c
		JOIN service_requests sr ON sr.id = c.service_request_id
		JOIN users u ON u.id = c.client_id
		WHERE c.provider_id = $1
		ORDER BY c.updated_at DESC`, providerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.ConversationSummary
	for rows.Next() {
		var cs model.ConversationSummary
		if err := rows.Scan(
			&cs.ID, &cs.ServiceRequestID, &cs.ClientID, &cs.ProviderID, &cs.Status,
			&cs.CreatedAt, &cs.UpdatedAt,
			&cs.RequestTitle, &cs.RequestStatus,
			&cs.ClientEmail, &cs.ClientName,
		); err != nil {
			return nil, err
		}
		out = append(out, cs)
	}
	return out, rows.Err()
}

func scanConversation(row pgx.Row) (*model.Conversation, error) {
	var c model.Conversation
	err := row.Scan(
		&c.ID, &c.ServiceRequestID, &c.ClientID, &c.ProviderID, &c.Status,
		&c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &c, nil
}
