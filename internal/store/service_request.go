package store

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"

	"pathway.app/server/internal/model"
)

type requestStore struct {
	db DBTX
}

const requestColumns = `id, client_id, provider_id, service_type, title, description, priority, status,
	notes, client_rating, requested_at, accepted_at, completed_at, confirmed_at`

func (s *requestStore) GetByID(ctx context.Context, id int64) (*model.ServiceRequest, error) {
	row := s.db.QueryRow(ctx, `
		SELECT `+requestColumns+`
		FROM service_requests
		WHERE id = $1`, id)

	req, err := scanRequest(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return req, nil
}

func (s *requestStore) Create(ctx context.Context, req *model.ServiceRequest) error {
	_, err := s.db.Exec(ctx, `
		INSERT INTO service_requests (id, client_id, provider_id, service_type, title, description, priority, status, requested_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		req.ID, req.ClientID, req.ProviderID, req.ServiceType, req.Title,
		req.Description, req.Priority, req.Status, req.RequestedAt,
	)
	return err
}

// MarkAccepted transitions REQUESTED → ACCEPTED for the owning provider.
// The status predicate makes concurrent accepts race safely: exactly one
// update applies.
func (s *requestStore) MarkAccepted(ctx context.Context, id, providerID int64, notes *string, at time.Time) (bool, error) {
	tag, err := s.db.Exec(ctx, `
		UPDATE service_requests
		SET status = $1, accepted_at = $2, notes = COALESCE($3, notes)
		WHERE id = $4 AND provider_id = $5 AND status = $6`,
		model.RequestStatusAccepted, at, notes, id, providerID, model.RequestStatusRequested,
	)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() == 1, nil
}

// MarkCompleted transitions ACCEPTED → COMPLETED. Completion notes are
// appended to the existing notes, never overwritten.
func (s *requestStore) MarkCompleted(ctx context.Context, id, providerID int64, completionNotes *string, at time.Time) (bool, error) {
	tag, err := s.db.Exec(ctx, `
		UPDATE service_requests
		SET status = $1,
		    completed_at = $2,
		    notes = CASE
		        WHEN $3::text IS NULL THEN notes
		        WHEN notes IS NULL THEN $3::text
		        ELSE notes || E'\n' || $3::text
		    END
		WHERE id = $4 AND provider_id = $5 AND status = $6`,
		model.RequestStatusCompleted, at, completionNotes, id, providerID, model.RequestStatusAccepted,
	)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() == 1, nil
}

// MarkConfirmed transitions COMPLETED → CONFIRMED for the owning client
// and records the client's rating.
func (s *requestStore) MarkConfirmed(ctx context.Context, id, clientID int64, rating int, at time.Time) (bool, error) {
	tag, err := s.db.Exec(ctx, `
		UPDATE service_requests
		SET status = $1, confirmed_at = $2, client_rating = $3
		WHERE id = $4 AND client_id = $5 AND status = $6`,
		model.RequestStatusConfirmed, at, rating, id, clientID, model.RequestStatusCompleted,
	)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() == 1, nil
}

func (s *requestStore) ListByClient(ctx context.Context, clientID int64) ([]model.RequestWithProvider, error) {
	rows, err := s.db.Query(ctx, `
		SELECT sr.id, sr.client_id, sr.provider_id, sr.service_type, sr.title, sr.description,
		       sr.priority, sr.status, sr.notes, sr.client_rating,
		       sr.requested_at, sr.accepted_at, sr.completed_at, sr.confirmed_at,
		       sp.name, sp.email, sp.phone
		FROM service_requests sr
		JOIN providers sp ON sp.id = sr.provider_id
		WHERE sr.client_id = $1
		ORDER BY sr.requested_at DESC`, clientID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.RequestWithProvider
	for rows.Next() {
		var r model.RequestWithProvider
		if err := rows.Scan(
			&r.ID, &r.ClientID, &r.ProviderID, &r.ServiceType, &r.Title, &r.Description,
			&r.Priority, &r.Status, &r.Notes, &r.ClientRating,
			&r.RequestedAt, &r.AcceptedAt, &r.CompletedAt, &r.ConfirmedAt,
			&r.ProviderName, &r.ProviderEmail, &r.ProviderPhone,
		); err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

func (s *requestStore) ListByProvider(ctx context.Context, providerID int64) ([]model.RequestWithClient, error) {
	rows, err := s.db.Query(ctx, `
		SELECT sr.id, sr.client_id, sr.provider_id, sr.service_type, sr.title, sr.description,
		       sr.priority, sr.status, sr.notes, sr.client_rating,
		       sr.requested_at, sr.accepted_at, sr.completed_at, sr.confirmed_at,
		       u.email, u.full_name
		FROM service_requests sr
		JOIN users u ON u.id = sr.client_id
		WHERE sr.provider_id = $1
		ORDER BY sr.requested_at DESC`, providerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.RequestWithClient
	for rows.Next() {
		var r model.RequestWithClient
		if err := rows.Scan(
			&r.ID, &r.ClientID, &r.ProviderID, &r.ServiceType, &r.Title, &r.Description,
			&r.Priority, &r.Status, &r.Notes, &r.ClientRating,
			&r.RequestedAt, &r.AcceptedAt, &r.CompletedAt, &r.ConfirmedAt,
			&r.ClientEmail, &r.ClientName,
		); err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

func scanRequest(row pgx.Row) (*model.ServiceRequest, error) {
	var r model.ServiceRequest
	err := row.Scan(
		&r.ID, &r.ClientID, &r.ProviderID, &r.ServiceType, &r.Title, &r.Description,
		&r.Priority, &r.Status, &r.Notes, &r.ClientRating,
		&r.RequestedAt, &r.AcceptedAt, &r.CompletedAt, &r.ConfirmedAt,
	)
	if err != nil {
		return nil, err
	}
	return &r, nil
}
