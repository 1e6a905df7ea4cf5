package store

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"pathway.app/server/internal/model"
)

type providerStore struct {
	db DBTX
}

const providerColumns = `id, user_id, name, email, phone, address, service_type, description,
	website, rating, total_reviews, is_active, created_at`

func (s *providerStore) GetByID(ctx context.Context, id int64) (*model.Provider, error) {
	row := s.db.QueryRow(ctx, `
		SELECT `+providerColumns+`
		FROM providers
		WHERE id = $1`, id)
	return scanProvider(row)
}

func (s *providerStore) GetByUser(ctx context.Context, userID int64) (*model.Provider, error) {
	row := s.db.QueryRow(ctx, `
		SELECT `+providerColumns+`
		FROM providers
		WHERE user_id = $1`, userID)
	return scanProvider(row)
}

func (s *providerStore) List(ctx context.Context, serviceType *model.ServiceType) ([]model.Provider, error) {
	query := `
		SELECT ` + providerColumns + `
		FROM providers
		WHERE is_active = true`
	args := []any{}
	if serviceType != nil {
		query += ` AND service_type = $1`
		args = append(args, *serviceType)
	}
	query += ` ORDER BY rating DESC, name ASC`

	rows, err := s.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.Provider
	for rows.Next() {
		var p model.Provider
		if err := rows.Scan(
			&p.ID, &p.UserID, &p.Name, &p.Email, &p.Phone, &p.Address,
			&p.ServiceType, &p.Description, &p.Website,
			&p.Rating, &p.TotalReviews, &p.IsActive, &p.CreatedAt,
		); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

// RecalculateRating derives the rating from confirmed requests rather
// than incrementally adjusting it, so a replayed confirm cannot skew the
// average.
func (s *providerStore) RecalculateRating(ctx context.Context, id int64) error {
	_, err := s.db.Exec(ctx, `
		UPDATE providers
		SET rating = COALESCE((
		        SELECT AVG(client_rating)::numeric(3,2)
		        FROM service_requests
		        WHERE provider_id = $1
		          AND status = $2
		          AND client_rating IS NOT NULL
		    ), 0),
		    total_reviews = total_reviews + 1
		WHERE id = $1`,
		id, model.RequestStatusConfirmed,
	)
	return err
}

func scanProvider(row pgx.Row) (*model.Provider, error) {
	var p model.Provider
	err := row.Scan(
		&p.ID, &p.UserID, &p.Name, &p.Email, &p.Phone, &p.Address,
		&p.ServiceType, &p.Description, &p.Website,
		&p.Rating, &p.TotalReviews, &p.IsActive, &p.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &p, nil
}
