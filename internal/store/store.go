package store

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// DBTX is satisfied by pgx.Tx, *pgxpool.Pool, and db.Bounded, so the
// same store code runs inside and outside transactions.
type DBTX interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// Stores provides access to all store implementations. It can be
// instantiated with either a connection pool or a transaction.
//
// Usage with pool (non-transactional, op timeout applied per call):
//
//	stores := store.NewStores(database.Bounded())
//	req, err := stores.Requests().GetByID(ctx, 123)
//
// Usage with transaction:
//
//	err := database.WithTx(ctx, func(tx pgx.Tx) error {
//	    stores := store.NewStores(tx)
//	    // All operations share the same transaction
//	    if ok, err := stores.Requests().MarkAccepted(ctx, ...); err != nil {
//	        return err
//	    }
//	    return stores.Conversations().Create(ctx, conv)
//	})
type Stores struct {
	db DBTX
}

func NewStores(db DBTX) *Stores {
	return &Stores{db: db}
}

func (s *Stores) Requests() RequestStore {
	return &requestStore{db: s.db}
}

func (s *Stores) Conversations() ConversationStore {
	return &conversationStore{db: s.db}
}

func (s *Stores) Messages() MessageStore {
	return &messageStore{db: s.db}
}

func (s *Stores) Providers() ProviderStore {
	return &providerStore{db: s.db}
}

func (s *Stores) Users() UserStore {
	return &userStore{db: s.db}
}

func (s *Stores) Sessions() SessionStore {
	return &sessionStore{db: s.db}
}

func (s *Stores) Audit() AuditStore {
	return &auditStore{db: s.db}
}
