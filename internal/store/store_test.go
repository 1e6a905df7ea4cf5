package store_test

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"pathway.app/server/core/db"
	"pathway.app/server/internal/store"
)

// recordingDB stands in for the pool and records whether each call
// arrived with a deadline.
type recordingDB struct {
	execHadDeadline bool
	rowHadDeadline  bool
}

func (r *recordingDB) Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	_, r.execHadDeadline = ctx.Deadline()
	return pgconn.NewCommandTag("UPDATE 1"), nil
}

func (r *recordingDB) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	return nil, pgx.ErrNoRows
}

func (r *recordingDB) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	_, r.rowHadDeadline = ctx.Deadline()
	return noRow{}
}

type noRow struct{}

func (noRow) Scan(dest ...any) error { return pgx.ErrNoRows }

var _ = Describe("Stores over a bounded pool", func() {
	var (
		driver *recordingDB
		stores *store.Stores
	)

	BeforeEach(func() {
		driver = &recordingDB{}
		stores = store.NewStores(db.NewBounded(driver, time.Second))
	})

	It("bounds reads outside a transaction", func() {
		_, err := stores.Requests().GetByID(context.Background(), 1)

		Expect(err).To(MatchError(store.ErrNotFound))
		Expect(driver.rowHadDeadline).To(BeTrue(), "GetByID reached the driver with no deadline")
	})

	It("bounds mutations outside a transaction", func() {
		ok, err := stores.Requests().MarkCompleted(context.Background(), 1, 2, nil, time.Now())

		Expect(err).NotTo(HaveOccurred())
		Expect(ok).To(BeTrue())
		Expect(driver.execHadDeadline).To(BeTrue(), "MarkCompleted reached the driver with no deadline")
	})
})
