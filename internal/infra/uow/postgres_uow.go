package uow

import (
	"context"
	"errors"
	"log/slog"
	"math/rand/v2"
	"time"

	"booking-api/internal/infra/repository"
	sqlc "booking-api/internal/infra/sqlc/generated"
	"booking-api/internal/pkg/errs"
	"booking-api/internal/usecase/shared"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	pgErrCodeSerializationFailure = "40001"
	pgErrCodeDeadlockDetected     = "40P01"

	defaultMaxRetries = 3
	defaultBackoff    = 100 * time.Millisecond
)

var (
	errTransactionBegin   = errs.New("failed to begin transaction")
	errTransactionCommit  = errs.New("failed to commit transaction")
	errMaxRetriesExceeded = errs.New("transaction failed after max retries")
)

type PostgresUoW struct {
	pool       *pgxpool.Pool
	q          *sqlc.Queries
	maxRetries int
	backoff    time.Duration
}

func NewPostgresUoW(pool *pgxpool.Pool, q *sqlc.Queries) shared.UnitOfWork {
	return &PostgresUoW{
		pool:       pool,
		q:          q,
		maxRetries: defaultMaxRetries,
		backoff:    defaultBackoff,
	}
}

// Within runs fn in a READ COMMITTED transaction and retries on
// serialization failures and deadlocks.
func (u *PostgresUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	opts := pgx.TxOptions{IsoLevel: pgx.ReadCommitted}

	var err error
	for attempt := 0; attempt <= u.maxRetries; attempt++ {
		err = u.attempt(ctx, opts, fn)
		if err == nil {
			return nil
		}
		if !isRetryableError(err) {
			return err
		}
		if attempt == u.maxRetries {
			break
		}

		wait := backoffFor(attempt, u.backoff)
		slog.WarnContext(ctx, "retrying transaction due to retryable error",
			"attempt", attempt+1,
			"wait_ms", wait.Milliseconds(),
			"error", err.Error())

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(wait):
		}
	}

	slog.ErrorContext(ctx, "transaction failed after max retries",
		"attempts", u.maxRetries+1,
		"error", err.Error())
	return errs.Mark(err, errMaxRetriesExceeded)
}

// attempt owns exactly one transaction so rollbacks never pile up across retries.
func (u *PostgresUoW) attempt(ctx context.Context, opts pgx.TxOptions, fn func(ctx context.Context, tx shared.Tx) error) error {
	pgxTx, err := u.pool.BeginTx(ctx, opts)
	if err != nil {
		return errs.Mark(err, errTransactionBegin)
	}
	defer func() {
		if rbErr := pgxTx.Rollback(ctx); rbErr != nil && !errors.Is(rbErr, pgx.ErrTxClosed) {
			slog.WarnContext(ctx, "rollback failed", "error", rbErr.Error())
		}
	}()

	if err := fn(ctx, &pgTx{dbtx: pgxTx, uow: u}); err != nil {
		return err
	}
	if err := pgxTx.Commit(ctx); err != nil {
		return errs.Mark(err, errTransactionCommit)
	}
	return nil
}

// backoffFor doubles base per attempt and adds up to 20% jitter.
func backoffFor(attempt int, base time.Duration) time.Duration {
	wait := time.Duration(1<<attempt) * base
	if j := int64(wait / 5); j > 0 {
		wait += time.Duration(rand.Int64N(j)) // #nosec G404 -- jitter only
	}
	return wait
}

func isRetryableError(err error) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}

	switch pgErr.Code {
	case pgErrCodeSerializationFailure, pgErrCodeDeadlockDetected:
		return true
	default:
		return false
	}
}

type pgTx struct {
	dbtx sqlc.DBTX
	uow  *PostgresUoW

	bookingRepo shared.BookingRepository
}

func (t *pgTx) DB() sqlc.DBTX {
	return t.dbtx
}

func (t *pgTx) Bookings() shared.BookingRepository {
	if t.bookingRepo == nil {
		t.bookingRepo = repository.NewBookingRepository(t.uow.q)
	}
	return t.bookingRepo
}
