package repository

import (
	"context"
	"errors"
	"log/slog"

	"doctors-portal/internal/domain/booking"
	"doctors-portal/internal/infra"
	"doctors-portal/internal/usecase/readmodel"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const bookingColumns = `id, treatment, date, slot, patient, paid, transaction_id, created_at`

type BookingRepository struct {
	pool *pgxpool.Pool
}

func NewBookingRepository(pool *pgxpool.Pool) *BookingRepository {
	return &BookingRepository{pool: pool}
}

// InsertIfAbsent admits the candidate unless a booking for the same
// (treatment, date, patient) already exists. The conditional insert is a
// single statement guarded by the bookings unique index, so two concurrent
// identical requests cannot both be admitted; the loser reads back the row
// that won.
func (r *BookingRepository) InsertIfAbsent(ctx context.Context, b *booking.Booking) (*readmodel.BookingRM, bool, error) {
	insert := `
		INSERT INTO bookings (id, treatment, date, slot, patient)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (treatment, date, patient) DO NOTHING
		RETURNING ` + bookingColumns

	var rm readmodel.BookingRM
	err := r.pool.QueryRow(ctx, insert,
		b.ID(), b.Treatment(), b.Date(), b.Slot(), b.Patient().Value(),
	).Scan(scanBookingDest(&rm)...)
	if err == nil {
		return &rm, true, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return nil, false, infra.WrapRepoErr("failed to insert booking", err)
	}

	conflict, err := r.findByTriple(ctx, b.Treatment(), b.Date(), b.Patient().Value())
	if err != nil {
		// The conflicting row vanished between the insert and the read;
		// treat it as a retryable failure rather than guessing.
		return nil, false, err
	}

	return conflict, false, nil
}

func (r *BookingRepository) findByTriple(ctx context.Context, treatmentName, date, patient string) (*readmodel.BookingRM, error) {
	query := `
		SELECT ` + bookingColumns + `
		FROM bookings
		WHERE treatment = $1 AND date = $2 AND patient = $3
	`
	var rm readmodel.BookingRM
	err := r.pool.QueryRow(ctx, query, treatmentName, date, patient).Scan(scanBookingDest(&rm)...)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("conflicting booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find conflicting booking", err)
	}

	return &rm, nil
}

func (r *BookingRepository) FindByID(ctx context.Context, id uuid.UUID) (*readmodel.BookingRM, error) {
	query := `
		SELECT ` + bookingColumns + `
		FROM bookings
		WHERE id = $1
	`
	var rm readmodel.BookingRM
	err := r.pool.QueryRow(ctx, query, id).Scan(scanBookingDest(&rm)...)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find booking by ID", err)
	}

	return &rm, nil
}

func (r *BookingRepository) FindByPatient(ctx context.Context, patient string) ([]*readmodel.BookingRM, error) {
	query := `
		SELECT ` + bookingColumns + `
		FROM bookings
		WHERE patient = $1
		ORDER BY created_at DESC
	`
	return r.queryBookings(ctx, query, patient)
}

func (r *BookingRepository) FindByDate(ctx context.Context, date string) ([]*readmodel.BookingRM, error) {
	query := `
		SELECT ` + bookingColumns + `
		FROM bookings
		WHERE date = $1
	`
	return r.queryBookings(ctx, query, date)
}

// MarkPaid flips the booking to paid and records the payment transaction in
// the same database transaction. The update only matches an unpaid booking or
// a re-confirmation carrying the same transaction id, so two concurrent
// confirmations with different transactions cannot both succeed; the loser
// sees zero rows and gets a DUPLICATE_KEY error.
func (r *BookingRepository) MarkPaid(ctx context.Context, id uuid.UUID, transactionID string) (*readmodel.BookingRM, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to begin payment transaction", err)
	}
	defer func() {
		if rollbackErr := tx.Rollback(ctx); rollbackErr != nil && !errors.Is(rollbackErr, pgx.ErrTxClosed) {
			slog.Warn("failed to rollback payment transaction", "error", rollbackErr)
		}
	}()

	update := `
		UPDATE bookings
		SET paid = TRUE, transaction_id = $2
		WHERE id = $1 AND (paid = FALSE OR transaction_id = $2)
		RETURNING ` + bookingColumns

	var rm readmodel.BookingRM
	err = tx.QueryRow(ctx, update, id, transactionID).Scan(scanBookingDest(&rm)...)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, r.classifyUnmatchedPayment(ctx, tx, id)
		}
		return nil, infra.WrapRepoErr("failed to mark booking paid", err)
	}

	insert := `
		INSERT INTO payments (id, booking_id, transaction_id)
		VALUES ($1, $2, $3)
		ON CONFLICT (booking_id, transaction_id) DO NOTHING
	`
	if _, err := tx.Exec(ctx, insert, uuid.New(), id, transactionID); err != nil {
		return nil, infra.WrapRepoErr("failed to record payment", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, infra.WrapRepoErr("failed to commit payment transaction", err)
	}

	return &rm, nil
}

// classifyUnmatchedPayment distinguishes the two reasons the conditional
// update can match nothing: the booking does not exist, or it is already paid
// with another transaction.
func (r *BookingRepository) classifyUnmatchedPayment(ctx context.Context, tx pgx.Tx, id uuid.UUID) error {
	var exists bool
	if err := tx.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM bookings WHERE id = $1)`, id).Scan(&exists); err != nil {
		return infra.WrapRepoErr("failed to classify payment conflict", err)
	}
	if !exists {
		return infra.WrapRepoErr("booking not found", nil, infra.KindNotFound)
	}
	return infra.WrapRepoErr("booking already paid with another transaction", nil, infra.KindDuplicateKey)
}

func (r *BookingRepository) queryBookings(ctx context.Context, query string, args ...any) ([]*readmodel.BookingRM, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to query bookings", err)
	}
	defer rows.Close()

	var result []*readmodel.BookingRM
	for rows.Next() {
		var rm readmodel.BookingRM
		if err := rows.Scan(scanBookingDest(&rm)...); err != nil {
			return nil, infra.WrapRepoErr("failed to scan booking row", err)
		}
		result = append(result, &rm)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read booking rows", err)
	}

	return result, nil
}

func scanBookingDest(rm *readmodel.BookingRM) []any {
	return []any{
		&rm.ID,
		&rm.Treatment,
		&rm.Date,
		&rm.Slot,
		&rm.Patient,
		&rm.Paid,
		&rm.TransactionID,
		&rm.CreatedAt,
	}
}
