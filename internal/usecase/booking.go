package usecase

import (
	"context"
	"errors"

	"doctors-portal/internal/domain/booking"
	"doctors-portal/internal/infra"
	"doctors-portal/internal/pkg/errs"
	"doctors-portal/internal/usecase/readmodel"

	"github.com/google/uuid"
)

var (
	ErrBookingNotFound = errors.New("booking not found")
	ErrAlreadyPaid     = errors.New("booking already paid with a different transaction")
)

type BookingRepository interface {
	InsertIfAbsent(ctx context.Context, b *booking.Booking) (*readmodel.BookingRM, bool, error)
	FindByID(ctx context.Context, id uuid.UUID) (*readmodel.BookingRM, error)
	FindByPatient(ctx context.Context, patient string) ([]*readmodel.BookingRM, error)
	FindByDate(ctx context.Context, date string) ([]*readmodel.BookingRM, error)
	MarkPaid(ctx context.Context, id uuid.UUID, transactionID string) (*readmodel.BookingRM, error)
}

type RequestBookingParams struct {
	Treatment string
	Date      string
	Slot      string
	Patient   string
}

// AdmissionResult reports the outcome of a booking request. A rejected
// request is not an error: Admitted is false and Booking carries the
// pre-existing reservation the candidate collided with.
type AdmissionResult struct {
	Admitted bool
	Booking  *readmodel.BookingRM
}

type BookingUseCase interface {
	RequestBooking(ctx context.Context, params RequestBookingParams) (*AdmissionResult, error)
	GetBooking(ctx context.Context, id uuid.UUID) (*readmodel.BookingRM, error)
	GetPatientBookings(ctx context.Context, patient string) ([]*readmodel.BookingRM, error)
	ConfirmPayment(ctx context.Context, id uuid.UUID, transactionID string) (*readmodel.BookingRM, error)
}

type bookingUseCaseImpl struct {
	bookingRepo BookingRepository
}

func NewBookingUseCase(bookingRepo BookingRepository) BookingUseCase {
	return &bookingUseCaseImpl{
		bookingRepo: bookingRepo,
	}
}

// RequestBooking admits the candidate unless the patient already holds a
// booking for the same treatment and date. Duplicate detection is delegated
// to the ledger's atomic conditional insert, never a separate read.
func (b *bookingUseCaseImpl) RequestBooking(ctx context.Context, params RequestBookingParams) (*AdmissionResult, error) {
	candidate, err := booking.NewBooking(params.Treatment, params.Date, params.Slot, params.Patient)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidationFailed)
	}

	rm, admitted, err := b.bookingRepo.InsertIfAbsent(ctx, candidate)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	return &AdmissionResult{Admitted: admitted, Booking: rm}, nil
}

func (b *bookingUseCaseImpl) GetBooking(ctx context.Context, id uuid.UUID) (*readmodel.BookingRM, error) {
	rm, err := b.bookingRepo.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	return rm, nil
}

func (b *bookingUseCaseImpl) GetPatientBookings(ctx context.Context, patient string) ([]*readmodel.BookingRM, error) {
	rms, err := b.bookingRepo.FindByPatient(ctx, patient)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	return rms, nil
}

// ConfirmPayment marks a booking paid. Confirming twice with the same
// transaction id returns the booking unchanged; a different transaction id
// against an already-paid booking is rejected. The already-paid guard is the
// ledger's conditional update, never a separate read, so two concurrent
// confirmations cannot both succeed.
func (b *bookingUseCaseImpl) ConfirmPayment(ctx context.Context, id uuid.UUID, transactionID string) (*readmodel.BookingRM, error) {
	rm, err := b.bookingRepo.MarkPaid(ctx, id, transactionID)
	if err != nil {
		switch {
		case infra.IsKind(err, infra.KindNotFound):
			return nil, ErrBookingNotFound
		case infra.IsKind(err, infra.KindDuplicateKey):
			return nil, ErrAlreadyPaid
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	return rm, nil
}
