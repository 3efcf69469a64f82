package usecase

import (
	"context"
	"errors"

	"doctors-portal/internal/domain/treatment"
	"doctors-portal/internal/infra"
	"doctors-portal/internal/pkg/errs"
	"doctors-portal/internal/usecase/readmodel"
)

var (
	ErrDuplicateTreatment = errors.New("treatment name already exists")

	// Error markers for categorization
	ErrDomainValidationFailed  = errors.New("domain validation failed")
	ErrDatabaseOperationFailed = errors.New("database operation failed")
)

type TreatmentRepository interface {
	FindAll(ctx context.Context) ([]*readmodel.TreatmentRM, error)
	FindNames(ctx context.Context) ([]*readmodel.TreatmentNameRM, error)
	Create(ctx context.Context, t *treatment.Treatment) (*readmodel.TreatmentRM, error)
}

type CreateTreatmentParams struct {
	Name       string
	Slots      []string
	PriceCents int64
}

// CatalogUseCase is the read-mostly view over the treatment catalog plus the
// per-date availability computation that combines it with the booking ledger.
type CatalogUseCase interface {
	ListTreatmentNames(ctx context.Context) ([]*readmodel.TreatmentNameRM, error)
	GetAvailability(ctx context.Context, date string) ([]treatment.Availability, error)
	CreateTreatment(ctx context.Context, params CreateTreatmentParams) (*readmodel.TreatmentRM, error)
}

type catalogUseCaseImpl struct {
	treatmentRepo TreatmentRepository
	bookingRepo   BookingRepository
	calculator    treatment.AvailabilityCalculator
}

func NewCatalogUseCase(
	treatmentRepo TreatmentRepository,
	bookingRepo BookingRepository,
	calculator treatment.AvailabilityCalculator,
) CatalogUseCase {
	return &catalogUseCaseImpl{
		treatmentRepo: treatmentRepo,
		bookingRepo:   bookingRepo,
		calculator:    calculator,
	}
}

func (c *catalogUseCaseImpl) ListTreatmentNames(ctx context.Context) ([]*readmodel.TreatmentNameRM, error) {
	names, err := c.treatmentRepo.FindNames(ctx)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	return names, nil
}

// GetAvailability fetches the full catalog, the bookings for the date, and
// hands both to the pure calculator. The date is an opaque key: a string no
// booking carries simply yields the full slot list for every treatment.
func (c *catalogUseCaseImpl) GetAvailability(ctx context.Context, date string) ([]treatment.Availability, error) {
	treatmentRMs, err := c.treatmentRepo.FindAll(ctx)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	bookingRMs, err := c.bookingRepo.FindByDate(ctx, date)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	treatments := make([]*treatment.Treatment, len(treatmentRMs))
	for i, rm := range treatmentRMs {
		treatments[i] = treatment.Restore(rm.ID, rm.Name, rm.Slots, rm.PriceCents)
	}

	booked := make([]treatment.BookedSlot, len(bookingRMs))
	for i, rm := range bookingRMs {
		booked[i] = treatment.BookedSlot{Treatment: rm.Treatment, Slot: rm.Slot}
	}

	return c.calculator.Compute(treatments, booked), nil
}

func (c *catalogUseCaseImpl) CreateTreatment(ctx context.Context, params CreateTreatmentParams) (*readmodel.TreatmentRM, error) {
	entity, err := treatment.NewTreatment(params.Name, params.Slots, params.PriceCents)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidationFailed)
	}

	rm, err := c.treatmentRepo.Create(ctx, entity)
	if err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return nil, ErrDuplicateTreatment
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	return rm, nil
}
