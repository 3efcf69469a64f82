package usecase

import (
	"context"
	"errors"

	"doctors-portal/internal/domain/doctor"
	"doctors-portal/internal/infra"
	"doctors-portal/internal/pkg/errs"
	"doctors-portal/internal/usecase/readmodel"
)

var (
	ErrDoctorNotFound  = errors.New("doctor not found")
	ErrDuplicateDoctor = errors.New("doctor email already exists")
)

type DoctorRepository interface {
	FindAll(ctx context.Context) ([]*readmodel.DoctorRM, error)
	Insert(ctx context.Context, d *doctor.Doctor) (*readmodel.DoctorRM, error)
	DeleteByEmail(ctx context.Context, email string) error
}

type AddDoctorParams struct {
	Name      string
	Email     string
	Specialty string
	ImageURL  string
}

type DoctorUseCase interface {
	ListDoctors(ctx context.Context) ([]*readmodel.DoctorRM, error)
	AddDoctor(ctx context.Context, params AddDoctorParams) (*readmodel.DoctorRM, error)
	RemoveDoctor(ctx context.Context, email string) error
}

type doctorUseCaseImpl struct {
	doctorRepo DoctorRepository
}

func NewDoctorUseCase(doctorRepo DoctorRepository) DoctorUseCase {
	return &doctorUseCaseImpl{
		doctorRepo: doctorRepo,
	}
}

func (d *doctorUseCaseImpl) ListDoctors(ctx context.Context) ([]*readmodel.DoctorRM, error) {
	doctors, err := d.doctorRepo.FindAll(ctx)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	return doctors, nil
}

func (d *doctorUseCaseImpl) AddDoctor(ctx context.Context, params AddDoctorParams) (*readmodel.DoctorRM, error) {
	entity, err := doctor.NewDoctor(params.Name, params.Email, params.Specialty, params.ImageURL)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidationFailed)
	}

	rm, err := d.doctorRepo.Insert(ctx, entity)
	if err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return nil, ErrDuplicateDoctor
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	return rm, nil
}

func (d *doctorUseCaseImpl) RemoveDoctor(ctx context.Context, email string) error {
	if err := d.doctorRepo.DeleteByEmail(ctx, email); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrDoctorNotFound
		}
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}

	return nil
}
