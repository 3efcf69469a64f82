//go:build unit

package usecase_test

import (
	"context"
	"testing"

	"doctors-portal/internal/domain/treatment"
	"doctors-portal/internal/infra"
	"doctors-portal/internal/usecase"
	"doctors-portal/internal/usecase/readmodel"
	"doctors-portal/tests/common/builder"
	usecasemock "doctors-portal/tests/mock/usecase"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type CatalogUseCaseTestSuite struct {
	suite.Suite
	mockCtrl       *gomock.Controller
	mockTreatments *usecasemock.MockTreatmentRepository
	mockBookings   *usecasemock.MockBookingRepository
	useCase        usecase.CatalogUseCase
}

func (s *CatalogUseCaseTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockTreatments = usecasemock.NewMockTreatmentRepository(s.mockCtrl)
	s.mockBookings = usecasemock.NewMockBookingRepository(s.mockCtrl)
	s.useCase = usecase.NewCatalogUseCase(
		s.mockTreatments,
		s.mockBookings,
		treatment.NewDefaultAvailabilityCalculator(),
	)
}

func (s *CatalogUseCaseTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestCatalogUseCaseSuite(t *testing.T) {
	suite.Run(t, new(CatalogUseCaseTestSuite))
}

func (s *CatalogUseCaseTestSuite) TestGetAvailability() {
	const date = "May 10, 2022"

	catalog := []*readmodel.TreatmentRM{
		builder.NewTreatmentBuilder().
			WithName("Teeth Cleaning").
			WithSlots("08:00 AM - 09:00 AM", "09:00 AM - 10:00 AM").
			BuildReadModel(),
		builder.NewTreatmentBuilder().
			WithName("Fluoride").
			WithSlots("10:00 AM - 11:00 AM").
			BuildReadModel(),
	}

	s.Run("combines the catalog with the date's bookings", func() {
		booked := []*readmodel.BookingRM{
			builder.NewBookingBuilder().
				WithTreatment("Teeth Cleaning").
				WithDate(date).
				WithSlot("08:00 AM - 09:00 AM").
				BuildReadModel(),
		}

		s.mockTreatments.EXPECT().FindAll(gomock.Any()).Return(catalog, nil)
		s.mockBookings.EXPECT().FindByDate(gomock.Any(), date).Return(booked, nil)

		result, err := s.useCase.GetAvailability(context.Background(), date)
		s.Require().NoError(err)
		s.Require().Len(result, 2)

		s.Equal([]string{"09:00 AM - 10:00 AM"}, result[0].RemainingSlots)
		s.Equal([]string{"10:00 AM - 11:00 AM"}, result[1].RemainingSlots)
	})

	s.Run("date with no bookings yields the full catalog", func() {
		s.mockTreatments.EXPECT().FindAll(gomock.Any()).Return(catalog, nil)
		s.mockBookings.EXPECT().FindByDate(gomock.Any(), "unseen date").Return(nil, nil)

		result, err := s.useCase.GetAvailability(context.Background(), "unseen date")
		s.Require().NoError(err)
		s.Require().Len(result, 2)
		s.Len(result[0].RemainingSlots, 2)
		s.Len(result[1].RemainingSlots, 1)
	})
}

func (s *CatalogUseCaseTestSuite) TestCreateTreatment() {
	params := usecase.CreateTreatmentParams{
		Name:       "Cavity Protection",
		Slots:      []string{"08:00 AM - 09:00 AM"},
		PriceCents: 12000,
	}

	s.Run("creates a valid treatment", func() {
		expected := builder.NewTreatmentBuilder().WithName("Cavity Protection").BuildReadModel()
		s.mockTreatments.EXPECT().Create(gomock.Any(), gomock.Any()).Return(expected, nil)

		rm, err := s.useCase.CreateTreatment(context.Background(), params)
		s.Require().NoError(err)
		s.Equal(expected, rm)
	})

	s.Run("duplicate name", func() {
		s.mockTreatments.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			Return(nil, infra.WrapRepoErr("treatment exists", nil, infra.KindDuplicateKey))

		rm, err := s.useCase.CreateTreatment(context.Background(), params)
		s.Require().ErrorIs(err, usecase.ErrDuplicateTreatment)
		s.Nil(rm)
	})

	s.Run("invalid treatment never reaches the repo", func() {
		bad := params
		bad.PriceCents = -5

		rm, err := s.useCase.CreateTreatment(context.Background(), bad)
		s.Require().ErrorIs(err, usecase.ErrDomainValidationFailed)
		s.Nil(rm)
	})
}
