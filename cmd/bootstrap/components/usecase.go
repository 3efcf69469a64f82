package components

import (
	"doctors-portal/internal/domain/treatment"
	"doctors-portal/internal/usecase"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	fx.Provide(
		fx.Annotate(
			treatment.NewDefaultAvailabilityCalculator,
			fx.As(new(treatment.AvailabilityCalculator)),
		),
		usecase.NewCatalogUseCase,
		usecase.NewBookingUseCase,
		usecase.NewUserUseCase,
		usecase.NewDoctorUseCase,
		usecase.NewPaymentUseCase,
		usecase.NewTokenValidator,
	),
)
