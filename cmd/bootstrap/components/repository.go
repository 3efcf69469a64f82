package components

import (
	repo_impl "doctors-portal/internal/infra/repository"
	"doctors-portal/internal/infra/stripe"
	"doctors-portal/internal/pkg/config"
	"doctors-portal/internal/usecase"

	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		fx.Annotate(
			repo_impl.NewTreatmentRepository,
			fx.As(new(usecase.TreatmentRepository)),
		),
		fx.Annotate(
			repo_impl.NewBookingRepository,
			fx.As(new(usecase.BookingRepository)),
		),
		fx.Annotate(
			repo_impl.NewUserRepository,
			fx.As(new(usecase.UserRepository)),
		),
		fx.Annotate(
			repo_impl.NewDoctorRepository,
			fx.As(new(usecase.DoctorRepository)),
		),
		fx.Annotate(
			NewStripeClient,
			fx.As(new(usecase.IntentCreator)),
		),
	),
)

func NewStripeClient(cfg config.Config) *stripe.Client {
	return stripe.NewClient(cfg.Stripe)
}
