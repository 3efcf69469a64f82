package usecase

import (
	"context"
	"errors"

	"doctors-portal/internal/pkg/errs"
)

var ErrPaymentUpstream = errors.New("payment processor request failed")

// IntentCreator is the boundary to the external payment processor.
type IntentCreator interface {
	CreateIntent(ctx context.Context, amountCents int64) (string, error)
}

type PaymentUseCase interface {
	// CreatePaymentIntent converts a major-unit price to the processor's
	// minor-unit integer (two-decimal currency, truncation) and returns the
	// client secret of the created intent.
	CreatePaymentIntent(ctx context.Context, price float64) (string, error)
}

type paymentUseCaseImpl struct {
	intents IntentCreator
}

func NewPaymentUseCase(intents IntentCreator) PaymentUseCase {
	return &paymentUseCaseImpl{
		intents: intents,
	}
}

func (p *paymentUseCaseImpl) CreatePaymentIntent(ctx context.Context, price float64) (string, error) {
	amountCents := int64(price * 100)

	clientSecret, err := p.intents.CreateIntent(ctx, amountCents)
	if err != nil {
		return "", errs.Mark(err, ErrPaymentUpstream)
	}

	return clientSecret, nil
}
