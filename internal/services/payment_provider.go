package services

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/stripe/stripe-go/v82"
	"github.com/stripe/stripe-go/v82/paymentintent"
)

type StripeConfig struct {
	SecretKey string
	Currency  string // ISO 4217, lowercase per Stripe convention
}

type PaymentIntentRef struct {
	ID           string
	ClientSecret string
}

// PaymentProvider is the bridge to the external processor. The processor is
// the source of truth for payment success; callers must re-query it through
// IntentSucceeded instead of trusting client-supplied claims.
type PaymentProvider interface {
	CreateIntent(ctx context.Context, amountMinor int64, orderID uuid.UUID) (*PaymentIntentRef, error)
	IntentSucceeded(ctx context.Context, intentID string) (bool, error)
}

type stripeProvider struct {
	cfg StripeConfig
}

func NewStripeProvider(cfg StripeConfig) (PaymentProvider, error) {
	if cfg.SecretKey == "" {
		return nil, errors.New("missing Stripe secret key")
	}
	if cfg.Currency == "" {
		cfg.Currency = "usd"
	}
	stripe.Key = cfg.SecretKey
	return &stripeProvider{cfg: cfg}, nil
}

func (s *stripeProvider) CreateIntent(ctx context.Context, amountMinor int64, orderID uuid.UUID) (*PaymentIntentRef, error) {
	params := &stripe.PaymentIntentParams{
		Amount:   stripe.Int64(amountMinor),
		Currency: stripe.String(s.cfg.Currency),
		Metadata: map[string]string{
			"order_id": orderID.String(),
		},
	}
	params.Context = ctx

	intent, err := paymentintent.New(params)
	if err != nil {
		return nil, err
	}

	return &PaymentIntentRef{
		ID:           intent.ID,
		ClientSecret: intent.ClientSecret,
	}, nil
}

func (s *stripeProvider) IntentSucceeded(ctx context.Context, intentID string) (bool, error) {
	params := &stripe.PaymentIntentParams{}
	params.Context = ctx

	intent, err := paymentintent.Get(intentID, params)
	if err != nil {
		return false, err
	}
	return intent.Status == stripe.PaymentIntentStatusSucceeded, nil
}
