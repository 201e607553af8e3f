package service

import (
	"context"
	"manufacturer-backend/internal/apperr"
	"manufacturer-backend/internal/client"

	"github.com/shopspring/decimal"
)

type PaymentService interface {
	CreateIntent(ctx context.Context, price float64) (string, error)
}

type paymentServiceImpl struct {
	stripeClient client.StripeClient
}

func NewPaymentService(stripeClient client.StripeClient) PaymentService {
	return &paymentServiceImpl{
		stripeClient: stripeClient,
	}
}

// CreateIntent converts a decimal dollar price to integer cents and
// asks Stripe for a payment intent, returning the client secret.
func (s *paymentServiceImpl) CreateIntent(ctx context.Context, price float64) (string, error) {
	cents := AmountCents(price)
	if cents <= 0 {
		return "", apperr.BadRequest("price must be positive")
	}

	secret, err := s.stripeClient.CreatePaymentIntent(ctx, cents)
	if err != nil {
		return "", apperr.Upstream("create payment intent", err)
	}

	return secret, nil
}

// AmountCents converts a dollar price to minor units. Half-up rounding,
// no float multiply.
func AmountCents(price float64) int64 {
	return decimal.NewFromFloat(price).
		Mul(decimal.NewFromInt(100)).
		Round(0).
		IntPart()
}
