package payment

import (
	"context"
	"errors"
	"fmt"

	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/paymentintent"
)

// ErrPaymentProvider marks a failure at the payment gateway. It never mutates
// booking state; callers report it and leave the booking untouched.
var ErrPaymentProvider = errors.New("payment provider error")

// Client creates payment intents for booking fees.
type Client interface {
	// CreateIntent opens a payment intent for the given amount in minor
	// currency units and returns the client secret.
	CreateIntent(ctx context.Context, amountMinorUnits int64, currency string) (string, error)
}

// StripeClient implements Client against the Stripe API. The package-level
// stripe.Key must be set before use (done in main).
type StripeClient struct{}

func NewStripeClient() *StripeClient {
	return &StripeClient{}
}

func (c *StripeClient) CreateIntent(ctx context.Context, amountMinorUnits int64, currency string) (string, error) {
	params := &stripe.PaymentIntentParams{
		Amount:             stripe.Int64(amountMinorUnits),
		Currency:           stripe.String(currency),
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
	}
	params.Context = ctx

	intent, err := paymentintent.New(params)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrPaymentProvider, err)
	}
	return intent.ClientSecret, nil
}
