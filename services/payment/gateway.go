package payment

import (
	"context"
	"fmt"
	"math"

	"doctorsportal/utils"

	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/client"
)

// Gateway creates client-side payment intents.
type Gateway interface {
	CreateIntent(ctx context.Context, price float64) (clientSecret string, err error)
}

// IntentCreator is the slice of the Stripe API the gateway needs.
type IntentCreator interface {
	New(params *stripe.PaymentIntentParams) (*stripe.PaymentIntent, error)
}

// StripeGateway charges card payments through Stripe PaymentIntents.
type StripeGateway struct {
	intents  IntentCreator
	currency string
	scale    int64
}

// NewStripeGateway uses a dedicated Stripe client for key.
func NewStripeGateway(key, currency string, scale int64) *StripeGateway {
	sc := client.New(key, nil)
	return NewGatewayWithIntents(sc.PaymentIntents, currency, scale)
}

func NewGatewayWithIntents(intents IntentCreator, currency string, scale int64) *StripeGateway {
	if currency == "" {
		currency = string(stripe.CurrencyUSD)
	}
	if scale <= 0 {
		scale = 100
	}
	return &StripeGateway{intents: intents, currency: currency, scale: scale}
}

// Amount converts a price into minor currency units.
func (g *StripeGateway) Amount(price float64) int64 {
	return int64(math.Round(price * float64(g.scale)))
}

func (g *StripeGateway) CreateIntent(ctx context.Context, price float64) (string, error) {
	if math.IsNaN(price) || price <= 0 {
		return "", fmt.Errorf("price must be positive: %w", utils.ErrInvalidInput)
	}
	amount := g.Amount(price)
	if amount <= 0 {
		return "", fmt.Errorf("price %v rounds to zero: %w", price, utils.ErrInvalidInput)
	}

	params := &stripe.PaymentIntentParams{
		Amount:             stripe.Int64(amount),
		Currency:           stripe.String(g.currency),
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
	}
	params.Context = ctx

	pi, err := g.intents.New(params)
	if err != nil {
		return "", fmt.Errorf("failed to create payment intent: %w", err)
	}
	return pi.ClientSecret, nil
}
