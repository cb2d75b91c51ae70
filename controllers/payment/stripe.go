package paymentControllers

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/stripe/stripe-go/v80"
	"github.com/stripe/stripe-go/v80/checkout/session"
	"github.com/velora-shop/storefront-api/models"
)

var stripeCents = decimal.NewFromInt(100)

// StripeProvider creates a hosted Stripe Checkout session for the order total.
type StripeProvider struct {
	APIKey     string
	SuccessURL string
	CancelURL  string
}

func (p *StripeProvider) CreateCheckoutSession(order *models.Order) (string, error) {
	stripe.Key = p.APIKey

	// Stripe wants the amount in minor units.
	amount := order.TotalPrice.Mul(stripeCents).IntPart()

	params := &stripe.CheckoutSessionParams{
		Mode: stripe.String(string(stripe.CheckoutSessionModePayment)),
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{
				PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
					Currency:   stripe.String("usd"),
					UnitAmount: stripe.Int64(amount),
					ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
						Name: stripe.String(fmt.Sprintf("Order %s", order.OrderRef)),
					},
				},
				Quantity: stripe.Int64(1),
			},
		},
		SuccessURL: stripe.String(p.SuccessURL),
		CancelURL:  stripe.String(p.CancelURL),
		PaymentIntentData: &stripe.CheckoutSessionPaymentIntentDataParams{
			Metadata: map[string]string{
				"order_ref": order.OrderRef,
			},
		},
	}

	s, err := session.New(params)
	if err != nil {
		return "", fmt.Errorf("stripe checkout session: %w", err)
	}
	return s.URL, nil
}
