package paymentControllers

import (
	"os"

	"github.com/velora-shop/storefront-api/models"
)

// Provider hands an order off to an external payment service and returns the
// URL the customer should be redirected to.
type Provider interface {
	CreateCheckoutSession(order *models.Order) (string, error)
}

// Registry builds the fixed provider set from the environment. Checkout
// rejects any provider name not present here before creating an order.
func Registry() map[models.PaymentProvider]Provider {
	return map[models.PaymentProvider]Provider{
		models.PaymentProviderStripe: &StripeProvider{
			APIKey:     os.Getenv("STRIPE_SECRET_KEY"),
			SuccessURL: os.Getenv("CHECKOUT_SUCCESS_URL"),
			CancelURL:  os.Getenv("CHECKOUT_CANCEL_URL"),
		},
		models.PaymentProviderHeleket: &HeleketProvider{
			MerchantID: os.Getenv("HELEKET_MERCHANT_ID"),
			APIKey:     os.Getenv("HELEKET_API_KEY"),
			APIURL:     os.Getenv("HELEKET_API_URL"),
			SuccessURL: os.Getenv("CHECKOUT_SUCCESS_URL"),
			CancelURL:  os.Getenv("CHECKOUT_CANCEL_URL"),
		},
	}
}
