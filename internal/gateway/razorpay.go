package gateway

import (
	"context"
	"fmt"

	razorpay "github.com/razorpay/razorpay-go"

	"hackfest/pkg/utils"
)

// MinorUnitFactor converts rupees to paise; the ledger stores major units,
// the gateway wire format wants minor units.
const MinorUnitFactor = 100

type Order struct {
	ID          string
	AmountMinor int64
	Currency    string
	Receipt     string
}

// Client mints gateway-side orders. Amounts crossing this boundary must
// already be in minor units.
type Client interface {
	CreateOrder(ctx context.Context, amountMinor int64, currency, receipt string) (*Order, error)
}

type razorpayClient struct {
	client *razorpay.Client
}

func NewRazorpayClient(keyID, keySecret string) Client {
	return &razorpayClient{
		client: razorpay.NewClient(keyID, keySecret),
	}
}

func (r *razorpayClient) CreateOrder(ctx context.Context, amountMinor int64, currency, receipt string) (*Order, error) {
	data := map[string]interface{}{
		"amount":   amountMinor,
		"currency": currency,
		"receipt":  receipt,
	}

	body, err := r.client.Order.Create(data, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrGatewayUnavailable, err)
	}

	id, ok := body["id"].(string)
	if !ok || id == "" {
		return nil, fmt.Errorf("%w: order response missing id", utils.ErrGatewayUnavailable)
	}

	return &Order{
		ID:          id,
		AmountMinor: amountMinor,
		Currency:    currency,
		Receipt:     receipt,
	}, nil
}
