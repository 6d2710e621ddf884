package response_models

type CreateOrderResponse struct {
	PaymentAttemptID string `json:"payment_attempt_id"`
	GatewayOrderID   string `json:"gateway_order_id"`
	Amount           int64  `json:"amount"` // major units
	Currency         string `json:"currency"`
	IsEarlyBird      bool   `json:"is_early_bird"`
}

type PaymentAttemptResponse struct {
	ID               string `json:"id"`
	GatewayOrderID   string `json:"gateway_order_id"`
	Status           string `json:"status"`
	Amount           int64  `json:"amount"`
	Currency         string `json:"currency"`
	IsEarlyBird      bool   `json:"is_early_bird"`
	GatewayPaymentID string `json:"gateway_payment_id,omitempty"`
	ErrorReason      string `json:"error_reason,omitempty"`
	ErrorCode        string `json:"error_code,omitempty"`
	CreatedAt        int64  `json:"created_at"`
	UpdatedAt        int64  `json:"updated_at"`
}

// VerifyPaymentResponse carries the refreshed credential so the client
// observes is_boarding=true without re-authenticating.
type VerifyPaymentResponse struct {
	Payment PaymentAttemptResponse `json:"payment"`
	Token   string                 `json:"token"`
}
