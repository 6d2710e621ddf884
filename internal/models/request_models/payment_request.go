package request_models

type CreateOrderRequest struct {
	Amount      int64  `json:"amount" binding:"required"` // major units
	Currency    string `json:"currency" binding:"required,len=3"`
	IsEarlyBird bool   `json:"is_early_bird"`
}

type VerifyPaymentRequest struct {
	GatewayOrderID   string `json:"gateway_order_id" binding:"required"`
	GatewayPaymentID string `json:"gateway_payment_id" binding:"required"`
	GatewaySignature string `json:"gateway_signature" binding:"required"`
}

type PaymentFailureRequest struct {
	GatewayOrderID string `json:"gateway_order_id" binding:"required"`
	ErrorReason    string `json:"error_reason"`
	ErrorCode      string `json:"error_code"`
}

type SetPaymentStatusRequest struct {
	GatewayOrderID string `json:"gateway_order_id" binding:"required"`
	Status         string `json:"status" binding:"required,oneof=pending success failed"`
}
