package utils

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
)

// ComputePaymentSignature returns the hex HMAC-SHA256 of
// "{orderID}|{paymentID}" under the gateway checksum secret.
func ComputePaymentSignature(secret, orderID, paymentID string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(orderID + "|" + paymentID))
	return hex.EncodeToString(mac.Sum(nil))
}

// VerifyPaymentSignature compares in constant time.
func VerifyPaymentSignature(secret, orderID, paymentID, signature string) bool {
	expected := ComputePaymentSignature(secret, orderID, paymentID)
	return hmac.Equal([]byte(expected), []byte(signature))
}
