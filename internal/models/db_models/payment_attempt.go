package db_models

import (
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type PaymentStatus string

const (
	PaymentStatusPending PaymentStatus = "pending"
	PaymentStatusSuccess PaymentStatus = "success"
	PaymentStatusFailed  PaymentStatus = "failed"
)

type PaymentAttempt struct {
	BaseModel
	UserID uuid.UUID `gorm:"index"`

	// Assigned by the gateway at order creation; natural key for lookups.
	GatewayOrderID string        `gorm:"uniqueIndex"`
	Status         PaymentStatus `gorm:"index"`

	// Amount is stored in major units (rupees); the gateway boundary
	// converts to minor units (paise).
	Amount      int64
	Currency    string `gorm:"size:3"` // ISO 4217
	IsEarlyBird bool

	// Populated only after success verification
	GatewayPaymentID string
	GatewaySignature string

	// Populated only on failure
	ErrorReason string
	ErrorCode   string

	// Raw gateway order payload for traceability
	OrderSnapshot datatypes.JSON `gorm:"type:jsonb;default:'{}'"`

	User User `gorm:"foreignKey:UserID"`
}
