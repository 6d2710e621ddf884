package db_models

// PricingSettings is a single-row table read at order creation time by the
// client to decide the tier; the orchestrator itself does not validate it.
type PricingSettings struct {
	BaseModel
	RegularAmount   int64  // major units
	EarlyBirdAmount int64  // major units
	EarlyBirdActive bool
	Currency        string `gorm:"size:3;default:'INR'"`
}
