package db_models

import (
	"github.com/google/uuid"
)

type User struct {
	BaseModel
	Name         string
	Email        string `gorm:"unique"`
	PasswordHash string
	Role         string `gorm:"default:'user'"`

	// Boarding is flipped true only by a verified payment success.
	IsBoarding    bool `gorm:"default:false;index"`
	EmailVerified bool `gorm:"default:false"`

	// Onboarding profile
	Profession  string
	Phone       string
	Institution string
	ThemeCode   string

	TeamID *uuid.UUID `gorm:"index"`
}
