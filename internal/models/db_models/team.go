package db_models

import (
	"github.com/google/uuid"
)

const MaxTeamSize = 4

type Team struct {
	BaseModel
	Name     string    `gorm:"unique"`
	LeaderID uuid.UUID `gorm:"index"`
	JoinCode string    `gorm:"uniqueIndex"`

	Members []User `gorm:"foreignKey:TeamID"`
}
