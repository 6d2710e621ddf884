package db_models

import (
	"github.com/google/uuid"
)

type Submission struct {
	BaseModel
	TeamID      uuid.UUID `gorm:"uniqueIndex"`
	RepoURL     string
	Description string

	Team Team `gorm:"foreignKey:TeamID"`
}
