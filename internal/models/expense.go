package models

import (
	"time"

	"gorm.io/gorm"
)

type Expense struct {
	gorm.Model
	ProviderID *uint
	Provider   *Provider

	Amount      float64 `gorm:"type:numeric(12,2);not null"`
	SpentAt     *time.Time
	Description string `gorm:"type:text"`
}
