package models

import "gorm.io/gorm"

type Provider struct {
	gorm.Model
	Name  string `gorm:"size:255;not null"`
	INN   string `gorm:"size:12"`
	Phone string `gorm:"size:50"`
	Email string `gorm:"size:255"`
	Notes string `gorm:"type:text"`
}
