package models

import "gorm.io/gorm"

// Site — обслуживаемый объект (стройплощадка, офис клиента и т.п.)
type Site struct {
	gorm.Model
	Name    string `gorm:"size:255;not null"`
	Address string `gorm:"size:255"`
	Notes   string `gorm:"type:text"`
}

// Center — собственный центр компании
type Center struct {
	gorm.Model
	Name    string `gorm:"size:255;not null"`
	Address string `gorm:"size:255"`
}
