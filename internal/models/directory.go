package models

import "gorm.io/gorm"

// справочники для карточки сотрудника

type JobRole struct {
	gorm.Model
	Name string `gorm:"size:255;not null"`
}

type Department struct {
	gorm.Model
	Name string `gorm:"size:255;not null"`
}

type Territory struct {
	gorm.Model
	Name string `gorm:"size:255;not null"`
}
