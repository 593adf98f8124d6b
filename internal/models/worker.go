package models

import (
	"time"

	"gorm.io/gorm"
)

type Worker struct {
	gorm.Model
	LastName  string `gorm:"size:255;not null"` // Фамилия
	FirstName string `gorm:"size:255;not null"` // Имя
	Phone     string `gorm:"size:50"`
	Email     string `gorm:"size:255"`

	StartDate *time.Time // дата приёма
	EndDate   *time.Time // дата увольнения (если уволен)

	JobRoleID    *uint
	JobRole      *JobRole
	DepartmentID *uint
	Department   *Department
	TerritoryID  *uint
	Territory    *Territory

	// сотрудник закреплён либо за объектом, либо за центром — не за обоими
	SiteID   *uint
	Site     *Site
	CenterID *uint
	Center   *Center

	Notes string `gorm:"type:text"`
}
