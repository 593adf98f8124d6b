package models

import "time"

type AuditAction string

const (
	AuditCreate AuditAction = "create"
	AuditUpdate AuditAction = "update"
	AuditDelete AuditAction = "delete"
)

// AuditEntry — одна строка журнала изменений: переход одного поля
// из старого значения в новое. Записи никогда не обновляются и не удаляются.
type AuditEntry struct {
	ID         uint      `gorm:"primaryKey"`
	RecordedAt time.Time `gorm:"index:idx_entity_history,priority:3;autoCreateTime"`

	EntityType string `gorm:"size:50;not null;index:idx_entity_history,priority:1"` // "worker"
	EntityID   uint   `gorm:"not null;index:idx_entity_history,priority:2"`

	// nil — изменение выполнено системой, а не пользователем
	ActorID *uint
	Actor   *User `gorm:"foreignKey:ActorID"`

	Action    AuditAction `gorm:"size:20;not null"`
	FieldName string      `gorm:"size:50;not null"`
	OldValue  *string     `gorm:"type:text"`
	NewValue  *string     `gorm:"type:text"`
}
