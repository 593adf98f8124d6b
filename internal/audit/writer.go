package audit

import (
	"staff-admin/internal/models"

	"gorm.io/gorm"
)

// Запись в журнал идёт на переданном tx: вставки аудита и мутация сущности
// коммитятся или откатываются вместе. Свою транзакцию writer не открывает,
// ошибки не глотает — они должны уронить внешнюю транзакцию.

// RecordCreate пишет по одной записи на каждое непустое поле новой сущности.
func RecordCreate(tx *gorm.DB, entityType string, entityID uint, actorID *uint, rec Record, fields []FieldDescriptor) error {
	for _, f := range fields {
		// та же проверка применимости, что и в диффе
		if f.Relevant != nil && !f.Relevant(rec) {
			continue
		}
		v := rec[f.Name]
		if Normalize(f.Kind, v) == "" {
			continue
		}
		entry := models.AuditEntry{
			EntityType: entityType,
			EntityID:   entityID,
			ActorID:    actorID,
			Action:     models.AuditCreate,
			FieldName:  f.Name,
			NewValue:   strPtr(v),
		}
		if err := tx.Create(&entry).Error; err != nil {
			return err
		}
	}
	return nil
}

// RecordUpdate пишет ровно одну запись на каждый элемент changes.
// Пустой changes — ничего не пишем: апдейт без изменений не оставляет следа.
func RecordUpdate(tx *gorm.DB, entityType string, entityID uint, actorID *uint, changes []FieldChange) error {
	for _, ch := range changes {
		entry := models.AuditEntry{
			EntityType: entityType,
			EntityID:   entityID,
			ActorID:    actorID,
			Action:     models.AuditUpdate,
			FieldName:  ch.Field,
			OldValue:   strPtrOrNil(ch.OldValue),
			NewValue:   strPtrOrNil(ch.NewValue),
		}
		if err := tx.Create(&entry).Error; err != nil {
			return err
		}
	}
	return nil
}

// RecordDelete — зеркально RecordCreate: по записи на каждое непустое поле,
// новое значение пустое. По журналу виден весь жизненный цикл записи.
func RecordDelete(tx *gorm.DB, entityType string, entityID uint, actorID *uint, rec Record, fields []FieldDescriptor) error {
	for _, f := range fields {
		if f.Relevant != nil && !f.Relevant(rec) {
			continue
		}
		v := rec[f.Name]
		if Normalize(f.Kind, v) == "" {
			continue
		}
		entry := models.AuditEntry{
			EntityType: entityType,
			EntityID:   entityID,
			ActorID:    actorID,
			Action:     models.AuditDelete,
			FieldName:  f.Name,
			OldValue:   strPtr(v),
		}
		if err := tx.Create(&entry).Error; err != nil {
			return err
		}
	}
	return nil
}

func strPtr(s string) *string {
	return &s
}

func strPtrOrNil(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
