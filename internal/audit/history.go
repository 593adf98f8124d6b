package audit

import (
	"time"

	"staff-admin/internal/models"

	"gorm.io/gorm"
)

// EmptyMarker показывается вместо пустого значения — пустых ячеек
// в отчёте быть не должно.
const EmptyMarker = "пусто"

const systemActor = "система"

// HistoryRow — строка отчёта по истории, готовая к показу в таблице.
type HistoryRow struct {
	RecordedAt time.Time
	Actor      string
	FieldLabel string
	Action     models.AuditAction
	OldDisplay string
	NewDisplay string
}

// GetHistory собирает отчёт по истории одной сущности: свежие записи сверху,
// id справочников развёрнуты в имена, даты в отображаемом формате.
func GetHistory(db *gorm.DB, entityType string, entityID uint, fields []FieldDescriptor) ([]HistoryRow, error) {
	var entries []models.AuditEntry
	err := db.Preload("Actor").
		Where("entity_type = ? AND entity_id = ?", entityType, entityID).
		Order("recorded_at desc, id desc").
		Find(&entries).Error
	if err != nil {
		return nil, err
	}

	resolver, err := NewResolver(db)
	if err != nil {
		return nil, err
	}

	rows := make([]HistoryRow, 0, len(entries))
	for _, e := range entries {
		desc, known := DescriptorFor(fields, e.FieldName)

		label := e.FieldName
		if known {
			label = desc.Label
		}

		oldDisplay := displayValue(desc, resolver, e.OldValue)
		newDisplay := displayValue(desc, resolver, e.NewValue)

		// строки без содержимого (легаси-данные и т.п.) до пользователя
		// не доходят
		if oldDisplay == EmptyMarker && newDisplay == EmptyMarker {
			continue
		}

		actor := systemActor
		if e.Actor != nil {
			actor = e.Actor.Username
		}

		rows = append(rows, HistoryRow{
			RecordedAt: e.RecordedAt,
			Actor:      actor,
			FieldLabel: label,
			Action:     e.Action,
			OldDisplay: oldDisplay,
			NewDisplay: newDisplay,
		})
	}

	return rows, nil
}

func displayValue(desc FieldDescriptor, resolver *Resolver, value *string) string {
	if value == nil {
		return EmptyMarker
	}

	norm := Normalize(desc.Kind, *value)
	if norm == "" {
		return EmptyMarker
	}

	if desc.Ref != RefNone {
		return resolver.Resolve(desc.Ref, *value)
	}

	if desc.Kind == KindDate {
		t, err := time.Parse("2006-01-02", norm)
		if err == nil {
			return t.Format("02/01/2006")
		}
	}

	return *value
}
