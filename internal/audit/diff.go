package audit

// FieldChange — одно изменение поля; значения исходные, без нормализации.
type FieldChange struct {
	Field    string
	OldValue string
	NewValue string
}

// Diff сравнивает старую и новую запись по объявленному набору полей.
// Ключи записей вне набора игнорируются. Чистая функция, без побочных
// эффектов; одинаковый вход — одинаковый результат.
func Diff(oldRec, newRec Record, fields []FieldDescriptor) []FieldChange {
	var changes []FieldChange

	for _, f := range fields {
		// пропускаем поле, только если оно неприменимо и к старому,
		// и к новому состоянию: при переходе объект -> центр в журнал
		// должны попасть обе стороны перехода
		if f.Relevant != nil && !f.Relevant(oldRec) && !f.Relevant(newRec) {
			continue
		}

		oldRaw := oldRec[f.Name]
		newRaw := newRec[f.Name]

		if Normalize(f.Kind, oldRaw) == Normalize(f.Kind, newRaw) {
			continue
		}

		changes = append(changes, FieldChange{
			Field:    f.Name,
			OldValue: oldRaw,
			NewValue: newRaw,
		})
	}

	return changes
}
