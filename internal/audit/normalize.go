package audit

import (
	"strings"
	"time"
)

// форматы, в которых даты реально приходят: чистая дата из формы,
// таймстемпы из БД / экспорта, дата в отображаемом виде
var dateLayouts = []string{
	"2006-01-02",
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"02/01/2006",
}

// Normalize приводит значение к каноническому виду для СРАВНЕНИЯ.
// В журнал всегда пишется исходное значение, не нормализованное.
// Никогда не возвращает ошибку: нечитаемое значение считается пустым.
func Normalize(kind Kind, value string) string {
	v := strings.TrimSpace(value)
	// строка "null" — так NULL приезжает из выгрузок и legacy-данных;
	// наравне с пустой строкой считается отсутствием значения
	if v == "" || v == "null" {
		return ""
	}

	if kind == KindDate {
		for _, layout := range dateLayouts {
			t, err := time.Parse(layout, v)
			if err != nil {
				continue
			}
			if t.IsZero() {
				// нулевая дата — заглушка, а не значение
				return ""
			}
			return t.Format("2006-01-02")
		}
		return ""
	}

	return v
}
