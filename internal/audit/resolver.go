package audit

import (
	"strconv"

	"staff-admin/internal/models"

	"gorm.io/gorm"
)

// Resolver переводит сохранённые id справочников в текущие имена.
// Работает только на чтении истории; на то, что пишется в журнал,
// никак не влияет.
type Resolver struct {
	names map[Ref]map[string]string
}

// NewResolver одним пакетным чтением поднимает все справочники в память:
// число запросов не зависит от длины истории.
func NewResolver(db *gorm.DB) (*Resolver, error) {
	r := &Resolver{names: map[Ref]map[string]string{}}

	load := func(ref Ref, model interface{}) error {
		type row struct {
			ID   uint
			Name string
		}
		var rows []row
		if err := db.Model(model).Select("id", "name").Find(&rows).Error; err != nil {
			return err
		}
		m := make(map[string]string, len(rows))
		for _, rw := range rows {
			m[uintToString(rw.ID)] = rw.Name
		}
		r.names[ref] = m
		return nil
	}

	if err := load(RefSite, &models.Site{}); err != nil {
		return nil, err
	}
	if err := load(RefCenter, &models.Center{}); err != nil {
		return nil, err
	}
	if err := load(RefJobRole, &models.JobRole{}); err != nil {
		return nil, err
	}
	if err := load(RefDepartment, &models.Department{}); err != nil {
		return nil, err
	}
	if err := load(RefTerritory, &models.Territory{}); err != nil {
		return nil, err
	}

	return r, nil
}

// Resolve возвращает имя по сохранённому id. Если справочник не объявлен
// или id в нём не найден (запись могли удалить) — отдаём исходное значение,
// отчёт из-за одной битой ссылки не падает.
func (r *Resolver) Resolve(ref Ref, raw string) string {
	m, ok := r.names[ref]
	if !ok {
		return raw
	}
	name, ok := m[raw]
	if !ok {
		return raw
	}
	return name
}

func uintToString(v uint) string {
	return strconv.FormatUint(uint64(v), 10)
}
