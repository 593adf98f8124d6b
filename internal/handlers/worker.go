package handlers

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"staff-admin/internal/audit"
	"staff-admin/internal/database"
	"staff-admin/internal/models"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// id пользователя из сессии; nil — действие без пользователя (система)
func currentActorID(c *gin.Context) *uint {
	sess := sessions.Default(c)
	if v := sess.Get("user_id"); v != nil {
		if uid, ok := v.(uint); ok && uid > 0 {
			return &uid
		}
	}
	return nil
}

//
// СПИСОК / СОЗДАНИЕ
//

func ListWorkers(c *gin.Context) {
	var workers []models.Worker
	database.DB.
		Preload("JobRole").
		Preload("Department").
		Preload("Site").
		Preload("Center").
		Order("last_name asc, first_name asc").
		Find(&workers)

	render(c, http.StatusOK, "workers_list.html", gin.H{
		"workers": workers,
	})
}

func ShowNewWorker(c *gin.Context) {
	render(c, http.StatusOK, "workers_new.html", workerFormData(nil, ""))
}

func CreateWorker(c *gin.Context) {
	var worker models.Worker
	if msg := bindWorkerForm(c, &worker); msg != "" {
		render(c, http.StatusBadRequest, "workers_new.html", workerFormData(nil, msg))
		return
	}

	// --- ПРОВЕРКА УНИКАЛЬНОСТИ EMAIL ---
	if worker.Email != "" {
		var count int64
		database.DB.Model(&models.Worker{}).
			Where("LOWER(email) = LOWER(?)", worker.Email).
			Count(&count)

		if count > 0 {
			render(c, http.StatusBadRequest, "workers_new.html",
				workerFormData(nil, "Сотрудник с таким e-mail уже существует"))
			return
		}
	}

	if err := createWorker(database.DB, &worker, currentActorID(c)); err != nil {
		render(c, http.StatusInternalServerError, "workers_new.html",
			workerFormData(nil, "Ошибка сохранения сотрудника в БД"))
		return
	}

	c.Redirect(http.StatusFound, "/workers")
}

// форма редактирования
func ShowEditWorker(c *gin.Context) {
	worker, ok := loadWorkerParam(c)
	if !ok {
		return
	}

	render(c, http.StatusOK, "workers_edit.html", workerFormData(worker, ""))
}

// сохранение изменений
func UpdateWorker(c *gin.Context) {
	worker, ok := loadWorkerParam(c)
	if !ok {
		return
	}

	oldRec := workerRecord(worker)

	if msg := bindWorkerForm(c, worker); msg != "" {
		render(c, http.StatusBadRequest, "workers_edit.html", workerFormData(worker, msg))
		return
	}

	// --- ПРОВЕРКА УНИКАЛЬНОСТИ EMAIL (кроме текущего сотрудника) ---
	if worker.Email != "" {
		var count int64
		database.DB.Model(&models.Worker{}).
			Where("LOWER(email) = LOWER(?) AND id <> ?", worker.Email, worker.ID).
			Count(&count)

		if count > 0 {
			render(c, http.StatusBadRequest, "workers_edit.html",
				workerFormData(worker, "Сотрудник с таким e-mail уже существует"))
			return
		}
	}

	changes := audit.Diff(oldRec, workerRecord(worker), audit.WorkerFields)

	if err := saveWorkerUpdate(database.DB, worker, changes, currentActorID(c)); err != nil {
		render(c, http.StatusInternalServerError, "workers_edit.html",
			workerFormData(worker, "Ошибка сохранения сотрудника"))
		return
	}

	c.Redirect(http.StatusFound, "/workers")
}

func DeleteWorker(c *gin.Context) {
	worker, ok := loadWorkerParam(c)
	if !ok {
		return
	}

	if err := deleteWorker(database.DB, worker, currentActorID(c)); err != nil {
		c.String(http.StatusInternalServerError, "Ошибка удаления сотрудника")
		return
	}

	c.Redirect(http.StatusFound, "/workers")
}

//
// мутация и её аудит — одна транзакция: либо коммитятся обе, либо ни одной
//

func createWorker(db *gorm.DB, w *models.Worker, actorID *uint) error {
	return db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(w).Error; err != nil {
			return err
		}
		return audit.RecordCreate(tx, audit.EntityWorker, w.ID, actorID, workerRecord(w), audit.WorkerFields)
	})
}

func saveWorkerUpdate(db *gorm.DB, w *models.Worker, changes []audit.FieldChange, actorID *uint) error {
	return db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(w).Error; err != nil {
			return err
		}
		return audit.RecordUpdate(tx, audit.EntityWorker, w.ID, actorID, changes)
	})
}

func deleteWorker(db *gorm.DB, w *models.Worker, actorID *uint) error {
	return db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(w).Error; err != nil {
			return err
		}
		return audit.RecordDelete(tx, audit.EntityWorker, w.ID, actorID, workerRecord(w), audit.WorkerFields)
	})
}

//
// разбор формы / представление записи для диффа
//

func bindWorkerForm(c *gin.Context, w *models.Worker) string {
	w.LastName = strings.TrimSpace(c.PostForm("last_name"))
	w.FirstName = strings.TrimSpace(c.PostForm("first_name"))
	w.Phone = strings.TrimSpace(c.PostForm("phone"))
	w.Email = strings.TrimSpace(c.PostForm("email"))
	w.Notes = strings.TrimSpace(c.PostForm("notes"))

	if len(w.LastName) < 2 {
		return "Фамилия должна быть не короче 2 символов"
	}
	if len(w.FirstName) < 2 {
		return "Имя должно быть не короче 2 символов"
	}

	var msg string
	if w.StartDate, msg = parseFormDate(c.PostForm("start_date")); msg != "" {
		return "Дата приёма: " + msg
	}
	if w.EndDate, msg = parseFormDate(c.PostForm("end_date")); msg != "" {
		return "Дата увольнения: " + msg
	}

	if w.JobRoleID, msg = parseFormID(c.PostForm("job_role_id")); msg != "" {
		return "Должность: " + msg
	}
	if w.DepartmentID, msg = parseFormID(c.PostForm("department_id")); msg != "" {
		return "Отдел: " + msg
	}
	if w.TerritoryID, msg = parseFormID(c.PostForm("territory_id")); msg != "" {
		return "Территория: " + msg
	}
	if w.SiteID, msg = parseFormID(c.PostForm("site_id")); msg != "" {
		return "Объект: " + msg
	}
	if w.CenterID, msg = parseFormID(c.PostForm("center_id")); msg != "" {
		return "Центр: " + msg
	}

	// инвариант: сотрудник закреплён не более чем за одним местом
	if w.SiteID != nil && w.CenterID != nil {
		return "Сотрудник закрепляется либо за объектом, либо за центром"
	}

	return ""
}

func parseFormDate(raw string) (*time.Time, string) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, ""
	}
	t, err := time.Parse("2006-01-02", raw)
	if err != nil {
		return nil, "некорректная дата"
	}
	return &t, ""
}

func parseFormID(raw string) (*uint, string) {
	raw = strings.TrimSpace(raw)
	if raw == "" || raw == "0" {
		return nil, ""
	}
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return nil, "некорректный идентификатор"
	}
	v := uint(id)
	return &v, ""
}

// workerRecord — плоское представление сотрудника для диффа и журнала
func workerRecord(w *models.Worker) audit.Record {
	return audit.Record{
		"last_name":     w.LastName,
		"first_name":    w.FirstName,
		"phone":         w.Phone,
		"email":         w.Email,
		"start_date":    formatRecordDate(w.StartDate),
		"end_date":      formatRecordDate(w.EndDate),
		"job_role_id":   formatRecordID(w.JobRoleID),
		"department_id": formatRecordID(w.DepartmentID),
		"territory_id":  formatRecordID(w.TerritoryID),
		"site_id":       formatRecordID(w.SiteID),
		"center_id":     formatRecordID(w.CenterID),
		"notes":         w.Notes,
	}
}

func formatRecordDate(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format("2006-01-02")
}

func formatRecordID(id *uint) string {
	if id == nil {
		return ""
	}
	return strconv.FormatUint(uint64(*id), 10)
}

func loadWorkerParam(c *gin.Context) (*models.Worker, bool) {
	idStr := c.Param("id")
	id, err := strconv.Atoi(idStr)
	if err != nil || id <= 0 {
		c.String(http.StatusBadRequest, "Некорректный ID сотрудника")
		return nil, false
	}

	var worker models.Worker
	if err := database.DB.First(&worker, id).Error; err != nil {
		c.String(http.StatusNotFound, "Сотрудник не найден")
		return nil, false
	}

	return &worker, true
}

// справочники для селектов формы
func workerFormData(w *models.Worker, errMsg string) gin.H {
	var (
		jobRoles    []models.JobRole
		departments []models.Department
		territories []models.Territory
		sites       []models.Site
		centers     []models.Center
	)
	database.DB.Order("name asc").Find(&jobRoles)
	database.DB.Order("name asc").Find(&departments)
	database.DB.Order("name asc").Find(&territories)
	database.DB.Order("name asc").Find(&sites)
	database.DB.Order("name asc").Find(&centers)

	return gin.H{
		"worker":      w,
		"jobRoles":    jobRoles,
		"departments": departments,
		"territories": territories,
		"sites":       sites,
		"centers":     centers,
		"error":       errMsg,
	}
}
