package handlers

import (
	"path/filepath"
	"testing"
	"time"

	"staff-admin/internal/audit"
	"staff-admin/internal/models"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Site{},
		&models.Center{},
		&models.JobRole{},
		&models.Department{},
		&models.Territory{},
		&models.Worker{},
		&models.AuditEntry{},
	))

	return db
}

func TestCreateWorkerWritesAuditInSameTransaction(t *testing.T) {
	db := setupTestDB(t)

	roleID := uint(3)
	worker := models.Worker{
		LastName:  "Иванова",
		FirstName: "Ана",
		JobRoleID: &roleID,
	}

	require.NoError(t, createWorker(db, &worker, nil))

	var entries []models.AuditEntry
	require.NoError(t, db.Where("entity_type = ? AND entity_id = ?", audit.EntityWorker, worker.ID).
		Find(&entries).Error)
	// фамилия, имя, должность — пустые поля записей не дают
	assert.Len(t, entries, 3)
}

func TestCreateWorkerRollsBackOnAuditFailure(t *testing.T) {
	db := setupTestDB(t)

	// ломаем вставку аудита: транзакция целиком должна откатиться
	require.NoError(t, db.Migrator().DropTable(&models.AuditEntry{}))

	worker := models.Worker{LastName: "Иванова", FirstName: "Ана"}
	require.Error(t, createWorker(db, &worker, nil))

	var count int64
	require.NoError(t, db.Model(&models.Worker{}).Count(&count).Error)
	assert.Zero(t, count, "после отката сотрудника в БД быть не должно")
}

func TestSaveWorkerUpdateNoChangesNoAudit(t *testing.T) {
	db := setupTestDB(t)

	worker := models.Worker{LastName: "Иванова", FirstName: "Ана"}
	require.NoError(t, createWorker(db, &worker, nil))

	var before int64
	require.NoError(t, db.Model(&models.AuditEntry{}).Count(&before).Error)

	require.NoError(t, saveWorkerUpdate(db, &worker, nil, nil))

	var after int64
	require.NoError(t, db.Model(&models.AuditEntry{}).Count(&after).Error)
	assert.Equal(t, before, after)
}

func TestWorkerUpdateEndToEndHistory(t *testing.T) {
	db := setupTestDB(t)

	require.NoError(t, db.Create(&models.JobRole{Model: gorm.Model{ID: 3}, Name: "Монтажник"}).Error)
	require.NoError(t, db.Create(&models.JobRole{Model: gorm.Model{ID: 7}, Name: "Супервайзер"}).Error)

	actor := models.User{Username: "admin@staff.local", PasswordHash: "x", Role: models.RoleAdmin}
	require.NoError(t, db.Create(&actor).Error)

	roleID := uint(3)
	worker := models.Worker{LastName: "Иванова", FirstName: "Ана", JobRoleID: &roleID}
	require.NoError(t, createWorker(db, &worker, &actor.ID))

	oldRec := workerRecord(&worker)
	newRoleID := uint(7)
	worker.JobRoleID = &newRoleID
	changes := audit.Diff(oldRec, workerRecord(&worker), audit.WorkerFields)
	require.Len(t, changes, 1)

	require.NoError(t, saveWorkerUpdate(db, &worker, changes, &actor.ID))

	rows, err := audit.GetHistory(db, audit.EntityWorker, worker.ID, audit.WorkerFields)
	require.NoError(t, err)
	require.Len(t, rows, 4)

	assert.Equal(t, "Должность", rows[0].FieldLabel)
	assert.Equal(t, "Монтажник", rows[0].OldDisplay)
	assert.Equal(t, "Супервайзер", rows[0].NewDisplay)
	assert.Equal(t, "admin@staff.local", rows[0].Actor)
}

func TestDeleteWorkerRecordsFinalState(t *testing.T) {
	db := setupTestDB(t)

	worker := models.Worker{LastName: "Иванова", FirstName: "Ана"}
	require.NoError(t, createWorker(db, &worker, nil))
	require.NoError(t, deleteWorker(db, &worker, nil))

	var entries []models.AuditEntry
	require.NoError(t, db.Where("action = ?", models.AuditDelete).Find(&entries).Error)
	require.Len(t, entries, 2)
	for _, e := range entries {
		require.NotNil(t, e.OldValue)
		assert.Nil(t, e.NewValue)
	}
}

func TestWorkerRecordFormatting(t *testing.T) {
	start := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	siteID := uint(5)

	w := models.Worker{
		LastName:  "Иванова",
		FirstName: "Ана",
		StartDate: &start,
		SiteID:    &siteID,
	}

	rec := workerRecord(&w)
	assert.Equal(t, "2024-05-01", rec["start_date"])
	assert.Equal(t, "5", rec["site_id"])
	assert.Equal(t, "", rec["center_id"])
	assert.Equal(t, "", rec["end_date"])
}
