package audit

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiffNoChanges(t *testing.T) {
	rec := Record{
		"last_name":   "Иванова",
		"first_name":  "Ана",
		"job_role_id": "3",
		"start_date":  "2024-05-01",
	}

	assert.Empty(t, Diff(rec, rec, WorkerFields))
}

func TestDiffSingleFieldChange(t *testing.T) {
	oldRec := Record{
		"last_name":   "Иванова",
		"first_name":  "Ана",
		"phone":       "+7 900 000-00-00",
		"email":       "ana@example.com",
		"job_role_id": "3",
	}
	newRec := Record{
		"last_name":   "Иванова",
		"first_name":  "Ана",
		"phone":       "+7 900 000-00-00",
		"email":       "ana@example.com",
		"job_role_id": "7",
	}

	changes := Diff(oldRec, newRec, WorkerFields)

	require.Len(t, changes, 1)
	assert.Equal(t, "job_role_id", changes[0].Field)
	assert.Equal(t, "3", changes[0].OldValue)
	assert.Equal(t, "7", changes[0].NewValue)
}

func TestDiffIgnoresUnknownKeys(t *testing.T) {
	oldRec := Record{"last_name": "Иванова"}
	newRec := Record{
		"last_name":  "Иванова",
		"csrf_token": "abc123",
		"updated_at": "2024-05-01 10:00:00",
	}

	assert.Empty(t, Diff(oldRec, newRec, WorkerFields))
}

func TestDiffDateFormatsNotReported(t *testing.T) {
	// одна и та же дата в разных записях — не изменение
	oldRec := Record{"start_date": "2024-05-01 00:00:00"}
	newRec := Record{"start_date": "2024-05-01"}

	assert.Empty(t, Diff(oldRec, newRec, WorkerFields))
}

func TestDiffStoresRawValues(t *testing.T) {
	oldRec := Record{"start_date": "2024-05-01T00:00:00Z"}
	newRec := Record{"start_date": "2024-06-15"}

	changes := Diff(oldRec, newRec, WorkerFields)

	require.Len(t, changes, 1)
	// в журнал идут исходные значения, не канонические
	assert.Equal(t, "2024-05-01T00:00:00Z", changes[0].OldValue)
	assert.Equal(t, "2024-06-15", changes[0].NewValue)
}

func TestDiffEmptyVariantsNotReported(t *testing.T) {
	oldRec := Record{"notes": ""}
	newRec := Record{"notes": "   "}

	assert.Empty(t, Diff(oldRec, newRec, WorkerFields))
}

func TestDiffSkipsIrrelevantLocationField(t *testing.T) {
	// сотрудник закреплён за центром — поле объекта к нему неприменимо
	// и в изменения не попадает, даже если пришло в новой записи
	oldRec := Record{"center_id": "5"}
	newRec := Record{"center_id": "5", "site_id": "7"}

	assert.Empty(t, Diff(oldRec, newRec, WorkerFields))
}

func TestDiffLocationTransitionReportsBothSides(t *testing.T) {
	// перевод с объекта в центр — это два настоящих изменения,
	// оба должны попасть в журнал
	oldRec := Record{"site_id": "5"}
	newRec := Record{"center_id": "7"}

	changes := Diff(oldRec, newRec, WorkerFields)

	require.Len(t, changes, 2)
	assert.Equal(t, "site_id", changes[0].Field)
	assert.Equal(t, "5", changes[0].OldValue)
	assert.Equal(t, "", changes[0].NewValue)
	assert.Equal(t, "center_id", changes[1].Field)
	assert.Equal(t, "", changes[1].OldValue)
	assert.Equal(t, "7", changes[1].NewValue)
}

func TestDiffClearedFieldReported(t *testing.T) {
	oldRec := Record{"email": "ana@example.com"}
	newRec := Record{"email": ""}

	changes := Diff(oldRec, newRec, WorkerFields)

	require.Len(t, changes, 1)
	assert.Equal(t, "email", changes[0].Field)
	assert.Equal(t, "ana@example.com", changes[0].OldValue)
	assert.Equal(t, "", changes[0].NewValue)
}
