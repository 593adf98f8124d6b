package audit

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizePlainEmptyEquivalence(t *testing.T) {
	assert.Equal(t, "", Normalize(KindPlain, ""))
	assert.Equal(t, "", Normalize(KindPlain, "   "))
	assert.Equal(t, "", Normalize(KindPlain, "null"))
}

func TestNormalizePlainPassthrough(t *testing.T) {
	assert.Equal(t, "Иванова", Normalize(KindPlain, "Иванова"))
	assert.Equal(t, "7", Normalize(KindPlain, " 7 "))
}

func TestNormalizeDateFormatInvariance(t *testing.T) {
	want := "2024-05-01"

	assert.Equal(t, want, Normalize(KindDate, "2024-05-01"))
	assert.Equal(t, want, Normalize(KindDate, "2024-05-01T00:00:00Z"))
	assert.Equal(t, want, Normalize(KindDate, "2024-05-01T00:00:00"))
	assert.Equal(t, want, Normalize(KindDate, "2024-05-01 00:00:00"))
	assert.Equal(t, want, Normalize(KindDate, "01/05/2024"))
}

func TestNormalizeDateGarbage(t *testing.T) {
	assert.Equal(t, "", Normalize(KindDate, "не дата"))
	assert.Equal(t, "", Normalize(KindDate, "2024-13-45"))
	assert.Equal(t, "", Normalize(KindDate, ""))
}

func TestNormalizeDateZeroPlaceholder(t *testing.T) {
	// нулевые даты-заглушки равны отсутствию даты
	assert.Equal(t, "", Normalize(KindDate, "0000-00-00"))
	assert.Equal(t, "", Normalize(KindDate, "0001-01-01T00:00:00Z"))
}
