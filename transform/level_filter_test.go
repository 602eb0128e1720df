package transform

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/LilVoxy/coursework_covid/models"
)

func TestFilterCountryLevel(t *testing.T) {
	df := sampleCountryData()

	filtered, err := FilterCountryLevel(df, models.ColumnProvinceState, models.CountryLevelSentinel)
	require.NoError(t, err)

	// Остаются только строки уровня страны
	assert.Equal(t, 3, filtered.Nrow())
	for _, value := range filtered.Col(models.ColumnProvinceState).Records() {
		assert.Equal(t, models.CountryLevelSentinel, value)
	}

	// Исходная таблица не изменяется
	assert.Equal(t, 4, df.Nrow())
}

func TestFilterCountryLevelCaseSensitive(t *testing.T) {
	df := sampleCountryData()

	// Сравнение строгое: значение в другом регистре не совпадает
	filtered, err := FilterCountryLevel(df, models.ColumnProvinceState, "all states")
	require.NoError(t, err)
	assert.Equal(t, 0, filtered.Nrow())
}

func TestFilterCountryLevelNoMatches(t *testing.T) {
	df := sampleCountryData()

	// Пустой результат — не ошибка
	filtered, err := FilterCountryLevel(df, models.ColumnProvinceState, "Atlantis")
	require.NoError(t, err)
	assert.Equal(t, 0, filtered.Nrow())
}

func TestFilterCountryLevelMissingColumn(t *testing.T) {
	df := sampleCountryData()

	_, err := FilterCountryLevel(df, "No_Such_Column", models.CountryLevelSentinel)
	require.Error(t, err)
	assert.ErrorIs(t, err, models.ErrColumnNotFound)
}
