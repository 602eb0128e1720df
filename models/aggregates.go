package models

import (
	"github.com/go-gota/gota/dataframe"
)

// CountryAggregate представляет агрегат дневных метрик по одной стране
type CountryAggregate struct {
	CountryRegion string  // Название страны (значение Country_Region)
	Tested        float64 // Сумма daily_tested
	Positive      float64 // Сумма daily_positive
	Active        float64 // Сумма active
	Hospitalized  float64 // Сумма hospitalizedCurr
}

// RatioEntry представляет отношение положительных случаев к числу тестов
// для одной страны из топ-10
type RatioEntry struct {
	CountryRegion string  // Название страны
	Tested        float64 // Сумма тестов
	Positive      float64 // Сумма положительных случаев
	Ratio         float64 // Positive / Tested
}

// TransformedData содержит результаты фазы Transform
type TransformedData struct {
	// Таблица, отфильтрованная до строк уровня страны
	CountryLevel dataframe.DataFrame

	// Дневная проекция: дата, страна и четыре дневные метрики
	Daily dataframe.DataFrame

	// Агрегаты по странам в порядке первого появления страны в данных
	Aggregates []CountryAggregate
}
