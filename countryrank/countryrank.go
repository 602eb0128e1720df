package countryrank

import (
	"fmt"
	"sort"

	"github.com/LilVoxy/coursework_covid/models"
	"github.com/LilVoxy/coursework_covid/utils"
)

// RankByTested сортирует агрегаты по убыванию суммы тестов и возвращает
// первые limit стран. Сортировка устойчивая: при равных суммах сохраняется
// порядок первого появления страны в данных. Если стран меньше limit,
// возвращаются все — это не ошибка. Входной срез не изменяется.
func RankByTested(
	aggregates []models.CountryAggregate,
	limit int,
	logger *utils.PipelineLogger) []models.CountryAggregate {

	logger.Info("Ранжирование %d стран по количеству тестов", len(aggregates))

	ranked := append([]models.CountryAggregate(nil), aggregates...)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Tested > ranked[j].Tested
	})

	if len(ranked) > limit {
		ranked = ranked[:limit]
	}

	logger.Debug("Ранжирование завершено. В рейтинге стран: %d", len(ranked))
	return ranked
}

// CalculateRatios вычисляет отношение положительных случаев к числу тестов
// для каждой страны рейтинга, сохраняя порядок рейтинга.
// Нулевая сумма тестов — ошибка деления на ноль: пайплайн сигнализирует
// о ней, а не возвращает бесконечность.
func CalculateRatios(
	topCountries []models.CountryAggregate,
	logger *utils.PipelineLogger) ([]models.RatioEntry, error) {

	logger.Info("Расчет отношения positive/tested для %d стран", len(topCountries))

	entries := make([]models.RatioEntry, 0, len(topCountries))
	for _, country := range topCountries {
		if country.Tested == 0 {
			logger.Error("Сумма тестов для страны %q равна нулю", country.CountryRegion)
			return nil, fmt.Errorf("ошибка при расчете отношения для страны %q: %w",
				country.CountryRegion, models.ErrDivisionByZero)
		}

		entries = append(entries, models.RatioEntry{
			CountryRegion: country.CountryRegion,
			Tested:        country.Tested,
			Positive:      country.Positive,
			Ratio:         country.Positive / country.Tested,
		})
	}

	return entries, nil
}

// TopByRatio возвращает первые count записей по убыванию отношения.
// Сортировка устойчивая: при равных отношениях сохраняется порядок рейтинга.
// Входной срез не изменяется.
func TopByRatio(entries []models.RatioEntry, count int) []models.RatioEntry {
	top := append([]models.RatioEntry(nil), entries...)
	sort.SliceStable(top, func(i, j int) bool {
		return top[i].Ratio > top[j].Ratio
	})

	if len(top) > count {
		top = top[:count]
	}
	return top
}
