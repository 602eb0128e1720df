package transform

import (
	"fmt"
	"math"

	"github.com/go-gota/gota/dataframe"

	"github.com/LilVoxy/coursework_covid/models"
	"github.com/LilVoxy/coursework_covid/utils"
)

// AggregationProcessor отвечает за агрегацию дневных метрик по странам
type AggregationProcessor struct {
	logger *utils.PipelineLogger
}

// NewAggregationProcessor создает новый экземпляр AggregationProcessor
func NewAggregationProcessor(logger *utils.PipelineLogger) *AggregationProcessor {
	return &AggregationProcessor{
		logger: logger,
	}
}

// AggregateByCountry группирует строки дневной проекции по Country_Region
// и суммирует четыре дневные метрики для каждой страны.
// Страны идут в порядке первого появления в данных, поэтому результат
// детерминирован от запуска к запуску. Пропущенные значения (NaN)
// исключаются из суммы, а не считаются нулями.
func (p *AggregationProcessor) AggregateByCountry(daily dataframe.DataFrame) ([]models.CountryAggregate, error) {
	p.logger.Debug("Агрегация дневных метрик по странам...")

	countrySeries := daily.Col(models.ColumnCountryRegion)
	if countrySeries.Err != nil {
		return nil, fmt.Errorf("ошибка при чтении колонки %q: %w: %v",
			models.ColumnCountryRegion, models.ErrColumnNotFound, countrySeries.Err)
	}
	countries := countrySeries.Records()

	// Суммируемые колонки в порядке полей CountryAggregate
	sumColumns := []string{
		models.ColumnDailyTested,
		models.ColumnDailyPositive,
		models.ColumnActive,
		models.ColumnHospitalizedCurr,
	}

	values := make([][]float64, len(sumColumns))
	for i, column := range sumColumns {
		s := daily.Col(column)
		if s.Err != nil {
			return nil, fmt.Errorf("ошибка при чтении колонки %q: %w: %v",
				column, models.ErrColumnNotFound, s.Err)
		}
		values[i] = s.Float()
	}

	// Разбиение строк по странам с накоплением сумм.
	// Порядок ключей — порядок первого появления страны.
	order := make([]string, 0)
	index := make(map[string]int)
	sums := make([][4]float64, 0)

	for row, country := range countries {
		i, exists := index[country]
		if !exists {
			i = len(order)
			index[country] = i
			order = append(order, country)
			sums = append(sums, [4]float64{})
		}

		for j := range sumColumns {
			v := values[j][row]
			if math.IsNaN(v) {
				// Пропуск исключается из суммы
				continue
			}
			sums[i][j] += v
		}
	}

	aggregates := make([]models.CountryAggregate, 0, len(order))
	for i, country := range order {
		aggregates = append(aggregates, models.CountryAggregate{
			CountryRegion: country,
			Tested:        sums[i][0],
			Positive:      sums[i][1],
			Active:        sums[i][2],
			Hospitalized:  sums[i][3],
		})
	}

	p.logger.Debug("Агрегация завершена. Стран: %d", len(aggregates))
	return aggregates, nil
}
