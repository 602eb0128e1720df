package report

import (
	"math"
	"time"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"

	"github.com/LilVoxy/coursework_covid/models"
	"github.com/LilVoxy/coursework_covid/utils"
)

// AnalysisQuestion — вопрос исследования, на который отвечает пайплайн
const AnalysisQuestion = "Which countries have had the highest number of positive cases against the number of tests?"

// Имена колонок таблицы агрегатов в отчете
const (
	aggregateColumnTested       = "tested"
	aggregateColumnPositive     = "positive"
	aggregateColumnActive       = "active"
	aggregateColumnHospitalized = "hospitalized"
)

// Reporter отвечает за сборку итогового отчета и его вывод
type Reporter struct {
	logger *utils.PipelineLogger
}

// NewReporter создает новый экземпляр Reporter
func NewReporter(logger *utils.PipelineLogger) *Reporter {
	return &Reporter{
		logger: logger,
	}
}

// BuildReport собирает итоговый отчет анализа.
// Отчет после сборки не изменяется.
func (r *Reporter) BuildReport(
	original dataframe.DataFrame,
	transformed *models.TransformedData,
	topTen []models.CountryAggregate,
	ratios []models.RatioEntry,
	topThree []models.RatioEntry) *models.Report {

	r.logger.Info("Сборка итогового отчета...")

	countries := make([]string, 0, len(transformed.Aggregates))
	for _, aggregate := range transformed.Aggregates {
		countries = append(countries, aggregate.CountryRegion)
	}

	return &models.Report{
		Question:     AnalysisQuestion,
		Answer:       topThree,
		Original:     original,
		CountryLevel: transformed.CountryLevel,
		Daily:        transformed.Daily,
		TopTen:       aggregatesToDataFrame(topTen),
		Ratios:       ratios,
		Countries:    countries,
		Columns:      transformed.Daily.Names(),
		GeneratedAt:  time.Now(),
	}
}

// aggregatesToDataFrame материализует агрегаты в таблицу с колонками
// Country_Region, tested, positive, active, hospitalized.
// Суммы целочисленные по построению (суммы целых значений).
func aggregatesToDataFrame(aggregates []models.CountryAggregate) dataframe.DataFrame {
	countries := make([]string, 0, len(aggregates))
	tested := make([]int, 0, len(aggregates))
	positive := make([]int, 0, len(aggregates))
	active := make([]int, 0, len(aggregates))
	hospitalized := make([]int, 0, len(aggregates))

	for _, aggregate := range aggregates {
		countries = append(countries, aggregate.CountryRegion)
		tested = append(tested, int(math.Round(aggregate.Tested)))
		positive = append(positive, int(math.Round(aggregate.Positive)))
		active = append(active, int(math.Round(aggregate.Active)))
		hospitalized = append(hospitalized, int(math.Round(aggregate.Hospitalized)))
	}

	return dataframe.New(
		series.New(countries, series.String, models.ColumnCountryRegion),
		series.New(tested, series.Int, aggregateColumnTested),
		series.New(positive, series.Int, aggregateColumnPositive),
		series.New(active, series.Int, aggregateColumnActive),
		series.New(hospitalized, series.Int, aggregateColumnHospitalized),
	)
}
