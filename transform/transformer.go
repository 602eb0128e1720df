package transform

import (
	"fmt"
	"time"

	"github.com/go-gota/gota/dataframe"

	"github.com/LilVoxy/coursework_covid/models"
	"github.com/LilVoxy/coursework_covid/utils"
)

// Transformer координирует преобразование исходной таблицы:
// фильтрацию до строк уровня страны, проекцию на дневные колонки
// и агрегацию метрик по странам
type Transformer struct {
	logger       *utils.PipelineLogger
	aggProcessor *AggregationProcessor
}

// NewTransformer создает новый экземпляр Transformer
func NewTransformer(logger *utils.PipelineLogger) *Transformer {
	return &Transformer{
		logger:       logger,
		aggProcessor: NewAggregationProcessor(logger),
	}
}

// Transform выполняет полную фазу преобразования данных
func (t *Transformer) Transform(raw dataframe.DataFrame) (*models.TransformedData, error) {
	startTime := time.Now()
	t.logger.LogTransformStart()

	transformed := &models.TransformedData{}

	// 1. Фильтрация до строк уровня страны
	t.logger.Info("Фильтрация строк уровня страны (%s == %q)...",
		models.ColumnProvinceState, models.CountryLevelSentinel)
	countryLevel, err := FilterCountryLevel(raw, models.ColumnProvinceState, models.CountryLevelSentinel)
	if err != nil {
		t.logger.Error("Ошибка при фильтрации строк уровня страны: %v", err)
		return nil, fmt.Errorf("ошибка при фильтрации строк уровня страны: %w", err)
	}
	if countryLevel.Nrow() == 0 {
		// Пустой результат фильтрации допустим и не прерывает пайплайн
		t.logger.Info("После фильтрации не осталось ни одной строки уровня страны")
	}
	transformed.CountryLevel = countryLevel

	// 2. Проекция на дневные колонки
	t.logger.Info("Проекция на дневные колонки %v...", models.DailyColumns())
	daily, err := SelectColumns(countryLevel, models.DailyColumns())
	if err != nil {
		t.logger.Error("Ошибка при проекции на дневные колонки: %v", err)
		return nil, fmt.Errorf("ошибка при проекции на дневные колонки: %w", err)
	}
	transformed.Daily = daily

	// 3. Агрегация метрик по странам
	t.logger.Info("Агрегация дневных метрик по странам...")
	aggregates, err := t.aggProcessor.AggregateByCountry(daily)
	if err != nil {
		t.logger.Error("Ошибка при агрегации по странам: %v", err)
		return nil, fmt.Errorf("ошибка при агрегации по странам: %w", err)
	}
	transformed.Aggregates = aggregates

	t.logger.LogTransformComplete(countryLevel.Nrow(), len(aggregates), time.Since(startTime))
	return transformed, nil
}
