package extractors

import (
	"fmt"
	"os"
	"time"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"

	"github.com/LilVoxy/coursework_covid/models"
	"github.com/LilVoxy/coursework_covid/utils"
)

// DatasetExtractor отвечает за загрузку датасета covid19.csv в память
type DatasetExtractor struct {
	logger *utils.PipelineLogger
}

// NewDatasetExtractor создает новый экземпляр DatasetExtractor
func NewDatasetExtractor(logger *utils.PipelineLogger) *DatasetExtractor {
	return &DatasetExtractor{
		logger: logger,
	}
}

// datasetTypes возвращает схему типов колонок датасета.
// Числовые колонки целочисленные (пропуски становятся NaN),
// остальные остаются строками. Дата хранится как текст ISO-8601:
// пайплайн её переносит в отчет, но не вычисляет по ней.
func datasetTypes() map[string]series.Type {
	types := make(map[string]series.Type)
	for _, column := range models.NumericColumns() {
		types[column] = series.Int
	}
	return types
}

// Extract загружает датасет из CSV-файла и возвращает таблицу
// с сохраненным порядком колонок
func (e *DatasetExtractor) Extract(path string) (dataframe.DataFrame, error) {
	startTime := time.Now()
	e.logger.LogExtractStart(path)

	file, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return dataframe.DataFrame{}, fmt.Errorf("%w: %s", models.ErrFileNotFound, path)
		}
		return dataframe.DataFrame{}, fmt.Errorf("ошибка при открытии файла %s: %w", path, err)
	}
	defer file.Close()

	df := dataframe.ReadCSV(
		file,
		dataframe.HasHeader(true),
		dataframe.DefaultType(series.String),
		dataframe.WithTypes(datasetTypes()),
	)
	if df.Err != nil {
		return dataframe.DataFrame{}, fmt.Errorf("ошибка при разборе файла %s: %w: %v", path, models.ErrParse, df.Err)
	}

	e.logger.LogExtractComplete(df.Nrow(), df.Ncol(), time.Since(startTime))
	return df, nil
}
