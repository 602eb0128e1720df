package main

import (
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"

	"github.com/LilVoxy/coursework_covid/config"
	"github.com/LilVoxy/coursework_covid/countryrank"
	"github.com/LilVoxy/coursework_covid/extractors"
	"github.com/LilVoxy/coursework_covid/models"
	"github.com/LilVoxy/coursework_covid/report"
	"github.com/LilVoxy/coursework_covid/transform"
	"github.com/LilVoxy/coursework_covid/utils"
)

// Названия этапов пайплайна для журнала запусков
const (
	stageExtract   = "Extract"
	stageTransform = "Transform"
	stageAnalyze   = "Analyze"
)

// PipelineRunner координирует выполнение всех этапов анализа:
// извлечение, преобразование, рейтинг стран и сборку отчета
type PipelineRunner struct {
	config      config.PipelineConfig
	logger      *utils.PipelineLogger
	extractor   *extractors.DatasetExtractor
	transformer *transform.Transformer
	reporter    *report.Reporter
	out         io.Writer
	lastRunLog  *models.PipelineRunLog
}

// NewPipelineRunner создает новый экземпляр PipelineRunner
func NewPipelineRunner(cfg config.PipelineConfig, out io.Writer) *PipelineRunner {
	logger := utils.NewPipelineLogger(cfg.EnableDetailedLogging, cfg.LogFilePath)
	logger.Info("Инициализация пайплайна анализа COVID-19")

	return &PipelineRunner{
		config:      cfg,
		logger:      logger,
		extractor:   extractors.NewDatasetExtractor(logger),
		transformer: transform.NewTransformer(logger),
		reporter:    report.NewReporter(logger),
		out:         out,
	}
}

// ExecutePipeline выполняет полный пайплайн анализа и возвращает отчет.
// Запуск фиксируется в журнале с уникальным идентификатором и статусом.
func (r *PipelineRunner) ExecutePipeline() (*models.Report, error) {
	startTime := time.Now()

	runLog := &models.PipelineRunLog{
		RunID:     uuid.New().String(),
		StartTime: startTime,
		Status:    models.RunStatusInProgress,
	}
	r.lastRunLog = runLog
	r.logger.LogPipelineStart(runLog.RunID, r.config.DatasetPath)

	// 1. Извлечение датасета
	raw, err := r.extractor.Extract(r.config.DatasetPath)
	if err != nil {
		return nil, r.failRun(runLog, stageExtract, err)
	}
	runLog.RowsLoaded = raw.Nrow()

	// 2. Преобразование: фильтрация, проекция, агрегация по странам
	transformed, err := r.transformer.Transform(raw)
	if err != nil {
		return nil, r.failRun(runLog, stageTransform, err)
	}
	runLog.RowsCountryLevel = transformed.CountryLevel.Nrow()
	runLog.CountriesAggregated = len(transformed.Aggregates)

	// 3. Анализ: рейтинг по тестам и отношение positive/tested
	topTen := countryrank.RankByTested(transformed.Aggregates, r.config.RankLimit, r.logger)
	ratios, err := countryrank.CalculateRatios(topTen, r.logger)
	if err != nil {
		return nil, r.failRun(runLog, stageAnalyze, err)
	}
	topThree := countryrank.TopByRatio(ratios, r.config.HighlightCount)

	// 4. Сборка и вывод отчета
	rep := r.reporter.BuildReport(raw, transformed, topTen, ratios, topThree)
	r.reporter.Render(rep, r.config.HeadRows, r.out)

	r.completeRun(runLog)
	r.logger.LogPipelineComplete(startTime, runLog.RowsLoaded, runLog.CountriesAggregated)

	return rep, nil
}

// LastRunLog возвращает запись журнала о последнем запуске пайплайна
func (r *PipelineRunner) LastRunLog() *models.PipelineRunLog {
	return r.lastRunLog
}

// failRun отмечает запуск неуспешным и возвращает ошибку с указанием этапа
func (r *PipelineRunner) failRun(runLog *models.PipelineRunLog, stage string, err error) error {
	wrapped := fmt.Errorf("ошибка на этапе %s: %w", stage, err)

	runLog.EndTime = time.Now()
	runLog.Status = models.RunStatusFailed
	runLog.FailedStage = stage
	runLog.ErrorMessage = wrapped.Error()
	runLog.ExecutionTimeSeconds = runLog.EndTime.Sub(runLog.StartTime).Seconds()

	r.logger.Error("Пайплайн прерван на этапе %s: %v", stage, err)
	return wrapped
}

// completeRun отмечает запуск успешным
func (r *PipelineRunner) completeRun(runLog *models.PipelineRunLog) {
	runLog.EndTime = time.Now()
	runLog.Status = models.RunStatusSuccess
	runLog.ExecutionTimeSeconds = runLog.EndTime.Sub(runLog.StartTime).Seconds()

	r.logger.Info("Запуск %s завершен со статусом %s за %.3f с",
		runLog.RunID, runLog.Status, runLog.ExecutionTimeSeconds)
}
