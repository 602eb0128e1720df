package main

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/LilVoxy/coursework_covid/config"
	"github.com/LilVoxy/coursework_covid/models"
)

func testConfig() config.PipelineConfig {
	cfg := config.GetConfig()
	cfg.DatasetPath = filepath.Join("testdata", "covid_small.csv")
	cfg.HeadRows = 3
	return cfg
}

func TestExecutePipeline(t *testing.T) {
	var out bytes.Buffer
	runner := NewPipelineRunner(testConfig(), &out)

	rep, err := runner.ExecutePipeline()
	require.NoError(t, err)
	require.NotNil(t, rep)

	// Ответ: страны по убыванию отношения positive/tested
	require.Len(t, rep.Answer, 3)
	assert.Equal(t, "Sampleland", rep.Answer[0].CountryRegion)
	assert.InDelta(t, 0.5, rep.Answer[0].Ratio, 1e-9)
	assert.Equal(t, "Testland", rep.Answer[1].CountryRegion)
	assert.InDelta(t, 0.06, rep.Answer[1].Ratio, 1e-9)
	assert.Equal(t, "Quietland", rep.Answer[2].CountryRegion)
	assert.InDelta(t, 0.0, rep.Answer[2].Ratio, 1e-9)

	// Рейтинг по количеству тестов
	require.Equal(t, 3, rep.TopTen.Nrow())
	assert.Equal(t, []string{"Testland", "Quietland", "Sampleland"},
		rep.TopTen.Col(models.ColumnCountryRegion).Records())

	// Региональная строка Westprovince отсеяна
	assert.Equal(t, 5, rep.Original.Nrow())
	assert.Equal(t, 4, rep.CountryLevel.Nrow())
	assert.Equal(t, []string{"Testland", "Sampleland", "Quietland"}, rep.Countries)
	assert.Equal(t, models.DailyColumns(), rep.Columns)

	// Отчет выведен
	text := out.String()
	assert.Contains(t, text, rep.Question)
	assert.Contains(t, text, "Sampleland")
	assert.Contains(t, text, "0.5000")
}

func TestExecutePipelineRunLog(t *testing.T) {
	var out bytes.Buffer
	runner := NewPipelineRunner(testConfig(), &out)

	_, err := runner.ExecutePipeline()
	require.NoError(t, err)

	runLog := runner.LastRunLog()
	require.NotNil(t, runLog)
	assert.Equal(t, models.RunStatusSuccess, runLog.Status)
	assert.NotEmpty(t, runLog.RunID)
	assert.Equal(t, 5, runLog.RowsLoaded)
	assert.Equal(t, 4, runLog.RowsCountryLevel)
	assert.Equal(t, 3, runLog.CountriesAggregated)
	assert.Empty(t, runLog.FailedStage)
	assert.False(t, runLog.EndTime.Before(runLog.StartTime))
}

func TestExecutePipelineIdempotent(t *testing.T) {
	var first, second bytes.Buffer

	_, err := NewPipelineRunner(testConfig(), &first).ExecutePipeline()
	require.NoError(t, err)
	_, err = NewPipelineRunner(testConfig(), &second).ExecutePipeline()
	require.NoError(t, err)

	// Повторный запуск на тех же данных дает байт-в-байт тот же отчет
	assert.Equal(t, first.String(), second.String())
}

func TestExecutePipelineTwoCountries(t *testing.T) {
	cfg := testConfig()
	cfg.DatasetPath = filepath.Join("testdata", "covid_two_countries.csv")
	cfg.RankLimit = 2
	cfg.HighlightCount = 1

	var out bytes.Buffer
	rep, err := NewPipelineRunner(cfg, &out).ExecutePipeline()
	require.NoError(t, err)

	// Рейтинг по тестам: Testland (100) впереди Sampleland (50)
	assert.Equal(t, []string{"Testland", "Sampleland"},
		rep.TopTen.Col(models.ColumnCountryRegion).Records())

	// Отношения в порядке рейтинга
	require.Len(t, rep.Ratios, 2)
	assert.InDelta(t, 0.10, rep.Ratios[0].Ratio, 1e-9)
	assert.InDelta(t, 0.50, rep.Ratios[1].Ratio, 1e-9)

	// Наибольшее отношение у Sampleland
	require.Len(t, rep.Answer, 1)
	assert.Equal(t, "Sampleland", rep.Answer[0].CountryRegion)
	assert.InDelta(t, 0.50, rep.Answer[0].Ratio, 1e-9)
}

func TestExecutePipelineFileNotFound(t *testing.T) {
	cfg := testConfig()
	cfg.DatasetPath = filepath.Join("testdata", "no_such_file.csv")

	var out bytes.Buffer
	runner := NewPipelineRunner(cfg, &out)

	_, err := runner.ExecutePipeline()
	require.Error(t, err)
	assert.ErrorIs(t, err, models.ErrFileNotFound)
	assert.Contains(t, err.Error(), "ошибка на этапе Extract")

	runLog := runner.LastRunLog()
	require.NotNil(t, runLog)
	assert.Equal(t, models.RunStatusFailed, runLog.Status)
	assert.Equal(t, stageExtract, runLog.FailedStage)
	assert.NotEmpty(t, runLog.ErrorMessage)
}
