package models

import (
	"time"
)

// Статусы запуска пайплайна
const (
	RunStatusInProgress = "in_progress"
	RunStatusSuccess    = "success"
	RunStatusFailed     = "failed"
)

// PipelineRunLog представляет запись о запуске пайплайна анализа
type PipelineRunLog struct {
	RunID                string    `json:"run_id"`
	StartTime            time.Time `json:"start_time"`
	EndTime              time.Time `json:"end_time"`
	Status               string    `json:"status"` // "success", "failed", "in_progress"
	RowsLoaded           int       `json:"rows_loaded"`
	RowsCountryLevel     int       `json:"rows_country_level"`
	CountriesAggregated  int       `json:"countries_aggregated"`
	FailedStage          string    `json:"failed_stage,omitempty"`
	ErrorMessage         string    `json:"error_message,omitempty"`
	ExecutionTimeSeconds float64   `json:"execution_time_seconds"`
}
