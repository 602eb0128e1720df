package utils

import (
	"io"
	"os"
	"time"

	"github.com/sirupsen/logrus"
)

// PipelineLogger представляет логгер для пайплайна анализа
type PipelineLogger struct {
	log *logrus.Logger
}

// NewPipelineLogger создает новый экземпляр логгера пайплайна.
// При verbose=true включается вывод отладочных сообщений.
// Если logFilePath непустой, лог пишется одновременно в консоль и в файл.
func NewPipelineLogger(verbose bool, logFilePath string) *PipelineLogger {
	log := logrus.New()

	// Формат: полная метка времени, текстовый вывод
	log.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05",
	})

	if verbose {
		log.SetLevel(logrus.DebugLevel)
	} else {
		log.SetLevel(logrus.InfoLevel)
	}

	// Вывод: консоль и, при необходимости, файл
	writers := []io.Writer{os.Stdout}
	if logFilePath != "" {
		file, err := os.OpenFile(logFilePath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0666)
		if err != nil {
			log.Errorf("Не удалось открыть файл лога %s: %v. Лог пишется только в консоль", logFilePath, err)
		} else {
			writers = append(writers, file)
		}
	}
	log.SetOutput(io.MultiWriter(writers...))

	return &PipelineLogger{log: log}
}

// Info логирует информационное сообщение
func (l *PipelineLogger) Info(format string, v ...interface{}) {
	l.log.Infof(format, v...)
}

// Error логирует сообщение об ошибке
func (l *PipelineLogger) Error(format string, v ...interface{}) {
	l.log.Errorf(format, v...)
}

// Debug логирует отладочное сообщение (только если включен verbose режим)
func (l *PipelineLogger) Debug(format string, v ...interface{}) {
	l.log.Debugf(format, v...)
}

// LogPipelineStart логирует начало пайплайна анализа
func (l *PipelineLogger) LogPipelineStart(runID string, datasetPath string) {
	l.Info("Начало выполнения пайплайна анализа. Запуск: %s, датасет: %s", runID, datasetPath)
}

// LogPipelineComplete логирует завершение пайплайна анализа
func (l *PipelineLogger) LogPipelineComplete(startTime time.Time, rowsLoaded, countries int) {
	duration := time.Since(startTime)
	l.Info("Пайплайн анализа завершён. Длительность: %v", duration)
	l.Info("Обработано: %d строк, %d стран", rowsLoaded, countries)
}

// LogExtractStart логирует начало фазы извлечения данных
func (l *PipelineLogger) LogExtractStart(path string) {
	l.Info("Начало фазы Extract (Загрузка датасета %s)", path)
}

// LogExtractComplete логирует завершение фазы извлечения данных
func (l *PipelineLogger) LogExtractComplete(rows, cols int, duration time.Duration) {
	l.Info("Фаза Extract завершена. Длительность: %v", duration)
	l.Info("Загружено: %d строк, %d колонок", rows, cols)
}

// LogTransformStart логирует начало фазы преобразования данных
func (l *PipelineLogger) LogTransformStart() {
	l.Info("Начало фазы Transform (Фильтрация, проекция и агрегация)")
}

// LogTransformComplete логирует завершение фазы преобразования данных
func (l *PipelineLogger) LogTransformComplete(countryRows, countries int, duration time.Duration) {
	l.Info("Фаза Transform завершена. Длительность: %v", duration)
	l.Info("Строк уровня страны: %d, стран: %d", countryRows, countries)
}
