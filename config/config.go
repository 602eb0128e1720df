package config

// PipelineConfig содержит конфигурацию пайплайна анализа
type PipelineConfig struct {
	// Путь к файлу датасета covid19.csv
	DatasetPath string `json:"dataset_path"`

	// Количество строк предпросмотра таблиц в отчете
	HeadRows int `json:"head_rows"`

	// Количество стран в рейтинге по числу тестов
	RankLimit int `json:"rank_limit"`

	// Количество стран в итоговом ответе (по отношению positive/tested)
	HighlightCount int `json:"highlight_count"`

	// Включение/отключение детального логирования
	EnableDetailedLogging bool `json:"enable_detailed_logging"`

	// Путь к файлу лога; пустая строка — лог только в консоль
	LogFilePath string `json:"log_file_path"`
}

// Значения конфигурации по умолчанию
var DefaultPipelineConfig = PipelineConfig{
	DatasetPath:           "covid19.csv",
	HeadRows:              5,
	EnableDetailedLogging: false,
	LogFilePath:           "",
}

// GetConfig возвращает конфигурацию пайплайна
func GetConfig() PipelineConfig {
	config := DefaultPipelineConfig

	// Параметры анализа фиксированы постановкой задачи
	config.RankLimit = 10     // топ-10 стран по количеству тестов
	config.HighlightCount = 3 // топ-3 страны по отношению positive/tested

	return config
}
