package models

import (
	"time"

	"github.com/go-gota/gota/dataframe"
)

// Report представляет итоговый набор результатов анализа.
// Собирается один раз в конце пайплайна и после этого не изменяется.
type Report struct {
	// Вопрос исследования
	Question string

	// Ответ: топ-3 страны по отношению положительных случаев к тестам
	Answer []RatioEntry

	// Исходная таблица
	Original dataframe.DataFrame

	// Таблица строк уровня страны
	CountryLevel dataframe.DataFrame

	// Дневная проекция
	Daily dataframe.DataFrame

	// Топ-10 стран по количеству тестов
	TopTen dataframe.DataFrame

	// Отношения для всех стран из топ-10 в порядке топ-10
	Ratios []RatioEntry

	// Список уникальных стран в порядке первого появления в данных
	Countries []string

	// Список колонок дневной проекции
	Columns []string

	// Дата формирования отчета
	GeneratedAt time.Time
}
