package transform

import (
	"fmt"

	"github.com/go-gota/gota/dataframe"

	"github.com/LilVoxy/coursework_covid/models"
)

// SelectColumns возвращает таблицу, ограниченную перечисленными колонками,
// в заданном порядке. Отсутствие любой из колонок — ошибка.
func SelectColumns(df dataframe.DataFrame, columns []string) (dataframe.DataFrame, error) {
	selected := df.Select(columns)
	if selected.Err != nil {
		return dataframe.DataFrame{}, fmt.Errorf("ошибка при выборе колонок %v: %w: %v",
			columns, models.ErrColumnNotFound, selected.Err)
	}
	return selected, nil
}
