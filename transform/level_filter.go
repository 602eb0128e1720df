package transform

import (
	"fmt"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"

	"github.com/LilVoxy/coursework_covid/models"
)

// FilterCountryLevel возвращает подмножество строк таблицы, у которых
// значение указанной колонки строго равно значению-метке (с учетом регистра).
// Исходная таблица не изменяется. Пустой результат — не ошибка.
func FilterCountryLevel(df dataframe.DataFrame, column, sentinel string) (dataframe.DataFrame, error) {
	filtered := df.Filter(dataframe.F{
		Colname:    column,
		Comparator: series.Eq,
		Comparando: sentinel,
	})
	if filtered.Err != nil {
		return dataframe.DataFrame{}, fmt.Errorf("ошибка при фильтрации по колонке %q: %w: %v",
			column, models.ErrColumnNotFound, filtered.Err)
	}
	return filtered, nil
}
