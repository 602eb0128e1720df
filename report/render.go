package report

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/go-gota/gota/dataframe"
	"github.com/olekukonko/tablewriter"

	"github.com/LilVoxy/coursework_covid/models"
)

// Render выводит отчет в консольном виде.
// Вывод детерминирован: повторный запуск на тех же данных дает
// байт-в-байт тот же текст.
func (r *Reporter) Render(report *models.Report, headRows int, w io.Writer) {
	divider := strings.Repeat("=", 72)

	fmt.Fprintln(w, divider)
	fmt.Fprintln(w, "Анализ данных COVID-19: положительные случаи против количества тестов")
	fmt.Fprintln(w, divider)
	fmt.Fprintln(w)

	fmt.Fprintf(w, "Вопрос: %s\n", report.Question)
	fmt.Fprintln(w)
	fmt.Fprintf(w, "Ответ (топ-%d стран по отношению positive/tested):\n", len(report.Answer))
	renderRatioTable(w, report.Answer)
	fmt.Fprintln(w)

	fmt.Fprintf(w, "Исходная таблица: [%d x %d]\n", report.Original.Nrow(), report.Original.Ncol())
	fmt.Fprintf(w, "Строки уровня страны: [%d x %d]\n", report.CountryLevel.Nrow(), report.CountryLevel.Ncol())
	fmt.Fprintf(w, "Дневная проекция: [%d x %d]\n", report.Daily.Nrow(), report.Daily.Ncol())
	fmt.Fprintf(w, "Колонки дневной проекции: %s\n", strings.Join(report.Columns, ", "))
	fmt.Fprintf(w, "Стран в данных: %d\n", len(report.Countries))
	fmt.Fprintln(w)

	fmt.Fprintf(w, "Первые строки исходной таблицы (до %d):\n", headRows)
	renderHead(w, report.Original, headRows)
	fmt.Fprintln(w)

	fmt.Fprintf(w, "Первые строки уровня страны (до %d):\n", headRows)
	renderHead(w, report.CountryLevel, headRows)
	fmt.Fprintln(w)

	fmt.Fprintf(w, "Первые строки дневной проекции (до %d):\n", headRows)
	renderHead(w, report.Daily, headRows)
	fmt.Fprintln(w)

	fmt.Fprintf(w, "Топ-%d стран по количеству тестов:\n", report.TopTen.Nrow())
	renderHead(w, report.TopTen, report.TopTen.Nrow())
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Отношение positive/tested по странам рейтинга:")
	renderRatioTable(w, report.Ratios)
	fmt.Fprintln(w, divider)
}

// renderHead выводит первые n строк таблицы
func renderHead(w io.Writer, df dataframe.DataFrame, n int) {
	records := df.Records()
	if len(records) == 0 {
		return
	}
	header := records[0]
	rows := records[1:]
	if n >= 0 && len(rows) > n {
		rows = rows[:n]
	}

	table := newTable(w, header)
	table.AppendBulk(rows)
	table.Render()
}

// renderRatioTable выводит страны с отношением positive/tested.
// Отношение печатается с фиксированной точностью в четыре знака.
func renderRatioTable(w io.Writer, entries []models.RatioEntry) {
	table := newTable(w, []string{models.ColumnCountryRegion, aggregateColumnTested, aggregateColumnPositive, "ratio"})
	for _, entry := range entries {
		table.Append([]string{
			entry.CountryRegion,
			strconv.FormatFloat(entry.Tested, 'f', 0, 64),
			strconv.FormatFloat(entry.Positive, 'f', 0, 64),
			strconv.FormatFloat(entry.Ratio, 'f', 4, 64),
		})
	}
	table.Render()
}

// newTable создает таблицу с едиными настройками вывода
func newTable(w io.Writer, header []string) *tablewriter.Table {
	table := tablewriter.NewWriter(w)
	table.SetHeader(header)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	return table
}
