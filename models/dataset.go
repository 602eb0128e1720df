package models

// Имена колонок исходного датасета covid19.csv.
// Порядок и названия колонок фиксированы форматом файла.
const (
	ColumnDate             = "Date"
	ColumnContinentName    = "Continent_Name"
	ColumnCountryCode      = "Two_Letter_Country_Code"
	ColumnCountryRegion    = "Country_Region"
	ColumnProvinceState    = "Province_State"
	ColumnPositive         = "positive"
	ColumnActive           = "active"
	ColumnHospitalized     = "hospitalized"
	ColumnHospitalizedCurr = "hospitalizedCurr"
	ColumnRecovered        = "recovered"
	ColumnDeath            = "death"
	ColumnTotalTested      = "total_tested"
	ColumnDailyTested      = "daily_tested"
	ColumnDailyPositive    = "daily_positive"
)

// CountryLevelSentinel — значение Province_State, которое отмечает строку
// уровня страны (агрегат по всей стране, а не по отдельному региону).
// Сравнение строгое, с учетом регистра.
const CountryLevelSentinel = "All States"

// DatasetColumns возвращает полный список колонок датасета в порядке файла
func DatasetColumns() []string {
	return []string{
		ColumnDate,
		ColumnContinentName,
		ColumnCountryCode,
		ColumnCountryRegion,
		ColumnProvinceState,
		ColumnPositive,
		ColumnActive,
		ColumnHospitalized,
		ColumnHospitalizedCurr,
		ColumnRecovered,
		ColumnDeath,
		ColumnTotalTested,
		ColumnDailyTested,
		ColumnDailyPositive,
	}
}

// NumericColumns возвращает список числовых колонок датасета.
// Значения в них целочисленные, допускаются пропуски.
func NumericColumns() []string {
	return []string{
		ColumnPositive,
		ColumnActive,
		ColumnHospitalized,
		ColumnHospitalizedCurr,
		ColumnRecovered,
		ColumnDeath,
		ColumnTotalTested,
		ColumnDailyTested,
		ColumnDailyPositive,
	}
}

// DailyColumns возвращает список колонок дневной проекции в фиксированном порядке:
// дата, страна и четыре дневные метрики
func DailyColumns() []string {
	return []string{
		ColumnDate,
		ColumnCountryRegion,
		ColumnActive,
		ColumnHospitalizedCurr,
		ColumnDailyTested,
		ColumnDailyPositive,
	}
}
