package models

import (
	"errors"
)

// Ошибки этапов пайплайна. Каждая ошибка оборачивается через %w,
// поэтому вызывающая сторона проверяет их через errors.Is.
var (
	// ErrFileNotFound — файл датасета не найден по указанному пути
	ErrFileNotFound = errors.New("файл датасета не найден")

	// ErrParse — структура CSV нарушена (количество полей в строке
	// не совпадает с заголовком или файл поврежден)
	ErrParse = errors.New("ошибка разбора CSV")

	// ErrColumnNotFound — запрошенная колонка отсутствует в таблице
	ErrColumnNotFound = errors.New("колонка не найдена")

	// ErrDivisionByZero — сумма тестов равна нулю, отношение не определено.
	// Пайплайн сигнализирует об ошибке, а не возвращает бесконечность.
	ErrDivisionByZero = errors.New("деление на ноль: сумма тестов равна нулю")
)
