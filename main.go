// main.go
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/LilVoxy/coursework_covid/config"
)

func main() {
	fmt.Println("Запуск анализа данных COVID-19...")

	// Разбор параметров командной строки
	dataPath := flag.String("data", config.DefaultPipelineConfig.DatasetPath, "Путь к файлу датасета covid19.csv")
	headRows := flag.Int("head", config.DefaultPipelineConfig.HeadRows, "Количество строк предпросмотра таблиц в отчете")
	verbose := flag.Bool("verbose", false, "Включить подробное логирование")
	logFile := flag.String("log-file", "", "Путь к файлу лога (пусто — вывод только в консоль)")
	flag.Parse()

	// Сборка конфигурации пайплайна
	cfg := config.GetConfig()
	cfg.DatasetPath = *dataPath
	cfg.HeadRows = *headRows
	cfg.EnableDetailedLogging = *verbose
	cfg.LogFilePath = *logFile

	// Запуск пайплайна
	runner := NewPipelineRunner(cfg, os.Stdout)
	if _, err := runner.ExecutePipeline(); err != nil {
		log.Fatalf("❌ Ошибка при выполнении анализа: %v", err)
	}
}
