package main

import (
	"fmt"

	"github.com/fitlife/loyalty/internal/app"
	"github.com/fitlife/loyalty/internal/config"
	"github.com/fitlife/loyalty/internal/logger"
	"github.com/fitlife/loyalty/internal/storage"
)

func main() {
	// загрузка конфига
	config := config.NewConfig()
	// инициализация логгера
	if err := logger.Initialize(config.Server.LogLevel); err != nil {
		panic(fmt.Sprintf("can't initialize logger: %s ", err.Error()))
	}
	defer logger.Sync()
	// подключение к хранилищу и миграции
	database, err := storage.NewDatabase(config.Server.DatabaseDSN)
	if err != nil {
		logger.Panic("can't create database:", err.Error())
	}
	if err := database.Initialize(); err != nil {
		logger.Panic("can't initialize database:", err.Error())
	}
	defer database.Close()
	// запуск сервиса
	app.Run(config, storage.NewStorage(database))
}
