package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/localnerve/contextdb/internal/config"
	"github.com/localnerve/contextdb/internal/database"
	"github.com/localnerve/contextdb/internal/handlers"
	"github.com/localnerve/contextdb/internal/logger"
)

func main() {
	// A missing .env is fine, the environment may carry everything
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		panic("failed to load configuration: " + err.Error())
	}

	log, err := logger.New(cfg.LogMode)
	if err != nil {
		panic("failed to build logger: " + err.Error())
	}
	defer log.Sync()

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatal("failed to connect to database", "db_type", cfg.DBType, "error", err)
	}
	defer database.Close(db)

	// Bring the schema up before serving
	if err := database.AutoMigrate(db); err != nil {
		log.Fatal("failed to migrate schema", "error", err)
	}

	app := handlers.NewApp(cfg, db)

	// Graceful shutdown
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-c
		log.Info("gracefully shutting down")
		_ = app.Shutdown()
	}()

	log.Info("starting server", "port", cfg.Port, "db_type", cfg.DBType)
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatal("failed to start server", "error", err)
	}

	log.Info("server stopped")
}
