package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/company-records-api/internal/config"
	"github.com/company-records-api/internal/database"
	"github.com/company-records-api/internal/handler"
	"github.com/company-records-api/internal/logger"
	"github.com/company-records-api/internal/repository"
	"github.com/company-records-api/internal/service"
)

func main() {
	// Загрузка конфигурации
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Инициализация логгера
	log, err := logger.New(cfg.Log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to init logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync() //nolint:errcheck

	if err := run(cfg, log); err != nil {
		log.Error("server failed", zap.Error(err))
		os.Exit(1)
	}
}

func run(cfg *config.Config, log *zap.Logger) error {
	// Подключение к БД
	db, err := database.Open(cfg.Database, log)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get sql.DB: %w", err)
	}
	defer sqlDB.Close()

	// Запуск миграций
	if cfg.Database.RunMigrations {
		if err := database.Migrate(context.Background(), sqlDB, cfg.Database.Driver, log); err != nil {
			return fmt.Errorf("failed to run migrations: %w", err)
		}
	}

	// Инициализация репозиториев
	deptRepo := repository.NewDepartmentRepository(db)
	empRepo := repository.NewEmployeeRepository(db)

	// Инициализация сервисов
	deptService := service.NewDepartmentService(deptRepo)
	empService := service.NewEmployeeService(empRepo)

	// Настройка роутера
	router := handler.NewRouter(
		handler.NewDepartmentHandler(deptService, log),
		handler.NewEmployeeHandler(empService, log),
		handler.NewHealthHandler(cfg.App, log),
		cfg.CORS.AllowedOrigins,
		log,
	)

	server := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router.Setup(),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	done := make(chan struct{})
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-quit
		log.Info("server is shutting down...")

		ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()

		if err := server.Shutdown(ctx); err != nil {
			log.Error("could not gracefully shutdown the server", zap.Error(err))
		}
		close(done)
	}()

	log.Info("server is starting",
		zap.String("port", cfg.Server.Port),
		zap.String("driver", cfg.Database.Driver),
		zap.String("env", cfg.App.Env),
	)
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("could not listen on port %s: %w", cfg.Server.Port, err)
	}

	<-done
	log.Info("server stopped")
	return nil
}
