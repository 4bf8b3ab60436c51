package database

import (
	"fmt"
	"time"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/company-records-api/internal/config"
)

// Open подключается к БД с повторными попытками и настраивает пул соединений.
// Возвращённый *gorm.DB владеет пулом; закрывать его должен вызывающий.
func Open(cfg config.DatabaseConfig, logger *zap.Logger) (*gorm.DB, error) {
	gormCfg := &gorm.Config{
		Logger:         gormlogger.Default.LogMode(parseLogLevel(cfg.LogLevel)),
		TranslateError: true,
	}

	attempts := max(cfg.ConnectAttempts, 1)

	var db *gorm.DB
	var err error
	for attempt := 1; attempt <= attempts; attempt++ {
		db, err = open(cfg, gormCfg)
		if err == nil {
			break
		}
		logger.Warn("database is not ready",
			zap.String("driver", cfg.Driver),
			zap.Int("attempt", attempt),
			zap.Error(err),
		)
		if attempt < attempts {
			time.Sleep(time.Second)
		}
	}
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database after %d attempts: %w", attempts, err)
	}

	logger.Info("connected to database",
		zap.String("driver", cfg.Driver),
		zap.String("host", cfg.Host),
		zap.String("dbname", cfg.DBName),
	)

	return db, nil
}

func open(cfg config.DatabaseConfig, gormCfg *gorm.Config) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch cfg.Driver {
	case config.DriverSQLite:
		dialector = sqlite.Open(cfg.DSN())
	default:
		dialector = postgres.Open(cfg.DSN())
	}

	db, err := gorm.Open(dialector, gormCfg)
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get sql.DB: %w", err)
	}

	if cfg.Driver == config.DriverSQLite {
		// SQLite пишет одним соединением, а :memory: живёт только в нём
		sqlDB.SetMaxOpenConns(1)
		sqlDB.SetMaxIdleConns(1)
	} else {
		if cfg.MaxOpenConns > 0 {
			sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
		}
		if cfg.MaxIdleConns > 0 {
			sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
		}
	}

	if err := sqlDB.Ping(); err != nil {
		sqlDB.Close()
		return nil, err
	}

	return db, nil
}

func parseLogLevel(level string) gormlogger.LogLevel {
	switch level {
	case "silent":
		return gormlogger.Silent
	case "error":
		return gormlogger.Error
	case "info":
		return gormlogger.Info
	default:
		return gormlogger.Warn
	}
}
