package main

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/lib/pq"

	"github.com/m04kA/SMC-BookingBrowser/internal/config"
	"github.com/m04kA/SMC-BookingBrowser/internal/infra/storage/catalog"
	"github.com/m04kA/SMC-BookingBrowser/internal/service/session"
	"github.com/m04kA/SMC-BookingBrowser/pkg/logger"
)

// app общие для всех команд зависимости
type app struct {
	cfg     *config.Config
	log     *logger.Logger
	catalog *catalog.Data
}

// bootstrap загружает конфигурацию, логгер и справочник
func bootstrap(ctx context.Context, path string) (*app, error) {
	// Загружаем конфигурацию
	cfg, err := config.Load(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	// Инициализируем логгер
	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	log.Info("Configuration loaded from %s", path)

	data, err := loadCatalog(ctx, cfg, log)
	if err != nil {
		_ = log.Close()
		return nil, err
	}

	return &app{cfg: cfg, log: log, catalog: data}, nil
}

func (a *app) close() {
	_ = a.log.Close()
}

// reference справочные списки для новой сессии
func (a *app) reference() session.Reference {
	return session.Reference{
		Resources:    a.catalog.Resources(),
		TimeSlots:    a.catalog.TimeSlots(),
		CalendarDays: a.catalog.CalendarDays(),
	}
}

func loadCatalog(ctx context.Context, cfg *config.Config, log *logger.Logger) (*catalog.Data, error) {
	if cfg.Catalog.Source != config.CatalogSourcePostgres {
		data, err := catalog.Load(ctx, catalog.NewStatic())
		if err != nil {
			return nil, fmt.Errorf("failed to load static catalog: %w", err)
		}
		log.Info("Catalog loaded from built-in data: resources=%d", len(data.Resources()))
		return data, nil
	}

	// Подключаемся к базе данных
	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	// Справочник читается один раз, соединение после загрузки не нужно
	defer db.Close()

	// Настраиваем connection pool
	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

	// Проверяем соединение
	if err := db.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	data, err := catalog.Load(ctx, catalog.NewRepository(db))
	if err != nil {
		return nil, fmt.Errorf("failed to load catalog from database: %w", err)
	}
	log.Info("Catalog loaded from database: resources=%d, slots=%d",
		len(data.Resources()), len(data.TimeSlots()))
	return data, nil
}
