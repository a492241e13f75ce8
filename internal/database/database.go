package database

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/VHAlvesS/caseAnka-backend/internal/config"
)

// implements server/Service interface via usecase
type service struct {
	db   *gorm.DB
	name string
}

func New(cfg config.Config, logger *slog.Logger) (*service, error) {
	connStr := fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=disable",
		cfg.DBUser, cfg.DBPassword, cfg.DBHost, cfg.DBPort, cfg.DBDatabase,
	)

	gormDB, err := gorm.Open(postgres.Open(connStr), &gorm.Config{
		Logger: NewSlogGormLogger(logger, cfg.LogLevel),
		// Constraint violations become gorm.ErrDuplicatedKey /
		// gorm.ErrForeignKeyViolated, the authoritative conflict signals.
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	db, err := gormDB.DB()
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(cfg.DBMaxOpenConns)

	// migrate the schema
	err = gormDB.AutoMigrate(
		Asset{},
		Client{},
		Allocation{},
	)
	if err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}

	return &service{db: gormDB, name: cfg.DBDatabase}, nil
}

// Health pings the database and reports connection-pool statistics.
func (s *service) Health() map[string]string {
	ctx, cancel := context.WithTimeout(context.Background(), 1*time.Second)
	defer cancel()

	stats := make(map[string]string)

	db, _ := s.db.DB()

	if err := db.PingContext(ctx); err != nil {
		stats["status"] = "down"
		stats["error"] = fmt.Sprintf("db down: %v", err)
		return stats
	}

	stats["status"] = "up"
	stats["message"] = "It's healthy"

	dbStats := db.Stats()
	stats["open_connections"] = strconv.Itoa(dbStats.OpenConnections)
	stats["in_use"] = strconv.Itoa(dbStats.InUse)
	stats["idle"] = strconv.Itoa(dbStats.Idle)
	stats["wait_count"] = strconv.FormatInt(dbStats.WaitCount, 10)
	stats["wait_duration"] = dbStats.WaitDuration.String()
	stats["max_idle_closed"] = strconv.FormatInt(dbStats.MaxIdleClosed, 10)
	stats["max_lifetime_closed"] = strconv.FormatInt(dbStats.MaxLifetimeClosed, 10)

	if dbStats.WaitCount > 1000 {
		stats["message"] = "The database has a high number of wait events, indicating potential bottlenecks."
	}

	return stats
}

func (s *service) Close() error {
	db, err := s.db.DB()
	if err != nil {
		return err
	}
	slog.Info("disconnected from database", "database", s.name)
	return db.Close()
}
