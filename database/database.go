package database

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/anjiri1684/error_paper/models"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

// Connect opens the configured database. An in-memory sqlite database is
// pinned to a single connection so every query sees the same data.
func Connect(driver, dsn string) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch driver {
	case DriverSQLite:
		dialector = sqlite.Open(withBusyTimeout(dsn))
	case DriverPostgres:
		dialector = postgres.Open(dsn)
	default:
		return nil, fmt.Errorf("unsupported database driver %q", driver)
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		SkipDefaultTransaction:                   true,
		DisableForeignKeyConstraintWhenMigrating: true,
		Logger:                                   logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if driver == DriverSQLite && isMemoryDSN(dsn) {
		sqlDB, err := db.DB()
		if err != nil {
			return nil, fmt.Errorf("failed to access sql pool: %w", err)
		}
		sqlDB.SetMaxOpenConns(1)
	}

	slog.Info("database connected", "driver", driver)
	return db, nil
}

func isMemoryDSN(dsn string) bool {
	return strings.HasPrefix(dsn, ":memory:") || strings.Contains(dsn, "mode=memory")
}

func withBusyTimeout(dsn string) string {
	if strings.Contains(dsn, "_busy_timeout") {
		return dsn
	}
	if strings.Contains(dsn, "?") {
		return dsn + "&_busy_timeout=5000"
	}
	return dsn + "?_busy_timeout=5000"
}

const learningStatsView = `CREATE VIEW learning_stats AS
SELECT
	e.id AS error_id,
	e.subject AS subject,
	e.category AS category,
	e.difficulty AS difficulty,
	(SELECT COUNT(*) FROM practice_questions pq WHERE pq.error_id = e.id) AS practice_question_count,
	(SELECT COUNT(*) FROM practice_records pr WHERE pr.error_id = e.id) AS practice_record_count
FROM errors e`

// Migrate creates the tables and rebuilds the learning_stats view.
func Migrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&models.ErrorQuestion{},
		&models.PracticeQuestion{},
		&models.PracticeRecord{},
	)
	if err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}

	if err := db.Exec("DROP VIEW IF EXISTS learning_stats").Error; err != nil {
		return fmt.Errorf("failed to drop learning_stats view: %w", err)
	}
	if err := db.Exec(learningStatsView).Error; err != nil {
		return fmt.Errorf("failed to create learning_stats view: %w", err)
	}

	slog.Info("database migration successful")
	return nil
}
