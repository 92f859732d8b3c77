package database

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"
)

// Store is the storage accessor shared by every handler. All statements are
// parameterized with ? placeholders.
type Store struct {
	db *gorm.DB
}

func NewStore(db *gorm.DB) *Store {
	return &Store{db: db}
}

// DB exposes the underlying handle for migrations and maintenance.
func (s *Store) DB() *gorm.DB {
	return s.db
}

// GetRow scans the first row of the result into dest and reports whether a
// row was found.
func (s *Store) GetRow(ctx context.Context, dest any, query string, args ...any) (bool, error) {
	result := s.db.WithContext(ctx).Raw(query, args...).Scan(dest)
	if result.Error != nil {
		return false, fmt.Errorf("get row: %w", result.Error)
	}
	return result.RowsAffected > 0, nil
}

// GetAllRows scans every row of the result into dest, which must point to a
// slice.
func (s *Store) GetAllRows(ctx context.Context, dest any, query string, args ...any) error {
	if err := s.db.WithContext(ctx).Raw(query, args...).Scan(dest).Error; err != nil {
		return fmt.Errorf("get all rows: %w", err)
	}
	return nil
}

// RunQuery executes a statement without a result set and returns the number
// of affected rows.
func (s *Store) RunQuery(ctx context.Context, query string, args ...any) (int64, error) {
	result := s.db.WithContext(ctx).Exec(query, args...)
	if result.Error != nil {
		return 0, fmt.Errorf("run query: %w", result.Error)
	}
	return result.RowsAffected, nil
}

// Transaction runs fn against a store bound to one transaction. The
// transaction commits when fn returns nil and rolls back otherwise.
func (s *Store) Transaction(ctx context.Context, fn func(tx *Store) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&Store{db: tx})
	})
}

type Statistics struct {
	Driver            string `json:"driver"`
	OpenConnections   int    `json:"open_connections"`
	InUse             int    `json:"in_use"`
	Idle              int    `json:"idle"`
	WaitCount         int64  `json:"wait_count"`
	WaitDurationMs    int64  `json:"wait_duration_ms"`
	ErrorQuestions    int64  `json:"error_questions"`
	PracticeQuestions int64  `json:"practice_questions"`
	PracticeRecords   int64  `json:"practice_records"`
}

// Statistics pings the database and reports pool usage and row counts.
func (s *Store) Statistics(ctx context.Context) (Statistics, error) {
	sqlDB, err := s.db.DB()
	if err != nil {
		return Statistics{}, fmt.Errorf("access sql pool: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	if err := sqlDB.PingContext(pingCtx); err != nil {
		return Statistics{}, fmt.Errorf("ping database: %w", err)
	}

	pool := sqlDB.Stats()
	stats := Statistics{
		Driver:          s.db.Dialector.Name(),
		OpenConnections: pool.OpenConnections,
		InUse:           pool.InUse,
		Idle:            pool.Idle,
		WaitCount:       pool.WaitCount,
		WaitDurationMs:  pool.WaitDuration.Milliseconds(),
	}

	counts := []struct {
		table string
		dest  *int64
	}{
		{"errors", &stats.ErrorQuestions},
		{"practice_questions", &stats.PracticeQuestions},
		{"practice_records", &stats.PracticeRecords},
	}
	for _, c := range counts {
		if err := s.db.WithContext(ctx).Table(c.table).Count(c.dest).Error; err != nil {
			return Statistics{}, fmt.Errorf("count %s: %w", c.table, err)
		}
	}
	return stats, nil
}
