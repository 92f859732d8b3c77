package database

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newMockStore(t *testing.T) (*Store, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	return NewStore(db), mock
}

func TestStore_StorageFaultsPropagate(t *testing.T) {
	ctx := context.Background()
	fault := errors.New("connection reset by peer")

	t.Run("run query", func(t *testing.T) {
		s, mock := newMockStore(t)
		mock.ExpectExec(regexp.QuoteMeta("DELETE FROM practice_questions WHERE id = $1")).
			WithArgs("Q1").
			WillReturnError(fault)

		_, err := s.RunQuery(ctx, "DELETE FROM practice_questions WHERE id = ?", "Q1")
		require.ErrorIs(t, err, fault)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("get row", func(t *testing.T) {
		s, mock := newMockStore(t)
		mock.ExpectQuery(regexp.QuoteMeta("SELECT * FROM errors WHERE id = $1")).
			WithArgs("E1").
			WillReturnError(fault)

		var dest struct{ ID string }
		found, err := s.GetRow(ctx, &dest, "SELECT * FROM errors WHERE id = ?", "E1")
		require.ErrorIs(t, err, fault)
		assert.False(t, found)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("transaction rolls back", func(t *testing.T) {
		s, mock := newMockStore(t)
		mock.ExpectBegin()
		mock.ExpectExec(regexp.QuoteMeta("INSERT INTO practice_records")).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec(regexp.QuoteMeta("INSERT INTO practice_records")).
			WillReturnError(fault)
		mock.ExpectRollback()

		err := s.Transaction(ctx, func(tx *Store) error {
			for i := range 2 {
				if _, err := tx.RunQuery(ctx, "INSERT INTO practice_records (id, question_index) VALUES (?, ?)", "R", i); err != nil {
					return err
				}
			}
			return nil
		})
		require.ErrorIs(t, err, fault)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
