package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"

	"expenses/models"
)

var expenseColumns = []string{"id", "amount", "category", "note", "date", "created_at"}

func setupMockStore(t *testing.T) (*GormStore, sqlmock.Sqlmock) {
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	gormDB, err := gorm.Open(mysql.New(mysql.Config{
		Conn:                      sqlDB,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{})
	require.NoError(t, err)

	return NewGormStore(gormDB), mock
}

func TestGormStore_Create(t *testing.T) {
	s, mock := setupMockStore(t)

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `expenses`").
		WillReturnResult(sqlmock.NewResult(5, 1))
	mock.ExpectCommit()

	note := "Lunch"
	date := time.Date(2026, 2, 20, 0, 0, 0, 0, time.Local)
	got, err := s.Create(context.Background(), models.NewExpense{Amount: 15.5, Category: "Food", Note: &note, Date: date})
	require.NoError(t, err)

	assert.Equal(t, uint(5), got.ID)
	assert.Equal(t, 15.5, got.Amount)
	assert.Equal(t, "Food", got.Category)
	assert.True(t, got.Date.Equal(date))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGormStore_Create_Error(t *testing.T) {
	s, mock := setupMockStore(t)

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `expenses`").
		WillReturnError(errors.New("disk full"))
	mock.ExpectRollback()

	_, err := s.Create(context.Background(), models.NewExpense{Amount: 1, Category: "Other", Date: time.Now()})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "disk full")
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGormStore_List(t *testing.T) {
	s, mock := setupMockStore(t)

	from := time.Date(2024, 1, 1, 0, 0, 0, 0, time.Local)
	to := time.Date(2024, 1, 31, 23, 59, 59, 999_000_000, time.Local)

	mock.ExpectQuery("SELECT \\* FROM `expenses` WHERE date >= .* AND date <= .* AND category = .* ORDER BY date DESC,id DESC").
		WithArgs(sqlmock.AnyArg(), sqlmock.AnyArg(), "Food").
		WillReturnRows(sqlmock.NewRows(expenseColumns).
			AddRow(2, 5.0, "Food", nil, time.Date(2024, 1, 20, 0, 0, 0, 0, time.Local), time.Now()).
			AddRow(1, 10.0, "Food", "Lunch", time.Date(2024, 1, 2, 0, 0, 0, 0, time.Local), time.Now()))

	got, err := s.List(context.Background(), ListFilter{DateFrom: &from, DateTo: &to, Category: "Food"})
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, uint(2), got[0].ID)
	assert.Nil(t, got[0].Note)
	require.NotNil(t, got[1].Note)
	assert.Equal(t, "Lunch", *got[1].Note)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGormStore_List_NoFilter(t *testing.T) {
	s, mock := setupMockStore(t)

	mock.ExpectQuery("SELECT \\* FROM `expenses` ORDER BY date DESC,id DESC").
		WillReturnRows(sqlmock.NewRows(expenseColumns))

	got, err := s.List(context.Background(), ListFilter{})
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGormStore_List_Error(t *testing.T) {
	s, mock := setupMockStore(t)

	mock.ExpectQuery("SELECT .* FROM `expenses`").
		WillReturnError(errors.New("connection refused"))

	_, err := s.List(context.Background(), ListFilter{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "connection refused")
}

func TestGormStore_DeleteByID(t *testing.T) {
	s, mock := setupMockStore(t)

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM `expenses` WHERE id = ").
		WithArgs(7).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	n, err := s.DeleteByID(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGormStore_DeleteByID_NotFound(t *testing.T) {
	s, mock := setupMockStore(t)

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM `expenses`").
		WithArgs(99).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	n, err := s.DeleteByID(context.Background(), 99)
	require.NoError(t, err)
	assert.Equal(t, int64(0), n)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGormStore_ListInRange(t *testing.T) {
	s, mock := setupMockStore(t)

	start := time.Date(2024, 2, 1, 0, 0, 0, 0, time.Local)
	end := time.Date(2024, 2, 29, 23, 59, 59, 999_000_000, time.Local)

	mock.ExpectQuery("SELECT \\* FROM `expenses` WHERE date >= .* AND date <= .* ORDER BY id ASC").
		WithArgs(sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows(expenseColumns).
			AddRow(1, 10.0, "Food", nil, start, time.Now()).
			AddRow(2, 3.0, "Transport", nil, end, time.Now()))

	got, err := s.ListInRange(context.Background(), start, end)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "Transport", got[1].Category)
	require.NoError(t, mock.ExpectationsWereMet())
}
