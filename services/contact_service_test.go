package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/BETHUELTHIPE/bethuelportfoliowebsite/database"
	"github.com/BETHUELTHIPE/bethuelportfoliowebsite/services"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/MonkyMars/gecho"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLogger() *gecho.Logger {
	return gecho.NewLogger(gecho.NewConfig(gecho.WithShowCaller(false)))
}

func TestContactServiceListContacts(t *testing.T) {
	sqldb, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer sqldb.Close()

	db := database.NewWithDB(sqldb)
	svc := services.NewContactService(testLogger(), db, nil)

	mock.ExpectQuery(`SELECT count\(\*\)`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(2))

	submitted := time.Date(2026, time.April, 2, 9, 30, 0, 0, time.UTC)
	rows := sqlmock.NewRows([]string{"id", "name", "email", "phone", "message", "submitted_at"}).
		AddRow(uuid.New().String(), "Alice", "alice@example.com", "0821234567", "Hi there", submitted).
		AddRow(uuid.New().String(), "Bob", "bob@example.com", "0837654321", "Question about a post", submitted.Add(-time.Hour))
	mock.ExpectQuery(`SELECT (.+) FROM "contacts"`).WillReturnRows(rows)

	result, err := svc.ListContacts(context.Background(), 1, 20)
	require.NoError(t, err)

	require.Len(t, result.Data, 2)
	assert.Equal(t, "Alice", result.Data[0].Name)
	assert.Equal(t, "Bob", result.Data[1].Name)

	assert.Equal(t, 1, result.Pagination.Page)
	assert.Equal(t, 20, result.Pagination.PageSize)
	assert.Equal(t, 2, result.Pagination.Total)
	assert.Equal(t, 1, result.Pagination.TotalPages)
	assert.False(t, result.Pagination.HasNext)
	assert.False(t, result.Pagination.HasPrev)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestContactServiceListContactsPaging(t *testing.T) {
	sqldb, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer sqldb.Close()

	db := database.NewWithDB(sqldb)
	svc := services.NewContactService(testLogger(), db, nil)

	mock.ExpectQuery(`SELECT count\(\*\)`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(45))
	mock.ExpectQuery(`SELECT (.+) FROM "contacts"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "email", "phone", "message", "submitted_at"}))

	result, err := svc.ListContacts(context.Background(), 2, 20)
	require.NoError(t, err)

	assert.Equal(t, 45, result.Pagination.Total)
	assert.Equal(t, 3, result.Pagination.TotalPages)
	assert.True(t, result.Pagination.HasNext)
	assert.True(t, result.Pagination.HasPrev)

	assert.NoError(t, mock.ExpectationsWereMet())
}
