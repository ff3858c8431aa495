package repository_test

import (
	"testing"

	"github.com/dj1alilou/windyluxury/internal/model"
	"github.com/dj1alilou/windyluxury/internal/repository"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newMockProductRepo(t *testing.T) (sqlmock.Sqlmock, repository.ProductRepository) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err, "Failed to create sqlmock")
	t.Cleanup(func() { db.Close() })

	gdb, err := gorm.Open(postgres.New(postgres.Config{Conn: db, PreferSimpleProtocol: true}), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	return mock, repository.NewProductRepo(gdb)
}

func productRow(id string, stock int) *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "name", "price", "stock"}).
		AddRow(id, "Bague Or", "5000", stock)
}

// The decrement must read the row with a pessimistic lock so two
// concurrent orders cannot both take the last unit.
func TestDecrementStockLocksRow(t *testing.T) {
	mock, repo := newMockProductRepo(t)

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT \* FROM "products" WHERE id = \$1 .* FOR UPDATE`).
		WithArgs("p-1", 1).
		WillReturnRows(productRow("p-1", 3))
	mock.ExpectExec(`UPDATE "products" SET`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := repo.DecrementStock([]model.OrderLine{{ProductID: "p-1", Quantity: 2}})
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestDecrementStockRollsBackWhenShort(t *testing.T) {
	mock, repo := newMockProductRepo(t)

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT \* FROM "products" WHERE id = \$1 .* FOR UPDATE`).
		WithArgs("p-1", 1).
		WillReturnRows(productRow("p-1", 1))
	mock.ExpectRollback()

	err := repo.DecrementStock([]model.OrderLine{{ProductID: "p-1", Quantity: 2}})
	require.ErrorIs(t, err, repository.ErrInsufficientStock)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRestoreStockLocksRow(t *testing.T) {
	mock, repo := newMockProductRepo(t)

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT \* FROM "products" WHERE id = \$1 .* FOR UPDATE`).
		WithArgs("p-1", 1).
		WillReturnRows(productRow("p-1", 0))
	mock.ExpectExec(`UPDATE "products" SET`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := repo.RestoreStock([]model.OrderLine{{ProductID: "p-1", Quantity: 2}})
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}
