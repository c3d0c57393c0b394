package transaction

import (
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	domaintx "github.com/harubank/account/pkg/domain/transaction"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	mockDb, mock, err := sqlmock.New()
	require.NoError(t, err)
	dialector := postgres.New(postgres.Config{
		Conn:       mockDb,
		DriverName: "postgres",
	})
	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	return db, mock
}

func TestTransactionRepository_Get(t *testing.T) {
	db, mock := newMockDB(t)
	txRepo := repository{db: db}

	now := time.Now().UTC()
	rows := sqlmock.NewRows([]string{
		"id", "transaction_id", "account_id", "account_number",
		"type", "result", "amount", "balance_snapshot", "transacted_at", "created_at",
	}).AddRow(3, "abc123", 7, "1000000000", "USE", "S", 200, 800, now, now)
	mock.ExpectQuery(`SELECT (.+) FROM "transactions" WHERE transaction_id = \$1 (.+) LIMIT \$2`).
		WithArgs("abc123", 1).
		WillReturnRows(rows)

	tx, err := txRepo.Get("abc123")
	require.NoError(t, err)
	require.NotNil(t, tx)
	assert.Equal(t, "abc123", tx.TransactionID)
	assert.Equal(t, domaintx.TypeUse, tx.Type)
	assert.Equal(t, domaintx.ResultSuccess, tx.Result)
	assert.Equal(t, int64(800), tx.BalanceSnapshot)

	mock.ExpectQuery(`SELECT (.+) FROM "transactions" WHERE transaction_id = \$1 (.+) LIMIT \$2`).
		WithArgs("missing", 1).
		WillReturnError(gorm.ErrRecordNotFound)

	tx, err = txRepo.Get("missing")
	require.NoError(t, err)
	assert.Nil(t, tx)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestTransactionRepository_Create(t *testing.T) {
	db, mock := newMockDB(t)
	txRepo := repository{db: db}

	tx := domaintx.New(domaintx.TypeUse, domaintx.ResultSuccess, 7, "1000000000", 200, 800)

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "transactions" (.+) RETURNING "id"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(3)))
	mock.ExpectCommit()

	require.NoError(t, txRepo.Create(tx))
	assert.Equal(t, int64(3), tx.ID)
	require.NoError(t, mock.ExpectationsWereMet())
}
