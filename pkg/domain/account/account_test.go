package account_test

import (
	"io"
	"log"
	"log/slog"
	"os"
	"testing"

	"github.com/harubank/account/pkg/domain"
	domainaccount "github.com/harubank/account/pkg/domain/account"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestMain runs before any tests and applies globally for all tests in the package.
func TestMain(m *testing.M) {
	slog.SetDefault(slog.New(slog.NewTextHandler(io.Discard, nil)))
	log.SetOutput(io.Discard)

	exitVal := m.Run()
	os.Exit(exitVal)
}

func TestBuildAccount(t *testing.T) {
	t.Parallel()
	acc, err := domainaccount.New().
		WithUserID(12).
		WithNumber("1000000000").
		WithBalance(1000).
		Build()
	require.NoError(t, err)
	assert.Equal(t, domainaccount.StatusInUse, acc.Status)
	assert.Equal(t, int64(1000), acc.Balance)
	assert.False(t, acc.RegisteredAt.IsZero())
	assert.Nil(t, acc.UnregisteredAt)
}

func TestBuildAccount_Invalid(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name  string
		build *domainaccount.Builder
	}{
		{
			name:  "missing user",
			build: domainaccount.New().WithNumber("1000000000"),
		},
		{
			name:  "short number",
			build: domainaccount.New().WithUserID(1).WithNumber("123"),
		},
		{
			name: "negative balance",
			build: domainaccount.New().
				WithUserID(1).
				WithNumber("1000000000").
				WithBalance(-1),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := tt.build.Build()
			assert.ErrorIs(t, err, domain.ErrInvalidRequest)
		})
	}
}

func TestDebit(t *testing.T) {
	t.Parallel()
	acc, err := domainaccount.New().
		WithUserID(1).
		WithNumber("1000000000").
		WithBalance(10000).
		Build()
	require.NoError(t, err)

	t.Run("successful debit", func(t *testing.T) {
		next, err := acc.Debit(1000)
		require.NoError(t, err)
		assert.Equal(t, int64(9000), next.Balance)
		assert.Equal(t, int64(10000), acc.Balance, "receiver must be unchanged")
	})

	t.Run("amount exceeds balance", func(t *testing.T) {
		next, err := acc.Debit(10001)
		assert.ErrorIs(t, err, domain.ErrAmountExceedBalance)
		assert.Equal(t, int64(10000), next.Balance, "balance unchanged on failure")
	})

	t.Run("full balance is spendable", func(t *testing.T) {
		next, err := acc.Debit(10000)
		require.NoError(t, err)
		assert.Equal(t, int64(0), next.Balance)
	})
}

func TestCredit(t *testing.T) {
	t.Parallel()
	acc, err := domainaccount.New().
		WithUserID(1).
		WithNumber("1000000000").
		WithBalance(500).
		Build()
	require.NoError(t, err)

	t.Run("successful credit", func(t *testing.T) {
		next, err := acc.Credit(200)
		require.NoError(t, err)
		assert.Equal(t, int64(700), next.Balance)
		assert.Equal(t, int64(500), acc.Balance, "receiver must be unchanged")
	})

	t.Run("negative amount", func(t *testing.T) {
		_, err := acc.Credit(-1)
		assert.ErrorIs(t, err, domain.ErrInvalidRequest)
	})
}

func TestDebitCreditRoundTrip(t *testing.T) {
	t.Parallel()
	acc, err := domainaccount.New().
		WithUserID(1).
		WithNumber("1000000000").
		WithBalance(1000).
		Build()
	require.NoError(t, err)

	debited, err := acc.Debit(200)
	require.NoError(t, err)
	restored, err := debited.Credit(200)
	require.NoError(t, err)
	assert.Equal(t, acc.Balance, restored.Balance)
}
