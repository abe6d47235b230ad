package wallet

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jackyeh168/common_wallet/src/internal/domain/shared"
	"github.com/jackyeh168/common_wallet/src/internal/domain/wallet"
)

func TestDepositUseCase_Success(t *testing.T) {
	// Arrange
	resolver, center := newMockResolver()
	seedAccount(t, resolver, "alice@demo", "1")
	useCase := NewDepositUseCase(resolver)

	// Act
	result, err := useCase.Execute(DepositCommand{AccountID: "alice@demo", Amount: "2.123456789", Details: "salary"})

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "2.12345678", result.Amount, "截斷到 8 位小數")
	assert.Equal(t, "3.12345678", result.Balance)
	assert.Equal(t, "sora#demo", result.AssetID)
	assert.NotEmpty(t, result.TransactionID)
	assert.Equal(t, "3.12345678", balanceOf(t, resolver, "alice@demo"))

	require.Len(t, resolver.history.store.records, 1)
	record := resolver.history.store.records[0]
	assert.Equal(t, wallet.DirectionDeposit, record.Direction())
	assert.Equal(t, "salary", record.Details())
	assert.Equal(t, result.TransactionID, record.TransactionID().String())

	assert.Equal(t, []shared.EventKind{wallet.EventKindFundsDeposited}, center.publishedKinds())
	assert.Len(t, center.Notified, 1)
}

func TestDepositUseCase_InvalidAmount_ReturnsError(t *testing.T) {
	for _, amount := range []string{"", "abc", "0", "-5"} {
		t.Run(amount, func(t *testing.T) {
			resolver, _ := newMockResolver()
			seedAccount(t, resolver, "alice@demo", "1")

			_, err := NewDepositUseCase(resolver).Execute(DepositCommand{AccountID: "alice@demo", Amount: amount})

			assert.ErrorIs(t, err, wallet.ErrInvalidAmount)
			assert.Equal(t, 0, resolver.txManager.InTransactionCallCount)
		})
	}
}

func TestDepositUseCase_AccountNotFound_ReturnsError(t *testing.T) {
	resolver, center := newMockResolver()

	_, err := NewDepositUseCase(resolver).Execute(DepositCommand{AccountID: "ghost@demo", Amount: "1"})

	assert.ErrorIs(t, err, wallet.ErrAccountNotFound)
	assert.Empty(t, center.Notified)
}

func TestDepositUseCase_UnsupportedAsset_ReturnsError(t *testing.T) {
	resolver, _ := newMockResolver()
	seedAccount(t, resolver, "alice@demo", "1")

	_, err := NewDepositUseCase(resolver).Execute(DepositCommand{AccountID: "alice@demo", AssetID: "val#demo", Amount: "1"})

	assert.ErrorIs(t, err, wallet.ErrAssetNotSupported)
	assert.Equal(t, "1", balanceOf(t, resolver, "alice@demo"))
}

func TestDepositUseCase_HistoryFailure_RollsBack(t *testing.T) {
	// Arrange
	resolver, center := newMockResolver()
	seedAccount(t, resolver, "alice@demo", "1")
	resolver.history.AppendErr = errSimulated

	// Act
	_, err := NewDepositUseCase(resolver).Execute(DepositCommand{AccountID: "alice@demo", Amount: "5"})

	// Assert
	assert.ErrorIs(t, err, errSimulated)
	assert.Equal(t, "1", balanceOf(t, resolver, "alice@demo"), "餘額應回滾")
	assert.Empty(t, center.Published)
}

func TestDepositUseCase_NotifyFailure_DoesNotFailUseCase(t *testing.T) {
	resolver, center := newMockResolver()
	seedAccount(t, resolver, "alice@demo", "1")
	center.NotifyErr = errSimulated

	result, err := NewDepositUseCase(resolver).Execute(DepositCommand{AccountID: "alice@demo", Amount: "5"})

	require.NoError(t, err)
	assert.Equal(t, "6", result.Balance)
}
