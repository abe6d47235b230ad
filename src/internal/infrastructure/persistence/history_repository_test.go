package persistence

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jackyeh168/common_wallet/src/internal/domain/wallet"
)

func TestHistoryRepository_FindByAccount_NewestFirstWithPaging(t *testing.T) {
	// Arrange
	db, cleanup := setupTestDB(t)
	defer cleanup()
	repo := NewHistoryRepository(db)
	base := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)

	require.NoError(t, repo.Append(nil,
		newTestRecord(t, "alice@demo", wallet.DirectionDeposit, "1", base),
		newTestRecord(t, "alice@demo", wallet.DirectionDeposit, "2", base.Add(time.Minute)),
		newTestRecord(t, "alice@demo", wallet.DirectionWithdraw, "3", base.Add(2*time.Minute)),
		newTestRecord(t, "bob@demo", wallet.DirectionDeposit, "9", base.Add(3*time.Minute)),
	))
	alice := mustAccountID(t, "alice@demo")

	// Act
	firstPage, err := repo.FindByAccount(nil, alice, 0, 2)
	require.NoError(t, err)
	secondPage, err := repo.FindByAccount(nil, alice, 2, 2)
	require.NoError(t, err)

	// Assert
	require.Len(t, firstPage, 2)
	assert.Equal(t, "3", firstPage[0].Amount().String())
	assert.Equal(t, wallet.DirectionWithdraw, firstPage[0].Direction())
	assert.Equal(t, "2", firstPage[1].Amount().String())
	require.Len(t, secondPage, 1)
	assert.Equal(t, "1", secondPage[0].Amount().String())
	assert.True(t, secondPage[0].PeerID().IsEmpty())
}

func TestHistoryRepository_Append_TransferPairSharesTransactionID(t *testing.T) {
	// Arrange
	db, cleanup := setupTestDB(t)
	defer cleanup()
	repo := NewHistoryRepository(db)
	txID := wallet.NewTransactionID()
	alice := mustAccountID(t, "alice@demo")
	bob := mustAccountID(t, "bob@demo")
	asset := mustAssetID(t, "sora#demo")
	now := time.Now()

	out, err := wallet.NewTransactionRecord(txID, alice, bob, asset, mustAmount(t, "10"), mustAmount(t, "0.1"), wallet.DirectionOutgoing, "dinner", now)
	require.NoError(t, err)
	in, err := wallet.NewTransactionRecord(txID, bob, alice, asset, mustAmount(t, "10"), wallet.ZeroAmount(), wallet.DirectionIncoming, "dinner", now)
	require.NoError(t, err)

	// Act
	require.NoError(t, repo.Append(nil, out, in))
	aliceRecords, err := repo.FindByAccount(nil, alice, 0, 10)
	require.NoError(t, err)
	bobRecords, err := repo.FindByAccount(nil, bob, 0, 10)
	require.NoError(t, err)

	// Assert
	require.Len(t, aliceRecords, 1)
	require.Len(t, bobRecords, 1)
	assert.True(t, aliceRecords[0].TransactionID().Equals(txID))
	assert.True(t, bobRecords[0].TransactionID().Equals(txID))
	assert.True(t, aliceRecords[0].PeerID().Equals(bob))
	assert.Equal(t, "0.1", aliceRecords[0].Fee().String())
	assert.Equal(t, "dinner", bobRecords[0].Details())
}

func TestHistoryRepository_Append_Empty_IsNoop(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	assert.NoError(t, NewHistoryRepository(db).Append(nil))
}
