package wallet

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jackyeh168/common_wallet/src/internal/domain/wallet"
)

// seedAccount 直接寫入一個帶有 sora#demo 餘額的帳戶（不經過 Use Case，不發布事件）
func seedAccount(t *testing.T, r *mockResolver, id, balance string) {
	t.Helper()
	accountID, err := wallet.NewAccountID(id)
	require.NoError(t, err)
	account, err := wallet.NewWalletAccount(accountID, []wallet.AssetID{r.settings.DefaultAsset})
	require.NoError(t, err)

	amount, err := wallet.ParseAmount(balance)
	require.NoError(t, err)
	if !amount.IsZero() {
		require.NoError(t, account.Deposit(r.settings.DefaultAsset, amount, wallet.NewTransactionID()))
	}
	account.PullEvents()

	require.NoError(t, r.accounts.Save(nil, account))
	r.accounts.SaveCallCount = 0
}

// balanceOf 讀取 sora#demo 餘額字串
func balanceOf(t *testing.T, r *mockResolver, id string) string {
	t.Helper()
	accountID, err := wallet.NewAccountID(id)
	require.NoError(t, err)
	account, err := r.accounts.FindByID(nil, accountID)
	require.NoError(t, err)
	balance, err := account.Balance(r.settings.DefaultAsset)
	require.NoError(t, err)
	return balance.String()
}
