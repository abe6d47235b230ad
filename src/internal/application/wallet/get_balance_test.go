package wallet

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jackyeh168/common_wallet/src/internal/domain/wallet"
)

func TestGetBalanceUseCase_WithoutCache(t *testing.T) {
	resolver, _ := newMockResolver()
	seedAccount(t, resolver, "alice@demo", "42")

	result, err := NewGetBalanceUseCase(resolver).Execute(GetBalanceQuery{AccountID: "alice@demo"})

	require.NoError(t, err)
	assert.Equal(t, []AssetBalance{{AssetID: "sora#demo", Amount: "42"}}, result.Balances)
	assert.False(t, result.FromCache)
}

func TestGetBalanceUseCase_ReadsThroughCache(t *testing.T) {
	// Arrange
	resolver, _ := newMockResolver()
	cache := NewMockBalanceCache()
	resolver.cache = cache
	seedAccount(t, resolver, "alice@demo", "42")
	useCase := NewGetBalanceUseCase(resolver)

	// Act
	first, err := useCase.Execute(GetBalanceQuery{AccountID: "alice@demo"})
	require.NoError(t, err)
	second, err := useCase.Execute(GetBalanceQuery{AccountID: "alice@demo"})
	require.NoError(t, err)

	// Assert
	assert.False(t, first.FromCache)
	assert.True(t, second.FromCache)
	assert.Equal(t, first.Balances, second.Balances)
	assert.Equal(t, 1, cache.PutCalls)
	assert.Equal(t, 1, resolver.accounts.FindCallCount, "第二次查詢不應讀取倉儲")
}

func TestGetBalanceUseCase_NotFound(t *testing.T) {
	resolver, _ := newMockResolver()

	_, err := NewGetBalanceUseCase(resolver).Execute(GetBalanceQuery{AccountID: "ghost@demo"})

	assert.ErrorIs(t, err, wallet.ErrAccountNotFound)
}

func TestGetBalanceUseCase_EvictionDuringLoad_DoesNotCacheStaleBalance(t *testing.T) {
	// Arrange: 讀取倉儲期間有一筆入金提交並淘汰快取
	resolver, _ := newMockResolver()
	cache := NewMockBalanceCache()
	resolver.cache = cache
	seedAccount(t, resolver, "alice@demo", "42")
	alice, err := wallet.NewAccountID("alice@demo")
	require.NoError(t, err)
	resolver.accounts.OnFind = func() {
		resolver.accounts.OnFind = nil
		cache.Invalidate(alice)
	}
	useCase := NewGetBalanceUseCase(resolver)

	// Act
	first, err := useCase.Execute(GetBalanceQuery{AccountID: "alice@demo"})
	require.NoError(t, err)
	second, err := useCase.Execute(GetBalanceQuery{AccountID: "alice@demo"})
	require.NoError(t, err)

	// Assert
	assert.False(t, first.FromCache)
	assert.False(t, second.FromCache, "淘汰後的舊快照不應回填")
	assert.Equal(t, 2, resolver.accounts.FindCallCount)
}
