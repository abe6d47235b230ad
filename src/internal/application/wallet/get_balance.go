package wallet

import (
	"fmt"
	"sort"

	"github.com/jackyeh168/common_wallet/src/internal/domain/shared"
	"github.com/jackyeh168/common_wallet/src/internal/domain/wallet"
)

// GetBalanceQuery 查詢餘額
type GetBalanceQuery struct {
	AccountID string
}

// GetBalanceResult 查詢餘額結果
type GetBalanceResult struct {
	AccountID string
	Balances  []AssetBalance
	FromCache bool
}

// GetBalanceUseCase 查詢餘額 Use Case
//
// 先讀 BalanceCache（如果有），未命中時查詢倉儲並回填快取。
// 快取由 Event Center 的餘額事件淘汰。
type GetBalanceUseCase struct {
	resolver Resolver
}

// NewGetBalanceUseCase 創建 Use Case 實例
func NewGetBalanceUseCase(resolver Resolver) *GetBalanceUseCase {
	return &GetBalanceUseCase{resolver: resolver}
}

// Execute 執行查詢餘額
func (uc *GetBalanceUseCase) Execute(query GetBalanceQuery) (*GetBalanceResult, error) {
	return uc.ExecuteWithContext(nil, query)
}

// ExecuteWithContext 在事務上下文中執行查詢（ctx 可為 nil，不經過快取）
func (uc *GetBalanceUseCase) ExecuteWithContext(
	ctx shared.TransactionContext,
	query GetBalanceQuery,
) (*GetBalanceResult, error) {
	accountID, err := wallet.NewAccountID(query.AccountID)
	if err != nil {
		return nil, fmt.Errorf("failed to parse account ID: %w", err)
	}

	cache := uc.resolver.BalanceCache()
	useCache := cache != nil && ctx == nil

	var generation uint64
	if useCache {
		generation = cache.Generation()
		if balances, ok := cache.Get(accountID); ok {
			return &GetBalanceResult{
				AccountID: accountID.String(),
				Balances:  balanceViews(sortedAssets(balances), balances),
				FromCache: true,
			}, nil
		}
	}

	account, err := uc.resolver.Accounts().FindByID(ctx, accountID)
	if err != nil {
		return nil, fmt.Errorf("failed to find account: %w", err)
	}

	balances := account.Balances()
	if useCache {
		cache.PutIfCurrent(accountID, balances, generation)
	}

	return &GetBalanceResult{
		AccountID: accountID.String(),
		Balances:  balanceViews(account.Assets(), balances),
	}, nil
}

func sortedAssets(balances map[wallet.AssetID]wallet.Amount) []wallet.AssetID {
	assets := make([]wallet.AssetID, 0, len(balances))
	for asset := range balances {
		assets = append(assets, asset)
	}
	sort.Slice(assets, func(i, j int) bool {
		return assets[i].String() < assets[j].String()
	})
	return assets
}
