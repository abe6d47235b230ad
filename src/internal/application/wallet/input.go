package wallet

import (
	"errors"
	"strings"

	"github.com/jackyeh168/common_wallet/src/internal/domain/wallet"
)

// parsePositiveAmount 解析外部輸入的金額：必須可解析、非負、非零
func parsePositiveAmount(s string) (wallet.Amount, error) {
	amount, err := wallet.ParseAmount(strings.TrimSpace(s))
	if err != nil {
		if errors.Is(err, wallet.ErrNegativeAmount) {
			return wallet.Amount{}, wallet.ErrInvalidAmount.WithContext("input", s, "reason", "amount cannot be negative")
		}
		return wallet.Amount{}, err
	}
	if amount.IsZero() {
		return wallet.Amount{}, wallet.ErrInvalidAmount.WithContext("input", s, "reason", "amount must be positive")
	}
	return amount, nil
}

// resolveAsset 空字串使用預設資產
func resolveAsset(s string, settings Settings) (wallet.AssetID, error) {
	if strings.TrimSpace(s) == "" {
		return settings.DefaultAsset, nil
	}
	return wallet.NewAssetID(strings.TrimSpace(s))
}

// balanceViews 將餘額轉為依資產排序的輸出 DTO
func balanceViews(assets []wallet.AssetID, balances map[wallet.AssetID]wallet.Amount) []AssetBalance {
	views := make([]AssetBalance, 0, len(assets))
	for _, asset := range assets {
		views = append(views, AssetBalance{
			AssetID: asset.String(),
			Amount:  balances[asset].String(),
		})
	}
	return views
}
