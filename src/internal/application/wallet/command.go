package wallet

import (
	"github.com/jackyeh168/common_wallet/src/internal/domain/shared"
	"github.com/jackyeh168/common_wallet/src/internal/domain/wallet"
)

// WalletCommand 可執行的錢包命令
type WalletCommand interface {
	Execute() error
}

// ===========================
// AccountUpdateCommand
// ===========================

// AccountUpdateCommand 通知所有觀察者「帳戶已更新」
//
// 無狀態：每次 Execute 建立一個新的 AccountUpdateEvent，呼叫一次 Notify。
// 沒有觀察者時為 no-op。
type AccountUpdateCommand struct {
	resolver Resolver
}

// NewAccountUpdateCommand 創建命令
func NewAccountUpdateCommand(resolver Resolver) *AccountUpdateCommand {
	return &AccountUpdateCommand{resolver: resolver}
}

// Execute 同步廣播 AccountUpdateEvent，返回 Notify 的結果
func (c *AccountUpdateCommand) Execute() error {
	return c.resolver.EventCenter().Notify(wallet.NewAccountUpdateEvent())
}

// publishAfterCommit 事務提交後發布聚合事件，最後廣播帳戶更新
//
// 狀態已經持久化，發布失敗只記錄日誌，不影響 Use Case 結果。
func publishAfterCommit(resolver Resolver, events []shared.DomainEvent) {
	logger := resolver.Logger()

	if len(events) > 0 {
		if err := resolver.EventCenter().PublishBatch(events); err != nil {
			logger.Warn().Err(err).Int("events", len(events)).Msg("post-commit publish failed")
		}
	}

	if err := NewAccountUpdateCommand(resolver).Execute(); err != nil {
		logger.Warn().Err(err).Msg("account update notification failed")
	}
}
