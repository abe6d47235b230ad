// Package bootstrap 組合根：建立資料庫、Event Center、倉儲與快取，並以 Resolver 提供給 Use Case
package bootstrap

import (
	"fmt"

	"github.com/rs/zerolog"
	"gorm.io/gorm"

	appcontact "github.com/jackyeh168/common_wallet/src/internal/application/contact"
	appwallet "github.com/jackyeh168/common_wallet/src/internal/application/wallet"
	"github.com/jackyeh168/common_wallet/src/internal/config"
	"github.com/jackyeh168/common_wallet/src/internal/domain/shared"
	"github.com/jackyeh168/common_wallet/src/internal/domain/wallet"
	"github.com/jackyeh168/common_wallet/src/internal/infrastructure/balancecache"
	"github.com/jackyeh168/common_wallet/src/internal/infrastructure/eventcenter"
	"github.com/jackyeh168/common_wallet/src/internal/infrastructure/persistence"
)

// Resolver 實作 appwallet.Resolver
//
// 生命週期：New 建立，Close 釋放。持有者（CLI 或宿主應用）擁有唯一實例，
// 其他元件只保存非擁有的參考。
type Resolver struct {
	db        *gorm.DB
	center    *eventcenter.EventCenter
	accounts  *persistence.GORMAccountRepository
	history   *persistence.GORMHistoryRepository
	contacts  *persistence.GORMContactRepository
	txManager *persistence.GORMTransactionManager
	cache     *balancecache.Cache
	settings  appwallet.Settings
	logger    zerolog.Logger

	subscriptions []shared.Subscription
}

var _ appwallet.Resolver = (*Resolver)(nil)

// New 依設定建立 Resolver
//
// 開啟（並遷移）SQLite 資料庫，建立 Event Center，把餘額快取註冊為餘額事件的觀察者。
func New(cfg config.Config, logger zerolog.Logger) (*Resolver, error) {
	walletSettings, err := cfg.WalletSettings()
	if err != nil {
		return nil, fmt.Errorf("invalid wallet settings: %w", err)
	}

	db, err := persistence.Open(cfg.Database.Path, logger)
	if err != nil {
		return nil, err
	}

	r := &Resolver{
		db:        db,
		center:    eventcenter.New(logger),
		accounts:  persistence.NewAccountRepository(db),
		history:   persistence.NewHistoryRepository(db),
		contacts:  persistence.NewContactRepository(db),
		txManager: persistence.NewGORMTransactionManager(db),
		cache:     balancecache.New(cfg.Cache.TTL, logger),
		settings:  appwallet.Settings(walletSettings),
		logger:    logger,
	}
	r.subscriptions = append(r.subscriptions, r.center.AddObserver(r.cache, balancecache.Kinds()...))

	logger.Debug().
		Str("database", cfg.Database.Path).
		Str("default_asset", walletSettings.DefaultAsset.String()).
		Msg("wallet resolver ready")

	return r, nil
}

// Close 取消所有註冊並關閉資料庫；可重複呼叫
func (r *Resolver) Close() error {
	for _, sub := range r.subscriptions {
		sub.Cancel()
	}
	r.subscriptions = nil

	if r.db == nil {
		return nil
	}
	err := persistence.Close(r.db)
	r.db = nil
	if err != nil {
		return fmt.Errorf("closing database: %w", err)
	}
	return nil
}

func (r *Resolver) EventCenter() shared.EventCenter      { return r.center }
func (r *Resolver) Accounts() wallet.AccountRepository   { return r.accounts }
func (r *Resolver) History() wallet.HistoryRepository    { return r.history }
func (r *Resolver) TxManager() shared.TransactionManager { return r.txManager }
func (r *Resolver) Settings() appwallet.Settings         { return r.settings }
func (r *Resolver) Logger() zerolog.Logger               { return r.logger }
func (r *Resolver) BalanceCache() appwallet.BalanceCache { return r.cache }

// Commands 返回命令工廠
func (r *Resolver) Commands() *appwallet.CommandFactory {
	return appwallet.NewCommandFactory(r)
}

// AddContact 返回新增聯絡人 Use Case
func (r *Resolver) AddContact() *appcontact.AddContactUseCase {
	return appcontact.NewAddContactUseCase(r.contacts, r.accounts, r.txManager, r.center, r.logger)
}

// ListContacts 返回查詢聯絡人 Use Case
func (r *Resolver) ListContacts() *appcontact.ListContactsUseCase {
	return appcontact.NewListContactsUseCase(r.contacts)
}

// RemoveContact 返回刪除聯絡人 Use Case
func (r *Resolver) RemoveContact() *appcontact.RemoveContactUseCase {
	return appcontact.NewRemoveContactUseCase(r.contacts, r.txManager)
}
