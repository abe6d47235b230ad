package balancecache

import (
	"sync"
	"time"

	gocache "github.com/patrickmn/go-cache"
	"github.com/rs/zerolog"

	"github.com/jackyeh168/common_wallet/src/internal/domain/shared"
	"github.com/jackyeh168/common_wallet/src/internal/domain/wallet"
)

const (
	DefaultExpiration      = 10 * time.Minute
	DefaultCleanupInterval = 30 * time.Minute
)

// Cache 帳戶餘額快取（go-cache，鍵為帳戶 ID）
//
// 作為 Observer 註冊到 Event Center：
// - 帳戶範圍的餘額事件（入金、轉出、轉入、提領、開戶）只淘汰該帳戶
// - AccountUpdateEvent 沒有聚合 ID，清空整個快取
//
// 每次淘汰都會推進 generation。讀取端先取 Generation()，查詢倉儲後以 PutIfCurrent 回填；
// 期間若有淘汰，回填會被丟棄，舊快照不會覆蓋已提交的新餘額。
type Cache struct {
	cache  *gocache.Cache
	logger zerolog.Logger

	mu         sync.Mutex
	generation uint64
}

// New 創建餘額快取；ttl <= 0 使用 DefaultExpiration
func New(ttl time.Duration, logger zerolog.Logger) *Cache {
	if ttl <= 0 {
		ttl = DefaultExpiration
	}
	return &Cache{
		cache:  gocache.New(ttl, DefaultCleanupInterval),
		logger: logger.With().Str("component", "balancecache").Logger(),
	}
}

// Kinds 快取需要訂閱的事件種類
func Kinds() []shared.EventKind {
	return append(wallet.BalanceEventKinds(), wallet.EventKindAccountUpdated)
}

// Get 讀取帳戶餘額快照（返回副本）
func (c *Cache) Get(accountID wallet.AccountID) (map[wallet.AssetID]wallet.Amount, bool) {
	value, found := c.cache.Get(accountID.String())
	if !found {
		return nil, false
	}

	balances, ok := value.(map[wallet.AssetID]wallet.Amount)
	if !ok {
		c.logger.Error().Str("account_id", accountID.String()).Msg("wrong type in balance cache")
		c.cache.Delete(accountID.String())
		return nil, false
	}

	c.logger.Debug().Str("account_id", accountID.String()).Msg("cache hit")
	return copyBalances(balances), true
}

// Put 無條件寫入帳戶餘額快照（使用預設 TTL）
func (c *Cache) Put(accountID wallet.AccountID, balances map[wallet.AssetID]wallet.Amount) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.cache.SetDefault(accountID.String(), copyBalances(balances))
}

// Generation 返回目前的淘汰世代
func (c *Cache) Generation() uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.generation
}

// PutIfCurrent 只有在 generation 之後沒有發生淘汰時才寫入，返回是否寫入
func (c *Cache) PutIfCurrent(accountID wallet.AccountID, balances map[wallet.AssetID]wallet.Amount, generation uint64) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if generation != c.generation {
		c.logger.Debug().Str("account_id", accountID.String()).Msg("stale balance fill dropped")
		return false
	}
	c.cache.SetDefault(accountID.String(), copyBalances(balances))
	return true
}

// Invalidate 淘汰單一帳戶
func (c *Cache) Invalidate(accountID wallet.AccountID) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.generation++
	c.cache.Delete(accountID.String())
}

// Flush 清空快取
func (c *Cache) Flush() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.generation++
	c.cache.Flush()
}

// Len 快取中的帳戶數量（包含尚未清理的過期項目）
func (c *Cache) Len() int {
	return c.cache.ItemCount()
}

// Handle 實現 shared.Observer
func (c *Cache) Handle(event shared.DomainEvent) error {
	if event.EventType() == wallet.EventKindAccountUpdated || event.AggregateID() == "" {
		c.Flush()
		c.logger.Debug().Str("event_kind", string(event.EventType())).Msg("balance cache flushed")
		return nil
	}

	c.mu.Lock()
	c.generation++
	c.cache.Delete(event.AggregateID())
	c.mu.Unlock()
	c.logger.Debug().
		Str("event_kind", string(event.EventType())).
		Str("account_id", event.AggregateID()).
		Msg("balance cache evicted")
	return nil
}

func copyBalances(balances map[wallet.AssetID]wallet.Amount) map[wallet.AssetID]wallet.Amount {
	copied := make(map[wallet.AssetID]wallet.Amount, len(balances))
	for k, v := range balances {
		copied[k] = v
	}
	return copied
}
