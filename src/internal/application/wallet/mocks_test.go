package wallet

import (
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/jackyeh168/common_wallet/src/internal/domain/shared"
	"github.com/jackyeh168/common_wallet/src/internal/domain/wallet"
)

// ===========================
// Mock Store（帳戶 + 歷史）
// ===========================

type storedAccount struct {
	balances  map[wallet.AssetID]decimal.Decimal
	createdAt time.Time
	updatedAt time.Time
	version   int
}

// mockStore 以值保存狀態，讓 mockTxManager 可以快照與回滾
type mockStore struct {
	mu       sync.Mutex
	accounts map[string]storedAccount
	records  []*wallet.TransactionRecord
}

func newMockStore() *mockStore {
	return &mockStore{accounts: make(map[string]storedAccount)}
}

func (s *mockStore) snapshot() (map[string]storedAccount, []*wallet.TransactionRecord) {
	s.mu.Lock()
	defer s.mu.Unlock()
	accounts := make(map[string]storedAccount, len(s.accounts))
	for k, v := range s.accounts {
		accounts[k] = v
	}
	records := append([]*wallet.TransactionRecord(nil), s.records...)
	return accounts, records
}

func (s *mockStore) restore(accounts map[string]storedAccount, records []*wallet.TransactionRecord) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.accounts = accounts
	s.records = records
}

func toStored(account *wallet.WalletAccount, version int) storedAccount {
	balances := make(map[wallet.AssetID]decimal.Decimal)
	for asset, amount := range account.Balances() {
		balances[asset] = amount.Decimal()
	}
	return storedAccount{
		balances:  balances,
		createdAt: account.CreatedAt(),
		updatedAt: account.UpdatedAt(),
		version:   version,
	}
}

// MockAccountRepository 帳戶倉儲 Mock
type MockAccountRepository struct {
	store *mockStore

	SaveCallCount   int
	UpdateCallCount int
	FindCallCount   int
	FindErr         error
	OnFind          func()
}

func (r *MockAccountRepository) Save(ctx shared.TransactionContext, account *wallet.WalletAccount) error {
	r.SaveCallCount++
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if _, ok := r.store.accounts[account.AccountID().String()]; ok {
		return wallet.ErrAccountAlreadyExists
	}
	r.store.accounts[account.AccountID().String()] = toStored(account, account.Version())
	return nil
}

func (r *MockAccountRepository) FindByID(ctx shared.TransactionContext, accountID wallet.AccountID) (*wallet.WalletAccount, error) {
	r.FindCallCount++
	if r.OnFind != nil {
		r.OnFind()
	}
	if r.FindErr != nil {
		return nil, r.FindErr
	}
	r.store.mu.Lock()
	stored, ok := r.store.accounts[accountID.String()]
	r.store.mu.Unlock()
	if !ok {
		return nil, wallet.ErrAccountNotFound
	}
	return wallet.ReconstructWalletAccount(accountID, stored.balances, stored.createdAt, stored.updatedAt, stored.version)
}

func (r *MockAccountRepository) Update(ctx shared.TransactionContext, account *wallet.WalletAccount) error {
	r.UpdateCallCount++
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	stored, ok := r.store.accounts[account.AccountID().String()]
	if !ok {
		return wallet.ErrAccountNotFound
	}
	if stored.version != account.Version() {
		return wallet.ErrConcurrentModification
	}
	r.store.accounts[account.AccountID().String()] = toStored(account, stored.version+1)
	return nil
}

// MockHistoryRepository 歷史倉儲 Mock
type MockHistoryRepository struct {
	store     *mockStore
	AppendErr error
}

func (r *MockHistoryRepository) Append(ctx shared.TransactionContext, records ...*wallet.TransactionRecord) error {
	if r.AppendErr != nil {
		return r.AppendErr
	}
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	r.store.records = append(r.store.records, records...)
	return nil
}

func (r *MockHistoryRepository) FindByAccount(ctx shared.TransactionContext, accountID wallet.AccountID, offset, count int) ([]*wallet.TransactionRecord, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	var matched []*wallet.TransactionRecord
	for i := len(r.store.records) - 1; i >= 0; i-- {
		if r.store.records[i].AccountID().Equals(accountID) {
			matched = append(matched, r.store.records[i])
		}
	}
	sort.SliceStable(matched, func(i, j int) bool {
		return matched[i].Timestamp().After(matched[j].Timestamp())
	})

	if offset >= len(matched) {
		return nil, nil
	}
	end := offset + count
	if end > len(matched) {
		end = len(matched)
	}
	return matched[offset:end], nil
}

// ===========================
// Mock TransactionManager
// ===========================

// MockTransactionManager 在 fn 失敗時還原 store 快照（模擬回滾）
type MockTransactionManager struct {
	store                  *mockStore
	InTransactionCallCount int
}

func (m *MockTransactionManager) InTransaction(fn func(ctx shared.TransactionContext) error) error {
	m.InTransactionCallCount++
	accounts, records := m.store.snapshot()
	if err := fn(nil); err != nil {
		m.store.restore(accounts, records)
		return err
	}
	return nil
}

// ===========================
// Mock EventCenter
// ===========================

// MockEventCenter 記錄所有 Notify / Publish 的事件
type MockEventCenter struct {
	mu        sync.Mutex
	Notified  []shared.DomainEvent
	Published []shared.DomainEvent
	NotifyErr error
}

func (c *MockEventCenter) Notify(event shared.DomainEvent) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.Notified = append(c.Notified, event)
	return c.NotifyErr
}

func (c *MockEventCenter) Publish(event shared.DomainEvent) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.Published = append(c.Published, event)
	return nil
}

func (c *MockEventCenter) PublishBatch(events []shared.DomainEvent) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.Published = append(c.Published, events...)
	return nil
}

func (c *MockEventCenter) AddObserver(observer shared.Observer, kinds ...shared.EventKind) shared.Subscription {
	return noopSubscription{}
}

func (c *MockEventCenter) RemoveObserver(observer shared.Observer) {}

func (c *MockEventCenter) publishedKinds() []shared.EventKind {
	c.mu.Lock()
	defer c.mu.Unlock()
	kinds := make([]shared.EventKind, 0, len(c.Published))
	for _, e := range c.Published {
		kinds = append(kinds, e.EventType())
	}
	return kinds
}

type noopSubscription struct{}

func (noopSubscription) Cancel() {}

// ===========================
// Mock BalanceCache
// ===========================

type MockBalanceCache struct {
	entries    map[string]map[wallet.AssetID]wallet.Amount
	generation uint64
	GetCalls   int
	PutCalls   int
}

func NewMockBalanceCache() *MockBalanceCache {
	return &MockBalanceCache{entries: make(map[string]map[wallet.AssetID]wallet.Amount)}
}

func (c *MockBalanceCache) Get(accountID wallet.AccountID) (map[wallet.AssetID]wallet.Amount, bool) {
	c.GetCalls++
	balances, ok := c.entries[accountID.String()]
	return balances, ok
}

func (c *MockBalanceCache) Generation() uint64 {
	return c.generation
}

func (c *MockBalanceCache) PutIfCurrent(accountID wallet.AccountID, balances map[wallet.AssetID]wallet.Amount, generation uint64) bool {
	c.PutCalls++
	if generation != c.generation {
		return false
	}
	c.entries[accountID.String()] = balances
	return true
}

// Invalidate 模擬餘額事件淘汰
func (c *MockBalanceCache) Invalidate(accountID wallet.AccountID) {
	c.generation++
	delete(c.entries, accountID.String())
}

// ===========================
// Mock Resolver
// ===========================

type mockResolver struct {
	center    shared.EventCenter
	accounts  *MockAccountRepository
	history   *MockHistoryRepository
	txManager *MockTransactionManager
	settings  Settings
	cache     BalanceCache
}

func (r *mockResolver) EventCenter() shared.EventCenter      { return r.center }
func (r *mockResolver) Accounts() wallet.AccountRepository   { return r.accounts }
func (r *mockResolver) History() wallet.HistoryRepository    { return r.history }
func (r *mockResolver) TxManager() shared.TransactionManager { return r.txManager }
func (r *mockResolver) Settings() Settings                   { return r.settings }
func (r *mockResolver) Logger() zerolog.Logger               { return zerolog.Nop() }
func (r *mockResolver) BalanceCache() BalanceCache           { return r.cache }

// newMockResolver 建立以 MockEventCenter 為事件中心的 Resolver
//
// 轉帳費率 1%，提領費率 0.5%，預設資產 sora#demo。
func newMockResolver() (*mockResolver, *MockEventCenter) {
	center := &MockEventCenter{}
	return newResolverWithCenter(center), center
}

func newResolverWithCenter(center shared.EventCenter) *mockResolver {
	store := newMockStore()
	transferRate, _ := wallet.NewFeeRate(decimal.RequireFromString("0.01"))
	withdrawRate, _ := wallet.NewFeeRate(decimal.RequireFromString("0.005"))
	asset, _ := wallet.NewAssetID("sora#demo")

	return &mockResolver{
		center:    center,
		accounts:  &MockAccountRepository{store: store},
		history:   &MockHistoryRepository{store: store},
		txManager: &MockTransactionManager{store: store},
		settings: Settings{
			DefaultAsset:       asset,
			Fees:               wallet.NewFeeCalculationService(transferRate, withdrawRate),
			HistoryPageSize:    2,
			HistoryMaxPageSize: 5,
		},
	}
}

var errSimulated = errors.New("simulated failure")
