package contact

import (
	"github.com/stretchr/testify/mock"

	"github.com/jackyeh168/common_wallet/src/internal/domain/contact"
	"github.com/jackyeh168/common_wallet/src/internal/domain/shared"
	"github.com/jackyeh168/common_wallet/src/internal/domain/wallet"
)

// ===========================
// Mocks
// ===========================

// MockContactRepository mock implementation of ContactRepository
type MockContactRepository struct {
	mock.Mock
}

func (m *MockContactRepository) Save(ctx shared.TransactionContext, c *contact.Contact) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockContactRepository) FindByOwner(ctx shared.TransactionContext, ownerID wallet.AccountID) ([]*contact.Contact, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*contact.Contact), args.Error(1)
}

func (m *MockContactRepository) ExistsByOwnerAndAccount(ctx shared.TransactionContext, ownerID, accountID wallet.AccountID) (bool, error) {
	args := m.Called(ctx, ownerID, accountID)
	return args.Bool(0), args.Error(1)
}

func (m *MockContactRepository) Delete(ctx shared.TransactionContext, contactID contact.ContactID) error {
	args := m.Called(ctx, contactID)
	return args.Error(0)
}

// MockAccountRepository mock implementation of AccountRepository
type MockAccountRepository struct {
	mock.Mock
}

func (m *MockAccountRepository) Save(ctx shared.TransactionContext, account *wallet.WalletAccount) error {
	args := m.Called(ctx, account)
	return args.Error(0)
}

func (m *MockAccountRepository) FindByID(ctx shared.TransactionContext, accountID wallet.AccountID) (*wallet.WalletAccount, error) {
	args := m.Called(ctx, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*wallet.WalletAccount), args.Error(1)
}

func (m *MockAccountRepository) Update(ctx shared.TransactionContext, account *wallet.WalletAccount) error {
	args := m.Called(ctx, account)
	return args.Error(0)
}

// MockTransactionManager mock implementation of TransactionManager
type MockTransactionManager struct {
	mock.Mock
}

func (m *MockTransactionManager) InTransaction(fn func(ctx shared.TransactionContext) error) error {
	// Directly execute the function with nil context (for unit tests)
	return fn(nil)
}

// MockEventPublisher mock implementation of EventPublisher
type MockEventPublisher struct {
	mock.Mock
}

func (m *MockEventPublisher) Publish(event shared.DomainEvent) error {
	args := m.Called(event)
	return args.Error(0)
}

func (m *MockEventPublisher) PublishBatch(events []shared.DomainEvent) error {
	args := m.Called(events)
	return args.Error(0)
}
