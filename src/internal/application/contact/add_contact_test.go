package contact

import (
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/jackyeh168/common_wallet/src/internal/domain/contact"
	"github.com/jackyeh168/common_wallet/src/internal/domain/shared"
	"github.com/jackyeh168/common_wallet/src/internal/domain/wallet"
)

type addContactFixture struct {
	contacts  *MockContactRepository
	accounts  *MockAccountRepository
	publisher *MockEventPublisher
	useCase   *AddContactUseCase
}

func newAddContactFixture() *addContactFixture {
	f := &addContactFixture{
		contacts:  new(MockContactRepository),
		accounts:  new(MockAccountRepository),
		publisher: new(MockEventPublisher),
	}
	f.useCase = NewAddContactUseCase(f.contacts, f.accounts, new(MockTransactionManager), f.publisher, zerolog.Nop())
	return f
}

func ownerAccount(t *testing.T) *wallet.WalletAccount {
	t.Helper()
	id, err := wallet.NewAccountID("alice@demo")
	require.NoError(t, err)
	asset, err := wallet.NewAssetID("sora#demo")
	require.NoError(t, err)
	account, err := wallet.NewWalletAccount(id, []wallet.AssetID{asset})
	require.NoError(t, err)
	return account
}

// Test 1: Add contact successfully
func TestAddContactUseCase_Execute_Success(t *testing.T) {
	// Arrange
	f := newAddContactFixture()
	f.accounts.On("FindByID", mock.Anything, mock.AnythingOfType("wallet.AccountID")).Return(ownerAccount(t), nil)
	f.contacts.On("ExistsByOwnerAndAccount", mock.Anything, mock.Anything, mock.Anything).Return(false, nil)
	f.contacts.On("Save", mock.Anything, mock.AnythingOfType("*contact.Contact")).Return(nil)
	f.publisher.On("PublishBatch", mock.MatchedBy(func(events []shared.DomainEvent) bool {
		return len(events) == 1 && events[0].EventType() == contact.EventKindContactAdded
	})).Return(nil)

	// Act
	result, err := f.useCase.Execute(AddContactCommand{OwnerID: "alice@demo", AccountID: "bob@demo", Name: " Bob "})

	// Assert
	require.NoError(t, err)
	assert.NotEmpty(t, result.ContactID)
	assert.Equal(t, "alice@demo", result.OwnerID)
	assert.Equal(t, "bob@demo", result.AccountID)
	assert.Equal(t, "Bob", result.Name)
	f.contacts.AssertExpectations(t)
	f.publisher.AssertExpectations(t)
}

// Test 2: Duplicate contact
func TestAddContactUseCase_Execute_AlreadyExists(t *testing.T) {
	// Arrange
	f := newAddContactFixture()
	f.accounts.On("FindByID", mock.Anything, mock.Anything).Return(ownerAccount(t), nil)
	f.contacts.On("ExistsByOwnerAndAccount", mock.Anything, mock.Anything, mock.Anything).Return(true, nil)

	// Act
	result, err := f.useCase.Execute(AddContactCommand{OwnerID: "alice@demo", AccountID: "bob@demo", Name: "Bob"})

	// Assert
	assert.Nil(t, result)
	assert.ErrorIs(t, err, contact.ErrContactAlreadyExists)
	f.contacts.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	f.publisher.AssertNotCalled(t, "PublishBatch", mock.Anything)
}

// Test 3: Owner account does not exist
func TestAddContactUseCase_Execute_OwnerNotFound(t *testing.T) {
	f := newAddContactFixture()
	f.accounts.On("FindByID", mock.Anything, mock.Anything).Return(nil, wallet.ErrAccountNotFound)

	_, err := f.useCase.Execute(AddContactCommand{OwnerID: "alice@demo", AccountID: "bob@demo", Name: "Bob"})

	assert.ErrorIs(t, err, wallet.ErrAccountNotFound)
	f.contacts.AssertNotCalled(t, "ExistsByOwnerAndAccount", mock.Anything, mock.Anything, mock.Anything)
}

// Test 4: Validation errors never reach the repository
func TestAddContactUseCase_Execute_InvalidInput(t *testing.T) {
	tests := []struct {
		name    string
		cmd     AddContactCommand
		wantErr error
	}{
		{"自己", AddContactCommand{OwnerID: "alice@demo", AccountID: "alice@demo", Name: "me"}, contact.ErrSelfContact},
		{"空名稱", AddContactCommand{OwnerID: "alice@demo", AccountID: "bob@demo", Name: "  "}, contact.ErrInvalidDisplayName},
		{"帳戶格式錯誤", AddContactCommand{OwnerID: "alice", AccountID: "bob@demo", Name: "Bob"}, wallet.ErrInvalidAccountID},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newAddContactFixture()

			_, err := f.useCase.Execute(tt.cmd)

			assert.ErrorIs(t, err, tt.wantErr)
			f.accounts.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything)
			f.contacts.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
		})
	}
}

// Test 5: Publish failure after commit does not fail the use case
func TestAddContactUseCase_Execute_PublishFailureIsLogged(t *testing.T) {
	f := newAddContactFixture()
	f.accounts.On("FindByID", mock.Anything, mock.Anything).Return(ownerAccount(t), nil)
	f.contacts.On("ExistsByOwnerAndAccount", mock.Anything, mock.Anything, mock.Anything).Return(false, nil)
	f.contacts.On("Save", mock.Anything, mock.Anything).Return(nil)
	f.publisher.On("PublishBatch", mock.Anything).Return(errors.New("observer failed"))

	result, err := f.useCase.Execute(AddContactCommand{OwnerID: "alice@demo", AccountID: "bob@demo", Name: "Bob"})

	require.NoError(t, err)
	assert.NotNil(t, result)
}
