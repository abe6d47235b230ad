package contact

import (
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/jackyeh168/common_wallet/src/internal/domain/shared"
	"github.com/jackyeh168/common_wallet/src/internal/domain/wallet"
)

// maxDisplayNameLength 顯示名稱上限（以字元計）
const maxDisplayNameLength = 64

// ===========================
// ContactID
// ===========================

// ContactMarker 是 ContactID 的標記類型
type ContactMarker struct{}

// ContactID 聯絡人唯一標識符
type ContactID = shared.EntityID[ContactMarker]

// NewContactID 生成新的聯絡人 ID
func NewContactID() ContactID {
	return shared.NewEntityID[ContactMarker]()
}

// ContactIDFromString 從字串解析聯絡人 ID
func ContactIDFromString(s string) (ContactID, error) {
	return shared.EntityIDFromString[ContactMarker](s, ErrInvalidContactID)
}

// ===========================
// Contact Aggregate Root
// ===========================

// Contact 聯絡人聚合根
//
// 不變量：
// 1. 擁有者與聯絡人帳戶不能相同
// 2. 顯示名稱去除空白後 1-64 字元
// 3. 同一擁有者下每個帳戶只能出現一次（由資料庫唯一約束保證）
type Contact struct {
	contactID   ContactID
	ownerID     wallet.AccountID
	accountID   wallet.AccountID
	displayName string

	createdAt time.Time
	updatedAt time.Time
	version   int

	events []shared.DomainEvent
}

// NewContact 創建新聯絡人，發布 ContactAddedEvent
func NewContact(ownerID, accountID wallet.AccountID, displayName string) (*Contact, error) {
	name, err := normalizeDisplayName(displayName)
	if err != nil {
		return nil, err
	}
	if ownerID.Equals(accountID) {
		return nil, ErrSelfContact.WithContext("account_id", ownerID.String())
	}

	now := time.Now()
	c := &Contact{
		contactID:   NewContactID(),
		ownerID:     ownerID,
		accountID:   accountID,
		displayName: name,
		createdAt:   now,
		updatedAt:   now,
		version:     1,
	}
	c.events = append(c.events, newContactAddedEvent(c))

	return c, nil
}

// ReconstructContact 重建聯絡人聚合（用於從資料庫載入）
func ReconstructContact(
	contactID ContactID,
	ownerID wallet.AccountID,
	accountID wallet.AccountID,
	displayName string,
	createdAt time.Time,
	updatedAt time.Time,
	version int,
) (*Contact, error) {
	if displayName == "" {
		return nil, ErrInvalidDisplayName
	}

	return &Contact{
		contactID:   contactID,
		ownerID:     ownerID,
		accountID:   accountID,
		displayName: displayName,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
		version:     version,
	}, nil
}

// Rename 修改顯示名稱
func (c *Contact) Rename(displayName string) error {
	name, err := normalizeDisplayName(displayName)
	if err != nil {
		return err
	}
	c.displayName = name
	c.updatedAt = time.Now()
	c.version++
	return nil
}

// Matches 本地搜尋：名稱或帳戶 ID 包含關鍵字（不分大小寫）
//
// 空白關鍵字匹配所有聯絡人。
func (c *Contact) Matches(search string) bool {
	term := strings.ToLower(strings.TrimSpace(search))
	if term == "" {
		return true
	}
	return strings.Contains(strings.ToLower(c.displayName), term) ||
		strings.Contains(c.accountID.String(), term)
}

// PullEvents 獲取所有待發布事件並清空列表
func (c *Contact) PullEvents() []shared.DomainEvent {
	events := c.events
	c.events = nil
	return events
}

// ContactID 返回聯絡人 ID
func (c *Contact) ContactID() ContactID { return c.contactID }

// OwnerID 返回擁有者帳戶
func (c *Contact) OwnerID() wallet.AccountID { return c.ownerID }

// AccountID 返回聯絡人帳戶
func (c *Contact) AccountID() wallet.AccountID { return c.accountID }

// DisplayName 返回顯示名稱
func (c *Contact) DisplayName() string { return c.displayName }

// CreatedAt 返回創建時間
func (c *Contact) CreatedAt() time.Time { return c.createdAt }

// UpdatedAt 返回更新時間
func (c *Contact) UpdatedAt() time.Time { return c.updatedAt }

// Version 返回版本號
func (c *Contact) Version() int { return c.version }

func normalizeDisplayName(displayName string) (string, error) {
	name := strings.TrimSpace(displayName)
	if name == "" || utf8.RuneCountInString(name) > maxDisplayNameLength {
		return "", ErrInvalidDisplayName.WithContext("display_name", displayName)
	}
	return name, nil
}

// ===========================
// ContactAddedEvent
// ===========================

// EventKindContactAdded 聯絡人新增事件種類
const EventKindContactAdded shared.EventKind = "contact.added"

// ContactAddedEvent 聯絡人新增事件
type ContactAddedEvent struct {
	eventID    string
	occurredAt time.Time
	contactID  ContactID
	ownerID    wallet.AccountID
	accountID  wallet.AccountID
}

func newContactAddedEvent(c *Contact) *ContactAddedEvent {
	return &ContactAddedEvent{
		eventID:    uuid.New().String(),
		occurredAt: time.Now(),
		contactID:  c.contactID,
		ownerID:    c.ownerID,
		accountID:  c.accountID,
	}
}

// EventID 實現 DomainEvent 介面
func (e *ContactAddedEvent) EventID() string { return e.eventID }

// EventType 實現 DomainEvent 介面
func (e *ContactAddedEvent) EventType() shared.EventKind { return EventKindContactAdded }

// OccurredAt 實現 DomainEvent 介面
func (e *ContactAddedEvent) OccurredAt() time.Time { return e.occurredAt }

// AggregateID 實現 DomainEvent 介面
func (e *ContactAddedEvent) AggregateID() string { return e.contactID.String() }

// OwnerID 返回擁有者帳戶
func (e *ContactAddedEvent) OwnerID() wallet.AccountID { return e.ownerID }

// AccountID 返回聯絡人帳戶
func (e *ContactAddedEvent) AccountID() wallet.AccountID { return e.accountID }
