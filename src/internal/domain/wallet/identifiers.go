package wallet

import (
	"strings"

	"github.com/jackyeh168/common_wallet/src/internal/domain/shared"
)

// ===========================
// AccountID - 錢包帳戶 ID
// ===========================

// AccountID 錢包帳戶識別符，格式為 "name@domain"（例如 "invoice@demo"）
type AccountID struct {
	value string
}

// NewAccountID 解析並驗證帳戶 ID
func NewAccountID(s string) (AccountID, error) {
	if !validQualifiedName(s, '@') {
		return AccountID{}, ErrInvalidAccountID.WithContext("input", s)
	}
	return AccountID{value: s}, nil
}

// String 返回原始字串
func (a AccountID) String() string {
	return a.value
}

// Name 返回 @ 之前的名稱部分
func (a AccountID) Name() string {
	name, _, _ := strings.Cut(a.value, "@")
	return name
}

// Domain 返回 @ 之後的網域部分
func (a AccountID) Domain() string {
	_, domain, _ := strings.Cut(a.value, "@")
	return domain
}

// Equals 比較兩個帳戶 ID
func (a AccountID) Equals(other AccountID) bool {
	return a.value == other.value
}

// IsEmpty 判斷是否為零值
func (a AccountID) IsEmpty() bool {
	return a.value == ""
}

// ===========================
// AssetID - 資產 ID
// ===========================

// AssetID 資產識別符，格式為 "name#domain"（例如 "sora#demo"）
type AssetID struct {
	value string
}

// NewAssetID 解析並驗證資產 ID
func NewAssetID(s string) (AssetID, error) {
	if !validQualifiedName(s, '#') {
		return AssetID{}, ErrInvalidAssetID.WithContext("input", s)
	}
	return AssetID{value: s}, nil
}

// String 返回原始字串
func (a AssetID) String() string {
	return a.value
}

// Equals 比較兩個資產 ID
func (a AssetID) Equals(other AssetID) bool {
	return a.value == other.value
}

// IsEmpty 判斷是否為零值
func (a AssetID) IsEmpty() bool {
	return a.value == ""
}

// ===========================
// TransactionID - 交易記錄 ID
// ===========================

// TransactionMarker 是 TransactionID 的標記類型
type TransactionMarker struct{}

// TransactionID 交易記錄的唯一標識符（UUID）
type TransactionID = shared.EntityID[TransactionMarker]

// NewTransactionID 生成新的交易 ID
func NewTransactionID() TransactionID {
	return shared.NewEntityID[TransactionMarker]()
}

// TransactionIDFromString 從字串解析交易 ID
func TransactionIDFromString(s string) (TransactionID, error) {
	return shared.EntityIDFromString[TransactionMarker](s, ErrInvalidTransactionID)
}

// validQualifiedName 驗證 "name<sep>domain" 格式
//
// 規則：
// - 恰好一個分隔符
// - name 與 domain 皆非空
// - 只允許小寫字母、數字、底線、連字號與點（domain）
func validQualifiedName(s string, sep byte) bool {
	idx := strings.IndexByte(s, sep)
	if idx <= 0 || idx == len(s)-1 {
		return false
	}
	name, domain := s[:idx], s[idx+1:]
	if strings.IndexByte(domain, sep) >= 0 {
		return false
	}
	if len(name) > 32 {
		return false
	}
	for _, r := range name {
		if !isNameRune(r) {
			return false
		}
	}
	for _, r := range domain {
		if !isNameRune(r) && r != '.' {
			return false
		}
	}
	return !strings.HasPrefix(domain, ".") && !strings.HasSuffix(domain, ".")
}

func isNameRune(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '_' || r == '-'
}
