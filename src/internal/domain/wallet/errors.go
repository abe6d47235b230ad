package wallet

import "fmt"

// ===========================
// 錯誤代碼定義
// ===========================

// ErrorCode 錯誤代碼類型
type ErrorCode string

// 錯誤代碼常量
const (
	// 識別符相關
	ErrCodeInvalidAccountID     ErrorCode = "ACCOUNT_ID_INVALID"
	ErrCodeInvalidAssetID       ErrorCode = "ASSET_ID_INVALID"
	ErrCodeInvalidTransactionID ErrorCode = "TRANSACTION_ID_INVALID"

	// 金額相關
	ErrCodeInvalidAmount     ErrorCode = "AMOUNT_INVALID"
	ErrCodeNegativeAmount    ErrorCode = "AMOUNT_NEGATIVE"
	ErrCodeInsufficientFunds ErrorCode = "FUNDS_INSUFFICIENT"
	ErrCodeInvalidFeeRate    ErrorCode = "FEE_RATE_INVALID"

	// 帳戶操作相關
	ErrCodeAssetNotSupported     ErrorCode = "ASSET_NOT_SUPPORTED"
	ErrCodeSelfTransfer          ErrorCode = "SELF_TRANSFER"
	ErrCodeInvalidWithdrawOption ErrorCode = "WITHDRAW_OPTION_INVALID"
	ErrCodeInvalidPagination     ErrorCode = "PAGINATION_INVALID"

	// 資料完整性
	ErrCodeCorruptedBalance ErrorCode = "BALANCE_CORRUPTED"
)

// ===========================
// DomainError 結構
// ===========================

// DomainError 領域錯誤
// 設計原則：
// 1. 包含結構化的錯誤代碼（用於 CLI 結束碼 / API 狀態碼映射）
// 2. 支持上下文信息（用於調試和日誌）
// 3. 不可變性（WithContext 返回新實例）
type DomainError struct {
	Code    ErrorCode
	Message string
	Context map[string]interface{}
}

// Error 實現 error 接口
func (e *DomainError) Error() string {
	if len(e.Context) == 0 {
		return fmt.Sprintf("[%s] %s", e.Code, e.Message)
	}
	return fmt.Sprintf("[%s] %s (context: %+v)", e.Code, e.Message, e.Context)
}

// WithContext 添加上下文信息（返回新的錯誤實例，保持不可變性）
func (e *DomainError) WithContext(keyValues ...interface{}) error {
	if len(keyValues)%2 != 0 {
		panic("WithContext requires even number of arguments (key-value pairs)")
	}

	ctx := make(map[string]interface{}, len(e.Context)+len(keyValues)/2)
	for k, v := range e.Context {
		ctx[k] = v
	}
	for i := 0; i < len(keyValues); i += 2 {
		key, ok := keyValues[i].(string)
		if !ok {
			panic(fmt.Sprintf("context key must be string, got %T", keyValues[i]))
		}
		ctx[key] = keyValues[i+1]
	}

	return &DomainError{
		Code:    e.Code,
		Message: e.Message,
		Context: ctx,
	}
}

// Is 實現 errors.Is 接口（以錯誤代碼判斷）
func (e *DomainError) Is(target error) bool {
	t, ok := target.(*DomainError)
	if !ok {
		return false
	}
	return e.Code == t.Code
}

// ===========================
// 預定義錯誤
// ===========================

// 識別符相關錯誤
var (
	ErrInvalidAccountID = &DomainError{
		Code:    ErrCodeInvalidAccountID,
		Message: "invalid account ID, expected name@domain",
	}

	ErrInvalidAssetID = &DomainError{
		Code:    ErrCodeInvalidAssetID,
		Message: "invalid asset ID, expected name#domain",
	}

	ErrInvalidTransactionID = &DomainError{
		Code:    ErrCodeInvalidTransactionID,
		Message: "invalid transaction ID",
	}
)

// 金額相關錯誤
var (
	ErrInvalidAmount = &DomainError{
		Code:    ErrCodeInvalidAmount,
		Message: "invalid amount",
	}

	ErrNegativeAmount = &DomainError{
		Code:    ErrCodeNegativeAmount,
		Message: "amount cannot be negative",
	}

	ErrInsufficientFunds = &DomainError{
		Code:    ErrCodeInsufficientFunds,
		Message: "insufficient funds",
	}

	ErrInvalidFeeRate = &DomainError{
		Code:    ErrCodeInvalidFeeRate,
		Message: "fee rate must be between 0 and 1",
	}
)

// 帳戶操作相關錯誤
var (
	ErrAssetNotSupported = &DomainError{
		Code:    ErrCodeAssetNotSupported,
		Message: "asset is not enabled for this account",
	}

	ErrSelfTransfer = &DomainError{
		Code:    ErrCodeSelfTransfer,
		Message: "cannot transfer to the same account",
	}

	ErrInvalidWithdrawOption = &DomainError{
		Code:    ErrCodeInvalidWithdrawOption,
		Message: "invalid withdraw option",
	}

	ErrInvalidPagination = &DomainError{
		Code:    ErrCodeInvalidPagination,
		Message: "invalid history pagination",
	}
)

// 資料完整性錯誤（從持久化重建時）
var (
	ErrCorruptedBalance = &DomainError{
		Code:    ErrCodeCorruptedBalance,
		Message: "corrupted balance in storage",
	}
)
