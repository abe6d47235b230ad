package contact

import (
	"fmt"
	"sort"
	"strings"
)

// ===========================
// Contact Domain 錯誤定義
// ===========================

// ErrorCode Contact Domain 錯誤代碼
type ErrorCode string

const (
	ErrCodeInvalidContactID       ErrorCode = "INVALID_CONTACT_ID"
	ErrCodeInvalidDisplayName     ErrorCode = "INVALID_DISPLAY_NAME"
	ErrCodeSelfContact            ErrorCode = "SELF_CONTACT"
	ErrCodeContactAlreadyExists   ErrorCode = "CONTACT_ALREADY_EXISTS"
	ErrCodeContactNotFound        ErrorCode = "CONTACT_NOT_FOUND"
	ErrCodeContactRepositoryError ErrorCode = "CONTACT_REPOSITORY_ERROR"
)

// DomainError Contact Domain 錯誤結構
//
// 設計原則：
// 1. 使用結構化錯誤（ErrorCode + Message + Context）
// 2. 支援 errors.Is 以錯誤代碼比較
// 3. WithContext 返回新實例
type DomainError struct {
	Code    ErrorCode
	Message string
	Context map[string]interface{}
}

// Error 實作 error 介面
func (e *DomainError) Error() string {
	if len(e.Context) == 0 {
		return e.Message
	}
	return e.Message + " (context: " + formatContext(e.Context) + ")"
}

// WithContext 添加上下文信息
//
// 使用範例：
//   return ErrSelfContact.WithContext("account_id", owner.String())
func (e *DomainError) WithContext(keyValues ...interface{}) error {
	if len(keyValues)%2 != 0 {
		panic("WithContext requires even number of arguments (key-value pairs)")
	}

	newErr := &DomainError{
		Code:    e.Code,
		Message: e.Message,
		Context: make(map[string]interface{}, len(e.Context)+len(keyValues)/2),
	}
	for k, v := range e.Context {
		newErr.Context[k] = v
	}
	for i := 0; i < len(keyValues); i += 2 {
		key, ok := keyValues[i].(string)
		if !ok {
			panic("WithContext keys must be strings")
		}
		newErr.Context[key] = keyValues[i+1]
	}

	return newErr
}

// Is 實作 errors.Is 比較
func (e *DomainError) Is(target error) bool {
	t, ok := target.(*DomainError)
	if !ok {
		return false
	}
	return e.Code == t.Code
}

// formatContext 以排序後的鍵輸出，確保訊息穩定
func formatContext(context map[string]interface{}) string {
	keys := make([]string, 0, len(context))
	for k := range context {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s=%v", k, context[k]))
	}
	return strings.Join(parts, ", ")
}

// ===========================
// Contact Domain 錯誤實例
// ===========================

var (
	// ErrInvalidContactID 聯絡人 ID 無效
	ErrInvalidContactID = &DomainError{
		Code:    ErrCodeInvalidContactID,
		Message: "invalid contact ID",
	}

	// ErrInvalidDisplayName 顯示名稱為空或過長
	ErrInvalidDisplayName = &DomainError{
		Code:    ErrCodeInvalidDisplayName,
		Message: "contact name must be 1-64 characters",
	}

	// ErrSelfContact 不能把自己加入聯絡人
	ErrSelfContact = &DomainError{
		Code:    ErrCodeSelfContact,
		Message: "cannot add own account as a contact",
	}

	// ErrContactAlreadyExists 同一擁有者下帳戶已存在
	ErrContactAlreadyExists = &DomainError{
		Code:    ErrCodeContactAlreadyExists,
		Message: "contact already exists",
	}

	// ErrContactNotFound 聯絡人不存在
	ErrContactNotFound = &DomainError{
		Code:    ErrCodeContactNotFound,
		Message: "contact not found",
	}

	// ErrRepositoryError 倉儲操作錯誤
	ErrRepositoryError = &DomainError{
		Code:    ErrCodeContactRepositoryError,
		Message: "contact repository operation failed",
	}
)
