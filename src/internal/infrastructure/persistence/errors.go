package persistence

import (
	"errors"
	"strings"

	"gorm.io/gorm"
)

// uniqueViolationMarkers 各資料庫唯一約束違反的錯誤訊息片段
//
// SQLite: "UNIQUE constraint failed"
// PostgreSQL: "duplicate key value violates unique constraint"
// MySQL: "Duplicate entry"
var uniqueViolationMarkers = []string{"UNIQUE constraint", "duplicate key", "Duplicate entry"}

// contextualError 可附加上下文的 DomainError（wallet 與 contact 皆實作）
type contextualError interface {
	error
	WithContext(keyValues ...interface{}) error
}

// errorMapping 一個 bounded context 的錯誤對應
type errorMapping struct {
	notFound      contextualError
	alreadyExists contextualError
	repository    contextualError
}

// mapError 映射 GORM 錯誤到 Domain 錯誤
//
// 映射規則：
// - gorm.ErrRecordNotFound       → notFound
// - gorm.ErrDuplicatedKey        → alreadyExists
// - Unique constraint violation  → alreadyExists（附上資料庫訊息）
// - 其他錯誤                      → repository error（附上資料庫訊息）
func (m errorMapping) mapError(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return m.notFound
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return m.alreadyExists
	}
	if isUniqueConstraintError(err) {
		return m.alreadyExists.WithContext("database_error", err.Error())
	}
	return m.repository.WithContext("database_error", err.Error())
}

func isUniqueConstraintError(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	for _, marker := range uniqueViolationMarkers {
		if strings.Contains(msg, marker) {
			return true
		}
	}
	return false
}
