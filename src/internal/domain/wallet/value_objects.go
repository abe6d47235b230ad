package wallet

import (
	"github.com/shopspring/decimal"
)

// AssetPrecision 資產的小數位數（金額與手續費都截斷到此精度）
const AssetPrecision int32 = 8

// Amount 金額值對象
// 設計原則：值對象不可變、自我驗證；建構約束為金額 >= 0
type Amount struct {
	value decimal.Decimal
}

// NewAmount 建構函數（checked 版本）
func NewAmount(value decimal.Decimal) (Amount, error) {
	if value.IsNegative() {
		return Amount{}, ErrNegativeAmount.WithContext("value", value.String())
	}
	return Amount{value: value.Truncate(AssetPrecision)}, nil
}

// ParseAmount 從字串解析金額（CLI / 外部輸入）
func ParseAmount(s string) (Amount, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Amount{}, ErrInvalidAmount.WithContext(
			"input", s,
			"parse_error", err.Error(),
		)
	}
	return NewAmount(d)
}

// ZeroAmount 零金額
func ZeroAmount() Amount {
	return Amount{value: decimal.Zero}
}

// newAmountUnchecked 內部建構函數，前提條件：調用者保證 value >= 0
func newAmountUnchecked(value decimal.Decimal) Amount {
	return Amount{value: value}
}

// Decimal 返回底層 decimal 值
func (a Amount) Decimal() decimal.Decimal {
	return a.value
}

// String 以固定精度輸出（去除多餘的零）
func (a Amount) String() string {
	return a.value.String()
}

// IsZero 判斷是否為零
func (a Amount) IsZero() bool {
	return a.value.IsZero()
}

// Add 相加（返回新的 Amount）
func (a Amount) Add(other Amount) Amount {
	return newAmountUnchecked(a.value.Add(other.value))
}

// Subtract 相減；業務規則：結果不能為負
func (a Amount) Subtract(other Amount) (Amount, error) {
	if a.value.LessThan(other.value) {
		return Amount{}, ErrInsufficientFunds.WithContext(
			"available", a.value.String(),
			"requested", other.value.String(),
		)
	}
	return newAmountUnchecked(a.value.Sub(other.value)), nil
}

// Equals 比較兩個金額
func (a Amount) Equals(other Amount) bool {
	return a.value.Equal(other.value)
}

// GreaterThan 判斷是否大於另一個金額
func (a Amount) GreaterThan(other Amount) bool {
	return a.value.GreaterThan(other.value)
}

// LessThan 判斷是否小於另一個金額
func (a Amount) LessThan(other Amount) bool {
	return a.value.LessThan(other.value)
}
