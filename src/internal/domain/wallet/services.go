package wallet

import (
	"github.com/shopspring/decimal"
)

// ===========================
// FeeRate 值對象
// ===========================

// FeeRate 手續費率，範圍 [0, 1]
type FeeRate struct {
	value decimal.Decimal
}

// NewFeeRate 建構手續費率
func NewFeeRate(value decimal.Decimal) (FeeRate, error) {
	if value.IsNegative() || value.GreaterThan(decimal.NewFromInt(1)) {
		return FeeRate{}, ErrInvalidFeeRate.WithContext("value", value.String())
	}
	return FeeRate{value: value}, nil
}

// ParseFeeRate 從設定字串解析手續費率；空字串視為 0
func ParseFeeRate(s string) (FeeRate, error) {
	if s == "" {
		return FeeRate{value: decimal.Zero}, nil
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return FeeRate{}, ErrInvalidFeeRate.WithContext("input", s)
	}
	return NewFeeRate(d)
}

// Decimal 返回底層 decimal 值
func (r FeeRate) Decimal() decimal.Decimal {
	return r.value
}

// ===========================
// FeeCalculationService 領域服務
// ===========================

// FeeCalculationService 手續費計算領域服務
//
// 無狀態：轉帳與提領的費率在建構時注入，可在多個 goroutine 間共享。
type FeeCalculationService struct {
	transferRate FeeRate
	withdrawRate FeeRate
}

// NewFeeCalculationService 建構函數
func NewFeeCalculationService(transferRate, withdrawRate FeeRate) *FeeCalculationService {
	return &FeeCalculationService{
		transferRate: transferRate,
		withdrawRate: withdrawRate,
	}
}

// TransferFee 計算轉帳手續費
func (s *FeeCalculationService) TransferFee(amount Amount) Amount {
	return calculateFee(amount, s.transferRate)
}

// WithdrawFee 計算提領手續費
func (s *FeeCalculationService) WithdrawFee(amount Amount) Amount {
	return calculateFee(amount, s.withdrawRate)
}

// calculateFee 手續費 = floor(金額 × 費率)，截斷到 AssetPrecision
//
// 向下取整：使用者不會因為捨入多付手續費。
func calculateFee(amount Amount, rate FeeRate) Amount {
	fee := amount.Decimal().Mul(rate.value).RoundFloor(AssetPrecision)
	return newAmountUnchecked(fee)
}
