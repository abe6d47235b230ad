package wallet

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFeeCalculationService_TransferFee_RoundsDown(t *testing.T) {
	// Arrange
	transferRate, err := ParseFeeRate("0.003")
	require.NoError(t, err)
	service := NewFeeCalculationService(transferRate, FeeRate{})

	tests := []struct {
		amount string
		fee    string
	}{
		{"100", "0.3"},
		{"0.00000001", "0"},
		{"33.33333333", "0.09999999"},
	}

	for _, tt := range tests {
		t.Run(tt.amount, func(t *testing.T) {
			fee := service.TransferFee(mustAmount(t, tt.amount))
			assert.Equal(t, tt.fee, fee.String())
		})
	}
}

func TestFeeCalculationService_ZeroRate_NoFee(t *testing.T) {
	zero, _ := ParseFeeRate("")
	service := NewFeeCalculationService(zero, zero)

	assert.True(t, service.WithdrawFee(mustAmount(t, "1000")).IsZero())
	assert.True(t, service.TransferFee(mustAmount(t, "1000")).IsZero())
}

func TestNewFeeRate_OutOfRange_ReturnsError(t *testing.T) {
	_, err := NewFeeRate(decimal.NewFromInt(2))
	assert.ErrorIs(t, err, ErrInvalidFeeRate)

	_, err = NewFeeRate(decimal.NewFromInt(-1))
	assert.ErrorIs(t, err, ErrInvalidFeeRate)

	_, err = ParseFeeRate("abc")
	assert.ErrorIs(t, err, ErrInvalidFeeRate)
}
