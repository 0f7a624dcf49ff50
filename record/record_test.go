package record

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		rec     Record
		wantErr bool
		errMsg  string
	}{
		{
			name: "valid ride with purchase",
			rec:  Record{Date: "2024-05-01", TotalKM: 1200, OilLiters: 4.5, OilCost: 30},
		},
		{
			name: "valid ride only",
			rec:  Record{Date: "2024-05-01", TotalKM: 0},
		},
		{
			name:    "bad date",
			rec:     Record{Date: "01/05/2024", TotalKM: 10},
			wantErr: true,
			errMsg:  "is not YYYY-MM-DD",
		},
		{
			name:    "single digit month",
			rec:     Record{Date: "2024-5-01", TotalKM: 10},
			wantErr: true,
			errMsg:  "is not YYYY-MM-DD",
		},
		{
			name:    "negative km",
			rec:     Record{Date: "2024-05-01", TotalKM: -1},
			wantErr: true,
			errMsg:  "total_km must not be negative",
		},
		{
			name:    "negative cost",
			rec:     Record{Date: "2024-05-01", TotalKM: 1, OilCost: -3},
			wantErr: true,
			errMsg:  "oil_cost must not be negative",
		},
		{
			name:    "nan liters",
			rec:     Record{Date: "2024-05-01", TotalKM: 1, OilLiters: math.NaN()},
			wantErr: true,
			errMsg:  "oil_liters is not a number",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.rec.Validate()
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrInvalidRecord)
				assert.Contains(t, err.Error(), tt.errMsg)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestValidateTotalKM(t *testing.T) {
	t.Parallel()

	history := []Record{
		{Date: "2024-01-01", TotalKM: 100},
		{Date: "2024-01-05", TotalKM: 150},
	}

	assert.NoError(t, ValidateTotalKM(0, nil), "empty history accepts zero")
	assert.NoError(t, ValidateTotalKM(987654321, nil), "empty history accepts any magnitude")
	assert.NoError(t, ValidateTotalKM(150, history), "equal reading is allowed")
	assert.NoError(t, ValidateTotalKM(151, history))

	err := ValidateTotalKM(149.5, history)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrDecreasingOdometer))

	var dec *DecreasingOdometerError
	require.True(t, errors.As(err, &dec))
	assert.Equal(t, 149.5, dec.Candidate)
	assert.Equal(t, 150.0, dec.Last)
	assert.Equal(t, "total kilometers (149.5) cannot be less than last recorded (150)", err.Error())
}

func TestFormatNumber(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "150", FormatNumber(150))
	assert.Equal(t, "12.5", FormatNumber(12.5))
	assert.Equal(t, "0", FormatNumber(0))
	assert.Equal(t, "0.1", FormatNumber(0.1))
}

func TestHasPurchase(t *testing.T) {
	t.Parallel()

	assert.False(t, Record{OilCost: 5}.HasPurchase())
	assert.True(t, Record{OilLiters: 0.5}.HasPurchase())
}
