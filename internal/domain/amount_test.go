package domain_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mkravchenko/payments-engine/internal/domain"
)

func TestNewAmount(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		value   string
		wantErr bool
	}{
		{name: "positive", value: "5", wantErr: false},
		{name: "positive_fraction", value: "0.0001", wantErr: false},
		{name: "zero", value: "0", wantErr: true},
		{name: "zero_with_scale", value: "0.0000", wantErr: true},
		{name: "negative", value: "-5", wantErr: true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			amount, err := domain.NewAmount(decimal.RequireFromString(tt.value))

			if tt.wantErr {
				require.ErrorIs(t, err, domain.ErrInvalidAmount)
				return
			}

			require.NoError(t, err)
			assert.True(t, amount.Decimal().Equal(decimal.RequireFromString(tt.value)))
		})
	}
}

func TestParseAmount(t *testing.T) {
	t.Parallel()

	amount, err := domain.ParseAmount("1.2345")
	require.NoError(t, err)
	assert.Equal(t, "1.2345", amount.String())

	_, err = domain.ParseAmount("not-a-number")
	require.ErrorIs(t, err, domain.ErrInvalidAmount)

	_, err = domain.ParseAmount("-1")
	require.ErrorIs(t, err, domain.ErrInvalidAmount)
}
