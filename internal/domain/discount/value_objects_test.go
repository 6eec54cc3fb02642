//go:build unit

package discount

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTerms(t *testing.T) {
	tests := []struct {
		name        string
		ratePercent float64
		flatCents   int64
		wantErr     error
	}{
		{name: "flat only", flatCents: 5000},
		{name: "rate only", ratePercent: 10},
		{name: "full rate", ratePercent: 100},
		{name: "both zero", wantErr: ErrInvalidShape},
		{name: "both positive", ratePercent: 10, flatCents: 5000, wantErr: ErrInvalidShape},
		{name: "rate above 100", ratePercent: 101, wantErr: ErrRateOutOfRange},
		{name: "negative rate", ratePercent: -1, wantErr: ErrRateOutOfRange},
		{name: "negative flat", flatCents: -100, wantErr: ErrNegativeFlat},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			terms, err := NewTerms(tt.ratePercent, tt.flatCents)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.ratePercent, terms.RatePercent())
			assert.Equal(t, tt.flatCents, terms.FlatCents())
			assert.Equal(t, tt.flatCents > 0, terms.IsFlat())
		})
	}
}

func TestNewCode(t *testing.T) {
	code, err := NewCode("  WINTER24  ")
	require.NoError(t, err)
	assert.Equal(t, "WINTER24", code.Value())

	_, err = NewCode("   ")
	assert.ErrorIs(t, err, ErrInvalidCode)

	_, err = NewCode(strings.Repeat("X", MaxCodeLength+1))
	assert.ErrorIs(t, err, ErrCodeTooLong)
}
