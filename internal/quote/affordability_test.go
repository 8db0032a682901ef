package quote

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAssessAffordability(t *testing.T) {
	// turnover 120,000 gives 10,000 monthly revenue
	tests := []struct {
		name       string
		payment    float64
		ratio      float64
		affordable bool
		advice     string
	}{
		{"comfortable", 1500, 15, true, "appears affordable"},
		{"exactly 20 percent", 2000, 20, true, "appears affordable"},
		{"needs monitoring", 2500, 25, true, "monitor cash flow"},
		{"exactly 30 percent", 3000, 30, true, "monitor cash flow"},
		{"strains cash flow", 3100, 31, false, "strain your cash flow"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := AssessAffordability(tt.payment, 120_000)
			require.NoError(t, err)
			assert.Equal(t, tt.ratio, got.Ratio)
			assert.Equal(t, tt.affordable, got.Affordable)
			assert.Contains(t, got.Recommendation, tt.advice)
		})
	}
}

func TestAssessAffordability_ZeroTurnover(t *testing.T) {
	_, err := AssessAffordability(100, 0)
	assert.ErrorIs(t, err, ErrInvalidInput)
}
