package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRiskTier_Valid(t *testing.T) {
	for _, tier := range []RiskTier{RiskLow, RiskMedium, RiskHigh} {
		assert.True(t, tier.Valid(), tier)
	}
	assert.False(t, RiskTier("").Valid())
	assert.False(t, RiskTier("Low").Valid())
}

func TestRiskMultiplier_For(t *testing.T) {
	m := RiskMultiplier{Low: 1.0, Medium: 1.3, High: 1.8}
	assert.Equal(t, 1.0, m.For(RiskLow))
	assert.Equal(t, 1.3, m.For(RiskMedium))
	assert.Equal(t, 1.8, m.For(RiskHigh))
	assert.Zero(t, m.For("unknown"))
}
