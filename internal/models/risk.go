package models

// RiskTier is derived from the loan-to-turnover ratio
type RiskTier string

const (
	RiskLow    RiskTier = "low"
	RiskMedium RiskTier = "medium"
	RiskHigh   RiskTier = "high"
)

// Valid reports whether t is one of the known tiers
func (t RiskTier) Valid() bool {
	return t == RiskLow || t == RiskMedium || t == RiskHigh
}
