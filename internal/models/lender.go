package models

// RiskMultiplier scales a lender's base rate per risk tier
type RiskMultiplier struct {
	Low    float64 `json:"low"`
	Medium float64 `json:"medium"`
	High   float64 `json:"high"`
}

// For returns the multiplier for the given tier, 0 for an unknown tier
func (m RiskMultiplier) For(tier RiskTier) float64 {
	switch tier {
	case RiskLow:
		return m.Low
	case RiskMedium:
		return m.Medium
	case RiskHigh:
		return m.High
	}
	return 0
}

// LenderProfile represents a lender in the quote catalog
type LenderProfile struct {
	ID             string         `json:"id"`
	Name           string         `json:"name"`
	BaseRate       float64        `json:"baseRate"` // annual percent
	RiskMultiplier RiskMultiplier `json:"riskMultiplier"`
	ProcessingFee  float64        `json:"processingFee"`
	ApprovalTime   string         `json:"approvalTime"`
	Features       []string       `json:"features"`
}
