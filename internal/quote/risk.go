package quote

import "github.com/Dan9191/quote-service/internal/models"

// Loan-to-turnover thresholds. A ratio equal to a threshold belongs to the
// lower tier.
const (
	LowRiskMaxRatio    = 0.3
	MediumRiskMaxRatio = 0.6
)

// ClassifyRisk maps a requested amount and annual turnover to a risk tier
func ClassifyRisk(turnover, loanAmount float64) (models.RiskTier, error) {
	if !finite(turnover) || turnover <= 0 {
		return "", invalidInput("turnover must be positive, got %v", turnover)
	}
	if !finite(loanAmount) || loanAmount <= 0 {
		return "", invalidInput("loan amount must be positive, got %v", loanAmount)
	}

	ratio := loanAmount / turnover
	switch {
	case ratio <= LowRiskMaxRatio:
		return models.RiskLow, nil
	case ratio <= MediumRiskMaxRatio:
		return models.RiskMedium, nil
	default:
		return models.RiskHigh, nil
	}
}
