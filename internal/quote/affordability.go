package quote

import "github.com/Dan9191/quote-service/internal/models"

const (
	unaffordableRatio = 0.3
	watchRatio        = 0.2
)

// AssessAffordability compares a monthly payment with a twelfth of the
// annual turnover.
func AssessAffordability(monthlyPayment, annualTurnover float64) (models.Affordability, error) {
	if !finite(annualTurnover) || annualTurnover <= 0 {
		return models.Affordability{}, invalidInput("turnover must be positive, got %v", annualTurnover)
	}
	if !finite(monthlyPayment) || monthlyPayment < 0 {
		return models.Affordability{}, invalidInput("monthly payment must be non-negative, got %v", monthlyPayment)
	}

	ratio := monthlyPayment / (annualTurnover / 12)
	a := models.Affordability{
		Ratio:          roundTo(ratio*100, 2),
		Affordable:     true,
		Recommendation: "This loan appears affordable based on your turnover",
	}
	switch {
	case ratio > unaffordableRatio:
		a.Affordable = false
		a.Recommendation = "This loan may strain your cash flow. Consider a longer term or smaller amount"
	case ratio > watchRatio:
		a.Recommendation = "This loan is manageable but monitor cash flow carefully"
	}
	return a, nil
}
