package quote

import "math"

// Amortization is the repayment profile of a fixed-rate amortizing loan
type Amortization struct {
	MonthlyPayment float64 `json:"monthlyPayment"`
	TotalRepayment float64 `json:"totalRepayment"`
	TotalInterest  float64 `json:"totalInterest"`
}

// Amortize computes the fixed monthly payment of a loan:
//
//	r       = annualRatePercent / 100 / 12
//	payment = P * r * (1+r)^n / ((1+r)^n - 1)
//	payment = P / n                              when r == 0
//
// The monthly payment is rounded to a whole currency unit and the total
// repayment is the rounded payment times the term, so the two figures shown
// to a broker always agree.
func Amortize(principal, annualRatePercent float64, termMonths int) (Amortization, error) {
	if !finite(principal) || principal <= 0 {
		return Amortization{}, invalidInput("principal must be positive, got %v", principal)
	}
	if !finite(annualRatePercent) || annualRatePercent < 0 {
		return Amortization{}, invalidInput("annual rate must be non-negative, got %v", annualRatePercent)
	}
	if termMonths <= 0 {
		return Amortization{}, invalidInput("term must be positive, got %d months", termMonths)
	}

	n := float64(termMonths)
	monthlyRate := annualRatePercent / 100 / 12

	var payment float64
	if monthlyRate == 0 {
		payment = principal / n
	} else {
		factor := math.Pow(1+monthlyRate, n)
		payment = principal * monthlyRate * factor / (factor - 1)
	}

	monthly := roundTo(payment, 0)
	total := monthly * n
	return Amortization{
		MonthlyPayment: monthly,
		TotalRepayment: total,
		TotalInterest:  roundTo(total-principal, 0),
	}, nil
}
