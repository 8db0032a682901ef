package quote

import (
	"strings"

	"github.com/Dan9191/quote-service/internal/models"
)

// matches reports whether q passes every criterion set on f. A nil filter
// matches everything.
func matches(f *models.QuoteFilter, q models.Quote) bool {
	if f == nil {
		return true
	}
	if f.MaxRate != nil && q.InterestRate > *f.MaxRate {
		return false
	}
	if f.MaxMonthlyPayment != nil && q.MonthlyPayment > *f.MaxMonthlyPayment {
		return false
	}
	if f.NoFees && q.ProcessingFee > 0 {
		return false
	}
	if name := strings.TrimSpace(f.LenderName); name != "" &&
		!strings.Contains(strings.ToLower(q.LenderName), strings.ToLower(name)) {
		return false
	}
	return true
}
