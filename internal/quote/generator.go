// Package quote prices funding requests against a lender catalog.
//
// Everything in this package is pure: no I/O, no logging and no shared
// mutable state, so concurrent callers need no coordination.
package quote

import (
	"fmt"
	"sort"
	"time"

	"github.com/Dan9191/quote-service/internal/models"
)

// IDFunc builds the opaque identifier of a quote
type IDFunc func(lender models.LenderProfile) string

type options struct {
	newID  IDFunc
	filter *models.QuoteFilter
}

// Option customises a GenerateQuotes call
type Option func(*options)

// WithIDFunc replaces the default quote identifier
func WithIDFunc(fn IDFunc) Option {
	return func(o *options) { o.newID = fn }
}

// WithFilter drops quotes that do not satisfy f before ranking
func WithFilter(f *models.QuoteFilter) Option {
	return func(o *options) { o.filter = f }
}

// TimestampIDs returns quote identifiers of the form quote_<lender>_<unix ms>.
// They are unique within one response as long as lender IDs are.
func TimestampIDs(now time.Time) IDFunc {
	ms := now.UnixMilli()
	return func(lender models.LenderProfile) string {
		return fmt.Sprintf("quote_%s_%d", lender.ID, ms)
	}
}

// GenerateQuotes validates req, classifies its risk, prices every lender the
// policy selects and returns the quotes ordered by interest rate, ties broken
// by lender name. The first quote is the recommended one. An empty selection
// yields an empty slice, not an error.
func GenerateQuotes(
	req models.FundingRequest,
	catalog []models.LenderProfile,
	policy SelectionPolicy,
	opts ...Option,
) ([]models.Quote, error) {
	o := options{}
	for _, opt := range opts {
		opt(&o)
	}
	if o.newID == nil {
		o.newID = TimestampIDs(time.Now())
	}
	if policy == nil {
		policy = AllLenders{}
	}

	if err := ValidateRequest(req); err != nil {
		return nil, err
	}
	tier, err := ClassifyRisk(req.Turnover, req.LoanAmount)
	if err != nil {
		return nil, err
	}

	selected := policy.Select(catalog)
	quotes := make([]models.Quote, 0, len(selected))
	for _, lender := range selected {
		q, err := priceLender(lender, req, tier, o.newID)
		if err != nil {
			return nil, fmt.Errorf("price lender %s: %w", lender.ID, err)
		}
		if !matches(o.filter, q) {
			continue
		}
		quotes = append(quotes, q)
	}

	Rank(quotes)
	return quotes, nil
}

func priceLender(
	lender models.LenderProfile,
	req models.FundingRequest,
	tier models.RiskTier,
	newID IDFunc,
) (models.Quote, error) {
	rate := roundTo(lender.BaseRate*lender.RiskMultiplier.For(tier), 2)
	am, err := Amortize(req.LoanAmount, rate, req.RepaymentTermMonths)
	if err != nil {
		return models.Quote{}, err
	}

	features := make([]string, len(lender.Features))
	copy(features, lender.Features)

	return models.Quote{
		ID:             newID(lender),
		LenderID:       lender.ID,
		LenderName:     lender.Name,
		InterestRate:   rate,
		MonthlyPayment: am.MonthlyPayment,
		TotalRepayment: am.TotalRepayment,
		ProcessingFee:  lender.ProcessingFee,
		ApprovalTime:   lender.ApprovalTime,
		Features:       features,
		RiskCategory:   tier,
	}, nil
}

// Rank orders quotes by ascending interest rate, then lender name, and marks
// only the first one as recommended.
func Rank(quotes []models.Quote) {
	sort.SliceStable(quotes, func(i, j int) bool {
		if quotes[i].InterestRate != quotes[j].InterestRate {
			return quotes[i].InterestRate < quotes[j].InterestRate
		}
		return quotes[i].LenderName < quotes[j].LenderName
	})
	for i := range quotes {
		quotes[i].Recommended = i == 0
	}
}
