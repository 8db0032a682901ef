package quote

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Dan9191/quote-service/internal/models"
)

func TestValidateRequest_Valid(t *testing.T) {
	for _, req := range []models.FundingRequest{
		{Turnover: 500_000, LoanAmount: 100_000, RepaymentTermMonths: 36},
		{Turnover: 1, LoanAmount: 1000, RepaymentTermMonths: 1},
		{Turnover: 1, LoanAmount: 10_000_000, RepaymentTermMonths: 120},
	} {
		assert.NoError(t, ValidateRequest(req), "%+v", req)
	}
}

func TestValidateRequest_ZeroTurnover(t *testing.T) {
	err := ValidateRequest(models.FundingRequest{Turnover: 0, LoanAmount: 5000, RepaymentTermMonths: 12})

	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, []string{"turnover"}, verr.Fields())
	assert.Equal(t, "gt=0", verr.Violations[0].Constraint)
	assert.Equal(t, "must be greater than 0", verr.Violations[0].Message)
}

func TestValidateRequest_LoanBelowMinimum(t *testing.T) {
	err := ValidateRequest(models.FundingRequest{Turnover: 100_000, LoanAmount: 500, RepaymentTermMonths: 12})

	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, []string{"loanAmount"}, verr.Fields())
	assert.Equal(t, "gte=1000", verr.Violations[0].Constraint)
}

func TestValidateRequest_ReportsEveryField(t *testing.T) {
	err := ValidateRequest(models.FundingRequest{Turnover: -5, LoanAmount: 20_000_000, RepaymentTermMonths: 121})

	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, []string{"turnover", "loanAmount", "repaymentTermMonths"}, verr.Fields())
	assert.Contains(t, verr.Error(), "loanAmount must be at most 10000000")
	assert.Contains(t, verr.Error(), "repaymentTermMonths must be at most 120")
}
