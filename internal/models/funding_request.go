package models

// FundingRequest represents the figures a broker submits for pricing
type FundingRequest struct {
	Turnover            float64 `json:"turnover" validate:"gt=0"`
	LoanAmount          float64 `json:"loanAmount" validate:"gte=1000,lte=10000000"`
	RepaymentTermMonths int     `json:"repaymentTermMonths" validate:"gte=1,lte=120"`
}
