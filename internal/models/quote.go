package models

// Quote represents one lender's offer for a funding request
type Quote struct {
	ID             string   `json:"id"`
	LenderID       string   `json:"lenderId"`
	LenderName     string   `json:"lenderName"`
	InterestRate   float64  `json:"interestRate"`   // annual percent, 2 dp
	MonthlyPayment float64  `json:"monthlyPayment"` // whole currency units
	TotalRepayment float64  `json:"totalRepayment"` // whole currency units
	ProcessingFee  float64  `json:"processingFee"`
	ApprovalTime   string   `json:"approvalTime"`
	Features       []string `json:"features"`
	RiskCategory   RiskTier `json:"riskCategory"`
	Recommended    bool     `json:"recommended"`
}

// QuoteFilter narrows a generated quote list. Zero values disable a criterion.
type QuoteFilter struct {
	MaxRate           *float64 `json:"maxRate,omitempty"`
	MaxMonthlyPayment *float64 `json:"maxMonthlyPayment,omitempty"`
	NoFees            bool     `json:"noFees,omitempty"`
	LenderName        string   `json:"lenderName,omitempty"`
}

// Affordability describes how a monthly payment compares with monthly revenue
type Affordability struct {
	Ratio          float64 `json:"affordabilityRatio"` // percent of monthly revenue
	Affordable     bool    `json:"isAffordable"`
	Recommendation string  `json:"recommendation"`
}

// QuoteSet is the result of one quote generation
type QuoteSet struct {
	RiskCategory  RiskTier       `json:"riskCategory"`
	Quotes        []Quote        `json:"quotes"`
	Affordability *Affordability `json:"affordability,omitempty"`
}
