// Package catalog holds the lender reference data quotes are priced against
// and the loaders that build a catalog from external sources.
package catalog

import (
	"errors"
	"fmt"
	"math"

	"github.com/Dan9191/quote-service/internal/models"
)

// Reference returns a fresh copy of the built-in five lender catalog
func Reference() []models.LenderProfile {
	return []models.LenderProfile{
		{
			ID:             "lender_1",
			Name:           "Premier Business Finance",
			BaseRate:       4.5,
			RiskMultiplier: models.RiskMultiplier{Low: 1.0, Medium: 1.3, High: 1.8},
			ProcessingFee:  1500,
			ApprovalTime:   "24-48 hours",
			Features: []string{
				"No early repayment charges",
				"Flexible repayment options",
				"Dedicated account manager",
				"Online account management",
			},
		},
		{
			ID:             "lender_2",
			Name:           "Capital Growth Partners",
			BaseRate:       5.2,
			RiskMultiplier: models.RiskMultiplier{Low: 1.1, Medium: 1.4, High: 2.0},
			ProcessingFee:  0,
			ApprovalTime:   "2-5 days",
			Features: []string{
				"No arrangement fees",
				"Same-day decisions",
				"Unsecured options available",
				"24/7 customer support",
			},
		},
		{
			ID:             "lender_3",
			Name:           "Velocity Funding Solutions",
			BaseRate:       3.9,
			RiskMultiplier: models.RiskMultiplier{Low: 1.2, Medium: 1.5, High: 2.2},
			ProcessingFee:  2000,
			ApprovalTime:   "1-2 days",
			Features: []string{
				"Fast approval process",
				"Competitive rates",
				"Experienced team",
				"Multiple funding options",
			},
		},
		{
			ID:             "lender_4",
			Name:           "Enterprise Finance Direct",
			BaseRate:       6.1,
			RiskMultiplier: models.RiskMultiplier{Low: 0.9, Medium: 1.2, High: 1.6},
			ProcessingFee:  500,
			ApprovalTime:   "3-7 days",
			Features: []string{
				"Low processing fees",
				"Established lender",
				"Personal service",
				"Flexible criteria",
			},
		},
		{
			ID:             "lender_5",
			Name:           "Swift Capital Ltd",
			BaseRate:       4.8,
			RiskMultiplier: models.RiskMultiplier{Low: 1.0, Medium: 1.3, High: 1.9},
			ProcessingFee:  1200,
			ApprovalTime:   "12-24 hours",
			Features: []string{
				"Ultra-fast decisions",
				"Digital application",
				"Same-day funding",
				"No hidden fees",
			},
		},
	}
}

// Validate checks every lender of a catalog and reports all problems at once
func Validate(lenders []models.LenderProfile) error {
	var errs []error
	seen := make(map[string]bool, len(lenders))
	for i, l := range lenders {
		if l.ID == "" {
			errs = append(errs, fmt.Errorf("lender #%d: id is required", i))
		} else if seen[l.ID] {
			errs = append(errs, fmt.Errorf("lender %s: duplicate id", l.ID))
		}
		seen[l.ID] = true

		if l.Name == "" {
			errs = append(errs, fmt.Errorf("lender %s: name is required", l.ID))
		}
		if !positive(l.BaseRate) {
			errs = append(errs, fmt.Errorf("lender %s: base rate must be positive, got %v", l.ID, l.BaseRate))
		}
		m := l.RiskMultiplier
		if !positive(m.Low) || !positive(m.Medium) || !positive(m.High) {
			errs = append(errs, fmt.Errorf("lender %s: risk multipliers must be positive, got %+v", l.ID, m))
		}
		if !finite(l.ProcessingFee) || l.ProcessingFee < 0 {
			errs = append(errs, fmt.Errorf("lender %s: processing fee must be non-negative, got %v", l.ID, l.ProcessingFee))
		}
	}
	if len(errs) > 0 {
		return fmt.Errorf("invalid lender catalog: %w", errors.Join(errs...))
	}
	return nil
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

func positive(v float64) bool {
	return finite(v) && v > 0
}
