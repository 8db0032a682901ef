package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/lib/pq"

	"github.com/Dan9191/quote-service/internal/models"
)

// Repository provides database operations
type Repository struct {
	db *sql.DB
}

// NewRepository initializes a new repository
func NewRepository(db *sql.DB) *Repository {
	return &Repository{db: db}
}

// ListLenders loads the lender catalog in display order
func (r *Repository) ListLenders(ctx context.Context) ([]models.LenderProfile, error) {
	query := `
		SELECT id, name, base_rate, multiplier_low, multiplier_medium, multiplier_high,
		       processing_fee, approval_time, features
		FROM brokerbox.lenders
		WHERE active
		ORDER BY position, id`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list lenders: %w", err)
	}
	defer rows.Close()

	var lenders []models.LenderProfile
	for rows.Next() {
		var l models.LenderProfile
		var features []string
		err := rows.Scan(
			&l.ID, &l.Name, &l.BaseRate,
			&l.RiskMultiplier.Low, &l.RiskMultiplier.Medium, &l.RiskMultiplier.High,
			&l.ProcessingFee, &l.ApprovalTime, pq.Array(&features),
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan lender: %w", err)
		}
		if features == nil {
			features = []string{}
		}
		l.Features = features
		lenders = append(lenders, l)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list lenders: %w", err)
	}
	return lenders, nil
}
