package service

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/Dan9191/quote-service/internal/config"
	"github.com/Dan9191/quote-service/internal/metrics"
	"github.com/Dan9191/quote-service/internal/models"
	"github.com/Dan9191/quote-service/internal/quote"
)

// ErrInvalidSelection is returned when a caller asks for an unusable lender selection
var ErrInvalidSelection = errors.New("invalid selection")

// QuoteCache stores generated quote sets by request fingerprint
type QuoteCache interface {
	Get(ctx context.Context, key string) (*models.QuoteSet, bool, error)
	Set(ctx context.Context, key string, set *models.QuoteSet) error
	Ping(ctx context.Context) error
}

// Selection overrides the configured lender selection for one request
type Selection struct {
	Strategy string `json:"strategy"`
	Min      *int   `json:"min,omitempty"`
	Max      *int   `json:"max,omitempty"`
	Seed     *int64 `json:"seed,omitempty"`
}

// GenerateInput is everything a quote generation needs
type GenerateInput struct {
	CompanyName string
	Request     models.FundingRequest
	Selection   *Selection
	Filter      *models.QuoteFilter
}

// Service handles business logic
type Service struct {
	catalog     []models.LenderProfile
	fingerprint string
	cache       QuoteCache
	log         *logrus.Logger
	metrics     *metrics.Metrics
	config      *config.Config
	now         func() time.Time
}

// NewService initializes a new service around a validated catalog. cache may be nil.
func NewService(
	catalog []models.LenderProfile,
	cache QuoteCache,
	log *logrus.Logger,
	m *metrics.Metrics,
	cfg *config.Config,
) *Service {
	lenders := make([]models.LenderProfile, len(catalog))
	copy(lenders, catalog)
	return &Service{
		catalog:     lenders,
		fingerprint: fingerprint(lenders),
		cache:       cache,
		log:         log,
		metrics:     m,
		config:      cfg,
		now:         time.Now,
	}
}

// Lenders returns a copy of the loaded catalog
func (s *Service) Lenders() []models.LenderProfile {
	out := make([]models.LenderProfile, len(s.catalog))
	copy(out, s.catalog)
	return out
}

// Ready reports whether the service dependencies respond
func (s *Service) Ready(ctx context.Context) error {
	if s.cache == nil {
		return nil
	}
	if err := s.cache.Ping(ctx); err != nil {
		return fmt.Errorf("quote cache unavailable: %w", err)
	}
	return nil
}

// GenerateQuotes prices a funding request against the catalog
func (s *Service) GenerateQuotes(ctx context.Context, in GenerateInput) (*models.QuoteSet, error) {
	log := s.log.WithFields(logrus.Fields{
		"company":     in.CompanyName,
		"loan_amount": in.Request.LoanAmount,
		"term_months": in.Request.RepaymentTermMonths,
	})

	// field errors take precedence so the caller always gets the full list
	if err := quote.ValidateRequest(in.Request); err != nil {
		return nil, s.fail(log, err)
	}

	now := s.now()
	policy, cacheable, err := s.resolvePolicy(in.Selection, now)
	if err != nil {
		s.metrics.QuoteErrorsTotal.WithLabelValues("selection").Inc()
		return nil, fmt.Errorf("%w: %v", ErrInvalidSelection, err)
	}

	var key string
	if cacheable && s.cache != nil {
		key = s.cacheKey(in, policy)
		set, ok, err := s.cache.Get(ctx, key)
		switch {
		case err != nil:
			s.metrics.CacheLookupsTotal.WithLabelValues("error").Inc()
			log.WithError(err).Warn("Quote cache lookup failed")
		case ok:
			s.metrics.CacheLookupsTotal.WithLabelValues("hit").Inc()
			s.record(set)
			log.WithField("risk_tier", set.RiskCategory).Debug("Quotes served from cache")
			return set, nil
		default:
			s.metrics.CacheLookupsTotal.WithLabelValues("miss").Inc()
		}
	}

	quotes, err := quote.GenerateQuotes(in.Request, s.catalog, policy,
		quote.WithFilter(in.Filter),
		quote.WithIDFunc(quote.TimestampIDs(now)),
	)
	if err != nil {
		return nil, s.fail(log, err)
	}

	tier, err := quote.ClassifyRisk(in.Request.Turnover, in.Request.LoanAmount)
	if err != nil {
		return nil, s.fail(log, err)
	}

	set := &models.QuoteSet{RiskCategory: tier, Quotes: quotes}
	if len(quotes) > 0 {
		a, err := quote.AssessAffordability(quotes[0].MonthlyPayment, in.Request.Turnover)
		if err != nil {
			return nil, s.fail(log, err)
		}
		set.Affordability = &a
	}

	if key != "" {
		if err := s.cache.Set(ctx, key, set); err != nil {
			log.WithError(err).Warn("Failed to cache quotes")
		}
	}

	s.record(set)
	log.WithFields(logrus.Fields{
		"risk_tier": tier,
		"quotes":    len(quotes),
	}).Infof("Generated %d quotes", len(quotes))
	return set, nil
}

// fail counts and logs a generation failure and wraps it for the caller
func (s *Service) fail(log *logrus.Entry, err error) error {
	var verr *quote.ValidationError
	if errors.As(err, &verr) {
		s.metrics.QuoteErrorsTotal.WithLabelValues("validation").Inc()
		log.WithField("fields", verr.Fields()).Info("Funding request rejected")
	} else {
		s.metrics.QuoteErrorsTotal.WithLabelValues("internal").Inc()
		log.WithError(err).Error("Quote generation failed")
	}
	return fmt.Errorf("failed to generate quotes: %w", err)
}

func (s *Service) record(set *models.QuoteSet) {
	s.metrics.QuoteRequestsTotal.WithLabelValues(string(set.RiskCategory)).Inc()
	s.metrics.QuotesReturned.Observe(float64(len(set.Quotes)))
}

// resolvePolicy turns a request override and the configured defaults into a
// selection policy. Only policies that are reproducible are cacheable.
func (s *Service) resolvePolicy(sel *Selection, now time.Time) (quote.SelectionPolicy, bool, error) {
	strategy := s.config.SelectionStrategy
	if sel != nil && sel.Strategy != "" {
		strategy = sel.Strategy
	}

	switch strategy {
	case config.SelectionAll:
		return quote.AllLenders{}, true, nil
	case config.SelectionRandom:
		minSize, maxSize := s.config.SelectionMin, s.config.SelectionMax
		seed, seeded := now.UnixNano(), false
		if sel != nil {
			if sel.Min != nil {
				minSize = *sel.Min
			}
			if sel.Max != nil {
				maxSize = *sel.Max
			}
			if sel.Seed != nil {
				seed, seeded = *sel.Seed, true
			}
		}
		policy, err := quote.NewRandomSample(minSize, maxSize, seed)
		if err != nil {
			return nil, false, err
		}
		return policy, seeded, nil
	}
	return nil, false, fmt.Errorf("unknown strategy %q", strategy)
}

func (s *Service) cacheKey(in GenerateInput, policy quote.SelectionPolicy) string {
	payload, _ := json.Marshal(struct {
		Catalog string                `json:"c"`
		Request models.FundingRequest `json:"r"`
		Filter  *models.QuoteFilter   `json:"f"`
		Policy  string                `json:"p"`
	}{s.fingerprint, in.Request, in.Filter, fmt.Sprintf("%T%+v", policy, policy)})
	sum := sha256.Sum256(payload)
	return hex.EncodeToString(sum[:])
}

func fingerprint(catalog []models.LenderProfile) string {
	payload, _ := json.Marshal(catalog)
	sum := sha256.Sum256(payload)
	return hex.EncodeToString(sum[:8])
}
