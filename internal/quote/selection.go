package quote

import (
	"fmt"
	"math/rand"

	"github.com/Dan9191/quote-service/internal/models"
)

// SelectionPolicy chooses which lenders of a catalog receive a quote.
// Implementations must not modify the catalog they are given.
type SelectionPolicy interface {
	Select(catalog []models.LenderProfile) []models.LenderProfile
}

// AllLenders selects the whole catalog in catalog order
type AllLenders struct{}

func (AllLenders) Select(catalog []models.LenderProfile) []models.LenderProfile {
	out := make([]models.LenderProfile, len(catalog))
	copy(out, catalog)
	return out
}

// RandomSample shuffles the catalog and keeps between Min and Max lenders.
// The same Seed over the same catalog always yields the same subset.
type RandomSample struct {
	Min  int
	Max  int
	Seed int64
}

// NewRandomSample validates the size bounds of a sample
func NewRandomSample(minSize, maxSize int, seed int64) (RandomSample, error) {
	if minSize < 0 {
		return RandomSample{}, fmt.Errorf("sample minimum must be non-negative, got %d", minSize)
	}
	if minSize > maxSize {
		return RandomSample{}, fmt.Errorf("sample minimum %d exceeds maximum %d", minSize, maxSize)
	}
	return RandomSample{Min: minSize, Max: maxSize, Seed: seed}, nil
}

func (s RandomSample) Select(catalog []models.LenderProfile) []models.LenderProfile {
	rng := rand.New(rand.NewSource(s.Seed))

	shuffled := make([]models.LenderProfile, len(catalog))
	copy(shuffled, catalog)
	rng.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})

	// bounds are clamped to the catalog first so the span cannot overflow
	hi := min(max(s.Max, 0), len(shuffled))
	lo := min(max(s.Min, 0), hi)
	size := lo
	if hi > lo {
		size += rng.Intn(hi - lo + 1)
	}
	return shuffled[:size]
}
