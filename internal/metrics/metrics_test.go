package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_RegistersCollectors(t *testing.T) {
	m := New()
	m.QuoteRequestsTotal.WithLabelValues("low").Inc()
	m.QuotesReturned.Observe(5)

	families, err := m.Registry().Gather()
	require.NoError(t, err)

	names := make(map[string]bool, len(families))
	for _, f := range families {
		names[f.GetName()] = true
	}
	assert.True(t, names["brokerbox_quotes_requests_total"])
	assert.True(t, names["brokerbox_quotes_returned"])
	assert.True(t, names["go_goroutines"])
}

func TestNew_IndependentRegistries(t *testing.T) {
	a, b := New(), New()
	a.QuoteErrorsTotal.WithLabelValues("validation").Inc()

	rec := httptest.NewRecorder()
	b.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.NotContains(t, rec.Body.String(), `brokerbox_quotes_errors_total{kind="validation"}`)
}
