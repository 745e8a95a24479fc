package frankfurter

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ArshadAliDS/Amazon/infrastructure/integrator/frankfurter/frankfurterclient"
	"github.com/ArshadAliDS/Amazon/internal/config"
	"github.com/ArshadAliDS/Amazon/pkg/log"
)

func newRateService(t *testing.T, handler http.HandlerFunc) (RateIntegrator, *httptest.Server) {
	t.Helper()
	log.SetupTestLogger()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	cfg := &config.Config{
		Rates: config.Rates{
			BaseURL:        server.URL,
			TargetCurrency: "INR",
			BaseCurrency:   "USD",
		},
	}

	return New(cfg, frankfurterclient.New(cfg)), server
}

func TestRateService_Rate(t *testing.T) {
	calls := 0
	service, _ := newRateService(t, func(w http.ResponseWriter, r *http.Request) {
		calls++
		assert.Equal(t, "USD", r.URL.Query().Get("from"))
		assert.Equal(t, "INR", r.URL.Query().Get("to"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"amount":1.0,"base":"USD","date":"2024-01-15","rates":{"INR":83.25}}`))
	})

	rate, fallback := service.Rate(context.Background(), "USD")
	assert.Equal(t, 83.25, rate)
	assert.False(t, fallback)
	assert.Equal(t, 1, calls)

	// Second lookup is served from the cache.
	rate, fallback = service.Rate(context.Background(), "USD")
	assert.Equal(t, 83.25, rate)
	assert.False(t, fallback)
	assert.Equal(t, 1, calls)
}

func TestRateService_Rate_IdentityCurrency(t *testing.T) {
	calls := 0
	service, _ := newRateService(t, func(w http.ResponseWriter, r *http.Request) {
		calls++
	})

	rate, fallback := service.Rate(context.Background(), "INR")
	assert.Equal(t, 1.0, rate)
	assert.False(t, fallback)
	assert.Equal(t, 0, calls, "identity conversion must not hit the provider")

	rate, fallback = service.Rate(context.Background(), "")
	assert.Equal(t, 1.0, rate)
	assert.False(t, fallback)
	assert.Equal(t, 0, calls)
}

func TestRateService_Rate_ProviderError(t *testing.T) {
	service, _ := newRateService(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	rate, fallback := service.Rate(context.Background(), "EUR")
	assert.Equal(t, 1.0, rate)
	assert.True(t, fallback)
}

func TestRateService_Rate_MissingCurrencyInResponse(t *testing.T) {
	service, _ := newRateService(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"amount":1.0,"base":"XYZ","date":"2024-01-15","rates":{}}`))
	})

	rate, fallback := service.Rate(context.Background(), "XYZ")
	assert.Equal(t, 1.0, rate)
	assert.True(t, fallback)
}

func TestRateService_Convert(t *testing.T) {
	service, _ := newRateService(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"amount":1.0,"base":"USD","date":"2024-01-15","rates":{"INR":80.0}}`))
	})

	converted, rate, fallback := service.Convert(context.Background(), 10.0, "USD")
	assert.Equal(t, 800.0, converted)
	assert.Equal(t, 80.0, rate)
	assert.False(t, fallback)

	// Amounts already in the target currency pass through unchanged.
	converted, rate, fallback = service.Convert(context.Background(), 42.5, "INR")
	assert.Equal(t, 42.5, converted)
	assert.Equal(t, 1.0, rate)
	assert.False(t, fallback)
}
