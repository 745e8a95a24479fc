package frankfurter

import (
	"context"
	"time"

	gocache "github.com/patrickmn/go-cache"
	"github.com/sirupsen/logrus"

	"github.com/ArshadAliDS/Amazon/infrastructure/integrator/frankfurter/frankfurterclient"
	"github.com/ArshadAliDS/Amazon/internal/config"
)

const (
	rateCacheTTL     = time.Hour
	rateCacheCleanup = 10 * time.Minute
)

// RateIntegrator resolves exchange rates into the configured target
// currency. A looked-up rate is cached for an hour; when the provider
// cannot serve a currency the rate degrades to 1.0 and the fallback
// flag is set so callers can surface it per row.
type RateIntegrator interface {
	Rate(ctx context.Context, from string) (rate float64, fallback bool)
	Convert(ctx context.Context, amount float64, from string) (converted float64, rate float64, fallback bool)
	Warm(ctx context.Context, currencies []string)
}

type RateService struct {
	cfg    *config.Config
	Client frankfurterclient.Client
	cache  *gocache.Cache
}

func New(cfg *config.Config, client frankfurterclient.Client) RateIntegrator {
	return &RateService{
		cfg:    cfg,
		Client: client,
		cache:  gocache.New(rateCacheTTL, rateCacheCleanup),
	}
}

// Rate returns the multiplier converting one unit of the given currency
// into the target currency. Identity conversions and lookup failures
// both return without touching the cache; only the latter reports
// fallback.
func (s *RateService) Rate(ctx context.Context, from string) (float64, bool) {
	target := s.cfg.Rates.TargetCurrency
	if from == "" || from == target {
		return 1.0, false
	}

	if cached, found := s.cache.Get(from); found {
		return cached.(float64), false
	}

	latest, err := s.Client.Latest(ctx, from, target)
	if err != nil {
		logrus.WithError(err).WithFields(logrus.Fields{
			"from": from,
			"to":   target,
		}).Warn("Rate lookup failed, falling back to 1.0")
		return 1.0, true
	}

	rate, ok := latest.Rates[target]
	if !ok || rate <= 0 {
		logrus.WithFields(logrus.Fields{
			"from": from,
			"to":   target,
		}).Warn("Rate missing from provider response, falling back to 1.0")
		return 1.0, true
	}

	s.cache.Set(from, rate, gocache.DefaultExpiration)

	return rate, false
}

// Convert applies the resolved rate to an amount.
func (s *RateService) Convert(ctx context.Context, amount float64, from string) (float64, float64, bool) {
	rate, fallback := s.Rate(ctx, from)
	return amount * rate, rate, fallback
}

// Warm pre-resolves rates for a set of currencies so the first request
// after startup does not pay the lookup latency. Used by the refresh
// scheduler.
func (s *RateService) Warm(ctx context.Context, currencies []string) {
	for _, currency := range currencies {
		if _, fallback := s.Rate(ctx, currency); fallback {
			continue
		}
	}
}
