package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"

	"github.com/ArshadAliDS/Amazon/infrastructure/integrator/frankfurter"
	"github.com/ArshadAliDS/Amazon/internal/config"
	"github.com/ArshadAliDS/Amazon/internal/domain"
)

// RateRefreshService periodically re-resolves exchange rates for every
// marketplace currency so dashboard requests always hit a warm cache.
type RateRefreshService struct {
	scheduler *gocron.Scheduler
	cfg       *config.Config
	rates     frankfurter.RateIntegrator

	refreshMutex  sync.Mutex
	refreshing    bool
	lastRefreshAt time.Time
}

func NewRateRefreshService(cfg *config.Config, rates frankfurter.RateIntegrator) *RateRefreshService {
	return &RateRefreshService{
		scheduler: gocron.NewScheduler(time.UTC),
		cfg:       cfg,
		rates:     rates,
	}
}

// Start schedules the refresh and runs one immediately so the cache is
// warm from the first request. The scheduler stops with the context.
func (s *RateRefreshService) Start(ctx context.Context) error {
	if !s.cfg.RateSync.Enabled {
		logrus.Info("rate refresh disabled by configuration")
		return nil
	}

	interval := s.cfg.RateSync.IntervalMinutes
	logrus.WithField("interval_minutes", interval).Info("starting rate refresh scheduler")

	_, err := s.scheduler.Every(interval).Minutes().Do(func() {
		s.refreshAll(ctx)
	})
	if err != nil {
		return fmt.Errorf("scheduling rate refresh: %w", err)
	}

	s.scheduler.StartAsync()
	go s.refreshAll(ctx)

	go func() {
		<-ctx.Done()
		logrus.Info("stopping rate refresh scheduler")
		s.scheduler.Stop()
	}()

	return nil
}

func (s *RateRefreshService) refreshAll(ctx context.Context) {
	s.refreshMutex.Lock()
	if s.refreshing {
		s.refreshMutex.Unlock()
		logrus.Info("rate refresh already running, skipping")
		return
	}
	s.refreshing = true
	s.refreshMutex.Unlock()

	defer func() {
		s.refreshMutex.Lock()
		s.refreshing = false
		s.lastRefreshAt = time.Now()
		s.refreshMutex.Unlock()
	}()

	s.rates.Warm(ctx, marketplaceCurrencies())

	logrus.Info("rate refresh completed")
}

// marketplaceCurrencies lists the distinct currencies of the
// marketplace catalogue.
func marketplaceCurrencies() []string {
	seen := map[string]struct{}{}
	currencies := []string{}
	for _, marketplace := range domain.Marketplaces {
		if _, dup := seen[marketplace.Currency]; dup {
			continue
		}
		seen[marketplace.Currency] = struct{}{}
		currencies = append(currencies, marketplace.Currency)
	}
	return currencies
}
