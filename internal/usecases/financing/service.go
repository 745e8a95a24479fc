package financing

import (
	"context"
	"io"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/time/rate"

	"github.com/ArshadAliDS/Amazon/infrastructure/integrator/frankfurter"
	spapidomain "github.com/ArshadAliDS/Amazon/infrastructure/integrator/spapi/domain"
	"github.com/ArshadAliDS/Amazon/infrastructure/integrator/spapi/spapiclient"
	"github.com/ArshadAliDS/Amazon/internal/config"
	"github.com/ArshadAliDS/Amazon/internal/domain"
	"github.com/ArshadAliDS/Amazon/pkg/utils"
)

// financialEventRegions are the region groups swept for shipment
// events. Far-east marketplaces are not part of the finances dashboard.
var financialEventRegions = []domain.RegionGroup{domain.RegionNA, domain.RegionEU}

// Financier produces the flattened, expense-merged, currency-normalized
// financial rows behind the finances dashboard.
type Financier interface {
	Events(ctx context.Context, account string, dates domain.DateRange, expenseDatasetID string) ([]domain.FinancialRow, error)
	Summary(ctx context.Context, account string, dates domain.DateRange, expenseDatasetID string) (*domain.FinancialSummary, error)
	UploadExpenses(fileName string, r io.Reader) (*domain.ExpenseDataset, error)
	ExpenseDataset(id string) (*domain.ExpenseDataset, bool)
}

type Service struct {
	cfg      *config.Config
	client   spapiclient.Client
	rates    frankfurter.RateIntegrator
	expenses *ExpenseStore

	// pageLimiter paces successive event pages so a long NextToken walk
	// stays under the finances API throttle.
	pageLimiter *rate.Limiter
}

func NewService(cfg *config.Config, client spapiclient.Client, rates frankfurter.RateIntegrator) Financier {
	return &Service{
		cfg:         cfg,
		client:      client,
		rates:       rates,
		expenses:    NewExpenseStore(cfg.Finances.ExpenseDatasetTTL),
		pageLimiter: rate.NewLimiter(rate.Every(cfg.Finances.PageDelay), 1),
	}
}

// ExpenseDataset looks up a previously uploaded dataset.
func (s *Service) ExpenseDataset(id string) (*domain.ExpenseDataset, bool) {
	return s.expenses.Get(id)
}

// Events sweeps shipment events for the date range across the account's
// regions, flattens them, merges uploaded expenses and converts every
// row into the target currency. A region that fails after another one
// produced rows degrades to a partial result instead of failing the
// whole request.
func (s *Service) Events(ctx context.Context, account string, dates domain.DateRange, expenseDatasetID string) ([]domain.FinancialRow, error) {
	creds, err := s.cfg.AccountCredentials(account)
	if err != nil {
		return nil, err
	}

	var records []domain.ExpenseRecord
	if expenseDatasetID != "" {
		dataset, ok := s.expenses.Get(expenseDatasetID)
		if !ok {
			return nil, domain.NewFailure(domain.FailureConfig,
				"expense dataset %q not found or expired", expenseDatasetID)
		}
		records = dataset.Records
	}

	rows := []domain.FinancialRow{}
	var lastErr error
	for _, region := range financialEventRegions {
		if _, err := creds.RefreshToken(region); err != nil {
			logrus.WithFields(logrus.Fields{
				"account": account,
				"region":  region,
			}).Debug("region skipped, no refresh token")
			continue
		}

		regionRows, err := s.fetchRegion(ctx, creds, region, dates)
		if err != nil {
			logrus.WithError(err).WithFields(logrus.Fields{
				"account": account,
				"region":  region,
			}).Error("financial event fetch failed for region")
			lastErr = err
			continue
		}
		rows = append(rows, regionRows...)
	}

	if lastErr != nil {
		if len(rows) == 0 {
			return nil, lastErr
		}
		logrus.Warn("returning partial financial rows, one region failed")
	}

	if records != nil {
		rows = mergeExpenses(rows, records)
	}

	return s.normalize(ctx, rows), nil
}

// fetchRegion walks the date range in fixed-size chunks, following
// NextToken pagination inside each chunk.
func (s *Service) fetchRegion(ctx context.Context, creds *config.Credentials, region domain.RegionGroup, dates domain.DateRange) ([]domain.FinancialRow, error) {
	chunk := time.Duration(s.cfg.Finances.ChunkDays) * 24 * time.Hour
	rows := []domain.FinancialRow{}

	for chunkStart := dates.Start; chunkStart.Before(dates.End); chunkStart = chunkStart.Add(chunk) {
		chunkEnd := chunkStart.Add(chunk)
		if chunkEnd.After(dates.End) {
			chunkEnd = dates.End
		}

		events, err := s.fetchChunk(ctx, creds, region, chunkStart, chunkEnd)
		if err != nil {
			return nil, err
		}
		rows = append(rows, flattenEvents(events)...)

		if chunkEnd.Before(dates.End) {
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(s.cfg.Finances.ChunkDelay):
			}
		}
	}

	return rows, nil
}

func (s *Service) fetchChunk(ctx context.Context, creds *config.Credentials, region domain.RegionGroup, start, end time.Time) ([]spapidomain.ShipmentEvent, error) {
	postedAfter := start.UTC().Format(time.RFC3339)
	postedBefore := end.UTC().Format(time.RFC3339)

	events := []spapidomain.ShipmentEvent{}
	nextToken := ""
	for {
		if err := s.pageLimiter.Wait(ctx); err != nil {
			return nil, err
		}

		payload, err := s.client.ListFinancialEvents(ctx, creds, region, postedAfter, postedBefore, nextToken)
		if err != nil {
			return nil, err
		}

		events = append(events, payload.FinancialEvents.ShipmentEventList...)

		nextToken = payload.NextToken
		if nextToken == "" {
			return events, nil
		}
	}
}

// normalize converts every monetary column of a row into the target
// currency, merged expense columns included. Rows whose currency the
// provider cannot serve keep their amounts at rate 1.0 with the
// fallback flag raised.
func (s *Service) normalize(ctx context.Context, rows []domain.FinancialRow) []domain.FinancialRow {
	target := s.cfg.Rates.TargetCurrency

	for i := range rows {
		row := &rows[i]
		if row.Currency == "" {
			row.Rate = 1.0
			row.RateIsFallback = true
			continue
		}

		conversionRate, fallback := s.rates.Rate(ctx, row.Currency)
		row.TotalRevenue = utils.RoundWithTwoDecimalPlace(row.TotalRevenue * conversionRate)
		row.Fees = utils.RoundWithTwoDecimalPlace(row.Fees * conversionRate)
		row.NetProceeds = utils.RoundWithTwoDecimalPlace(row.NetProceeds * conversionRate)
		row.Expenses = utils.RoundWithTwoDecimalPlace(row.Expenses * conversionRate)
		row.CourierCharges = utils.RoundWithTwoDecimalPlace(row.CourierCharges * conversionRate)
		row.Rate = conversionRate
		row.RateIsFallback = fallback
		if !fallback {
			row.Currency = target
		}
	}

	return rows
}

// Summary aggregates the converted rows into the dashboard KPI block.
// Net proceeds deduct uploaded expenses on top of the marketplace fees.
func (s *Service) Summary(ctx context.Context, account string, dates domain.DateRange, expenseDatasetID string) (*domain.FinancialSummary, error) {
	rows, err := s.Events(ctx, account, dates, expenseDatasetID)
	if err != nil {
		return nil, err
	}

	summary := &domain.FinancialSummary{
		Currency: s.cfg.Rates.TargetCurrency,
		RowCount: len(rows),
	}

	orders := map[string]struct{}{}
	for _, row := range rows {
		summary.TotalRevenue += row.TotalRevenue
		summary.TotalFees += row.Fees
		summary.TotalExpenses += row.Expenses + row.CourierCharges
		summary.NetProceeds += row.NetProceeds - row.Expenses - row.CourierCharges
		orders[row.OrderID] = struct{}{}
		if row.RateIsFallback {
			summary.FallbackRows++
		}
		if row.Currency == "" {
			summary.MissingRateFor++
		}
	}
	summary.UniqueOrders = len(orders)

	summary.TotalRevenue = utils.RoundWithTwoDecimalPlace(summary.TotalRevenue)
	summary.TotalFees = utils.RoundWithTwoDecimalPlace(summary.TotalFees)
	summary.TotalExpenses = utils.RoundWithTwoDecimalPlace(summary.TotalExpenses)
	summary.NetProceeds = utils.RoundWithTwoDecimalPlace(summary.NetProceeds)

	return summary, nil
}
