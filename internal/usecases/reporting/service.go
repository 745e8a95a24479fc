package reporting

import (
	"context"
	"encoding/json"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/ArshadAliDS/Amazon/infrastructure/integrator/frankfurter"
	spapidomain "github.com/ArshadAliDS/Amazon/infrastructure/integrator/spapi/domain"
	"github.com/ArshadAliDS/Amazon/infrastructure/integrator/spapi/spapiclient"
	"github.com/ArshadAliDS/Amazon/internal/config"
	"github.com/ArshadAliDS/Amazon/internal/domain"
	"github.com/ArshadAliDS/Amazon/internal/tabular"
)

// Result is one finished report run. Flat-file reports carry a parsed
// table; JSON reports carry the raw document body instead.
type Result struct {
	ReportID   string         `json:"report_id"`
	ReportType string         `json:"report_type"`
	Table      *tabular.Table `json:"table,omitempty"`
	RawJSON    string         `json:"raw_json,omitempty"`
}

// Reporter drives report jobs end to end: submit, poll until a terminal
// status, download and decode the document.
type Reporter interface {
	Types() []domain.ReportType
	Run(ctx context.Context, req domain.ReportRequest) (*Result, error)
	SalesSummary(ctx context.Context, account, marketplaceID string, dates domain.DateRange) ([]domain.SalesSummaryRow, error)
}

type Service struct {
	cfg    *config.Config
	client spapiclient.Client
	rates  frankfurter.RateIntegrator
}

func NewService(cfg *config.Config, client spapiclient.Client, rates frankfurter.RateIntegrator) Reporter {
	return &Service{
		cfg:    cfg,
		client: client,
		rates:  rates,
	}
}

// Types lists the report catalogue shown by the dashboard.
func (s *Service) Types() []domain.ReportType {
	return domain.ReportTypes
}

// Run submits a report job and sees it through to its document.
func (s *Service) Run(ctx context.Context, req domain.ReportRequest) (*Result, error) {
	reportType, ok := domain.ReportTypeByAPIName(req.ReportType)
	if !ok {
		return nil, domain.NewFailure(domain.FailureConfig, "unknown report type %q", req.ReportType)
	}

	creds, err := s.cfg.AccountCredentials(req.Account)
	if err != nil {
		return nil, err
	}

	marketplace, ok := domain.MarketplaceByID(req.MarketplaceID)
	if !ok {
		return nil, domain.NewFailure(domain.FailureConfig, "unknown marketplace %q", req.MarketplaceID)
	}

	spec := spapidomain.CreateReportSpec{
		ReportType:     reportType.APIName,
		MarketplaceIDs: []string{req.MarketplaceID},
		ReportOptions:  req.ReportOptions,
	}
	if req.DataStartTime != nil {
		spec.DataStartTime = req.DataStartTime.UTC().Format(time.RFC3339)
	}
	if req.DataEndTime != nil {
		spec.DataEndTime = req.DataEndTime.UTC().Format(time.RFC3339)
	}

	reportID, err := s.client.CreateReport(ctx, creds, marketplace.Region, spec)
	if err != nil {
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"report_id":   reportID,
		"report_type": reportType.APIName,
		"account":     req.Account,
	}).Info("report submitted")

	report, err := s.awaitReport(ctx, creds, marketplace.Region, reportID)
	if err != nil {
		return nil, err
	}

	text, err := s.fetchDocument(ctx, creds, marketplace.Region, report.ReportDocumentID)
	if err != nil {
		return nil, err
	}

	result := &Result{
		ReportID:   reportID,
		ReportType: reportType.APIName,
	}
	if reportType.JSONBody {
		result.RawJSON = text
	} else {
		result.Table = tabular.ParseTabDelimited(text)
	}

	return result, nil
}

// awaitReport polls the job until it reaches a terminal status or the
// attempt ceiling. An unrecognized status keeps the poll alive; the
// ceiling is the backstop for statuses that never settle.
func (s *Service) awaitReport(ctx context.Context, creds *config.Credentials, region domain.RegionGroup, reportID string) (*spapidomain.Report, error) {
	for attempt := 1; attempt <= s.cfg.SPAPI.ReportPollAttempts; attempt++ {
		report, rawBody, err := s.client.GetReport(ctx, creds, region, reportID)
		if err != nil {
			return nil, err
		}

		switch report.ProcessingStatus {
		case domain.ReportStatusDone:
			if report.ReportDocumentID == "" {
				return nil, domain.NewFailure(domain.FailureJob,
					"report %s finished without a document id", reportID).WithDiagnostic(rawBody)
			}
			return report, nil
		case domain.ReportStatusFatal, domain.ReportStatusCancelled:
			return nil, domain.NewFailure(domain.FailureJob,
				"report %s ended with status %s", reportID, report.ProcessingStatus).WithDiagnostic(rawBody)
		default:
			if !isKnownTransientStatus(report.ProcessingStatus) {
				logrus.WithFields(logrus.Fields{
					"report_id": reportID,
					"status":    report.ProcessingStatus,
				}).Warn("unrecognized report status, continuing to poll")
			}
		}

		select {
		case <-ctx.Done():
			return nil, domain.WrapFailure(ctx.Err(), domain.FailureJob, "report %s poll aborted", reportID)
		case <-time.After(s.cfg.SPAPI.ReportPollInterval):
		}
	}

	return nil, domain.NewFailure(domain.FailureJob,
		"report %s still running after %d poll attempts", reportID, s.cfg.SPAPI.ReportPollAttempts)
}

func isKnownTransientStatus(status string) bool {
	switch status {
	case "IN_QUEUE", "IN_PROGRESS":
		return true
	}
	return false
}

func (s *Service) fetchDocument(ctx context.Context, creds *config.Credentials, region domain.RegionGroup, documentID string) (string, error) {
	doc, err := s.client.GetReportDocument(ctx, creds, region, documentID)
	if err != nil {
		return "", err
	}
	return s.client.DownloadDocument(ctx, doc)
}

// SalesSummary runs the sales-and-traffic report for one marketplace
// and converts the daily sales into the base currency.
func (s *Service) SalesSummary(ctx context.Context, account, marketplaceID string, dates domain.DateRange) ([]domain.SalesSummaryRow, error) {
	marketplace, ok := domain.MarketplaceByID(marketplaceID)
	if !ok {
		return nil, domain.NewFailure(domain.FailureConfig, "unknown marketplace %q", marketplaceID)
	}

	start := dates.Start
	end := dates.End
	result, err := s.Run(ctx, domain.ReportRequest{
		Account:       account,
		MarketplaceID: marketplaceID,
		ReportType:    "GET_SALES_AND_TRAFFIC_REPORT",
		DataStartTime: &start,
		DataEndTime:   &end,
		ReportOptions: map[string]string{"dateGranularity": "DAY"},
	})
	if err != nil {
		return nil, err
	}

	var report spapidomain.SalesAndTrafficReport
	if err := json.Unmarshal([]byte(result.RawJSON), &report); err != nil {
		return nil, domain.WrapFailure(err, domain.FailureJob, "decoding sales and traffic report %s", result.ReportID)
	}

	rows := make([]domain.SalesSummaryRow, 0, len(report.SalesAndTrafficByDate))
	for _, day := range report.SalesAndTrafficByDate {
		currency := day.SalesByDate.OrderedProductSales.CurrencyCode
		if currency == "" {
			currency = marketplace.Currency
		}

		converted, _, _ := s.rates.Convert(ctx, day.SalesByDate.OrderedProductSales.Amount, currency)
		rows = append(rows, domain.SalesSummaryRow{
			Date:         day.Date,
			Marketplace:  marketplace.Country,
			Currency:     currency,
			SalesLocal:   day.SalesByDate.OrderedProductSales.Amount,
			SalesBase:    converted,
			UnitsOrdered: day.SalesByDate.UnitsOrdered,
		})
	}

	return rows, nil
}
