package reporting

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	ratemocks "github.com/ArshadAliDS/Amazon/infrastructure/integrator/frankfurter/mocks"
	spapidomain "github.com/ArshadAliDS/Amazon/infrastructure/integrator/spapi/domain"
	spapimocks "github.com/ArshadAliDS/Amazon/infrastructure/integrator/spapi/mocks"
	"github.com/ArshadAliDS/Amazon/internal/config"
	"github.com/ArshadAliDS/Amazon/internal/domain"
	"github.com/ArshadAliDS/Amazon/pkg/log"
)

const usMarketplace = "ATVPDKIKX0DER"

func testConfig() *config.Config {
	return &config.Config{
		SPAPI: config.SPAPI{
			ReportPollInterval: time.Millisecond,
			ReportPollAttempts: 5,
		},
		Accounts: map[string]*config.Credentials{
			"acme": {
				Account: "acme",
				RefreshTokens: map[domain.RegionGroup]string{
					domain.RegionNA: "refresh",
				},
			},
		},
	}
}

func TestService_Run_FlatFileReport(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	log.SetupTestLogger()

	mockClient := spapimocks.NewMockClient(ctrl)
	service := NewService(testConfig(), mockClient, ratemocks.NewMockRateIntegrator(ctrl))

	mockClient.EXPECT().
		CreateReport(gomock.Any(), gomock.Any(), domain.RegionNA, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ *config.Credentials, _ domain.RegionGroup, spec spapidomain.CreateReportSpec) (string, error) {
			assert.Equal(t, "GET_MERCHANT_LISTINGS_ALL_DATA", spec.ReportType)
			assert.Equal(t, []string{usMarketplace}, spec.MarketplaceIDs)
			return "report-1", nil
		})

	// Two polls in progress, then done.
	mockClient.EXPECT().
		GetReport(gomock.Any(), gomock.Any(), domain.RegionNA, "report-1").
		Return(&spapidomain.Report{ReportID: "report-1", ProcessingStatus: "IN_QUEUE"}, "", nil)
	mockClient.EXPECT().
		GetReport(gomock.Any(), gomock.Any(), domain.RegionNA, "report-1").
		Return(&spapidomain.Report{ReportID: "report-1", ProcessingStatus: "IN_PROGRESS"}, "", nil)
	mockClient.EXPECT().
		GetReport(gomock.Any(), gomock.Any(), domain.RegionNA, "report-1").
		Return(&spapidomain.Report{
			ReportID:         "report-1",
			ProcessingStatus: domain.ReportStatusDone,
			ReportDocumentID: "doc-1",
		}, "", nil)

	doc := &spapidomain.ReportDocument{ReportDocumentID: "doc-1", URL: "https://example.com/doc"}
	mockClient.EXPECT().
		GetReportDocument(gomock.Any(), gomock.Any(), domain.RegionNA, "doc-1").
		Return(doc, nil)
	mockClient.EXPECT().
		DownloadDocument(gomock.Any(), doc).
		Return("sku\tprice\nABC-1\t19.99\n", nil)

	result, err := service.Run(context.Background(), domain.ReportRequest{
		Account:       "acme",
		MarketplaceID: usMarketplace,
		ReportType:    "GET_MERCHANT_LISTINGS_ALL_DATA",
	})
	assert.NoError(t, err)
	assert.Equal(t, "report-1", result.ReportID)
	assert.Equal(t, []string{"sku", "price"}, result.Table.Columns)
	assert.Equal(t, [][]string{{"ABC-1", "19.99"}}, result.Table.Rows)
	assert.Empty(t, result.RawJSON)
}

func TestService_Run_FatalStatus(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	log.SetupTestLogger()

	mockClient := spapimocks.NewMockClient(ctrl)
	service := NewService(testConfig(), mockClient, ratemocks.NewMockRateIntegrator(ctrl))

	mockClient.EXPECT().
		CreateReport(gomock.Any(), gomock.Any(), domain.RegionNA, gomock.Any()).
		Return("report-2", nil)
	mockClient.EXPECT().
		GetReport(gomock.Any(), gomock.Any(), domain.RegionNA, "report-2").
		Return(&spapidomain.Report{ReportID: "report-2", ProcessingStatus: domain.ReportStatusFatal},
			`{"processingStatus":"FATAL","detail":"bad date range"}`, nil)

	_, err := service.Run(context.Background(), domain.ReportRequest{
		Account:       "acme",
		MarketplaceID: usMarketplace,
		ReportType:    "GET_MERCHANT_LISTINGS_ALL_DATA",
	})
	assert.Error(t, err)
	assert.Equal(t, domain.FailureJob, domain.KindOf(err))

	var failure *domain.Failure
	assert.ErrorAs(t, err, &failure)
	assert.Contains(t, failure.Diagnostic, "bad date range")
}

func TestService_Run_PollCeiling(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	log.SetupTestLogger()

	cfg := testConfig()
	cfg.SPAPI.ReportPollAttempts = 3

	mockClient := spapimocks.NewMockClient(ctrl)
	service := NewService(cfg, mockClient, ratemocks.NewMockRateIntegrator(ctrl))

	mockClient.EXPECT().
		CreateReport(gomock.Any(), gomock.Any(), domain.RegionNA, gomock.Any()).
		Return("report-3", nil)
	mockClient.EXPECT().
		GetReport(gomock.Any(), gomock.Any(), domain.RegionNA, "report-3").
		Return(&spapidomain.Report{ReportID: "report-3", ProcessingStatus: "IN_PROGRESS"}, "", nil).
		Times(3)

	_, err := service.Run(context.Background(), domain.ReportRequest{
		Account:       "acme",
		MarketplaceID: usMarketplace,
		ReportType:    "GET_MERCHANT_LISTINGS_ALL_DATA",
	})
	assert.Error(t, err)
	assert.Equal(t, domain.FailureJob, domain.KindOf(err))
	assert.Contains(t, err.Error(), "still running")
}

func TestService_Run_UnknownStatusKeepsPolling(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	log.SetupTestLogger()

	mockClient := spapimocks.NewMockClient(ctrl)
	service := NewService(testConfig(), mockClient, ratemocks.NewMockRateIntegrator(ctrl))

	mockClient.EXPECT().
		CreateReport(gomock.Any(), gomock.Any(), domain.RegionNA, gomock.Any()).
		Return("report-4", nil)
	mockClient.EXPECT().
		GetReport(gomock.Any(), gomock.Any(), domain.RegionNA, "report-4").
		Return(&spapidomain.Report{ReportID: "report-4", ProcessingStatus: "MYSTERY_STATE"}, "", nil)
	mockClient.EXPECT().
		GetReport(gomock.Any(), gomock.Any(), domain.RegionNA, "report-4").
		Return(&spapidomain.Report{
			ReportID:         "report-4",
			ProcessingStatus: domain.ReportStatusDone,
			ReportDocumentID: "doc-4",
		}, "", nil)

	doc := &spapidomain.ReportDocument{ReportDocumentID: "doc-4", URL: "https://example.com/doc"}
	mockClient.EXPECT().
		GetReportDocument(gomock.Any(), gomock.Any(), domain.RegionNA, "doc-4").
		Return(doc, nil)
	mockClient.EXPECT().
		DownloadDocument(gomock.Any(), doc).
		Return("a\tb\n1\t2\n", nil)

	result, err := service.Run(context.Background(), domain.ReportRequest{
		Account:       "acme",
		MarketplaceID: usMarketplace,
		ReportType:    "GET_MERCHANT_LISTINGS_ALL_DATA",
	})
	assert.NoError(t, err)
	assert.Equal(t, "report-4", result.ReportID)
}

func TestService_Run_UnknownReportType(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	log.SetupTestLogger()

	service := NewService(testConfig(), spapimocks.NewMockClient(ctrl), ratemocks.NewMockRateIntegrator(ctrl))

	_, err := service.Run(context.Background(), domain.ReportRequest{
		Account:       "acme",
		MarketplaceID: usMarketplace,
		ReportType:    "GET_NO_SUCH_REPORT",
	})
	assert.Error(t, err)
	assert.Equal(t, domain.FailureConfig, domain.KindOf(err))
}

func TestService_SalesSummary(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	log.SetupTestLogger()

	mockClient := spapimocks.NewMockClient(ctrl)
	mockRates := ratemocks.NewMockRateIntegrator(ctrl)
	service := NewService(testConfig(), mockClient, mockRates)

	mockClient.EXPECT().
		CreateReport(gomock.Any(), gomock.Any(), domain.RegionNA, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ *config.Credentials, _ domain.RegionGroup, spec spapidomain.CreateReportSpec) (string, error) {
			assert.Equal(t, "GET_SALES_AND_TRAFFIC_REPORT", spec.ReportType)
			assert.Equal(t, "DAY", spec.ReportOptions["dateGranularity"])
			return "report-5", nil
		})
	mockClient.EXPECT().
		GetReport(gomock.Any(), gomock.Any(), domain.RegionNA, "report-5").
		Return(&spapidomain.Report{
			ReportID:         "report-5",
			ProcessingStatus: domain.ReportStatusDone,
			ReportDocumentID: "doc-5",
		}, "", nil)

	doc := &spapidomain.ReportDocument{ReportDocumentID: "doc-5", URL: "https://example.com/doc"}
	mockClient.EXPECT().
		GetReportDocument(gomock.Any(), gomock.Any(), domain.RegionNA, "doc-5").
		Return(doc, nil)
	mockClient.EXPECT().
		DownloadDocument(gomock.Any(), doc).
		Return(`{"salesAndTrafficByDate":[{"date":"2024-01-01","salesByDate":{"orderedProductSales":{"amount":100.0,"currencyCode":"USD"},"unitsOrdered":4}}]}`, nil)

	mockRates.EXPECT().
		Convert(gomock.Any(), 100.0, "USD").
		Return(8300.0, 83.0, false)

	rows, err := service.SalesSummary(context.Background(), "acme", usMarketplace, domain.DateRange{
		Start: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		End:   time.Date(2024, 1, 7, 0, 0, 0, 0, time.UTC),
	})
	assert.NoError(t, err)
	assert.Len(t, rows, 1)
	assert.Equal(t, "2024-01-01", rows[0].Date)
	assert.Equal(t, "United States", rows[0].Marketplace)
	assert.Equal(t, 100.0, rows[0].SalesLocal)
	assert.Equal(t, 8300.0, rows[0].SalesBase)
	assert.Equal(t, 4, rows[0].UnitsOrdered)
}
