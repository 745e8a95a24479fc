package spapiclient

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/url"

	"github.com/sirupsen/logrus"

	"github.com/ArshadAliDS/Amazon/internal/config"
	"github.com/ArshadAliDS/Amazon/internal/domain"
	spapidomain "github.com/ArshadAliDS/Amazon/infrastructure/integrator/spapi/domain"
)

// Client is the SP-API surface consumed by the usecase services.
type Client interface {
	CreateReport(ctx context.Context, creds *config.Credentials, region domain.RegionGroup, spec spapidomain.CreateReportSpec) (string, error)
	GetReport(ctx context.Context, creds *config.Credentials, region domain.RegionGroup, reportID string) (*spapidomain.Report, string, error)
	GetReportDocument(ctx context.Context, creds *config.Credentials, region domain.RegionGroup, documentID string) (*spapidomain.ReportDocument, error)
	DownloadDocument(ctx context.Context, doc *spapidomain.ReportDocument) (string, error)

	ListFinancialEvents(ctx context.Context, creds *config.Credentials, region domain.RegionGroup, postedAfter, postedBefore, nextToken string) (*spapidomain.FinancialEventsPayload, error)

	GetOrder(ctx context.Context, creds *config.Credentials, region domain.RegionGroup, orderID string) (*spapidomain.Order, error)
	GetOrderItems(ctx context.Context, creds *config.Credentials, region domain.RegionGroup, orderID string) ([]spapidomain.OrderItem, error)

	GetListingItem(ctx context.Context, creds *config.Credentials, region domain.RegionGroup, sellerID, sku, marketplaceID string) (*spapidomain.ListingItemResponse, error)
	GetListingOffers(ctx context.Context, creds *config.Credentials, region domain.RegionGroup, sku, marketplaceID string) (*spapidomain.GetOffersResponse, error)
	GetCatalogItems(ctx context.Context, creds *config.Credentials, region domain.RegionGroup, marketplaceID string, asins []string) (*spapidomain.CatalogItemsResponse, error)
}

// SPAPIClient is the HTTP implementation of Client. Every call resolves
// a bearer token through the token manager first.
type SPAPIClient struct {
	cfg            *config.Config
	tokens         *TokenManager
	httpClient     *http.Client
	downloadClient *http.Client
}

// NewClient creates the SP-API client over a shared token manager.
func NewClient(cfg *config.Config, tokens *TokenManager) Client {
	return &SPAPIClient{
		cfg:    cfg,
		tokens: tokens,
		httpClient: &http.Client{
			Timeout: cfg.SPAPI.HTTPTimeout,
		},
		downloadClient: &http.Client{
			Timeout: cfg.SPAPI.DownloadHTTPTimeout,
		},
	}
}

// doGet performs an authenticated GET against the regional endpoint and
// returns the response body. Non-200 statuses become transport failures
// carrying the raw body as diagnostic.
func (c *SPAPIClient) doGet(ctx context.Context, creds *config.Credentials, region domain.RegionGroup, path string, query url.Values) ([]byte, error) {
	return c.do(ctx, creds, region, http.MethodGet, path, query, nil)
}

// doPost performs an authenticated POST with a JSON body.
func (c *SPAPIClient) doPost(ctx context.Context, creds *config.Credentials, region domain.RegionGroup, path string, body []byte) ([]byte, error) {
	return c.do(ctx, creds, region, http.MethodPost, path, nil, body)
}

func (c *SPAPIClient) do(ctx context.Context, creds *config.Credentials, region domain.RegionGroup, method, path string, query url.Values, body []byte) ([]byte, error) {
	accessToken, err := c.tokens.GetToken(ctx, creds, region)
	if err != nil {
		return nil, err
	}

	endpoint := region.Endpoint() + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return nil, err
	}
	req.Header.Set("x-amz-access-token", accessToken)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		logrus.WithError(err).WithFields(logrus.Fields{
			"method": method,
			"path":   path,
			"region": region,
		}).Error("SP-API request failed")
		return nil, domain.WrapFailure(err, domain.FailureTransport, "%s %s failed", method, path)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, domain.WrapFailure(err, domain.FailureTransport, "reading %s response", path)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		logrus.WithFields(logrus.Fields{
			"method": method,
			"path":   path,
			"region": region,
			"status": resp.StatusCode,
		}).Error("SP-API returned an error status")
		return nil, domain.NewFailure(domain.FailureTransport,
			"%s %s: status %d", method, path, resp.StatusCode).WithDiagnostic(string(respBody))
	}

	return respBody, nil
}
