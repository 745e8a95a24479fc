package frankfurterclient

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/ArshadAliDS/Amazon/internal/config"
	"github.com/ArshadAliDS/Amazon/internal/domain"
)

// LatestResponse is the Frankfurter /latest payload. Rates is keyed by
// the target currency code.
type LatestResponse struct {
	Amount float64            `json:"amount"`
	Base   string             `json:"base"`
	Date   string             `json:"date"`
	Rates  map[string]float64 `json:"rates"`
}

type Client interface {
	Latest(ctx context.Context, from, to string) (*LatestResponse, error)
}

type frankfurterClient struct {
	cfg        *config.Config
	httpClient *http.Client
}

func New(cfg *config.Config) Client {
	return &frankfurterClient{
		cfg: cfg,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// Latest fetches the current exchange rate from one currency to another.
func (c *frankfurterClient) Latest(ctx context.Context, from, to string) (*LatestResponse, error) {
	query := url.Values{}
	query.Set("from", from)
	query.Set("to", to)

	endpoint := c.cfg.Rates.BaseURL + "/latest?" + query.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, domain.WrapFailure(err, domain.FailureTransport, "fetching %s->%s rate", from, to)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, domain.WrapFailure(err, domain.FailureTransport, "reading rate response")
	}

	if resp.StatusCode != http.StatusOK {
		return nil, domain.NewFailure(domain.FailureTransport,
			"rate lookup %s->%s: status %d", from, to, resp.StatusCode).WithDiagnostic(string(body))
	}

	var latest LatestResponse
	if err := json.Unmarshal(body, &latest); err != nil {
		return nil, domain.WrapFailure(err, domain.FailureTransport, "decoding rate response")
	}

	return &latest, nil
}
