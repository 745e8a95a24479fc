package spapiclient

import (
	"context"
	"encoding/json"
	"net/url"

	"github.com/pkg/errors"

	"github.com/ArshadAliDS/Amazon/internal/config"
	"github.com/ArshadAliDS/Amazon/internal/domain"
	spapidomain "github.com/ArshadAliDS/Amazon/infrastructure/integrator/spapi/domain"
)

// ListFinancialEvents fetches one page of financial events posted inside
// the given window. Pass the NextToken of the previous page to continue;
// an empty NextToken in the result means the window is exhausted.
func (c *SPAPIClient) ListFinancialEvents(ctx context.Context, creds *config.Credentials, region domain.RegionGroup, postedAfter, postedBefore, nextToken string) (*spapidomain.FinancialEventsPayload, error) {
	query := url.Values{}
	if nextToken != "" {
		// The API ignores the window when paginating.
		query.Set("NextToken", nextToken)
	} else {
		query.Set("PostedAfter", postedAfter)
		query.Set("PostedBefore", postedBefore)
	}

	respBody, err := c.doGet(ctx, creds, region, "/finances/v0/financialEvents", query)
	if err != nil {
		return nil, err
	}

	var resp spapidomain.ListFinancialEventsResponse
	if err := json.Unmarshal(respBody, &resp); err != nil {
		return nil, errors.Wrap(err, "decoding financial events page")
	}

	return &resp.Payload, nil
}
