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

// GetOrder fetches the non-PII summary of one order.
func (c *SPAPIClient) GetOrder(ctx context.Context, creds *config.Credentials, region domain.RegionGroup, orderID string) (*spapidomain.Order, error) {
	respBody, err := c.doGet(ctx, creds, region, "/orders/v0/orders/"+url.PathEscape(orderID), nil)
	if err != nil {
		return nil, err
	}

	var resp spapidomain.GetOrderResponse
	if err := json.Unmarshal(respBody, &resp); err != nil {
		return nil, errors.Wrap(err, "decoding order")
	}

	return &resp.Payload, nil
}

// GetOrderItems fetches the line items of one order.
func (c *SPAPIClient) GetOrderItems(ctx context.Context, creds *config.Credentials, region domain.RegionGroup, orderID string) ([]spapidomain.OrderItem, error) {
	respBody, err := c.doGet(ctx, creds, region, "/orders/v0/orders/"+url.PathEscape(orderID)+"/orderItems", nil)
	if err != nil {
		return nil, err
	}

	var resp spapidomain.GetOrderItemsResponse
	if err := json.Unmarshal(respBody, &resp); err != nil {
		return nil, errors.Wrap(err, "decoding order items")
	}

	return resp.Payload.OrderItems, nil
}
