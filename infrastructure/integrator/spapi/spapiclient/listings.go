package spapiclient

import (
	"context"
	"encoding/json"
	"net/url"
	"strings"

	"github.com/pkg/errors"

	"github.com/ArshadAliDS/Amazon/internal/config"
	"github.com/ArshadAliDS/Amazon/internal/domain"
	spapidomain "github.com/ArshadAliDS/Amazon/infrastructure/integrator/spapi/domain"
)

// GetListingItem fetches summaries and attributes of one SKU's listing.
func (c *SPAPIClient) GetListingItem(ctx context.Context, creds *config.Credentials, region domain.RegionGroup, sellerID, sku, marketplaceID string) (*spapidomain.ListingItemResponse, error) {
	query := url.Values{}
	query.Set("marketplaceIds", marketplaceID)
	query.Set("includedData", "summaries,attributes")
	query.Set("issueLocale", "en_US")

	path := "/listings/2021-08-01/items/" + url.PathEscape(sellerID) + "/" + url.PathEscape(sku)
	respBody, err := c.doGet(ctx, creds, region, path, query)
	if err != nil {
		return nil, err
	}

	var resp spapidomain.ListingItemResponse
	if err := json.Unmarshal(respBody, &resp); err != nil {
		return nil, errors.Wrap(err, "decoding listing item")
	}

	return &resp, nil
}

// GetListingOffers fetches new-condition offer pricing for one SKU.
func (c *SPAPIClient) GetListingOffers(ctx context.Context, creds *config.Credentials, region domain.RegionGroup, sku, marketplaceID string) (*spapidomain.GetOffersResponse, error) {
	query := url.Values{}
	query.Set("MarketplaceId", marketplaceID)
	query.Set("ItemCondition", "New")

	path := "/products/pricing/v0/listings/" + url.PathEscape(sku) + "/offers"
	respBody, err := c.doGet(ctx, creds, region, path, query)
	if err != nil {
		return nil, err
	}

	var resp spapidomain.GetOffersResponse
	if err := json.Unmarshal(respBody, &resp); err != nil {
		return nil, errors.Wrap(err, "decoding listing offers")
	}

	return &resp, nil
}

// GetCatalogItems fetches catalogue images for a batch of ASINs.
func (c *SPAPIClient) GetCatalogItems(ctx context.Context, creds *config.Credentials, region domain.RegionGroup, marketplaceID string, asins []string) (*spapidomain.CatalogItemsResponse, error) {
	query := url.Values{}
	query.Set("marketplaceId", marketplaceID)
	query.Set("identifiers", strings.Join(asins, ","))
	query.Set("identifiersType", "ASIN")
	query.Set("includedData", "images")

	respBody, err := c.doGet(ctx, creds, region, "/catalog/2022-04-01/items", query)
	if err != nil {
		return nil, err
	}

	var resp spapidomain.CatalogItemsResponse
	if err := json.Unmarshal(respBody, &resp); err != nil {
		return nil, errors.Wrap(err, "decoding catalog items")
	}

	return &resp, nil
}
