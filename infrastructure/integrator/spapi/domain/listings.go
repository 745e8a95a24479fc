package domain

// ListingItemResponse is the body of
// GET /listings/2021-08-01/items/{sellerId}/{sku}.
type ListingItemResponse struct {
	Summaries  []ListingSummary              `json:"summaries"`
	Attributes map[string][]ListingAttribute `json:"attributes"`
}

type ListingSummary struct {
	ItemName    string `json:"itemName"`
	ProductType string `json:"productType"`
}

// ListingAttribute is one entry of a listings attribute list; only the
// value and media location fields are consumed.
type ListingAttribute struct {
	Value         string `json:"value,omitempty"`
	MediaLocation string `json:"media_location,omitempty"`
}

// CatalogItemsResponse is the body of GET /catalog/2022-04-01/items.
type CatalogItemsResponse struct {
	Items []CatalogItem `json:"items"`
}

type CatalogItem struct {
	ASIN   string           `json:"asin"`
	Images []ImagesByLocale `json:"images"`
}

type ImagesByLocale struct {
	MarketplaceID string         `json:"marketplaceId"`
	Images        []CatalogImage `json:"images"`
}

type CatalogImage struct {
	Variant string `json:"variant"`
	Link    string `json:"link"`
}

// GetOffersResponse is the body of
// GET /products/pricing/v0/listings/{sku}/offers.
type GetOffersResponse struct {
	Payload OffersPayload `json:"payload"`
}

type OffersPayload struct {
	Offers []Offer `json:"Offers"`
}

type Offer struct {
	ListingPrice PriceMoney `json:"ListingPrice"`
	Shipping     PriceMoney `json:"Shipping"`
	LandedPrice  PriceMoney `json:"LandedPrice"`
}

// PriceMoney is the pricing API money shape; amounts are numbers.
type PriceMoney struct {
	CurrencyCode string  `json:"CurrencyCode"`
	Amount       float64 `json:"Amount"`
}
