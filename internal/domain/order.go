package domain

// OrderDetails is the non-PII summary of one order, enriched with
// catalogue and pricing data for each item.
type OrderDetails struct {
	OrderID      string      `json:"order_id"`
	Status       string      `json:"status"`
	PurchaseDate string      `json:"purchase_date"`
	SalesChannel string      `json:"sales_channel"`
	OrderTotal   *Money      `json:"order_total,omitempty"`
	Items        []OrderItem `json:"items"`
}

// Money is an amount in a named currency.
type Money struct {
	Amount       float64 `json:"amount"`
	CurrencyCode string  `json:"currency_code"`
}

// OrderItem is one line of an order plus its enrichments.
type OrderItem struct {
	ASIN          string `json:"asin"`
	SKU           string `json:"sku"`
	Title         string `json:"title"`
	Quantity      int    `json:"quantity"`
	ItemPrice     *Money `json:"item_price,omitempty"`
	ShippingPrice *Money `json:"shipping_price,omitempty"`
	ImageURL      string `json:"image_url,omitempty"`
	ListingPrice  *Money `json:"listing_price,omitempty"`
	LandedPrice   *Money `json:"landed_price,omitempty"`
	// ItemPriceBase mirrors ItemPrice converted to the base currency;
	// nil when the rate service had no rate for the item currency.
	ItemPriceBase *Money `json:"item_price_base,omitempty"`
}

// ListingDetails is the seller-facing view of one SKU's listing.
type ListingDetails struct {
	SKU          string `json:"sku"`
	ProductName  string `json:"product_name"`
	ProductType  string `json:"product_type"`
	Keywords     string `json:"keywords"`
	Description  string `json:"description"`
	BulletPoints string `json:"bullet_points"`
	MainImageURL string `json:"main_image_url,omitempty"`

	ListingPrice  *Money `json:"listing_price,omitempty"`
	ShippingPrice *Money `json:"shipping_price,omitempty"`
	LandedPrice   *Money `json:"landed_price,omitempty"`
}
