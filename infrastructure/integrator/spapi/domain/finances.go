package domain

// ListFinancialEventsResponse is the envelope of
// GET /finances/v0/financialEvents.
type ListFinancialEventsResponse struct {
	Payload FinancialEventsPayload `json:"payload"`
}

type FinancialEventsPayload struct {
	FinancialEvents FinancialEvents `json:"FinancialEvents"`
	NextToken       string          `json:"NextToken,omitempty"`
}

type FinancialEvents struct {
	ShipmentEventList []ShipmentEvent `json:"ShipmentEventList"`
}

// ShipmentEvent is one posted shipment with its item breakdown.
type ShipmentEvent struct {
	AmazonOrderID   string         `json:"AmazonOrderId"`
	PostedDate      string         `json:"PostedDate"`
	MarketplaceName string         `json:"MarketplaceName"`
	ShipmentItems   []ShipmentItem `json:"ShipmentItemList"`
}

type ShipmentItem struct {
	SellerSKU       string            `json:"SellerSKU"`
	QuantityShipped int               `json:"QuantityShipped"`
	ItemCharges     []ChargeComponent `json:"ItemChargeList"`
	ItemFees        []FeeComponent    `json:"ItemFeeList"`
}

// ChargeComponent charge types consumed by the flattener.
const (
	ChargeTypePrincipal      = "Principal"
	ChargeTypeShippingCharge = "ShippingCharge"
)

type ChargeComponent struct {
	ChargeType   string         `json:"ChargeType"`
	ChargeAmount CurrencyAmount `json:"ChargeAmount"`
}

type FeeComponent struct {
	FeeType   string         `json:"FeeType"`
	FeeAmount CurrencyAmount `json:"FeeAmount"`
}

// CurrencyAmount is the finances API money shape. Fee amounts arrive
// negative.
type CurrencyAmount struct {
	CurrencyCode   string  `json:"CurrencyCode"`
	CurrencyAmount float64 `json:"CurrencyAmount"`
}
