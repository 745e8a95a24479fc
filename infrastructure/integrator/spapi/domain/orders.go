package domain

import "strconv"

// OrderMoney is the orders API money shape; amounts are decimal strings.
type OrderMoney struct {
	CurrencyCode string `json:"CurrencyCode"`
	Amount       string `json:"Amount"`
}

// Float parses the decimal amount, returning 0 for absent or malformed
// values.
func (m *OrderMoney) Float() float64 {
	if m == nil {
		return 0
	}
	f, err := strconv.ParseFloat(m.Amount, 64)
	if err != nil {
		return 0
	}
	return f
}

// GetOrderResponse is the envelope of GET /orders/v0/orders/{id}.
type GetOrderResponse struct {
	Payload Order `json:"payload"`
}

type Order struct {
	AmazonOrderID string      `json:"AmazonOrderId"`
	OrderStatus   string      `json:"OrderStatus"`
	PurchaseDate  string      `json:"PurchaseDate"`
	SalesChannel  string      `json:"SalesChannel"`
	OrderTotal    *OrderMoney `json:"OrderTotal,omitempty"`
}

// GetOrderItemsResponse is the envelope of
// GET /orders/v0/orders/{id}/orderItems.
type GetOrderItemsResponse struct {
	Payload OrderItemsPayload `json:"payload"`
}

type OrderItemsPayload struct {
	OrderItems []OrderItem `json:"OrderItems"`
}

type OrderItem struct {
	ASIN            string      `json:"ASIN"`
	SellerSKU       string      `json:"SellerSKU"`
	Title           string      `json:"Title"`
	QuantityOrdered int         `json:"QuantityOrdered"`
	ItemPrice       *OrderMoney `json:"ItemPrice,omitempty"`
	ShippingPrice   *OrderMoney `json:"ShippingPrice,omitempty"`
}
