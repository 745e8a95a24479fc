package domain

import "time"

// FinancialRow is one flattened (order, item) record produced from a
// shipment event. Monetary fields are in the row's local currency until
// the normalizer converts them; fees arrive negative from the API, so
// NetProceeds = TotalRevenue + Fees.
type FinancialRow struct {
	OrderID      string  `json:"order_id"`
	PurchaseDate string  `json:"purchase_date"`
	SalesChannel string  `json:"sales_channel"`
	SKU          string  `json:"sku"`
	Quantity     int     `json:"quantity"`
	Currency     string  `json:"currency"`
	TotalRevenue float64 `json:"total_revenue"`
	Fees         float64 `json:"fees"`
	NetProceeds  float64 `json:"net_proceeds"`

	// Expense columns merged from an uploaded file, zero when absent.
	Expenses       float64 `json:"expenses"`
	CourierCharges float64 `json:"courier_charges"`
	HasExpenses    bool    `json:"has_expenses"`

	// Conversion bookkeeping, populated by the currency normalizer.
	Rate           float64 `json:"rate,omitempty"`
	RateIsFallback bool    `json:"rate_is_fallback,omitempty"`
}

// ExpenseRecord is one row of the uploaded expense file, joined onto
// financial rows by order ID.
type ExpenseRecord struct {
	OrderID        string  `json:"order_id"`
	Expenses       float64 `json:"expenses"`
	CourierCharges float64 `json:"courier_charges"`
}

// ExpenseDataset is an uploaded expense file held in the in-memory store.
type ExpenseDataset struct {
	ID         string          `json:"id"`
	FileName   string          `json:"file_name"`
	Records    []ExpenseRecord `json:"records"`
	UploadedAt time.Time       `json:"uploaded_at"`
}

// FinancialSummary aggregates a converted row set for the dashboard KPIs.
type FinancialSummary struct {
	Currency       string  `json:"currency"`
	TotalRevenue   float64 `json:"total_revenue"`
	TotalFees      float64 `json:"total_fees"`
	TotalExpenses  float64 `json:"total_expenses"`
	NetProceeds    float64 `json:"net_proceeds"`
	UniqueOrders   int     `json:"unique_orders"`
	RowCount       int     `json:"row_count"`
	FallbackRows   int     `json:"fallback_rows"`
	MissingRateFor int     `json:"missing_currency_rows"`
}

// SalesSummaryRow is one day of the sales-and-traffic report for one
// marketplace, already converted to the base currency.
type SalesSummaryRow struct {
	Date         string  `json:"date"`
	Marketplace  string  `json:"marketplace"`
	Currency     string  `json:"currency"`
	SalesLocal   float64 `json:"sales_local"`
	SalesBase    float64 `json:"sales_base"`
	UnitsOrdered int     `json:"units_ordered"`
}
