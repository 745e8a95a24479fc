package domain

import "time"

// Report processing statuses as reported by the reports API. Anything
// outside the three terminal values is treated as still running.
const (
	ReportStatusDone      = "DONE"
	ReportStatusFatal     = "FATAL"
	ReportStatusCancelled = "CANCELLED"
)

// ReportType pairs a display name with the reports API type identifier.
type ReportType struct {
	Name    string `json:"name"`
	APIName string `json:"api_name"`
	// JSONBody marks report types whose document is a JSON payload
	// rather than a tab-separated flat file.
	JSONBody bool `json:"json_body"`
}

// ReportTypes is the catalogue of listing/order/inventory reports the
// dashboards expose.
var ReportTypes = []ReportType{
	{Name: "All Active Listings (Flat File)", APIName: "GET_FLAT_FILE_OPEN_LISTINGS_DATA"},
	{Name: "All Listings (Flat File)", APIName: "GET_MERCHANT_LISTINGS_ALL_DATA"},
	{Name: "Inventory (Flat File)", APIName: "GET_FLAT_FILE_ALL_INVENTORY_DATA"},
	{Name: "Manage FBA Inventory", APIName: "GET_AFN_INVENTORY_DATA"},
	{Name: "FBA Fulfilled Inventory", APIName: "GET_FBA_FULFILLMENT_CURRENT_INVENTORY_DATA"},
	{Name: "FBA Daily Inventory History", APIName: "GET_FBA_FULFILLMENT_INVENTORY_ARCHIVE_DATA"},
	{Name: "FBA Customer Returns", APIName: "GET_FBA_FULFILLMENT_CUSTOMER_RETURNS_DATA"},
	{Name: "FBA Reimbursements", APIName: "GET_FBA_REIMBURSEMENTS_DATA"},
	{Name: "Reserved Inventory", APIName: "GET_RESERVED_INVENTORY_REPORT"},
	{Name: "Open Orders (Flat File)", APIName: "GET_FLAT_FILE_ACTIONABLE_ORDER_DATA"},
	{Name: "Pending Orders (Flat File)", APIName: "GET_FLAT_FILE_PENDING_ORDERS_DATA"},
	{Name: "Returns (Flat File)", APIName: "GET_FLAT_FILE_RETURNS_REPORT_BY_RETURN_DATE"},
	{Name: "Canceled Orders (Flat File)", APIName: "GET_FLAT_FILE_ORDER_REPORT_DATA_SHIPPING"},
	{Name: "Settlement Report (V2 Flat File)", APIName: "GET_V2_SETTLEMENT_REPORT_DATA_FLAT_FILE_V2"},
	{Name: "Seller Feedback", APIName: "GET_SELLER_FEEDBACK_DATA"},
	{Name: "Sales and Traffic (ASIN)", APIName: "GET_SALES_AND_TRAFFIC_REPORT", JSONBody: true},
}

// ReportTypeByAPIName looks a report type up by its API identifier.
func ReportTypeByAPIName(apiName string) (ReportType, bool) {
	for _, rt := range ReportTypes {
		if rt.APIName == apiName {
			return rt, true
		}
	}
	return ReportType{}, false
}

// ReportRequest describes one report run.
type ReportRequest struct {
	Account       string     `json:"account"`
	MarketplaceID string     `json:"marketplace_id"`
	ReportType    string     `json:"report_type"`
	DataStartTime *time.Time `json:"data_start_time,omitempty"`
	DataEndTime   *time.Time `json:"data_end_time,omitempty"`
	// ReportOptions are forwarded verbatim, e.g. {"dateGranularity": "DAY"}.
	ReportOptions map[string]string `json:"report_options,omitempty"`
}

// DateRange is an inclusive calendar interval.
type DateRange struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}
