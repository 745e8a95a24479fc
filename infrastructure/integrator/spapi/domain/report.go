package domain

// CreateReportSpec is the body of POST /reports/2021-06-30/reports.
type CreateReportSpec struct {
	ReportType     string            `json:"reportType"`
	MarketplaceIDs []string          `json:"marketplaceIds"`
	DataStartTime  string            `json:"dataStartTime,omitempty"`
	DataEndTime    string            `json:"dataEndTime,omitempty"`
	ReportOptions  map[string]string `json:"reportOptions,omitempty"`
}

// CreateReportResponse carries the job id of a submitted report.
type CreateReportResponse struct {
	ReportID string `json:"reportId"`
}

// Report is the polled state of a report job.
type Report struct {
	ReportID         string `json:"reportId"`
	ProcessingStatus string `json:"processingStatus"`
	ReportDocumentID string `json:"reportDocumentId,omitempty"`
}

// ReportDocument resolves a document id to its download URL and
// compression scheme ("GZIP", "ZLIB" or empty).
type ReportDocument struct {
	ReportDocumentID     string `json:"reportDocumentId"`
	URL                  string `json:"url"`
	CompressionAlgorithm string `json:"compressionAlgorithm,omitempty"`
}

// SalesAndTrafficReport is the JSON body of GET_SALES_AND_TRAFFIC_REPORT.
type SalesAndTrafficReport struct {
	SalesAndTrafficByDate []DailySalesAndTraffic `json:"salesAndTrafficByDate"`
}

type DailySalesAndTraffic struct {
	Date        string      `json:"date"`
	SalesByDate SalesByDate `json:"salesByDate"`
}

type SalesByDate struct {
	OrderedProductSales ProductSales `json:"orderedProductSales"`
	UnitsOrdered        int          `json:"unitsOrdered"`
}

type ProductSales struct {
	Amount       float64 `json:"amount"`
	CurrencyCode string  `json:"currencyCode"`
}
