package handler

import (
	"net/http"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/ArshadAliDS/Amazon/internal/domain"
	"github.com/ArshadAliDS/Amazon/internal/usecases/reporting"
	"github.com/ArshadAliDS/Amazon/pkg/apiErrors"
	"github.com/ArshadAliDS/Amazon/pkg/utils"
)

// RunReportRequest is the body of POST /v1/reports/run. Dates are
// YYYY-MM-DD.
type RunReportRequest struct {
	Account       string            `json:"account"`
	MarketplaceID string            `json:"marketplace_id"`
	ReportType    string            `json:"report_type"`
	StartDate     string            `json:"start_date,omitempty"`
	EndDate       string            `json:"end_date,omitempty"`
	ReportOptions map[string]string `json:"report_options,omitempty"`
}

func (req *RunReportRequest) toDomain() (domain.ReportRequest, error) {
	out := domain.ReportRequest{
		Account:       req.Account,
		MarketplaceID: req.MarketplaceID,
		ReportType:    req.ReportType,
		ReportOptions: req.ReportOptions,
	}

	if req.StartDate != "" {
		start, err := utils.ParseDate(req.StartDate)
		if err != nil {
			return out, err
		}
		out.DataStartTime = start
	}
	if req.EndDate != "" {
		end, err := utils.ParseDate(req.EndDate)
		if err != nil {
			return out, err
		}
		// The reports API expects an exclusive upper bound; make the
		// requested end date inclusive.
		endOfDay := end.Add(24*time.Hour - time.Second)
		out.DataEndTime = &endOfDay
	}

	return out, nil
}

// ListReportTypes serves the report catalogue.
func ListReportTypes(service reporting.Reporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, service.Types())
	}
}

// ListMarketplaces serves the marketplace catalogue.
func ListMarketplaces() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		marketplaces := make([]domain.Marketplace, 0, len(domain.Marketplaces))
		for _, marketplace := range domain.Marketplaces {
			marketplaces = append(marketplaces, marketplace)
		}
		writeJSON(w, marketplaces)
	}
}

// RunReport drives one report job to completion and returns its parsed
// document.
func RunReport(service reporting.Reporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req RunReportRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "invalid request body", nil)
			return
		}
		if req.Account == "" || req.MarketplaceID == "" || req.ReportType == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData,
				"account, marketplace_id and report_type are required", nil)
			return
		}

		domainReq, err := req.toDomain()
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "dates must be YYYY-MM-DD", nil)
			return
		}

		result, err := service.Run(r.Context(), domainReq)
		if err != nil {
			logrus.WithError(err).Error("report run failed")
			apiErrors.WriteFailure(w, err)
			return
		}

		writeJSON(w, result)
	}
}

// ExportReportCSV runs a flat-file report and streams it back as CSV.
func ExportReportCSV(service reporting.Reporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req RunReportRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "invalid request body", nil)
			return
		}
		if req.Account == "" || req.MarketplaceID == "" || req.ReportType == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData,
				"account, marketplace_id and report_type are required", nil)
			return
		}

		domainReq, err := req.toDomain()
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "dates must be YYYY-MM-DD", nil)
			return
		}

		result, err := service.Run(r.Context(), domainReq)
		if err != nil {
			logrus.WithError(err).Error("report export failed")
			apiErrors.WriteFailure(w, err)
			return
		}
		if result.Table == nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest,
				"report type has no tabular document to export", nil)
			return
		}

		csvBody, err := result.Table.CSV()
		if err != nil {
			logrus.WithError(err).Error("csv encoding failed")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "error encoding csv", nil)
			return
		}

		w.Header().Set("Content-Type", "text/csv")
		w.Header().Set("Content-Disposition", `attachment; filename="`+result.ReportType+`.csv"`)
		if _, err := w.Write(csvBody); err != nil {
			logrus.WithError(err).Error("error writing csv response")
		}
	}
}

// GetSalesSummary serves the converted daily sales of one marketplace.
func GetSalesSummary(service reporting.Reporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query()
		account := query.Get("account")
		marketplaceID := query.Get("marketplace_id")
		if account == "" || marketplaceID == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData,
				"account and marketplace_id are required", nil)
			return
		}

		dates, err := dateRangeFromQuery(query.Get("start_date"), query.Get("end_date"))
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "dates must be YYYY-MM-DD", nil)
			return
		}

		rows, err := service.SalesSummary(r.Context(), account, marketplaceID, dates)
		if err != nil {
			logrus.WithError(err).Error("sales summary failed")
			apiErrors.WriteFailure(w, err)
			return
		}

		writeJSON(w, rows)
	}
}
