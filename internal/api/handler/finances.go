package handler

import (
	"net/http"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/ArshadAliDS/Amazon/internal/domain"
	"github.com/ArshadAliDS/Amazon/internal/usecases/financing"
	"github.com/ArshadAliDS/Amazon/pkg/apiErrors"
	"github.com/ArshadAliDS/Amazon/pkg/utils"
)

// uploadSizeLimit caps expense file uploads at 8 MiB.
const uploadSizeLimit = 8 << 20

// dateRangeFromQuery parses the start/end query dates. A missing range
// defaults to the last 30 days; the end date is inclusive.
func dateRangeFromQuery(startStr, endStr string) (domain.DateRange, error) {
	now := time.Now().UTC()
	dates := domain.DateRange{
		Start: now.AddDate(0, 0, -30),
		End:   now,
	}

	if startStr != "" {
		start, err := utils.ParseDate(startStr)
		if err != nil {
			return dates, err
		}
		dates.Start = *start
	}
	if endStr != "" {
		end, err := utils.ParseDate(endStr)
		if err != nil {
			return dates, err
		}
		dates.End = end.Add(24*time.Hour - time.Second)
	}

	return dates, nil
}

// GetFinancialEvents serves the flattened, converted financial rows.
func GetFinancialEvents(service financing.Financier) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query()
		account := query.Get("account")
		if account == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "account is required", nil)
			return
		}

		dates, err := dateRangeFromQuery(query.Get("start_date"), query.Get("end_date"))
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "dates must be YYYY-MM-DD", nil)
			return
		}

		rows, err := service.Events(r.Context(), account, dates, query.Get("expense_dataset_id"))
		if err != nil {
			logrus.WithError(err).Error("financial events failed")
			apiErrors.WriteFailure(w, err)
			return
		}

		writeJSON(w, rows)
	}
}

// GetFinancialSummary serves the aggregated KPI block.
func GetFinancialSummary(service financing.Financier) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query()
		account := query.Get("account")
		if account == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "account is required", nil)
			return
		}

		dates, err := dateRangeFromQuery(query.Get("start_date"), query.Get("end_date"))
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "dates must be YYYY-MM-DD", nil)
			return
		}

		summary, err := service.Summary(r.Context(), account, dates, query.Get("expense_dataset_id"))
		if err != nil {
			logrus.WithError(err).Error("financial summary failed")
			apiErrors.WriteFailure(w, err)
			return
		}

		writeJSON(w, summary)
	}
}

// UploadExpenses accepts a CSV expense file and returns the dataset id
// to pass on subsequent finances requests.
func UploadExpenses(service financing.Financier) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseMultipartForm(uploadSizeLimit); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "expected a multipart upload", nil)
			return
		}

		file, header, err := r.FormFile("file")
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, `the "file" form field is required`, nil)
			return
		}
		defer file.Close()

		dataset, err := service.UploadExpenses(header.Filename, file)
		if err != nil {
			logrus.WithError(err).Error("expense upload failed")
			apiErrors.WriteFailure(w, err)
			return
		}

		writeJSON(w, map[string]any{
			"dataset_id":  dataset.ID,
			"file_name":   dataset.FileName,
			"records":     len(dataset.Records),
			"uploaded_at": dataset.UploadedAt,
		})
	}
}
