package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"

	"github.com/ArshadAliDS/Amazon/internal/usecases/cataloging"
	"github.com/ArshadAliDS/Amazon/pkg/apiErrors"
)

// GetOrderDetails serves one order with catalogue and pricing
// enrichment.
func GetOrderDetails(service cataloging.Cataloger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		orderID := httprouter.ParamsFromContext(r.Context()).ByName("id")
		query := r.URL.Query()
		account := query.Get("account")
		marketplaceID := query.Get("marketplace_id")
		if orderID == "" || account == "" || marketplaceID == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData,
				"order id, account and marketplace_id are required", nil)
			return
		}

		details, err := service.OrderDetails(r.Context(), account, marketplaceID, orderID)
		if err != nil {
			logrus.WithError(err).WithField("order_id", orderID).Error("order lookup failed")
			apiErrors.WriteFailure(w, err)
			return
		}

		writeJSON(w, details)
	}
}

// GetListingDetails serves the seller-facing view of one SKU.
func GetListingDetails(service cataloging.Cataloger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sku := httprouter.ParamsFromContext(r.Context()).ByName("sku")
		query := r.URL.Query()
		account := query.Get("account")
		marketplaceID := query.Get("marketplace_id")
		if sku == "" || account == "" || marketplaceID == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData,
				"sku, account and marketplace_id are required", nil)
			return
		}

		details, err := service.ListingDetails(r.Context(), account, marketplaceID, sku)
		if err != nil {
			logrus.WithError(err).WithField("sku", sku).Error("listing lookup failed")
			apiErrors.WriteFailure(w, err)
			return
		}

		writeJSON(w, details)
	}
}
