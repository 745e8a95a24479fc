package handler

import (
	"net/http"

	"github.com/ArshadAliDS/Amazon/internal/api/handler/router"
	"github.com/ArshadAliDS/Amazon/internal/usecases/authenticating"
	"github.com/ArshadAliDS/Amazon/internal/usecases/cataloging"
	"github.com/ArshadAliDS/Amazon/internal/usecases/financing"
	"github.com/ArshadAliDS/Amazon/internal/usecases/reporting"
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

func Authentication(service authenticating.Authenticator) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/login",
			Method:  http.MethodPost,
			Handler: Login(service),
		},
	}
}

func Reports(service reporting.Reporter) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/reports/types",
			Method:  http.MethodGet,
			Handler: ListReportTypes(service),
		},
		{
			Path:    "/v1/marketplaces",
			Method:  http.MethodGet,
			Handler: ListMarketplaces(),
		},
		{
			Path:    "/v1/reports/run",
			Method:  http.MethodPost,
			Handler: RunReport(service),
		},
		{
			Path:    "/v1/reports/export",
			Method:  http.MethodPost,
			Handler: ExportReportCSV(service),
		},
		{
			Path:    "/v1/sales/summary",
			Method:  http.MethodGet,
			Handler: GetSalesSummary(service),
		},
	}
}

func Finances(service financing.Financier) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/finances/events",
			Method:  http.MethodGet,
			Handler: GetFinancialEvents(service),
		},
		{
			Path:    "/v1/finances/summary",
			Method:  http.MethodGet,
			Handler: GetFinancialSummary(service),
		},
		{
			Path:    "/v1/finances/expenses",
			Method:  http.MethodPost,
			Handler: UploadExpenses(service),
		},
	}
}

func Catalog(service cataloging.Cataloger) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/orders/:id",
			Method:  http.MethodGet,
			Handler: GetOrderDetails(service),
		},
		{
			Path:    "/v1/listings/:sku",
			Method:  http.MethodGet,
			Handler: GetListingDetails(service),
		},
	}
}
