package financing

import (
	spapidomain "github.com/ArshadAliDS/Amazon/infrastructure/integrator/spapi/domain"
	"github.com/ArshadAliDS/Amazon/internal/domain"
	"github.com/ArshadAliDS/Amazon/pkg/utils"
)

// flattenEvents turns shipment events into one row per (order, item).
// Charges split into item price (Principal) and shipping; fees are
// summed as they arrive, which is negative, so the net is revenue plus
// fees. The row currency comes from the first charge carrying one; an
// item with no charges keeps an empty currency and is later normalized
// at the fallback rate.
func flattenEvents(events []spapidomain.ShipmentEvent) []domain.FinancialRow {
	rows := make([]domain.FinancialRow, 0, len(events))

	for _, event := range events {
		for _, item := range event.ShipmentItems {
			var itemPrice, shipping, fees float64
			currency := ""

			for _, charge := range item.ItemCharges {
				if currency == "" {
					currency = charge.ChargeAmount.CurrencyCode
				}
				switch charge.ChargeType {
				case spapidomain.ChargeTypePrincipal:
					itemPrice += charge.ChargeAmount.CurrencyAmount
				case spapidomain.ChargeTypeShippingCharge:
					shipping += charge.ChargeAmount.CurrencyAmount
				}
			}

			for _, fee := range item.ItemFees {
				fees += fee.FeeAmount.CurrencyAmount
			}

			revenue := itemPrice + shipping
			rows = append(rows, domain.FinancialRow{
				OrderID:      event.AmazonOrderID,
				PurchaseDate: event.PostedDate,
				SalesChannel: event.MarketplaceName,
				SKU:          item.SellerSKU,
				Quantity:     item.QuantityShipped,
				Currency:     currency,
				TotalRevenue: utils.RoundWithTwoDecimalPlace(revenue),
				Fees:         utils.RoundWithTwoDecimalPlace(fees),
				NetProceeds:  utils.RoundWithTwoDecimalPlace(revenue + fees),
			})
		}
	}

	return rows
}
