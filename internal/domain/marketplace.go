package domain

// RegionGroup identifies a set of marketplaces sharing one SP-API endpoint
// and one regional refresh token.
type RegionGroup string

const (
	RegionNA RegionGroup = "na"
	RegionEU RegionGroup = "eu"
	RegionFE RegionGroup = "fe"
)

// Endpoint returns the regional SP-API base URL.
func (r RegionGroup) Endpoint() string {
	switch r {
	case RegionEU:
		return "https://sellingpartnerapi-eu.amazon.com"
	case RegionFE:
		return "https://sellingpartnerapi-fe.amazon.com"
	default:
		return "https://sellingpartnerapi-na.amazon.com"
	}
}

// Marketplace describes one Amazon marketplace.
type Marketplace struct {
	ID       string      `json:"id"`
	Country  string      `json:"country"`
	Region   RegionGroup `json:"region"`
	Currency string      `json:"currency"`
}

// Marketplaces is the catalogue of marketplaces the dashboards operate on,
// keyed by marketplace ID.
var Marketplaces = map[string]Marketplace{
	"ATVPDKIKX0DER":  {ID: "ATVPDKIKX0DER", Country: "United States", Region: RegionNA, Currency: "USD"},
	"A2EUQ1WTGCTBG2": {ID: "A2EUQ1WTGCTBG2", Country: "Canada", Region: RegionNA, Currency: "CAD"},
	"A1AM78C64UM0Y8": {ID: "A1AM78C64UM0Y8", Country: "Mexico", Region: RegionNA, Currency: "MXN"},
	"A2Q3Y263D00KWC": {ID: "A2Q3Y263D00KWC", Country: "Brazil", Region: RegionNA, Currency: "BRL"},
	"A1F83G8C2ARO7P": {ID: "A1F83G8C2ARO7P", Country: "United Kingdom", Region: RegionEU, Currency: "GBP"},
	"A1PA6795UKMFR9": {ID: "A1PA6795UKMFR9", Country: "Germany", Region: RegionEU, Currency: "EUR"},
	"A1RKKUPIHCS9HS": {ID: "A1RKKUPIHCS9HS", Country: "Spain", Region: RegionEU, Currency: "EUR"},
	"A13V1IB3VIYZZH": {ID: "A13V1IB3VIYZZH", Country: "France", Region: RegionEU, Currency: "EUR"},
	"APJ6JRA9NG5V4":  {ID: "APJ6JRA9NG5V4", Country: "Italy", Region: RegionEU, Currency: "EUR"},
	"A1805IZSGTT6HS": {ID: "A1805IZSGTT6HS", Country: "Netherlands", Region: RegionEU, Currency: "EUR"},
	"A2NODRKZP88ZB9": {ID: "A2NODRKZP88ZB9", Country: "Sweden", Region: RegionEU, Currency: "SEK"},
	"A1C3SOZRARQ6R3": {ID: "A1C3SOZRARQ6R3", Country: "Poland", Region: RegionEU, Currency: "PLN"},
	"AMEN7PMS3EDWL":  {ID: "AMEN7PMS3EDWL", Country: "Belgium", Region: RegionEU, Currency: "EUR"},
	"A33AVAJ2PDY3EV": {ID: "A33AVAJ2PDY3EV", Country: "Turkey", Region: RegionEU, Currency: "TRY"},
	"A2VIGQ35RCS4UG": {ID: "A2VIGQ35RCS4UG", Country: "United Arab Emirates", Region: RegionEU, Currency: "AED"},
	"A17E79C6D8DWNP": {ID: "A17E79C6D8DWNP", Country: "Saudi Arabia", Region: RegionEU, Currency: "SAR"},
	"ARBP9OOSHTCHU":  {ID: "ARBP9OOSHTCHU", Country: "Egypt", Region: RegionEU, Currency: "EGP"},
	"A21TJRUUN4KGV":  {ID: "A21TJRUUN4KGV", Country: "India", Region: RegionEU, Currency: "INR"},
	"A1VC38T7YXB528": {ID: "A1VC38T7YXB528", Country: "Japan", Region: RegionFE, Currency: "JPY"},
	"A39IBJ37V3C1DG": {ID: "A39IBJ37V3C1DG", Country: "Australia", Region: RegionFE, Currency: "AUD"},
	"A19VAU5U5O7RUS": {ID: "A19VAU5U5O7RUS", Country: "Singapore", Region: RegionFE, Currency: "SGD"},
}

// MarketplaceByID resolves a marketplace from the catalogue.
func MarketplaceByID(id string) (Marketplace, bool) {
	m, ok := Marketplaces[id]
	return m, ok
}

// CurrencyForMarketplace returns the local currency of a marketplace,
// defaulting to USD for IDs outside the catalogue.
func CurrencyForMarketplace(id string) string {
	if m, ok := Marketplaces[id]; ok {
		return m.Currency
	}
	return "USD"
}
