package cataloging

import (
	"context"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/ArshadAliDS/Amazon/infrastructure/integrator/frankfurter"
	spapidomain "github.com/ArshadAliDS/Amazon/infrastructure/integrator/spapi/domain"
	"github.com/ArshadAliDS/Amazon/infrastructure/integrator/spapi/spapiclient"
	"github.com/ArshadAliDS/Amazon/internal/config"
	"github.com/ArshadAliDS/Amazon/internal/domain"
	"github.com/ArshadAliDS/Amazon/pkg/utils"
)

// Cataloger serves the order-lookup and listing-detail views. Both
// enrich raw order data with catalogue images and current offer
// pricing; enrichment failures degrade to partial results rather than
// failing the lookup.
type Cataloger interface {
	OrderDetails(ctx context.Context, account, marketplaceID, orderID string) (*domain.OrderDetails, error)
	ListingDetails(ctx context.Context, account, marketplaceID, sku string) (*domain.ListingDetails, error)
}

type Service struct {
	cfg    *config.Config
	client spapiclient.Client
	rates  frankfurter.RateIntegrator
}

func NewService(cfg *config.Config, client spapiclient.Client, rates frankfurter.RateIntegrator) Cataloger {
	return &Service{
		cfg:    cfg,
		client: client,
		rates:  rates,
	}
}

// OrderDetails fetches one order with its items, then decorates each
// item with a catalogue image and current offer pricing.
func (s *Service) OrderDetails(ctx context.Context, account, marketplaceID, orderID string) (*domain.OrderDetails, error) {
	creds, err := s.cfg.AccountCredentials(account)
	if err != nil {
		return nil, err
	}

	marketplace, ok := domain.MarketplaceByID(marketplaceID)
	if !ok {
		return nil, domain.NewFailure(domain.FailureConfig, "unknown marketplace %q", marketplaceID)
	}

	order, err := s.client.GetOrder(ctx, creds, marketplace.Region, orderID)
	if err != nil {
		return nil, err
	}

	items, err := s.client.GetOrderItems(ctx, creds, marketplace.Region, orderID)
	if err != nil {
		return nil, err
	}

	details := &domain.OrderDetails{
		OrderID:      order.AmazonOrderID,
		Status:       order.OrderStatus,
		PurchaseDate: order.PurchaseDate,
		SalesChannel: order.SalesChannel,
		OrderTotal:   orderMoney(order.OrderTotal),
		Items:        make([]domain.OrderItem, 0, len(items)),
	}

	images := s.catalogImages(ctx, creds, marketplace.Region, marketplaceID, items)

	for _, item := range items {
		detail := domain.OrderItem{
			ASIN:          item.ASIN,
			SKU:           item.SellerSKU,
			Title:         item.Title,
			Quantity:      item.QuantityOrdered,
			ItemPrice:     orderMoney(item.ItemPrice),
			ShippingPrice: orderMoney(item.ShippingPrice),
			ImageURL:      images[item.ASIN],
		}

		if listing, _, landed := s.offerPricing(ctx, creds, marketplace.Region, marketplaceID, item.SellerSKU); listing != nil {
			detail.ListingPrice = listing
			detail.LandedPrice = landed
		}

		if detail.ItemPrice != nil {
			converted, _, fallback := s.rates.Convert(ctx, detail.ItemPrice.Amount, detail.ItemPrice.CurrencyCode)
			if !fallback {
				detail.ItemPriceBase = &domain.Money{
					Amount:       utils.RoundWithTwoDecimalPlace(converted),
					CurrencyCode: s.cfg.Rates.TargetCurrency,
				}
			}
		}

		details.Items = append(details.Items, detail)
	}

	return details, nil
}

// catalogImages resolves the main image per ASIN for a batch of order
// items. A catalogue failure leaves the map empty.
func (s *Service) catalogImages(ctx context.Context, creds *config.Credentials, region domain.RegionGroup, marketplaceID string, items []spapidomain.OrderItem) map[string]string {
	images := map[string]string{}

	asins := make([]string, 0, len(items))
	seen := map[string]struct{}{}
	for _, item := range items {
		if item.ASIN == "" {
			continue
		}
		if _, dup := seen[item.ASIN]; dup {
			continue
		}
		seen[item.ASIN] = struct{}{}
		asins = append(asins, item.ASIN)
	}
	if len(asins) == 0 {
		return images
	}

	resp, err := s.client.GetCatalogItems(ctx, creds, region, marketplaceID, asins)
	if err != nil {
		logrus.WithError(err).Warn("catalogue image lookup failed, serving order without images")
		return images
	}

	for _, item := range resp.Items {
		images[item.ASIN] = mainImage(item)
	}

	return images
}

// mainImage prefers the MAIN variant, falling back to the first image
// present.
func mainImage(item spapidomain.CatalogItem) string {
	first := ""
	for _, locale := range item.Images {
		for _, image := range locale.Images {
			if image.Variant == "MAIN" {
				return image.Link
			}
			if first == "" {
				first = image.Link
			}
		}
	}
	return first
}

// offerPricing fetches the current new-condition offer for a SKU. A
// pricing failure or an empty offer list yields nils.
func (s *Service) offerPricing(ctx context.Context, creds *config.Credentials, region domain.RegionGroup, marketplaceID, sku string) (listing, shipping, landed *domain.Money) {
	if sku == "" {
		return nil, nil, nil
	}

	resp, err := s.client.GetListingOffers(ctx, creds, region, sku, marketplaceID)
	if err != nil {
		logrus.WithError(err).WithField("sku", sku).Warn("offer pricing lookup failed")
		return nil, nil, nil
	}
	if len(resp.Payload.Offers) == 0 {
		return nil, nil, nil
	}

	offer := resp.Payload.Offers[0]
	return priceMoney(offer.ListingPrice), priceMoney(offer.Shipping), priceMoney(offer.LandedPrice)
}

// ListingDetails assembles the seller-facing view of one SKU: summary,
// text attributes, main image and current pricing.
func (s *Service) ListingDetails(ctx context.Context, account, marketplaceID, sku string) (*domain.ListingDetails, error) {
	creds, err := s.cfg.AccountCredentials(account)
	if err != nil {
		return nil, err
	}

	marketplace, ok := domain.MarketplaceByID(marketplaceID)
	if !ok {
		return nil, domain.NewFailure(domain.FailureConfig, "unknown marketplace %q", marketplaceID)
	}

	sellerID, ok := creds.SellerIDs[marketplace.Region]
	if !ok || sellerID == "" {
		return nil, domain.NewFailure(domain.FailureConfig,
			"no seller id configured for account %q in region %q", account, marketplace.Region)
	}

	item, err := s.client.GetListingItem(ctx, creds, marketplace.Region, sellerID, sku, marketplaceID)
	if err != nil {
		return nil, err
	}

	details := &domain.ListingDetails{
		SKU:          sku,
		Keywords:     attributeValues(item.Attributes, "generic_keyword"),
		Description:  attributeValues(item.Attributes, "product_description"),
		BulletPoints: attributeValues(item.Attributes, "bullet_point"),
		MainImageURL: attributeMedia(item.Attributes, "main_product_image_locator"),
	}
	if len(item.Summaries) > 0 {
		details.ProductName = item.Summaries[0].ItemName
		details.ProductType = item.Summaries[0].ProductType
	}

	details.ListingPrice, details.ShippingPrice, details.LandedPrice =
		s.offerPricing(ctx, creds, marketplace.Region, marketplaceID, sku)

	return details, nil
}

// attributeValues joins all values of one listings attribute.
func attributeValues(attributes map[string][]spapidomain.ListingAttribute, name string) string {
	entries := attributes[name]
	values := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.Value != "" {
			values = append(values, entry.Value)
		}
	}
	return strings.Join(values, "; ")
}

func attributeMedia(attributes map[string][]spapidomain.ListingAttribute, name string) string {
	for _, entry := range attributes[name] {
		if entry.MediaLocation != "" {
			return entry.MediaLocation
		}
	}
	return ""
}

func orderMoney(m *spapidomain.OrderMoney) *domain.Money {
	if m == nil {
		return nil
	}
	return &domain.Money{Amount: m.Float(), CurrencyCode: m.CurrencyCode}
}

func priceMoney(m spapidomain.PriceMoney) *domain.Money {
	if m.Amount == 0 && m.CurrencyCode == "" {
		return nil
	}
	return &domain.Money{Amount: m.Amount, CurrencyCode: m.CurrencyCode}
}
