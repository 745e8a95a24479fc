package cataloging

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	ratemocks "github.com/ArshadAliDS/Amazon/infrastructure/integrator/frankfurter/mocks"
	spapidomain "github.com/ArshadAliDS/Amazon/infrastructure/integrator/spapi/domain"
	spapimocks "github.com/ArshadAliDS/Amazon/infrastructure/integrator/spapi/mocks"
	"github.com/ArshadAliDS/Amazon/internal/config"
	"github.com/ArshadAliDS/Amazon/internal/domain"
	"github.com/ArshadAliDS/Amazon/pkg/log"
)

const usMarketplace = "ATVPDKIKX0DER"

func testConfig() *config.Config {
	return &config.Config{
		Rates: config.Rates{TargetCurrency: "INR"},
		Accounts: map[string]*config.Credentials{
			"acme": {
				Account: "acme",
				RefreshTokens: map[domain.RegionGroup]string{
					domain.RegionNA: "refresh",
				},
				SellerIDs: map[domain.RegionGroup]string{
					domain.RegionNA: "SELLER123",
				},
			},
		},
	}
}

func TestService_OrderDetails(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	log.SetupTestLogger()

	mockClient := spapimocks.NewMockClient(ctrl)
	mockRates := ratemocks.NewMockRateIntegrator(ctrl)
	service := NewService(testConfig(), mockClient, mockRates)

	mockClient.EXPECT().
		GetOrder(gomock.Any(), gomock.Any(), domain.RegionNA, "111-222").
		Return(&spapidomain.Order{
			AmazonOrderID: "111-222",
			OrderStatus:   "Shipped",
			PurchaseDate:  "2024-01-05T12:00:00Z",
			SalesChannel:  "Amazon.com",
			OrderTotal:    &spapidomain.OrderMoney{CurrencyCode: "USD", Amount: "35.98"},
		}, nil)
	mockClient.EXPECT().
		GetOrderItems(gomock.Any(), gomock.Any(), domain.RegionNA, "111-222").
		Return([]spapidomain.OrderItem{
			{
				ASIN:            "B000TEST01",
				SellerSKU:       "SKU-1",
				Title:           "Test Product",
				QuantityOrdered: 2,
				ItemPrice:       &spapidomain.OrderMoney{CurrencyCode: "USD", Amount: "35.98"},
			},
		}, nil)
	mockClient.EXPECT().
		GetCatalogItems(gomock.Any(), gomock.Any(), domain.RegionNA, usMarketplace, []string{"B000TEST01"}).
		Return(&spapidomain.CatalogItemsResponse{
			Items: []spapidomain.CatalogItem{
				{
					ASIN: "B000TEST01",
					Images: []spapidomain.ImagesByLocale{
						{Images: []spapidomain.CatalogImage{{Variant: "MAIN", Link: "https://img.example.com/main.jpg"}}},
					},
				},
			},
		}, nil)
	mockClient.EXPECT().
		GetListingOffers(gomock.Any(), gomock.Any(), domain.RegionNA, "SKU-1", usMarketplace).
		Return(&spapidomain.GetOffersResponse{
			Payload: spapidomain.OffersPayload{
				Offers: []spapidomain.Offer{
					{
						ListingPrice: spapidomain.PriceMoney{CurrencyCode: "USD", Amount: 17.99},
						LandedPrice:  spapidomain.PriceMoney{CurrencyCode: "USD", Amount: 17.99},
					},
				},
			},
		}, nil)
	mockRates.EXPECT().
		Convert(gomock.Any(), 35.98, "USD").
		Return(2986.34, 83.0, false)

	details, err := service.OrderDetails(context.Background(), "acme", usMarketplace, "111-222")
	assert.NoError(t, err)
	assert.Equal(t, "Shipped", details.Status)
	assert.Equal(t, 35.98, details.OrderTotal.Amount)
	require.Len(t, details.Items, 1)

	item := details.Items[0]
	assert.Equal(t, "https://img.example.com/main.jpg", item.ImageURL)
	assert.Equal(t, 17.99, item.ListingPrice.Amount)
	require.NotNil(t, item.ItemPriceBase)
	assert.Equal(t, "INR", item.ItemPriceBase.CurrencyCode)
	assert.Equal(t, 2986.34, item.ItemPriceBase.Amount)
}

func TestService_OrderDetails_EnrichmentFailuresDegrade(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	log.SetupTestLogger()

	mockClient := spapimocks.NewMockClient(ctrl)
	mockRates := ratemocks.NewMockRateIntegrator(ctrl)
	service := NewService(testConfig(), mockClient, mockRates)

	mockClient.EXPECT().
		GetOrder(gomock.Any(), gomock.Any(), domain.RegionNA, "333-444").
		Return(&spapidomain.Order{AmazonOrderID: "333-444", OrderStatus: "Pending"}, nil)
	mockClient.EXPECT().
		GetOrderItems(gomock.Any(), gomock.Any(), domain.RegionNA, "333-444").
		Return([]spapidomain.OrderItem{
			{ASIN: "B000TEST02", SellerSKU: "SKU-2", Title: "Another Product", QuantityOrdered: 1},
		}, nil)
	mockClient.EXPECT().
		GetCatalogItems(gomock.Any(), gomock.Any(), domain.RegionNA, usMarketplace, []string{"B000TEST02"}).
		Return(nil, domain.NewFailure(domain.FailureTransport, "catalogue unavailable"))
	mockClient.EXPECT().
		GetListingOffers(gomock.Any(), gomock.Any(), domain.RegionNA, "SKU-2", usMarketplace).
		Return(nil, domain.NewFailure(domain.FailureTransport, "pricing unavailable"))

	details, err := service.OrderDetails(context.Background(), "acme", usMarketplace, "333-444")
	assert.NoError(t, err, "enrichment failures must not fail the lookup")
	require.Len(t, details.Items, 1)
	assert.Empty(t, details.Items[0].ImageURL)
	assert.Nil(t, details.Items[0].ListingPrice)
	assert.Nil(t, details.Items[0].ItemPriceBase)
}

func TestService_ListingDetails(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	log.SetupTestLogger()

	mockClient := spapimocks.NewMockClient(ctrl)
	service := NewService(testConfig(), mockClient, ratemocks.NewMockRateIntegrator(ctrl))

	mockClient.EXPECT().
		GetListingItem(gomock.Any(), gomock.Any(), domain.RegionNA, "SELLER123", "SKU-1", usMarketplace).
		Return(&spapidomain.ListingItemResponse{
			Summaries: []spapidomain.ListingSummary{
				{ItemName: "Test Product", ProductType: "HOME"},
			},
			Attributes: map[string][]spapidomain.ListingAttribute{
				"generic_keyword":            {{Value: "kitchen"}, {Value: "steel"}},
				"bullet_point":               {{Value: "Durable"}},
				"product_description":        {{Value: "A fine product."}},
				"main_product_image_locator": {{MediaLocation: "https://img.example.com/sku1.jpg"}},
			},
		}, nil)
	mockClient.EXPECT().
		GetListingOffers(gomock.Any(), gomock.Any(), domain.RegionNA, "SKU-1", usMarketplace).
		Return(&spapidomain.GetOffersResponse{
			Payload: spapidomain.OffersPayload{
				Offers: []spapidomain.Offer{
					{ListingPrice: spapidomain.PriceMoney{CurrencyCode: "USD", Amount: 19.99}},
				},
			},
		}, nil)

	details, err := service.ListingDetails(context.Background(), "acme", usMarketplace, "SKU-1")
	assert.NoError(t, err)
	assert.Equal(t, "Test Product", details.ProductName)
	assert.Equal(t, "HOME", details.ProductType)
	assert.Equal(t, "kitchen; steel", details.Keywords)
	assert.Equal(t, "Durable", details.BulletPoints)
	assert.Equal(t, "https://img.example.com/sku1.jpg", details.MainImageURL)
	assert.Equal(t, 19.99, details.ListingPrice.Amount)
}

func TestService_ListingDetails_MissingSellerID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	log.SetupTestLogger()

	cfg := testConfig()
	cfg.Accounts["acme"].SellerIDs = nil
	service := NewService(cfg, spapimocks.NewMockClient(ctrl), ratemocks.NewMockRateIntegrator(ctrl))

	_, err := service.ListingDetails(context.Background(), "acme", usMarketplace, "SKU-1")
	assert.Error(t, err)
	assert.Equal(t, domain.FailureConfig, domain.KindOf(err))
}
