package service

import (
	"context"
	"testing"

	featuredomain "github.com/paylift/srbooster/internal/feature/domain"
	featurerepo "github.com/paylift/srbooster/internal/feature/repository"
	"github.com/paylift/srbooster/internal/matcher/domain"
	merchantdomain "github.com/paylift/srbooster/internal/merchant/domain"
	merchantrepo "github.com/paylift/srbooster/internal/merchant/repository"
	"github.com/paylift/srbooster/pkg/db"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

func newTestService(t *testing.T) (domain.Service, *gorm.DB) {
	t.Helper()

	dbConn, err := db.NewTest()
	require.NoError(t, err)
	require.NoError(t, dbConn.AutoMigrate(
		&featuredomain.Feature{},
		&merchantdomain.Merchant{},
	))

	svc := New(Params{
		DB:           dbConn,
		Log:          zap.NewNop(),
		MerchantRepo: merchantrepo.Provide(),
		FeatureRepo:  featurerepo.Provide(),
	})
	return svc, dbConn
}

func seedFeature(t *testing.T, dbConn *gorm.DB, id, method string, categories, checkouts []string) {
	t.Helper()
	require.NoError(t, dbConn.Create(&featuredomain.Feature{
		FeatureID:     id,
		Method:        method,
		CategoryTypes: datatypes.NewJSONSlice(categories),
		CheckoutTypes: datatypes.NewJSONSlice(checkouts),
		FeatureName:   id,
		FeatureFlag:   id + "_enabled",
	}).Error)
}

func seedMerchant(t *testing.T, dbConn *gorm.DB, mid, category, checkout string, methods []string) {
	t.Helper()
	require.NoError(t, dbConn.Create(&merchantdomain.Merchant{
		MID:            mid,
		MerchantName:   mid,
		MxCategoryType: category,
		MxCheckoutType: checkout,
		MxMethods:      datatypes.NewJSONSlice(methods),
	}).Error)
}

func TestMatchGroupsByMethod(t *testing.T) {
	svc, dbConn := newTestService(t)

	seedFeature(t, dbConn, "upi_retry", "upi", []string{"ecommerce"}, []string{"standard"})
	seedFeature(t, dbConn, "upi_collect", "upi", []string{"ecommerce", "travel"}, []string{"standard"})
	seedFeature(t, dbConn, "card_routing", "card", []string{"ecommerce"}, []string{"standard"})
	seedMerchant(t, dbConn, "MID0001", "ecommerce", "standard", []string{"upi", "card"})

	result, err := svc.Match(context.Background(), "MID0001")
	require.NoError(t, err)
	require.Len(t, result, 2)
	require.Len(t, result["upi"], 2)
	require.Len(t, result["card"], 1)
	require.Equal(t, "upi_retry", result["upi"][0].FeatureID)
	require.Equal(t, "card_routing", result["card"][0].FeatureID)
}

func TestMatchAllConditionsRequired(t *testing.T) {
	svc, dbConn := newTestService(t)

	// Each feature misses exactly one of the three membership tests.
	seedFeature(t, dbConn, "wrong_method", "netbanking", []string{"ecommerce"}, []string{"standard"})
	seedFeature(t, dbConn, "wrong_category", "upi", []string{"travel"}, []string{"standard"})
	seedFeature(t, dbConn, "wrong_checkout", "upi", []string{"ecommerce"}, []string{"custom"})
	seedMerchant(t, dbConn, "MID0001", "ecommerce", "standard", []string{"upi"})

	result, err := svc.Match(context.Background(), "MID0001")
	require.NoError(t, err)
	require.Empty(t, result)
}

func TestMatchUnknownMerchant(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.Match(context.Background(), "MID9999")
	require.ErrorIs(t, err, merchantdomain.ErrNotFound)
}

func TestMatchEmptyMethods(t *testing.T) {
	svc, dbConn := newTestService(t)

	seedFeature(t, dbConn, "upi_retry", "upi", []string{"ecommerce"}, []string{"standard"})
	seedMerchant(t, dbConn, "MID0001", "ecommerce", "standard", nil)

	result, err := svc.Match(context.Background(), "MID0001")
	require.NoError(t, err)
	require.NotNil(t, result)
	require.Empty(t, result)
}

func TestMatchCachesResult(t *testing.T) {
	svc, dbConn := newTestService(t)

	seedFeature(t, dbConn, "upi_retry", "upi", []string{"ecommerce"}, []string{"standard"})
	seedMerchant(t, dbConn, "MID0001", "ecommerce", "standard", []string{"upi"})

	first, err := svc.Match(context.Background(), "MID0001")
	require.NoError(t, err)
	require.Len(t, first["upi"], 1)

	// A catalog change within the TTL is not visible to the cached entry.
	seedFeature(t, dbConn, "upi_collect", "upi", []string{"ecommerce"}, []string{"standard"})

	second, err := svc.Match(context.Background(), "MID0001")
	require.NoError(t, err)
	require.Len(t, second["upi"], 1)
}
