package service

import (
	"context"
	"testing"

	"github.com/paylift/srbooster/internal/merchant/domain"
	"github.com/paylift/srbooster/internal/merchant/repository"
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
	require.NoError(t, dbConn.AutoMigrate(&domain.Merchant{}))

	svc := New(Params{
		DB:   dbConn,
		Log:  zap.NewNop(),
		Repo: repository.Provide(),
	})
	return svc, dbConn
}

func seedMerchant(t *testing.T, dbConn *gorm.DB) {
	t.Helper()
	require.NoError(t, dbConn.Create(&domain.Merchant{
		MID:                "MID0001",
		MerchantName:       "Brightcart",
		MxCategoryType:     "ecommerce",
		MxCheckoutType:     "standard",
		MxMethods:          datatypes.NewJSONSlice([]string{"upi", "card"}),
		GMV:                1250000,
		Tier:               "enterprise",
		CurrentOverallSR:   91.2,
		PredictedOverallSR: 94.8,
		CurrentMethodSpecificSR: datatypes.NewJSONType(map[string]float64{
			"upi": 92.5, "card": 89.1,
		}),
		PredictedMethodSpecificSR: datatypes.NewJSONType(map[string]float64{
			"upi": 95.4, "card": 93.0,
		}),
	}).Error)
}

func TestGetMerchant(t *testing.T) {
	svc, dbConn := newTestService(t)
	seedMerchant(t, dbConn)

	got, err := svc.Get(context.Background(), "MID0001")
	require.NoError(t, err)
	require.Equal(t, "Brightcart", got.MerchantName)
	require.Equal(t, []string{"upi", "card"}, got.MxMethods)
	require.Equal(t, 92.5, got.CurrentMethodSpecificSR["upi"])
}

func TestGetUnknownMerchant(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.Get(context.Background(), "MID9999")
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestSRBoosterProjection(t *testing.T) {
	svc, dbConn := newTestService(t)
	seedMerchant(t, dbConn)

	got, err := svc.SRBooster(context.Background(), "MID0001")
	require.NoError(t, err)
	require.Equal(t, "Brightcart", got.MerchantName)
	require.Equal(t, 91.2, got.CurrentOverallSR)
	require.Equal(t, 94.8, got.PredictedOverallSR)
	require.Equal(t, 95.4, got.PredictedMethodSpecificSR["upi"])
}
