package service

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/paylift/srbooster/internal/clock"
	featuredomain "github.com/paylift/srbooster/internal/feature/domain"
	featurerepo "github.com/paylift/srbooster/internal/feature/repository"
	merchantdomain "github.com/paylift/srbooster/internal/merchant/domain"
	merchantrepo "github.com/paylift/srbooster/internal/merchant/repository"
	"github.com/paylift/srbooster/internal/request/domain"
	"github.com/paylift/srbooster/internal/request/repository"
	"github.com/paylift/srbooster/pkg/db"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

var requestIDPattern = regexp.MustCompile(`^req_[a-z0-9]{6}$`)

func newTestService(t *testing.T) (domain.Service, *gorm.DB, *clock.FakeClock) {
	t.Helper()

	dbConn, err := db.NewTest()
	require.NoError(t, err)
	require.NoError(t, dbConn.AutoMigrate(
		&featuredomain.Feature{},
		&merchantdomain.Merchant{},
		&domain.Request{},
	))

	fake := clock.NewFakeClock(time.Unix(1700000000, 0))
	svc := New(Params{
		DB:           dbConn,
		Log:          zap.NewNop(),
		Clock:        fake,
		Repo:         repository.Provide(),
		MerchantRepo: merchantrepo.Provide(),
		FeatureRepo:  featurerepo.Provide(),
	})
	return svc, dbConn, fake
}

func seedCatalog(t *testing.T, dbConn *gorm.DB) {
	t.Helper()

	require.NoError(t, dbConn.Create(&featuredomain.Feature{
		FeatureID:     "upi_intent_retry",
		Method:        "upi",
		CategoryTypes: datatypes.NewJSONSlice([]string{"ecommerce"}),
		CheckoutTypes: datatypes.NewJSONSlice([]string{"standard"}),
		FeatureName:   "UPI Intent Retry",
		FeatureFlag:   "upi_intent_retry_enabled",
		Description:   "Retries failed UPI intent flows",
	}).Error)

	require.NoError(t, dbConn.Create(&merchantdomain.Merchant{
		MID:            "MID0001",
		MerchantName:   "Brightcart",
		MxCategoryType: "ecommerce",
		MxCheckoutType: "standard",
		MxMethods:      datatypes.NewJSONSlice([]string{"upi"}),
	}).Error)
}

func TestCreateRequestStartsPending(t *testing.T) {
	svc, dbConn, _ := newTestService(t)
	seedCatalog(t, dbConn)

	res, err := svc.Create(context.Background(), domain.CreateRequest{
		MID:       "MID0001",
		FeatureID: "upi_intent_retry",
	})
	require.NoError(t, err)
	require.Regexp(t, requestIDPattern, res.RequestID)

	got, err := svc.Get(context.Background(), res.RequestID)
	require.NoError(t, err)
	require.Equal(t, domain.RequestStatusPending, got.Status)
	require.Equal(t, got.CreatedAt, got.UpdatedAt)
	require.Equal(t, "upi", got.Method)
	require.Equal(t, "UPI Intent Retry", got.FeatureName)
	require.Equal(t, "upi_intent_retry_enabled", got.FeatureFlag)
	require.Empty(t, got.PricingConfig)
}

func TestCreateRequestMissingFields(t *testing.T) {
	svc, dbConn, _ := newTestService(t)
	seedCatalog(t, dbConn)

	_, err := svc.Create(context.Background(), domain.CreateRequest{MID: "MID0001"})
	require.ErrorIs(t, err, domain.ErrMissingFields)

	_, err = svc.Create(context.Background(), domain.CreateRequest{FeatureID: "upi_intent_retry"})
	require.ErrorIs(t, err, domain.ErrMissingFields)
}

func TestCreateRequestUnknownReferences(t *testing.T) {
	svc, dbConn, _ := newTestService(t)
	seedCatalog(t, dbConn)

	_, err := svc.Create(context.Background(), domain.CreateRequest{
		MID:       "MID9999",
		FeatureID: "upi_intent_retry",
	})
	require.ErrorIs(t, err, merchantdomain.ErrNotFound)

	_, err = svc.Create(context.Background(), domain.CreateRequest{
		MID:       "MID0001",
		FeatureID: "no_such_feature",
	})
	require.ErrorIs(t, err, featuredomain.ErrNotFound)

	var count int64
	require.NoError(t, dbConn.Model(&domain.Request{}).Count(&count).Error)
	require.Zero(t, count)
}

func TestCreateRequestPricingConfigRoundTrip(t *testing.T) {
	svc, dbConn, _ := newTestService(t)
	seedCatalog(t, dbConn)

	res, err := svc.Create(context.Background(), domain.CreateRequest{
		MID:       "MID0001",
		FeatureID: "upi_intent_retry",
		PricingConfig: map[string]any{
			"model": "flat",
			"bps":   float64(12),
		},
	})
	require.NoError(t, err)

	got, err := svc.Get(context.Background(), res.RequestID)
	require.NoError(t, err)
	require.Equal(t, "flat", got.PricingConfig["model"])
	require.Equal(t, float64(12), got.PricingConfig["bps"])
}

func TestGetCorruptPricingConfig(t *testing.T) {
	svc, dbConn, _ := newTestService(t)
	seedCatalog(t, dbConn)

	res, err := svc.Create(context.Background(), domain.CreateRequest{
		MID:       "MID0001",
		FeatureID: "upi_intent_retry",
	})
	require.NoError(t, err)

	require.NoError(t, dbConn.Exec(
		`UPDATE requests SET pricing_config = ? WHERE request_id = ?`,
		"{not json", res.RequestID,
	).Error)

	_, err = svc.Get(context.Background(), res.RequestID)
	require.ErrorIs(t, err, domain.ErrCorruptPricingConfig)
}

func TestTransitionApprove(t *testing.T) {
	svc, dbConn, fake := newTestService(t)
	seedCatalog(t, dbConn)

	res, err := svc.Create(context.Background(), domain.CreateRequest{
		MID:       "MID0001",
		FeatureID: "upi_intent_retry",
	})
	require.NoError(t, err)

	fake.Advance(90 * time.Second)

	tr, err := svc.Transition(context.Background(), res.RequestID, domain.RequestStatusApproved)
	require.NoError(t, err)
	require.Equal(t, domain.RequestStatusApproved, tr.Status)
	require.Equal(t, fake.Now().Unix(), tr.UpdatedAt)

	got, err := svc.Get(context.Background(), res.RequestID)
	require.NoError(t, err)
	require.Equal(t, domain.RequestStatusApproved, got.Status)
	require.Greater(t, got.UpdatedAt, got.CreatedAt)
}

func TestTransitionIsTerminal(t *testing.T) {
	svc, dbConn, _ := newTestService(t)
	seedCatalog(t, dbConn)

	res, err := svc.Create(context.Background(), domain.CreateRequest{
		MID:       "MID0001",
		FeatureID: "upi_intent_retry",
	})
	require.NoError(t, err)

	_, err = svc.Transition(context.Background(), res.RequestID, domain.RequestStatusApproved)
	require.NoError(t, err)

	// approved is terminal: neither a repeat approve nor a reject may pass.
	_, err = svc.Transition(context.Background(), res.RequestID, domain.RequestStatusApproved)
	require.ErrorIs(t, err, domain.ErrNotPending)

	_, err = svc.Transition(context.Background(), res.RequestID, domain.RequestStatusRejected)
	require.ErrorIs(t, err, domain.ErrNotPending)

	got, err := svc.Get(context.Background(), res.RequestID)
	require.NoError(t, err)
	require.Equal(t, domain.RequestStatusApproved, got.Status)
}

func TestTransitionUnknownRequest(t *testing.T) {
	svc, dbConn, _ := newTestService(t)
	seedCatalog(t, dbConn)

	_, err := svc.Transition(context.Background(), "req_zzzzzz", domain.RequestStatusApproved)
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestTransitionInvalidTarget(t *testing.T) {
	svc, dbConn, _ := newTestService(t)
	seedCatalog(t, dbConn)

	res, err := svc.Create(context.Background(), domain.CreateRequest{
		MID:       "MID0001",
		FeatureID: "upi_intent_retry",
	})
	require.NoError(t, err)

	_, err = svc.Transition(context.Background(), res.RequestID, domain.RequestStatusPending)
	require.ErrorIs(t, err, domain.ErrInvalidTargetStatus)
}

func TestListPendingReducedProjection(t *testing.T) {
	svc, dbConn, _ := newTestService(t)
	seedCatalog(t, dbConn)

	first, err := svc.Create(context.Background(), domain.CreateRequest{
		MID:       "MID0001",
		FeatureID: "upi_intent_retry",
	})
	require.NoError(t, err)

	second, err := svc.Create(context.Background(), domain.CreateRequest{
		MID:       "MID0001",
		FeatureID: "upi_intent_retry",
	})
	require.NoError(t, err)

	_, err = svc.Transition(context.Background(), second.RequestID, domain.RequestStatusRejected)
	require.NoError(t, err)

	pending, err := svc.ListPending(context.Background())
	require.NoError(t, err)
	require.Len(t, pending, 1)
	require.Equal(t, first.RequestID, pending[0].RequestID)
	require.Equal(t, domain.RequestStatusPending, pending[0].Status)

	all, err := svc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, all, 2)
}

func TestConcurrentTransitionExactlyOneWins(t *testing.T) {
	svc, dbConn, _ := newTestService(t)
	seedCatalog(t, dbConn)

	res, err := svc.Create(context.Background(), domain.CreateRequest{
		MID:       "MID0001",
		FeatureID: "upi_intent_retry",
	})
	require.NoError(t, err)

	results := make(chan error, 2)
	go func() {
		_, err := svc.Transition(context.Background(), res.RequestID, domain.RequestStatusApproved)
		results <- err
	}()
	go func() {
		_, err := svc.Transition(context.Background(), res.RequestID, domain.RequestStatusRejected)
		results <- err
	}()

	var failures int
	for i := 0; i < 2; i++ {
		if err := <-results; err != nil {
			require.True(t, errors.Is(err, domain.ErrNotPending), "unexpected error: %v", err)
			failures++
		}
	}
	require.Equal(t, 1, failures)
}
