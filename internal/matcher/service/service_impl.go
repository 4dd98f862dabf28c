package service

import (
	"context"
	"slices"
	"strings"
	"time"

	"github.com/paylift/srbooster/internal/cache"
	featuredomain "github.com/paylift/srbooster/internal/feature/domain"
	"github.com/paylift/srbooster/internal/matcher/domain"
	merchantdomain "github.com/paylift/srbooster/internal/merchant/domain"
	obsmetrics "github.com/paylift/srbooster/internal/observability/metrics"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Match results are cacheable because features and merchants are
// immutable through this API.
const resultTTL = 30 * time.Second

type Params struct {
	fx.In

	DB           *gorm.DB
	Log          *zap.Logger
	MerchantRepo merchantdomain.Repository
	FeatureRepo  featuredomain.Repository
	Metrics      *obsmetrics.Metrics `optional:"true"`
}

type Service struct {
	db           *gorm.DB
	log          *zap.Logger
	merchantRepo merchantdomain.Repository
	featureRepo  featuredomain.Repository
	metrics      *obsmetrics.Metrics
	results      cache.Cache[string, domain.Result]
}

func New(p Params) domain.Service {
	return &Service{
		db:           p.DB,
		log:          p.Log.Named("matcher.service"),
		merchantRepo: p.MerchantRepo,
		featureRepo:  p.FeatureRepo,
		metrics:      p.Metrics,
		results:      cache.NewTTLCache[string, domain.Result](),
	}
}

func (s *Service) Match(ctx context.Context, mid string) (domain.Result, error) {
	mid = strings.TrimSpace(mid)
	if mid == "" {
		return nil, merchantdomain.ErrNotFound
	}

	if cached, ok := s.results.Get(mid); ok {
		s.metrics.RecordMatcherLookup(ctx, true)
		return cached, nil
	}

	merchant, err := s.merchantRepo.FindByID(ctx, s.db, mid)
	if err != nil {
		return nil, err
	}
	if merchant == nil {
		return nil, merchantdomain.ErrNotFound
	}

	result := domain.Result{}
	if len(merchant.MxMethods) > 0 {
		candidates, err := s.featureRepo.ListByMethods(ctx, s.db, merchant.MxMethods)
		if err != nil {
			return nil, err
		}

		// Applicability is conjunctive: the feature's method must be one
		// of the merchant's methods (already filtered by the query), and
		// the merchant's category and checkout types must be members of
		// the feature's sets.
		for _, f := range candidates {
			if !slices.Contains(f.CategoryTypes, merchant.MxCategoryType) {
				continue
			}
			if !slices.Contains(f.CheckoutTypes, merchant.MxCheckoutType) {
				continue
			}
			result[f.Method] = append(result[f.Method], domain.FeatureSummary{
				FeatureID:     f.FeatureID,
				FeatureName:   f.FeatureName,
				FeatureFlag:   f.FeatureFlag,
				Description:   f.Description,
				CategoryTypes: f.CategoryTypes,
				CheckoutTypes: f.CheckoutTypes,
			})
		}
	}

	s.results.Set(mid, result, resultTTL)
	s.metrics.RecordMatcherLookup(ctx, false)
	return result, nil
}
