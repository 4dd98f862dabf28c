package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/paylift/srbooster/internal/clock"
	featuredomain "github.com/paylift/srbooster/internal/feature/domain"
	merchantdomain "github.com/paylift/srbooster/internal/merchant/domain"
	obsmetrics "github.com/paylift/srbooster/internal/observability/metrics"
	"github.com/paylift/srbooster/internal/reqid"
	"github.com/paylift/srbooster/internal/request/domain"
	"github.com/paylift/srbooster/pkg/db"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const requestIDPrefix = "req"

// The 36^6 suffix space makes collisions rare but not impossible; the
// insert retries with a fresh id instead of overwriting.
const maxIDAttempts = 3

type Params struct {
	fx.In

	DB           *gorm.DB
	Log          *zap.Logger
	Clock        clock.Clock
	Repo         domain.Repository
	MerchantRepo merchantdomain.Repository
	FeatureRepo  featuredomain.Repository
	Metrics      *obsmetrics.Metrics `optional:"true"`
}

type Service struct {
	db           *gorm.DB
	log          *zap.Logger
	clock        clock.Clock
	repo         domain.Repository
	merchantRepo merchantdomain.Repository
	featureRepo  featuredomain.Repository
	metrics      *obsmetrics.Metrics
}

func New(p Params) domain.Service {
	return &Service{
		db:           p.DB,
		log:          p.Log.Named("request.service"),
		clock:        p.Clock,
		repo:         p.Repo,
		merchantRepo: p.MerchantRepo,
		featureRepo:  p.FeatureRepo,
		metrics:      p.Metrics,
	}
}

func (s *Service) Create(ctx context.Context, req domain.CreateRequest) (*domain.CreateResult, error) {
	mid := strings.TrimSpace(req.MID)
	featureID := strings.TrimSpace(req.FeatureID)
	if mid == "" || featureID == "" {
		return nil, domain.ErrMissingFields
	}

	merchant, err := s.merchantRepo.FindByID(ctx, s.db, mid)
	if err != nil {
		return nil, err
	}
	if merchant == nil {
		return nil, merchantdomain.ErrNotFound
	}

	feature, err := s.featureRepo.FindByID(ctx, s.db, featureID)
	if err != nil {
		return nil, err
	}
	if feature == nil {
		return nil, featuredomain.ErrNotFound
	}

	pricing := req.PricingConfig
	if pricing == nil {
		pricing = map[string]any{}
	}
	pricingText, err := json.Marshal(pricing)
	if err != nil {
		return nil, fmt.Errorf("serialize pricing config: %w", err)
	}

	now := s.clock.Now().Unix()
	record := &domain.Request{
		MID:           merchant.MID,
		FeatureID:     feature.FeatureID,
		Method:        feature.Method,
		FeatureName:   feature.FeatureName,
		FeatureFlag:   feature.FeatureFlag,
		Status:        domain.RequestStatusPending,
		CreatedAt:     now,
		UpdatedAt:     now,
		PricingConfig: string(pricingText),
	}

	for attempt := 0; attempt < maxIDAttempts; attempt++ {
		record.RequestID = reqid.New(requestIDPrefix)

		err := s.repo.Insert(ctx, s.db, record)
		if err == nil {
			s.metrics.RecordRequestCreated(ctx, record.FeatureID)
			return &domain.CreateResult{RequestID: record.RequestID}, nil
		}
		if !db.IsDuplicateKeyErr(err) {
			return nil, err
		}
		s.log.Warn("request id collision, regenerating",
			zap.String("request_id", record.RequestID),
			zap.Int("attempt", attempt+1),
		)
	}

	return nil, fmt.Errorf("request id space exhausted after %d attempts", maxIDAttempts)
}

func (s *Service) Transition(ctx context.Context, requestID string, target domain.RequestStatus) (*domain.TransitionResult, error) {
	requestID = strings.TrimSpace(requestID)
	if requestID == "" {
		return nil, domain.ErrNotFound
	}
	if target != domain.RequestStatusApproved && target != domain.RequestStatusRejected {
		return nil, domain.ErrInvalidTargetStatus
	}

	now := s.clock.Now().Unix()
	updated, err := s.repo.UpdateStatusIf(ctx, s.db, requestID, domain.RequestStatusPending, target, now)
	if err != nil {
		return nil, err
	}
	if !updated {
		existing, err := s.repo.FindByID(ctx, s.db, requestID)
		if err != nil {
			return nil, err
		}
		if existing == nil {
			return nil, domain.ErrNotFound
		}
		return nil, domain.ErrNotPending
	}

	s.metrics.RecordTransition(ctx, string(target))
	return &domain.TransitionResult{
		RequestID: requestID,
		Status:    target,
		UpdatedAt: now,
	}, nil
}

func (s *Service) List(ctx context.Context) ([]domain.Response, error) {
	items, err := s.repo.List(ctx, s.db)
	if err != nil {
		return nil, err
	}

	resp := make([]domain.Response, 0, len(items))
	for _, item := range items {
		resp = append(resp, toResponse(&item))
	}
	return resp, nil
}

func (s *Service) ListPending(ctx context.Context) ([]domain.Summary, error) {
	items, err := s.repo.ListByStatus(ctx, s.db, domain.RequestStatusPending)
	if err != nil {
		return nil, err
	}

	resp := make([]domain.Summary, 0, len(items))
	for _, item := range items {
		resp = append(resp, domain.Summary{
			RequestID:   item.RequestID,
			MID:         item.MID,
			FeatureID:   item.FeatureID,
			FeatureName: item.FeatureName,
			Status:      item.Status,
			CreatedAt:   item.CreatedAt,
		})
	}
	return resp, nil
}

func (s *Service) Get(ctx context.Context, requestID string) (*domain.DetailResponse, error) {
	requestID = strings.TrimSpace(requestID)
	if requestID == "" {
		return nil, domain.ErrNotFound
	}

	item, err := s.repo.FindByID(ctx, s.db, requestID)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.ErrNotFound
	}

	pricing := map[string]any{}
	if text := strings.TrimSpace(item.PricingConfig); text != "" {
		if err := json.Unmarshal([]byte(text), &pricing); err != nil {
			return nil, fmt.Errorf("parse pricing config for %s: %w", item.RequestID, domain.ErrCorruptPricingConfig)
		}
	}

	return &domain.DetailResponse{
		Response:      toResponse(item),
		PricingConfig: pricing,
	}, nil
}

func toResponse(item *domain.Request) domain.Response {
	return domain.Response{
		RequestID:   item.RequestID,
		MID:         item.MID,
		FeatureID:   item.FeatureID,
		Method:      item.Method,
		FeatureName: item.FeatureName,
		FeatureFlag: item.FeatureFlag,
		Status:      item.Status,
		CreatedAt:   item.CreatedAt,
		UpdatedAt:   item.UpdatedAt,
	}
}
