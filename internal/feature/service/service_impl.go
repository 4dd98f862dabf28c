package service

import (
	"context"
	"strings"

	"github.com/paylift/srbooster/internal/feature/domain"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Params struct {
	fx.In

	DB   *gorm.DB
	Log  *zap.Logger
	Repo domain.Repository
}

type Service struct {
	db   *gorm.DB
	log  *zap.Logger
	repo domain.Repository
}

func New(p Params) domain.Service {
	return &Service{
		db:   p.DB,
		log:  p.Log.Named("feature.service"),
		repo: p.Repo,
	}
}

func (s *Service) List(ctx context.Context) ([]domain.ListItem, error) {
	items, err := s.repo.List(ctx, s.db)
	if err != nil {
		return nil, err
	}

	resp := make([]domain.ListItem, 0, len(items))
	for _, item := range items {
		resp = append(resp, domain.ListItem{
			FeatureID:     item.FeatureID,
			FeatureName:   item.FeatureName,
			Method:        item.Method,
			Description:   item.Description,
			CategoryTypes: item.CategoryTypes,
			CheckoutTypes: item.CheckoutTypes,
		})
	}
	return resp, nil
}

func (s *Service) Get(ctx context.Context, featureID string) (*domain.Response, error) {
	featureID = strings.TrimSpace(featureID)
	if featureID == "" {
		return nil, domain.ErrNotFound
	}

	item, err := s.repo.FindByID(ctx, s.db, featureID)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.ErrNotFound
	}

	return &domain.Response{
		FeatureID:     item.FeatureID,
		Method:        item.Method,
		CategoryTypes: item.CategoryTypes,
		CheckoutTypes: item.CheckoutTypes,
		FeatureName:   item.FeatureName,
		FeatureFlag:   item.FeatureFlag,
		Description:   item.Description,
	}, nil
}
