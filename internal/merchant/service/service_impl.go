package service

import (
	"context"
	"strings"

	"github.com/paylift/srbooster/internal/merchant/domain"
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
		log:  p.Log.Named("merchant.service"),
		repo: p.Repo,
	}
}

func (s *Service) Get(ctx context.Context, mid string) (*domain.Response, error) {
	item, err := s.find(ctx, mid)
	if err != nil {
		return nil, err
	}

	return &domain.Response{
		MID:                       item.MID,
		MerchantName:              item.MerchantName,
		MxCategoryType:            item.MxCategoryType,
		MxCheckoutType:            item.MxCheckoutType,
		MxMethods:                 item.MxMethods,
		GMV:                       item.GMV,
		Tier:                      item.Tier,
		CurrentOverallSR:          item.CurrentOverallSR,
		PredictedOverallSR:        item.PredictedOverallSR,
		CurrentMethodSpecificSR:   item.CurrentMethodSpecificSR.Data(),
		PredictedMethodSpecificSR: item.PredictedMethodSpecificSR.Data(),
	}, nil
}

func (s *Service) SRBooster(ctx context.Context, mid string) (*domain.SRSummary, error) {
	item, err := s.find(ctx, mid)
	if err != nil {
		return nil, err
	}

	return &domain.SRSummary{
		MerchantName:              item.MerchantName,
		CurrentOverallSR:          item.CurrentOverallSR,
		PredictedOverallSR:        item.PredictedOverallSR,
		CurrentMethodSpecificSR:   item.CurrentMethodSpecificSR.Data(),
		PredictedMethodSpecificSR: item.PredictedMethodSpecificSR.Data(),
	}, nil
}

func (s *Service) find(ctx context.Context, mid string) (*domain.Merchant, error) {
	mid = strings.TrimSpace(mid)
	if mid == "" {
		return nil, domain.ErrNotFound
	}

	item, err := s.repo.FindByID(ctx, s.db, mid)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.ErrNotFound
	}
	return item, nil
}
