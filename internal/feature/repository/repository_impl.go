package repository

import (
	"context"

	"github.com/paylift/srbooster/internal/feature/domain"
	"gorm.io/gorm"
)

type repo struct{}

func Provide() domain.Repository {
	return &repo{}
}

func (r *repo) FindByID(ctx context.Context, db *gorm.DB, featureID string) (*domain.Feature, error) {
	var f domain.Feature
	err := db.WithContext(ctx).Raw(
		`SELECT feature_id, method, category_types, checkout_types, feature_name, feature_flag, description
		 FROM features WHERE feature_id = ?`,
		featureID,
	).Scan(&f).Error
	if err != nil {
		return nil, err
	}
	if f.FeatureID == "" {
		return nil, nil
	}
	return &f, nil
}

func (r *repo) List(ctx context.Context, db *gorm.DB) ([]domain.Feature, error) {
	var items []domain.Feature
	if err := db.WithContext(ctx).Model(&domain.Feature{}).Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *repo) ListByMethods(ctx context.Context, db *gorm.DB, methods []string) ([]domain.Feature, error) {
	if len(methods) == 0 {
		return nil, nil
	}
	var items []domain.Feature
	err := db.WithContext(ctx).
		Model(&domain.Feature{}).
		Where("method IN ?", methods).
		Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}
