package repository

import (
	"context"

	"github.com/paylift/srbooster/internal/request/domain"
	"gorm.io/gorm"
)

type repo struct{}

func Provide() domain.Repository {
	return &repo{}
}

func (r *repo) Insert(ctx context.Context, db *gorm.DB, request *domain.Request) error {
	return db.WithContext(ctx).Exec(
		`INSERT INTO requests (
			request_id, mid, feature_id, method, feature_name, feature_flag, status, created_at, updated_at, pricing_config
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		request.RequestID,
		request.MID,
		request.FeatureID,
		request.Method,
		request.FeatureName,
		request.FeatureFlag,
		request.Status,
		request.CreatedAt,
		request.UpdatedAt,
		request.PricingConfig,
	).Error
}

func (r *repo) FindByID(ctx context.Context, db *gorm.DB, requestID string) (*domain.Request, error) {
	var request domain.Request
	err := db.WithContext(ctx).Raw(
		`SELECT request_id, mid, feature_id, method, feature_name, feature_flag, status, created_at, updated_at, pricing_config
		 FROM requests WHERE request_id = ?`,
		requestID,
	).Scan(&request).Error
	if err != nil {
		return nil, err
	}
	if request.RequestID == "" {
		return nil, nil
	}
	return &request, nil
}

func (r *repo) List(ctx context.Context, db *gorm.DB) ([]domain.Request, error) {
	var items []domain.Request
	if err := db.WithContext(ctx).Model(&domain.Request{}).Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *repo) ListByStatus(ctx context.Context, db *gorm.DB, status domain.RequestStatus) ([]domain.Request, error) {
	var items []domain.Request
	err := db.WithContext(ctx).
		Model(&domain.Request{}).
		Where("status = ?", status).
		Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

func (r *repo) UpdateStatusIf(ctx context.Context, db *gorm.DB, requestID string, from, to domain.RequestStatus, updatedAt int64) (bool, error) {
	result := db.WithContext(ctx).Exec(
		`UPDATE requests SET status = ?, updated_at = ? WHERE request_id = ? AND status = ?`,
		to,
		updatedAt,
		requestID,
		from,
	)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}
