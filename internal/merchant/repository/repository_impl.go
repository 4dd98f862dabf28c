package repository

import (
	"context"

	"github.com/paylift/srbooster/internal/merchant/domain"
	"gorm.io/gorm"
)

type repo struct{}

func Provide() domain.Repository {
	return &repo{}
}

func (r *repo) FindByID(ctx context.Context, db *gorm.DB, mid string) (*domain.Merchant, error) {
	var m domain.Merchant
	err := db.WithContext(ctx).Raw(
		`SELECT mid, merchant_name, mx_category_type, mx_checkout_type, mx_methods, gmv, tier,
		 current_overall_sr, predicted_overall_sr, current_method_specific_sr, predicted_method_specific_sr
		 FROM merchants WHERE mid = ?`,
		mid,
	).Scan(&m).Error
	if err != nil {
		return nil, err
	}
	if m.MID == "" {
		return nil, nil
	}
	return &m, nil
}
