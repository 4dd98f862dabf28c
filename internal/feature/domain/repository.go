package domain

import (
	"context"

	"gorm.io/gorm"
)

type Repository interface {
	FindByID(ctx context.Context, db *gorm.DB, featureID string) (*Feature, error)
	List(ctx context.Context, db *gorm.DB) ([]Feature, error)
	ListByMethods(ctx context.Context, db *gorm.DB, methods []string) ([]Feature, error)
}
