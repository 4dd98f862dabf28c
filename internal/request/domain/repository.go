package domain

import (
	"context"

	"gorm.io/gorm"
)

type Repository interface {
	// Insert persists a new request. A duplicate request_id surfaces as
	// a database unique-constraint error, never a silent overwrite.
	Insert(ctx context.Context, db *gorm.DB, request *Request) error
	FindByID(ctx context.Context, db *gorm.DB, requestID string) (*Request, error)
	List(ctx context.Context, db *gorm.DB) ([]Request, error)
	ListByStatus(ctx context.Context, db *gorm.DB, status RequestStatus) ([]Request, error)
	// UpdateStatusIf performs a compare-and-set on the status column and
	// reports whether a row was updated. Of two concurrent transitions
	// on the same pending request, exactly one observes true.
	UpdateStatusIf(ctx context.Context, db *gorm.DB, requestID string, from, to RequestStatus, updatedAt int64) (bool, error)
}
