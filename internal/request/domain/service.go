package domain

import (
	"context"
	"errors"
)

type Service interface {
	Create(ctx context.Context, req CreateRequest) (*CreateResult, error)
	Transition(ctx context.Context, requestID string, target RequestStatus) (*TransitionResult, error)
	List(ctx context.Context) ([]Response, error)
	ListPending(ctx context.Context) ([]Summary, error)
	Get(ctx context.Context, requestID string) (*DetailResponse, error)
}

type CreateRequest struct {
	MID           string         `json:"mid"`
	FeatureID     string         `json:"feature_id"`
	PricingConfig map[string]any `json:"pricing_config"`
}

type CreateResult struct {
	RequestID string `json:"request_id"`
}

type TransitionResult struct {
	RequestID string        `json:"request_id"`
	Status    RequestStatus `json:"status"`
	UpdatedAt int64         `json:"updated_at"`
}

type Response struct {
	RequestID   string        `json:"request_id"`
	MID         string        `json:"mid"`
	FeatureID   string        `json:"feature_id"`
	Method      string        `json:"method"`
	FeatureName string        `json:"feature_name"`
	FeatureFlag string        `json:"feature_flag"`
	Status      RequestStatus `json:"status"`
	CreatedAt   int64         `json:"created_at"`
	UpdatedAt   int64         `json:"updated_at"`
}

// DetailResponse is the single-request projection; it carries the
// pricing config parsed back from its stored textual form.
type DetailResponse struct {
	Response
	PricingConfig map[string]any `json:"pricing_config"`
}

// Summary is the reduced projection used by the pending-approvals view.
type Summary struct {
	RequestID   string        `json:"request_id"`
	MID         string        `json:"mid"`
	FeatureID   string        `json:"feature_id"`
	FeatureName string        `json:"feature_name"`
	Status      RequestStatus `json:"status"`
	CreatedAt   int64         `json:"created_at"`
}

var (
	ErrNotFound             = errors.New("request not found")
	ErrNotPending           = errors.New("request is not pending")
	ErrMissingFields        = errors.New("missing required fields: feature_id, mid")
	ErrInvalidTargetStatus  = errors.New("invalid target status")
	ErrCorruptPricingConfig = errors.New("corrupt pricing config")
)
