package domain

import (
	"context"
	"errors"
)

type Service interface {
	List(ctx context.Context) ([]ListItem, error)
	Get(ctx context.Context, featureID string) (*Response, error)
}

// ListItem is the reduced projection used by the catalog listing.
// The feature flag is only exposed on single-feature reads.
type ListItem struct {
	FeatureID     string   `json:"feature_id"`
	FeatureName   string   `json:"feature_name"`
	Method        string   `json:"method"`
	Description   string   `json:"description"`
	CategoryTypes []string `json:"category_types"`
	CheckoutTypes []string `json:"checkout_types"`
}

type Response struct {
	FeatureID     string   `json:"feature_id"`
	Method        string   `json:"method"`
	CategoryTypes []string `json:"category_types"`
	CheckoutTypes []string `json:"checkout_types"`
	FeatureName   string   `json:"feature_name"`
	FeatureFlag   string   `json:"feature_flag"`
	Description   string   `json:"description"`
}

var ErrNotFound = errors.New("feature not found")
