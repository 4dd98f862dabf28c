package domain

import "context"

// Service computes the features applicable to a merchant, grouped by
// payment method.
type Service interface {
	Match(ctx context.Context, mid string) (Result, error)
}

// Result maps a payment method to the features applicable through it,
// in catalog scan order.
type Result map[string][]FeatureSummary

type FeatureSummary struct {
	FeatureID     string   `json:"feature_id"`
	FeatureName   string   `json:"feature_name"`
	FeatureFlag   string   `json:"feature_flag"`
	Description   string   `json:"description"`
	CategoryTypes []string `json:"category_types"`
	CheckoutTypes []string `json:"checkout_types"`
}
