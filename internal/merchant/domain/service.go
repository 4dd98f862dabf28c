package domain

import (
	"context"
	"errors"
)

type Service interface {
	Get(ctx context.Context, mid string) (*Response, error)
	SRBooster(ctx context.Context, mid string) (*SRSummary, error)
}

type Response struct {
	MID                       string             `json:"mid"`
	MerchantName              string             `json:"merchant_name"`
	MxCategoryType            string             `json:"mx_category_type"`
	MxCheckoutType            string             `json:"mx_checkout_type"`
	MxMethods                 []string           `json:"mx_methods"`
	GMV                       float64            `json:"gmv"`
	Tier                      string             `json:"tier"`
	CurrentOverallSR          float64            `json:"current_overall_sr"`
	PredictedOverallSR        float64            `json:"predicted_overall_sr"`
	CurrentMethodSpecificSR   map[string]float64 `json:"current_method_specific_sr"`
	PredictedMethodSpecificSR map[string]float64 `json:"predicted_method_specific_sr"`
}

// SRSummary is the reduced projection served by the sr-booster view.
type SRSummary struct {
	MerchantName              string             `json:"merchant_name"`
	CurrentOverallSR          float64            `json:"current_overall_sr"`
	PredictedOverallSR        float64            `json:"predicted_overall_sr"`
	CurrentMethodSpecificSR   map[string]float64 `json:"current_method_specific_sr"`
	PredictedMethodSpecificSR map[string]float64 `json:"predicted_method_specific_sr"`
}

var ErrNotFound = errors.New("merchant not found")
