package domain

import "gorm.io/datatypes"

// Merchant is a business entity evaluated for success-rate improvements.
// There is no write endpoint for merchants; rows arrive via seed or
// external pipelines.
type Merchant struct {
	MID                       string                                 `gorm:"column:mid;primaryKey;type:varchar(10)"`
	MerchantName              string                                 `gorm:"type:varchar(100)"`
	MxCategoryType            string                                 `gorm:"column:mx_category_type;type:varchar(50)"`
	MxCheckoutType            string                                 `gorm:"column:mx_checkout_type;type:varchar(50)"`
	MxMethods                 datatypes.JSONSlice[string]            `gorm:"column:mx_methods"`
	GMV                       float64                                `gorm:"column:gmv"`
	Tier                      string                                 `gorm:"type:varchar(50)"`
	CurrentOverallSR          float64                                `gorm:"column:current_overall_sr"`
	PredictedOverallSR        float64                                `gorm:"column:predicted_overall_sr"`
	CurrentMethodSpecificSR   datatypes.JSONType[map[string]float64] `gorm:"column:current_method_specific_sr"`
	PredictedMethodSpecificSR datatypes.JSONType[map[string]float64] `gorm:"column:predicted_method_specific_sr"`
}

func (Merchant) TableName() string { return "merchants" }
