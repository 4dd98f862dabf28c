package domain

import "gorm.io/datatypes"

// Feature is a capability offerable to merchants. Rows are immutable
// through this API; approval requests snapshot fields from them at
// creation time.
type Feature struct {
	FeatureID     string                      `gorm:"column:feature_id;primaryKey;type:varchar(50)"`
	Method        string                      `gorm:"type:varchar(50)"`
	CategoryTypes datatypes.JSONSlice[string] `gorm:"column:category_types"`
	CheckoutTypes datatypes.JSONSlice[string] `gorm:"column:checkout_types"`
	FeatureName   string                      `gorm:"type:varchar(100)"`
	FeatureFlag   string                      `gorm:"type:varchar(50)"`
	Description   string                      `gorm:"type:varchar(255)"`
}

func (Feature) TableName() string { return "features" }
