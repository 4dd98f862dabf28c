// Package seed bootstraps a demo catalog so the service is explorable
// immediately after first start. Seeding is idempotent: existing rows
// are never overwritten.
package seed

import (
	"context"
	"errors"

	featuredomain "github.com/paylift/srbooster/internal/feature/domain"
	merchantdomain "github.com/paylift/srbooster/internal/merchant/domain"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

func demoFeatures() []featuredomain.Feature {
	return []featuredomain.Feature{
		{
			FeatureID:     "upi_intent_retry",
			Method:        "upi",
			CategoryTypes: datatypes.NewJSONSlice([]string{"ecommerce", "food_delivery"}),
			CheckoutTypes: datatypes.NewJSONSlice([]string{"standard", "custom"}),
			FeatureName:   "UPI Intent Retry",
			FeatureFlag:   "upi_intent_retry_enabled",
			Description:   "Retries failed UPI intent flows on a fallback PSP",
		},
		{
			FeatureID:     "card_smart_routing",
			Method:        "card",
			CategoryTypes: datatypes.NewJSONSlice([]string{"ecommerce", "travel"}),
			CheckoutTypes: datatypes.NewJSONSlice([]string{"standard"}),
			FeatureName:   "Card Smart Routing",
			FeatureFlag:   "card_smart_routing_enabled",
			Description:   "Routes card transactions to the acquirer with the best recent SR",
		},
		{
			FeatureID:     "netbanking_downtime_mask",
			Method:        "netbanking",
			CategoryTypes: datatypes.NewJSONSlice([]string{"travel", "utilities"}),
			CheckoutTypes: datatypes.NewJSONSlice([]string{"standard", "custom"}),
			FeatureName:   "Netbanking Downtime Masking",
			FeatureFlag:   "nb_downtime_mask_enabled",
			Description:   "Hides banks with active downtime from the checkout list",
		},
		{
			FeatureID:     "wallet_auto_topup",
			Method:        "wallet",
			CategoryTypes: datatypes.NewJSONSlice([]string{"food_delivery"}),
			CheckoutTypes: datatypes.NewJSONSlice([]string{"custom"}),
			FeatureName:   "Wallet Auto Top-up",
			FeatureFlag:   "wallet_auto_topup_enabled",
			Description:   "Tops up wallets inline when balance is short at checkout",
		},
	}
}

func demoMerchants() []merchantdomain.Merchant {
	return []merchantdomain.Merchant{
		{
			MID:                "MID0001",
			MerchantName:       "Brightcart",
			MxCategoryType:     "ecommerce",
			MxCheckoutType:     "standard",
			MxMethods:          datatypes.NewJSONSlice([]string{"upi", "card"}),
			GMV:                1250000,
			Tier:               "enterprise",
			CurrentOverallSR:   91.2,
			PredictedOverallSR: 94.8,
			CurrentMethodSpecificSR: datatypes.NewJSONType(map[string]float64{
				"upi": 92.5, "card": 89.1,
			}),
			PredictedMethodSpecificSR: datatypes.NewJSONType(map[string]float64{
				"upi": 95.4, "card": 93.0,
			}),
		},
		{
			MID:                "MID0002",
			MerchantName:       "Swift Eats",
			MxCategoryType:     "food_delivery",
			MxCheckoutType:     "custom",
			MxMethods:          datatypes.NewJSONSlice([]string{"upi", "wallet"}),
			GMV:                430000,
			Tier:               "growth",
			CurrentOverallSR:   88.7,
			PredictedOverallSR: 92.3,
			CurrentMethodSpecificSR: datatypes.NewJSONType(map[string]float64{
				"upi": 90.2, "wallet": 85.9,
			}),
			PredictedMethodSpecificSR: datatypes.NewJSONType(map[string]float64{
				"upi": 93.8, "wallet": 90.1,
			}),
		},
		{
			MID:                "MID0003",
			MerchantName:       "Horizon Travel",
			MxCategoryType:     "travel",
			MxCheckoutType:     "standard",
			MxMethods:          datatypes.NewJSONSlice([]string{"card", "netbanking"}),
			GMV:                2780000,
			Tier:               "enterprise",
			CurrentOverallSR:   86.4,
			PredictedOverallSR: 90.9,
			CurrentMethodSpecificSR: datatypes.NewJSONType(map[string]float64{
				"card": 87.3, "netbanking": 84.8,
			}),
			PredictedMethodSpecificSR: datatypes.NewJSONType(map[string]float64{
				"card": 91.6, "netbanking": 89.5,
			}),
		},
	}
}

// EnsureCatalog inserts the demo features and merchants if missing.
func EnsureCatalog(db *gorm.DB) error {
	if db == nil {
		return errors.New("seed database handle is required")
	}

	ctx := context.Background()
	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		features := demoFeatures()
		if err := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&features).Error; err != nil {
			return err
		}

		merchants := demoMerchants()
		return tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&merchants).Error
	})
}
