// Package domain contains persistence models for feature approval requests.
package domain

// RequestStatus represents lifecycle states for an approval request.
// pending is the initial state; approved and rejected are terminal.
type RequestStatus string

const (
	RequestStatusPending  RequestStatus = "pending"
	RequestStatusApproved RequestStatus = "approved"
	RequestStatusRejected RequestStatus = "rejected"
)

// Request is a merchant's application to enable a feature. The method,
// feature_name and feature_flag columns are snapshots taken from the
// feature at creation time and are intentionally decoupled from any
// later edit of the source row.
type Request struct {
	RequestID     string        `gorm:"column:request_id;primaryKey;type:varchar(50)"`
	MID           string        `gorm:"column:mid;index;type:varchar(10)"`
	FeatureID     string        `gorm:"column:feature_id;index;type:varchar(50)"`
	Method        string        `gorm:"type:varchar(50)"`
	FeatureName   string        `gorm:"type:varchar(100)"`
	FeatureFlag   string        `gorm:"type:varchar(50)"`
	Status        RequestStatus `gorm:"type:varchar(20);not null"`
	CreatedAt     int64         `gorm:"autoCreateTime:false"`
	UpdatedAt     int64         `gorm:"autoUpdateTime:false"`
	PricingConfig string        `gorm:"type:text"`
}

func (Request) TableName() string { return "requests" }
