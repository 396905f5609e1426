package model

import "time"

// Owner 业主模型. 多个房源可引用同一业主；删除房源不删除业主.
type Owner struct {
	ID               uint   `gorm:"primaryKey" json:"id"`
	Name             string `gorm:"size:255"   json:"name"`
	Phone            string `gorm:"size:64"    json:"phone"`
	Email            string `gorm:"size:255"   json:"email"`
	Address          string `gorm:"size:512"   json:"address"`
	IdentityDocument string `gorm:"size:255"   json:"identity_document"`
	// 价格与付款偏好
	PriceExpectation float64 `json:"price_expectation"`
	PaymentTerms     string  `gorm:"size:255" json:"payment_terms"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
