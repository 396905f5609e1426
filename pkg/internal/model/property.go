package model

import (
	"time"

	"gorm.io/gorm"
)

// PropertyType 房源类型.
type PropertyType string

const (
	TypeApartment  PropertyType = "APARTMENT"
	TypeLand       PropertyType = "LAND"
	TypeVilla      PropertyType = "VILLA"
	TypeCommercial PropertyType = "COMMERCIAL"
	TypeBuilding   PropertyType = "BUILDING"
)

// Valid 判断房源类型是否为已知枚举值.
func (t PropertyType) Valid() bool {
	switch t {
	case TypeApartment, TypeLand, TypeVilla, TypeCommercial, TypeBuilding:
		return true
	default:
		return false
	}
}

// TransactionKind 交易方式.
type TransactionKind string

const (
	KindSale   TransactionKind = "SALE"
	KindRental TransactionKind = "RENTAL"
)

// Property 房源模型. 一个房源聚合 = 房源行 + 最多一条与类型匹配的明细行
// + 附件 + 证件清单 + 最多一条跟进行，作为一个一致性单元读写.
type Property struct {
	ID          uint            `gorm:"primaryKey"     json:"id"`
	Title       string          `gorm:"size:255;index" json:"title"`
	Description string          `gorm:"type:text"      json:"description"`
	Type        PropertyType    `gorm:"size:32;index"  json:"type"`
	Kind        TransactionKind `gorm:"size:32;index"  json:"kind"`
	Status      string          `gorm:"size:64"        json:"status"`
	SalePrice   *float64        `json:"sale_price"`
	RentalPrice *float64        `json:"rental_price"`
	Address     string          `gorm:"size:512" json:"address"`
	City        string          `gorm:"size:255" json:"city"`
	// 归档的房源对协作者完全不可见
	Archived bool `gorm:"index" json:"archived"`

	OwnerID uint   `gorm:"index" json:"owner_id"`
	Owner   *Owner `json:"owner,omitempty"`
	// 创建者引用在房源删除后保留，供审计
	CreatedByID uint  `gorm:"index" json:"created_by_id"`
	CreatedBy   *User `json:"created_by,omitempty"`

	ApartmentDetail  *ApartmentDetail  `json:"apartment_detail,omitempty"`
	LandDetail       *LandDetail       `json:"land_detail,omitempty"`
	VillaDetail      *VillaDetail      `json:"villa_detail,omitempty"`
	CommercialDetail *CommercialDetail `json:"commercial_detail,omitempty"`
	BuildingDetail   *BuildingDetail   `json:"building_detail,omitempty"`

	Papers      []Paper      `json:"papers,omitempty"`
	Attachments []Attachment `json:"attachments,omitempty"`
	Tracking    *Tracking    `json:"tracking,omitempty"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`
}
