package model

// 每种房源类型对应一张明细表，PropertyID 唯一保证 1:1.
// 创建流程只会写入与 Property.Type 匹配的那一张.

// ApartmentDetail 公寓明细.
type ApartmentDetail struct {
	ID         uint     `gorm:"primaryKey"  json:"id"`
	PropertyID uint     `gorm:"uniqueIndex" json:"property_id"`
	Surface    *float64 `json:"surface"`
	Rooms      *int     `json:"rooms"`
	Bedrooms   *int     `json:"bedrooms"`
	Floor      *int     `json:"floor"`
	Elevator   *bool    `json:"elevator"`
	Balcony    *bool    `json:"balcony"`
	Parking    *bool    `json:"parking"`
}

// LandDetail 土地明细.
type LandDetail struct {
	ID          uint     `gorm:"primaryKey"  json:"id"`
	PropertyID  uint     `gorm:"uniqueIndex" json:"property_id"`
	Surface     *float64 `json:"surface"`
	Buildable   *bool    `json:"buildable"`
	Serviced    *bool    `json:"serviced"`
	ZoningPlan  *string  `gorm:"size:255" json:"zoning_plan"`
	RoadAccess  *bool    `json:"road_access"`
	FrontLength *float64 `json:"front_length"`
}

// VillaDetail 别墅明细.
type VillaDetail struct {
	ID            uint     `gorm:"primaryKey"  json:"id"`
	PropertyID    uint     `gorm:"uniqueIndex" json:"property_id"`
	Surface       *float64 `json:"surface"`
	LandSurface   *float64 `json:"land_surface"`
	Rooms         *int     `json:"rooms"`
	Floors        *int     `json:"floors"`
	Pool          *bool    `json:"pool"`
	Garden        *bool    `json:"garden"`
	Garage        *bool    `json:"garage"`
	YearBuilt     *int     `json:"year_built"`
	SecuritySetup *string  `gorm:"size:255" json:"security_setup"`
}

// CommercialDetail 商铺明细.
type CommercialDetail struct {
	ID          uint     `gorm:"primaryKey"  json:"id"`
	PropertyID  uint     `gorm:"uniqueIndex" json:"property_id"`
	Surface     *float64 `json:"surface"`
	Frontage    *float64 `json:"frontage"`
	Activity    *string  `gorm:"size:255" json:"activity"`
	Mezzanine   *bool    `json:"mezzanine"`
	WaterAccess *bool    `json:"water_access"`
}

// BuildingDetail 整栋楼明细.
type BuildingDetail struct {
	ID         uint     `gorm:"primaryKey"  json:"id"`
	PropertyID uint     `gorm:"uniqueIndex" json:"property_id"`
	Surface    *float64 `json:"surface"`
	Floors     *int     `json:"floors"`
	Units      *int     `json:"units"`
	Elevator   *bool    `json:"elevator"`
	YearBuilt  *int     `json:"year_built"`
}
