package model

import "gorm.io/gorm"

// All 返回全部模型，迁移时按依赖顺序排列.
func All() []any {
	return []any{
		&User{},
		&Owner{},
		&Property{},
		&ApartmentDetail{},
		&LandDetail{},
		&VillaDetail{},
		&CommercialDetail{},
		&BuildingDetail{},
		&Paper{},
		&Attachment{},
		&Tracking{},
	}
}

// AutoMigrate 执行全量建表/变更.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(All()...)
}
