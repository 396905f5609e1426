package model

import "time"

// PaperStatus 证件状态.
type PaperStatus string

const (
	PaperAvailable  PaperStatus = "AVAILABLE"
	PaperMissing    PaperStatus = "MISSING"
	PaperInProgress PaperStatus = "IN_PROGRESS"
)

// Paper 证件清单条目，记录法律文件的在位状态，不保存文件本身.
type Paper struct {
	ID         uint        `gorm:"primaryKey" json:"id"`
	PropertyID uint        `gorm:"index"      json:"property_id"`
	Label      string      `gorm:"size:255"   json:"label"`
	Category   string      `gorm:"size:128"   json:"category"`
	Status     PaperStatus `gorm:"size:32"    json:"status"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
