package model

import "time"

// TrackingPriority 跟进优先级.
type TrackingPriority string

const (
	PriorityLow    TrackingPriority = "LOW"
	PriorityMedium TrackingPriority = "MEDIUM"
	PriorityHigh   TrackingPriority = "HIGH"
)

// Tracking 房源跟进行，每个房源最多一条.
type Tracking struct {
	ID          uint             `gorm:"primaryKey"  json:"id"`
	PropertyID  uint             `gorm:"uniqueIndex" json:"property_id"`
	VisitStatus string           `gorm:"size:64"     json:"visit_status"`
	Priority    TrackingPriority `gorm:"size:32"     json:"priority"`
	Mandate     bool             `json:"mandate"`
	SheetURL    string           `gorm:"size:1024" json:"sheet_url"`
	AlbumURL    string           `gorm:"size:1024" json:"album_url"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
