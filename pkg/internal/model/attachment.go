package model

import "time"

// AttachmentKind 附件种类.
type AttachmentKind string

const (
	AttachmentPhoto    AttachmentKind = "PHOTO"
	AttachmentDocument AttachmentKind = "DOCUMENT"
	AttachmentLocation AttachmentKind = "LOCATION"
)

// AttachmentVisibility 附件可见性.
type AttachmentVisibility string

const (
	VisibilityPublishable AttachmentVisibility = "PUBLISHABLE"
	VisibilityInternal    AttachmentVisibility = "INTERNAL"
)

// Attachment 附件：上传的文件或外部链接. URL 要么指向本服务的对象
// 存储（本地 /uploads/ 路径或 S3 对象 URL），要么是外部链接原样保存.
// 是否属于本服务存储由存储驱动判断.
type Attachment struct {
	ID         uint                 `gorm:"primaryKey" json:"id"`
	PropertyID uint                 `gorm:"index"      json:"property_id"`
	Kind       AttachmentKind       `gorm:"size:32"    json:"kind"`
	Visibility AttachmentVisibility `gorm:"size:32"    json:"visibility"`
	Name       string               `gorm:"size:512"   json:"name"`
	URL        string               `gorm:"size:1024"  json:"url"`
	// 关联证件清单的分类（可选）
	Category string `gorm:"size:128" json:"category"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
