package types

import (
	"github.com/yeisme/immovault/pkg/internal/model"
)

// OwnerPayload 业主子对象：新建业主或引用已有业主二选一.
type OwnerPayload struct {
	IsNewOwner bool `json:"is_new_owner"`
	OwnerID    uint `json:"owner_id"`

	Name             string  `json:"name"`
	Phone            string  `json:"phone"`
	Email            string  `json:"email"    rule:"omitempty,email"`
	Address          string  `json:"address"`
	IdentityDocument string  `json:"identity_document"`
	PriceExpectation float64 `json:"price_expectation"`
	PaymentTerms     string  `json:"payment_terms"`
}

// OwnerUpdatePayload 更新已有业主时携带 id 与待改字段.
type OwnerUpdatePayload struct {
	ID               uint    `json:"id" rule:"required"`
	Name             *string `json:"name"`
	Phone            *string `json:"phone"`
	Email            *string `json:"email" rule:"omitempty,email"`
	Address          *string `json:"address"`
	IdentityDocument *string `json:"identity_document"`
	PriceExpectation *Float  `json:"price_expectation"`
	PaymentTerms     *string `json:"payment_terms"`
}

// PaperPayload 证件清单条目. ID 为空或以占位前缀开头表示新建.
type PaperPayload struct {
	ID       string            `json:"id"`
	Label    string            `json:"label"`
	Category string            `json:"category"`
	Status   model.PaperStatus `json:"status"`
}

// AttachmentPayload 附件描述符. Name 与上传文件原始名匹配时解析为存储 URL，
// 否则取显式 URL（外部链接），两者都没有则整条丢弃.
// 更新时携带 ID 表示仅修改已有附件的可见性/分类.
type AttachmentPayload struct {
	ID         uint                       `json:"id"`
	Kind       model.AttachmentKind       `json:"kind"`
	Visibility model.AttachmentVisibility `json:"visibility"`
	Name       string                     `json:"name"`
	URL        string                     `json:"url"`
	Category   string                     `json:"category"`
}

// TrackingPayload 跟进子对象.
type TrackingPayload struct {
	VisitStatus string                 `json:"visit_status"`
	Priority    model.TrackingPriority `json:"priority"`
	Mandate     bool                   `json:"mandate"`
	SheetURL    string                 `json:"sheet_url"`
	AlbumURL    string                 `json:"album_url"`
}

// CreatePropertyRequest 创建房源聚合的完整载荷.
// 明细子对象按类型取用：只有与 Type 匹配的那个会被写入，其余静默忽略.
type CreatePropertyRequest struct {
	Owner OwnerPayload `json:"owner" rule:"required"`

	Title       string                `json:"title" rule:"required"`
	Description string                `json:"description"`
	Type        model.PropertyType    `json:"type" rule:"required"`
	Kind        model.TransactionKind `json:"kind"`
	Status      string                `json:"status"`
	SalePrice   *Float                `json:"sale_price"`
	RentalPrice *Float                `json:"rental_price"`
	Address     string                `json:"address"`
	City        string                `json:"city"`

	DetailApartment  *ApartmentDetailPayload  `json:"detail_apartment"`
	DetailLand       *LandDetailPayload       `json:"detail_land"`
	DetailVilla      *VillaDetailPayload      `json:"detail_villa"`
	DetailCommercial *CommercialDetailPayload `json:"detail_commercial"`
	DetailBuilding   *BuildingDetailPayload   `json:"detail_building"`

	Papers      []PaperPayload      `json:"papers"`
	Attachments []AttachmentPayload `json:"attachments"`
	Tracking    *TrackingPayload    `json:"tracking"`
}

// UpdatePropertyRequest 部分更新载荷，nil 字段保持原值.
type UpdatePropertyRequest struct {
	Title       *string                `json:"title"`
	Description *string                `json:"description"`
	Status      *string                `json:"status"`
	Kind        *model.TransactionKind `json:"kind"`
	SalePrice   *Float                 `json:"sale_price"`
	RentalPrice *Float                 `json:"rental_price"`
	Address     *string                `json:"address"`
	City        *string                `json:"city"`
	// 归档标记仅管理员可改，协作者试图改动直接 403
	Archived *bool `json:"archived"`

	Owner *OwnerUpdatePayload `json:"owner"`

	DetailApartment  *ApartmentDetailPayload  `json:"detail_apartment"`
	DetailLand       *LandDetailPayload       `json:"detail_land"`
	DetailVilla      *VillaDetailPayload      `json:"detail_villa"`
	DetailCommercial *CommercialDetailPayload `json:"detail_commercial"`
	DetailBuilding   *BuildingDetailPayload   `json:"detail_building"`

	// Papers 为 nil 表示不做清单对账；非 nil（包括空切片）触发完整对账
	Papers []PaperPayload `json:"papers"`

	Attachments         []AttachmentPayload `json:"attachments"`
	DeleteAttachmentIDs []uint              `json:"delete_attachment_ids"`

	Tracking *TrackingPayload `json:"tracking"`
}

// PropertyListQuery 列表查询参数.
type PropertyListQuery struct {
	Page int                `form:"page"`
	Size int                `form:"size"`
	Type model.PropertyType `form:"type"`
	Kind string             `form:"kind"`
}

// PropertyListResponse 列表响应.
type PropertyListResponse struct {
	Total int              `json:"total"`
	Page  int              `json:"page"`
	Size  int              `json:"size"`
	Items []model.Property `json:"items"`
}
