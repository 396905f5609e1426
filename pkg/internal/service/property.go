package service

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/yeisme/immovault/pkg/internal/model"
	"github.com/yeisme/immovault/pkg/internal/storage/object"
	"github.com/yeisme/immovault/pkg/internal/types"
	"github.com/yeisme/immovault/pkg/log"
)

// PropertyService 房源聚合的事务工作流.
type PropertyService struct{ base }

func NewPropertyService(c context.Context) *PropertyService {
	return &PropertyService{newBase(c)}
}

// Create 在单个事务内构建完整房源聚合：业主、房源行、与类型匹配的明细行、
// 证件清单、附件、可选跟进行. 任一步失败整体回滚，暂存文件随之丢弃；
// 提交成功后才将暂存文件晋升到正式存储.
func (s *PropertyService) Create(ctx context.Context, actor Actor,
	req *types.CreatePropertyRequest, staged []*object.Staged,
) (*model.Property, error) {
	if !req.Type.Valid() {
		s.discardAll(ctx, staged)

		return nil, badRequest(fmt.Sprintf("unknown property type %q", req.Type))
	}

	var (
		propertyID uint
		used       map[*object.Staged]bool
	)

	err := s.dbClient.WithTransaction(ctx, func(tx *gorm.DB) error {
		ownerID, err := s.resolveOwner(tx, &req.Owner)
		if err != nil {
			return err
		}

		property := model.Property{
			Title:       req.Title,
			Description: req.Description,
			Type:        req.Type,
			Kind:        req.Kind,
			Status:      req.Status,
			SalePrice:   req.SalePrice.Ptr(),
			RentalPrice: req.RentalPrice.Ptr(),
			Address:     req.Address,
			City:        req.City,
			OwnerID:     ownerID,
			CreatedByID: actor.UserID,
		}
		if err := tx.Create(&property).Error; err != nil {
			return fmt.Errorf("create property: %w", err)
		}

		propertyID = property.ID

		if err := s.createDetail(tx, &property, req); err != nil {
			return err
		}

		for _, p := range req.Papers {
			paper := model.Paper{
				PropertyID: property.ID,
				Label:      p.Label,
				Category:   p.Category,
				Status:     paperStatusOrDefault(p.Status),
			}
			if err := tx.Create(&paper).Error; err != nil {
				return fmt.Errorf("create paper: %w", err)
			}
		}

		used, err = s.createAttachments(tx, property.ID, req.Attachments, staged)
		if err != nil {
			return err
		}

		if req.Tracking != nil {
			tracking := trackingFromPayload(property.ID, req.Tracking)
			if err := tx.Create(&tracking).Error; err != nil {
				return fmt.Errorf("create tracking: %w", err)
			}
		}

		return nil
	})
	if err != nil {
		s.discardAll(ctx, staged)

		return nil, err
	}

	// 提交成功：匹配到附件的暂存文件晋升，其余丢弃
	for _, st := range staged {
		if used[st] {
			if e := s.objects.Promote(ctx, st); e != nil {
				log.Logger().Error().Err(e).Str("key", st.Key).Msg("promote staged upload failed")
			}
		} else if e := s.objects.Discard(ctx, st); e != nil {
			log.Logger().Warn().Err(e).Str("key", st.Key).Msg("discard unused upload failed")
		}
	}

	return s.loadAggregate(ctx, propertyID)
}

// resolveOwner 新建业主或校验既有业主存在，返回业主 id.
func (s *PropertyService) resolveOwner(tx *gorm.DB, p *types.OwnerPayload) (uint, error) {
	if p.IsNewOwner {
		owner := model.Owner{
			Name:             p.Name,
			Phone:            p.Phone,
			Email:            p.Email,
			Address:          p.Address,
			IdentityDocument: p.IdentityDocument,
			PriceExpectation: p.PriceExpectation,
			PaymentTerms:     p.PaymentTerms,
		}
		if err := tx.Create(&owner).Error; err != nil {
			return 0, fmt.Errorf("create owner: %w", err)
		}

		return owner.ID, nil
	}

	var owner model.Owner
	if err := tx.First(&owner, p.OwnerID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, notFound(fmt.Sprintf("owner with id %d not found", p.OwnerID))
		}

		return 0, fmt.Errorf("load owner: %w", err)
	}

	return owner.ID, nil
}

// createDetail 按房源类型写入唯一匹配的明细行. 与类型不符或缺失的
// 明细载荷静默跳过.
func (s *PropertyService) createDetail(tx *gorm.DB, property *model.Property, req *types.CreatePropertyRequest) error {
	var (
		cols  map[string]any
		table any
	)

	switch property.Type {
	case model.TypeApartment:
		if req.DetailApartment == nil {
			return nil
		}

		cols, table = req.DetailApartment.Columns(), &model.ApartmentDetail{}
	case model.TypeLand:
		if req.DetailLand == nil {
			return nil
		}

		cols, table = req.DetailLand.Columns(), &model.LandDetail{}
	case model.TypeVilla:
		if req.DetailVilla == nil {
			return nil
		}

		cols, table = req.DetailVilla.Columns(), &model.VillaDetail{}
	case model.TypeCommercial:
		if req.DetailCommercial == nil {
			return nil
		}

		cols, table = req.DetailCommercial.Columns(), &model.CommercialDetail{}
	case model.TypeBuilding:
		if req.DetailBuilding == nil {
			return nil
		}

		cols, table = req.DetailBuilding.Columns(), &model.BuildingDetail{}
	default:
		return nil
	}

	cols["property_id"] = property.ID

	if err := tx.Model(table).Create(cols).Error; err != nil {
		return fmt.Errorf("create %s detail: %w", property.Type, err)
	}

	return nil
}

// createAttachments 写入附件行. 名称与暂存文件匹配的取存储 URL，
// 否则取显式外部链接，两者皆无的条目丢弃. 返回被引用的暂存对象集合.
func (s *PropertyService) createAttachments(tx *gorm.DB, propertyID uint,
	payloads []types.AttachmentPayload, staged []*object.Staged,
) (map[*object.Staged]bool, error) {
	byName := make(map[string]*object.Staged, len(staged))
	for _, st := range staged {
		byName[st.Name] = st
	}

	used := make(map[*object.Staged]bool)

	for _, p := range payloads {
		var url string

		if st, ok := byName[p.Name]; ok {
			url = s.objects.FinalURL(st)
			used[st] = true
		} else if p.URL != "" {
			url = p.URL
		} else {
			// 既没有匹配的上传文件也没有外部链接
			continue
		}

		att := model.Attachment{
			PropertyID: propertyID,
			Kind:       p.Kind,
			Visibility: p.Visibility,
			Name:       p.Name,
			URL:        url,
			Category:   p.Category,
		}
		if err := tx.Create(&att).Error; err != nil {
			return nil, fmt.Errorf("create attachment: %w", err)
		}
	}

	return used, nil
}

func (s *PropertyService) discardAll(ctx context.Context, staged []*object.Staged) {
	for _, st := range staged {
		if err := s.objects.Discard(ctx, st); err != nil {
			log.Logger().Warn().Err(err).Str("key", st.Key).Msg("discard staged upload failed")
		}
	}
}

// loadAggregate 读取完整聚合：房源 + 业主 + 明细 + 清单 + 附件 + 跟进.
func (s *PropertyService) loadAggregate(ctx context.Context, id uint) (*model.Property, error) {
	var property model.Property

	err := s.dbClient.GetDB().WithContext(ctx).
		Preload("Owner").
		Preload("ApartmentDetail").
		Preload("LandDetail").
		Preload("VillaDetail").
		Preload("CommercialDetail").
		Preload("BuildingDetail").
		Preload("Papers").
		Preload("Attachments").
		Preload("Tracking").
		First(&property, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFound(fmt.Sprintf("property with id %d not found", id))
		}

		return nil, err
	}

	return &property, nil
}

func paperStatusOrDefault(st model.PaperStatus) model.PaperStatus {
	if st == "" {
		return model.PaperMissing
	}

	return st
}

func trackingFromPayload(propertyID uint, p *types.TrackingPayload) model.Tracking {
	return model.Tracking{
		PropertyID:  propertyID,
		VisitStatus: p.VisitStatus,
		Priority:    p.Priority,
		Mandate:     p.Mandate,
		SheetURL:    p.SheetURL,
		AlbumURL:    p.AlbumURL,
	}
}
