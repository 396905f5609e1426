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

// Update 在单个事务内部分更新房源聚合：核心字段、业主、明细、清单对账、
// 附件增删、跟进. nil 字段保持原值. 事务提交后才晋升暂存文件、
// 删除被移除附件的存储对象.
func (s *PropertyService) Update(ctx context.Context, actor Actor, id uint,
	req *types.UpdatePropertyRequest, staged []*object.Staged,
) (*model.Property, error) {
	var property model.Property

	err := s.dbClient.GetDB().WithContext(ctx).First(&property, id).Error
	if err != nil {
		s.discardAll(ctx, staged)

		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFound(fmt.Sprintf("property with id %d not found", id))
		}

		return nil, err
	}

	if !actor.IsAdmin() {
		// 归档房源对协作者不可见，等同不存在
		if property.Archived {
			s.discardAll(ctx, staged)

			return nil, notFound(fmt.Sprintf("property with id %d not found", id))
		}

		// 归档标记改动在任何写入发生前拒绝
		if req.Archived != nil && *req.Archived != property.Archived {
			s.discardAll(ctx, staged)

			return nil, forbidden("only admins can change the archived flag")
		}
	}

	var (
		used       map[*object.Staged]bool
		removeURLs []string
	)

	err = s.dbClient.WithTransaction(ctx, func(tx *gorm.DB) error {
		if err := s.updateCore(tx, &property, req, actor); err != nil {
			return err
		}

		if req.Owner != nil {
			if err := s.updateOwner(tx, req.Owner); err != nil {
				return err
			}
		}

		if err := s.upsertDetail(tx, &property, req); err != nil {
			return err
		}

		if req.Papers != nil {
			if err := s.applyPaperChanges(tx, property.ID, req.Papers); err != nil {
				return err
			}
		}

		removeURLs, err = s.deleteAttachments(tx, property.ID, req.DeleteAttachmentIDs)
		if err != nil {
			return err
		}

		used, err = s.applyAttachments(tx, property.ID, req.Attachments, staged)
		if err != nil {
			return err
		}

		if req.Tracking != nil {
			if err := s.upsertTracking(tx, property.ID, req.Tracking); err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		s.discardAll(ctx, staged)

		return nil, err
	}

	for _, st := range staged {
		if used[st] {
			if e := s.objects.Promote(ctx, st); e != nil {
				log.Logger().Error().Err(e).Str("key", st.Key).Msg("promote staged upload failed")
			}
		} else if e := s.objects.Discard(ctx, st); e != nil {
			log.Logger().Warn().Err(e).Str("key", st.Key).Msg("discard unused upload failed")
		}
	}

	// 行已删除，对象删除失败只留日志
	for _, url := range removeURLs {
		if e := s.objects.Delete(ctx, url); e != nil {
			log.Logger().Warn().Err(e).Str("url", url).Msg("delete attachment object failed")
		}
	}

	return s.loadAggregate(ctx, id)
}

// updateCore 更新房源行的标量字段，只写入非 nil 的列.
func (s *PropertyService) updateCore(tx *gorm.DB, property *model.Property,
	req *types.UpdatePropertyRequest, actor Actor,
) error {
	cols := map[string]any{}

	if req.Title != nil {
		cols["title"] = *req.Title
	}

	if req.Description != nil {
		cols["description"] = *req.Description
	}

	if req.Status != nil {
		cols["status"] = *req.Status
	}

	if req.Kind != nil {
		cols["kind"] = *req.Kind
	}

	if req.SalePrice != nil {
		cols["sale_price"] = float64(*req.SalePrice)
	}

	if req.RentalPrice != nil {
		cols["rental_price"] = float64(*req.RentalPrice)
	}

	if req.Address != nil {
		cols["address"] = *req.Address
	}

	if req.City != nil {
		cols["city"] = *req.City
	}

	if req.Archived != nil && actor.IsAdmin() {
		cols["archived"] = *req.Archived
	}

	if len(cols) == 0 {
		return nil
	}

	if err := tx.Model(property).Updates(cols).Error; err != nil {
		return fmt.Errorf("update property: %w", err)
	}

	return nil
}

// updateOwner 更新既有业主的非 nil 字段. 业主独立于房源存在，
// 这里永远不改房源与业主的关联.
func (s *PropertyService) updateOwner(tx *gorm.DB, p *types.OwnerUpdatePayload) error {
	var owner model.Owner
	if err := tx.First(&owner, p.ID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return notFound(fmt.Sprintf("owner with id %d not found", p.ID))
		}

		return fmt.Errorf("load owner: %w", err)
	}

	cols := map[string]any{}

	if p.Name != nil {
		cols["name"] = *p.Name
	}

	if p.Phone != nil {
		cols["phone"] = *p.Phone
	}

	if p.Email != nil {
		cols["email"] = *p.Email
	}

	if p.Address != nil {
		cols["address"] = *p.Address
	}

	if p.IdentityDocument != nil {
		cols["identity_document"] = *p.IdentityDocument
	}

	if p.PriceExpectation != nil {
		cols["price_expectation"] = float64(*p.PriceExpectation)
	}

	if p.PaymentTerms != nil {
		cols["payment_terms"] = *p.PaymentTerms
	}

	if len(cols) == 0 {
		return nil
	}

	if err := tx.Model(&owner).Updates(cols).Error; err != nil {
		return fmt.Errorf("update owner: %w", err)
	}

	return nil
}

// upsertDetail 更新与房源类型匹配的明细行. 明细行不存在且载荷带有
// surface 时补建，否则只更新已有行的非 nil 列. 与类型不符的明细
// 载荷静默忽略.
func (s *PropertyService) upsertDetail(tx *gorm.DB, property *model.Property, req *types.UpdatePropertyRequest) error {
	var (
		cols       map[string]any
		hasSurface bool
		table      any
	)

	switch property.Type {
	case model.TypeApartment:
		if req.DetailApartment == nil {
			return nil
		}

		cols, hasSurface, table = req.DetailApartment.Columns(), req.DetailApartment.HasSurface(), &model.ApartmentDetail{}
	case model.TypeLand:
		if req.DetailLand == nil {
			return nil
		}

		cols, hasSurface, table = req.DetailLand.Columns(), req.DetailLand.HasSurface(), &model.LandDetail{}
	case model.TypeVilla:
		if req.DetailVilla == nil {
			return nil
		}

		cols, hasSurface, table = req.DetailVilla.Columns(), req.DetailVilla.HasSurface(), &model.VillaDetail{}
	case model.TypeCommercial:
		if req.DetailCommercial == nil {
			return nil
		}

		cols, hasSurface, table = req.DetailCommercial.Columns(), req.DetailCommercial.HasSurface(), &model.CommercialDetail{}
	case model.TypeBuilding:
		if req.DetailBuilding == nil {
			return nil
		}

		cols, hasSurface, table = req.DetailBuilding.Columns(), req.DetailBuilding.HasSurface(), &model.BuildingDetail{}
	default:
		return nil
	}

	if len(cols) == 0 {
		return nil
	}

	var count int64
	if err := tx.Model(table).Where("property_id = ?", property.ID).Count(&count).Error; err != nil {
		return fmt.Errorf("count %s detail: %w", property.Type, err)
	}

	if count == 0 {
		// 没有可补建依据的部分载荷不落库
		if !hasSurface {
			return nil
		}

		cols["property_id"] = property.ID

		if err := tx.Model(table).Create(cols).Error; err != nil {
			return fmt.Errorf("create %s detail: %w", property.Type, err)
		}

		return nil
	}

	if err := tx.Model(table).Where("property_id = ?", property.ID).Updates(cols).Error; err != nil {
		return fmt.Errorf("update %s detail: %w", property.Type, err)
	}

	return nil
}

// applyPaperChanges 以期望清单为准对账并落库.
func (s *PropertyService) applyPaperChanges(tx *gorm.DB, propertyID uint, desired []types.PaperPayload) error {
	var existing []model.Paper
	if err := tx.Where("property_id = ?", propertyID).Find(&existing).Error; err != nil {
		return fmt.Errorf("load papers: %w", err)
	}

	changes := ReconcilePapers(propertyID, existing, desired)

	for i := range changes.Create {
		if err := tx.Create(&changes.Create[i]).Error; err != nil {
			return fmt.Errorf("create paper: %w", err)
		}
	}

	for _, p := range changes.Update {
		cols := map[string]any{
			"label":    p.Label,
			"category": p.Category,
			"status":   p.Status,
		}
		if err := tx.Model(&model.Paper{}).Where("id = ?", p.ID).Updates(cols).Error; err != nil {
			return fmt.Errorf("update paper %d: %w", p.ID, err)
		}
	}

	if len(changes.DeleteIDs) > 0 {
		err := tx.Where("property_id = ? AND id IN ?", propertyID, changes.DeleteIDs).
			Delete(&model.Paper{}).Error
		if err != nil {
			return fmt.Errorf("delete papers: %w", err)
		}
	}

	return nil
}

// deleteAttachments 删除指定附件行，返回存于本服务对象存储的附件 URL
// 供提交后清理对象. 不属于该房源或已不存在的 id 记日志后跳过.
func (s *PropertyService) deleteAttachments(tx *gorm.DB, propertyID uint, ids []uint) ([]string, error) {
	var urls []string

	for _, attID := range ids {
		var att model.Attachment

		err := tx.Where("id = ? AND property_id = ?", attID, propertyID).First(&att).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				log.Logger().Warn().Uint("attachment_id", attID).Uint("property_id", propertyID).
					Msg("attachment to delete not found, skipped")

				continue
			}

			return nil, fmt.Errorf("load attachment %d: %w", attID, err)
		}

		if err := tx.Delete(&att).Error; err != nil {
			return nil, fmt.Errorf("delete attachment %d: %w", attID, err)
		}

		if s.objects.Owns(att.URL) {
			urls = append(urls, att.URL)
		}
	}

	return urls, nil
}

// applyAttachments 处理更新载荷中的附件描述符：带 ID 的只改可见性与分类，
// 不带 ID 的按创建逻辑匹配暂存文件或外部链接新建.
func (s *PropertyService) applyAttachments(tx *gorm.DB, propertyID uint,
	payloads []types.AttachmentPayload, staged []*object.Staged,
) (map[*object.Staged]bool, error) {
	var creates []types.AttachmentPayload

	for _, p := range payloads {
		if p.ID == 0 {
			creates = append(creates, p)

			continue
		}

		cols := map[string]any{
			"visibility": p.Visibility,
			"category":   p.Category,
		}

		err := tx.Model(&model.Attachment{}).
			Where("id = ? AND property_id = ?", p.ID, propertyID).
			Updates(cols).Error
		if err != nil {
			return nil, fmt.Errorf("update attachment %d: %w", p.ID, err)
		}
	}

	return s.createAttachments(tx, propertyID, creates, staged)
}

// upsertTracking 更新跟进行，不存在则补建.
func (s *PropertyService) upsertTracking(tx *gorm.DB, propertyID uint, p *types.TrackingPayload) error {
	var tracking model.Tracking

	err := tx.Where("property_id = ?", propertyID).First(&tracking).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		tracking = trackingFromPayload(propertyID, p)

		if err := tx.Create(&tracking).Error; err != nil {
			return fmt.Errorf("create tracking: %w", err)
		}

		return nil
	}

	if err != nil {
		return fmt.Errorf("load tracking: %w", err)
	}

	cols := map[string]any{
		"visit_status": p.VisitStatus,
		"priority":     p.Priority,
		"mandate":      p.Mandate,
		"sheet_url":    p.SheetURL,
		"album_url":    p.AlbumURL,
	}

	if err := tx.Model(&tracking).Updates(cols).Error; err != nil {
		return fmt.Errorf("update tracking: %w", err)
	}

	return nil
}
