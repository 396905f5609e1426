package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/yeisme/immovault/pkg/internal/model"
	"github.com/yeisme/immovault/pkg/internal/types"
	"github.com/yeisme/immovault/pkg/log"
	"github.com/yeisme/immovault/pkg/metrics"
)

// RetentionDays 回收站保留期，超期的房源由清扫任务彻底删除.
const RetentionDays = 30

// TrashService 房源软删除生命周期：移入回收站、恢复、彻底删除、保留期清扫.
type TrashService struct{ base }

func NewTrashService(c context.Context) *TrashService {
	return &TrashService{newBase(c)}
}

// SoftDelete 把房源移入回收站. 聚合其余部分原样保留，恢复后可完整还原.
func (s *TrashService) SoftDelete(ctx context.Context, id uint) error {
	db := s.dbClient.GetDB().WithContext(ctx)

	var property model.Property
	if err := db.First(&property, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return notFound(fmt.Sprintf("property with id %d not found", id))
		}

		return fmt.Errorf("load property: %w", err)
	}

	if err := db.Delete(&property).Error; err != nil {
		return fmt.Errorf("soft delete property: %w", err)
	}

	return nil
}

// Restore 把回收站中的房源恢复为正常状态. 未被删除的房源返回 400.
func (s *TrashService) Restore(ctx context.Context, id uint) error {
	db := s.dbClient.GetDB().WithContext(ctx)

	var property model.Property
	if err := db.Unscoped().First(&property, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return notFound(fmt.Sprintf("property with id %d not found", id))
		}

		return fmt.Errorf("load property: %w", err)
	}

	if !property.DeletedAt.Valid {
		return badRequest(fmt.Sprintf("property with id %d is not in the trash", id))
	}

	err := db.Unscoped().Model(&property).Update("deleted_at", nil).Error
	if err != nil {
		return fmt.Errorf("restore property: %w", err)
	}

	return nil
}

// ListTrash 分页列出回收站中的房源.
func (s *TrashService) ListTrash(ctx context.Context, page, size int) (*types.TrashListResponse, error) {
	page, size = clampPage(page, size)

	query := s.dbClient.GetDB().WithContext(ctx).Unscoped().
		Model(&model.Property{}).
		Where("deleted_at IS NOT NULL").
		Session(&gorm.Session{})

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, fmt.Errorf("count trashed properties: %w", err)
	}

	var items []model.Property

	err := query.
		Preload("Owner").
		Order("deleted_at DESC").
		Offset((page - 1) * size).
		Limit(size).
		Find(&items).Error
	if err != nil {
		return nil, fmt.Errorf("list trashed properties: %w", err)
	}

	return &types.TrashListResponse{
		Total: int(total),
		Page:  page,
		Size:  size,
		Items: items,
	}, nil
}

// PermanentDelete 彻底删除回收站中的房源及其整个聚合. 业主行永不级联删除.
// 存于本服务对象存储的附件在行删除提交后尽力清理.
func (s *TrashService) PermanentDelete(ctx context.Context, id uint) error {
	db := s.dbClient.GetDB().WithContext(ctx)

	var property model.Property
	if err := db.Unscoped().First(&property, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return notFound(fmt.Sprintf("property with id %d not found", id))
		}

		return fmt.Errorf("load property: %w", err)
	}

	if !property.DeletedAt.Valid {
		return badRequest(fmt.Sprintf("property with id %d is not in the trash", id))
	}

	return s.purgeOne(ctx, id)
}

// PurgeExpired 清扫在 before 之前移入回收站的房源. 单个房源清扫失败
// 记日志后继续，返回成功删除的数量.
func (s *TrashService) PurgeExpired(ctx context.Context, before time.Time) (int, error) {
	var ids []uint

	err := s.dbClient.GetDB().WithContext(ctx).Unscoped().
		Model(&model.Property{}).
		Where("deleted_at IS NOT NULL AND deleted_at < ?", before).
		Pluck("id", &ids).Error
	if err != nil {
		return 0, fmt.Errorf("list expired properties: %w", err)
	}

	purged := 0

	for _, propID := range ids {
		if err := s.purgeOne(ctx, propID); err != nil {
			log.Logger().Error().Err(err).Uint("property_id", propID).Msg("purge expired property failed")

			continue
		}

		purged++
	}

	if purged > 0 {
		metrics.SweepDeleted.Add(float64(purged))
	}

	return purged, nil
}

// purgeOne 在单个事务内删除一个房源聚合的全部行. 删除前重读 deleted_at，
// 与恢复操作并发时以数据库当前状态为准.
func (s *TrashService) purgeOne(ctx context.Context, id uint) error {
	var ownedURLs []string

	err := s.dbClient.WithTransaction(ctx, func(tx *gorm.DB) error {
		var property model.Property

		err := tx.Unscoped().First(&property, id).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil
			}

			return fmt.Errorf("load property: %w", err)
		}

		if !property.DeletedAt.Valid {
			// 清扫期间被恢复
			return nil
		}

		var attachments []model.Attachment
		if err := tx.Where("property_id = ?", id).Find(&attachments).Error; err != nil {
			return fmt.Errorf("load attachments: %w", err)
		}

		for i := range attachments {
			if s.objects.Owns(attachments[i].URL) {
				ownedURLs = append(ownedURLs, attachments[i].URL)
			}
		}

		for _, table := range []any{
			&model.ApartmentDetail{},
			&model.LandDetail{},
			&model.VillaDetail{},
			&model.CommercialDetail{},
			&model.BuildingDetail{},
			&model.Paper{},
			&model.Attachment{},
			&model.Tracking{},
		} {
			if err := tx.Where("property_id = ?", id).Delete(table).Error; err != nil {
				return fmt.Errorf("delete dependents: %w", err)
			}
		}

		if err := tx.Unscoped().Delete(&model.Property{}, id).Error; err != nil {
			return fmt.Errorf("delete property: %w", err)
		}

		return nil
	})
	if err != nil {
		return err
	}

	for _, url := range ownedURLs {
		if e := s.objects.Delete(ctx, url); e != nil {
			log.Logger().Warn().Err(e).Str("url", url).Msg("delete attachment object failed")
		}
	}

	return nil
}
