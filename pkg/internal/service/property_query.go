package service

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/yeisme/immovault/pkg/internal/model"
	"github.com/yeisme/immovault/pkg/internal/types"
)

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

// List 分页列出未删除的房源. 协作者看不到归档房源.
func (s *PropertyService) List(ctx context.Context, actor Actor, q *types.PropertyListQuery) (*types.PropertyListResponse, error) {
	page, size := clampPage(q.Page, q.Size)

	query := s.dbClient.GetDB().WithContext(ctx).Model(&model.Property{})

	if !actor.IsAdmin() {
		query = query.Where("archived = ?", false)
	}

	if q.Type != "" {
		if !q.Type.Valid() {
			return nil, badRequest(fmt.Sprintf("unknown property type %q", q.Type))
		}

		query = query.Where("type = ?", q.Type)
	}

	if q.Kind != "" {
		query = query.Where("kind = ?", q.Kind)
	}

	query = query.Session(&gorm.Session{})

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, fmt.Errorf("count properties: %w", err)
	}

	var items []model.Property

	err := query.
		Preload("Owner").
		Preload("Attachments").
		Preload("Tracking").
		Order("created_at DESC").
		Offset((page - 1) * size).
		Limit(size).
		Find(&items).Error
	if err != nil {
		return nil, fmt.Errorf("list properties: %w", err)
	}

	return &types.PropertyListResponse{
		Total: int(total),
		Page:  page,
		Size:  size,
		Items: items,
	}, nil
}

// Get 读取完整房源聚合. 归档房源对协作者返回 404.
func (s *PropertyService) Get(ctx context.Context, actor Actor, id uint) (*model.Property, error) {
	property, err := s.loadAggregate(ctx, id)
	if err != nil {
		return nil, err
	}

	if property.Archived && !actor.IsAdmin() {
		return nil, notFound(fmt.Sprintf("property with id %d not found", id))
	}

	return property, nil
}

func clampPage(page, size int) (int, int) {
	if page < 1 {
		page = 1
	}

	if size < 1 {
		size = defaultPageSize
	}

	if size > maxPageSize {
		size = maxPageSize
	}

	return page, size
}
