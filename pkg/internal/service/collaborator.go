package service

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/yeisme/immovault/pkg/internal/model"
	"github.com/yeisme/immovault/pkg/internal/types"
)

// CollaboratorService 协作者账号管理，仅管理员可调用（由路由层保证）.
type CollaboratorService struct{ base }

func NewCollaboratorService(c context.Context) *CollaboratorService {
	return &CollaboratorService{newBase(c)}
}

// List 列出全部协作者.
func (s *CollaboratorService) List(ctx context.Context) ([]model.User, error) {
	var users []model.User

	err := s.dbClient.GetDB().WithContext(ctx).
		Where("role = ?", model.RoleCollaborator).
		Order("created_at DESC").
		Find(&users).Error
	if err != nil {
		return nil, fmt.Errorf("list collaborators: %w", err)
	}

	return users, nil
}

// Create 创建协作者账号. 邮箱已占用返回 409.
func (s *CollaboratorService) Create(ctx context.Context, req *types.CreateCollaboratorRequest) (*model.User, error) {
	db := s.dbClient.GetDB().WithContext(ctx)

	var existing model.User

	err := db.Where("email = ?", req.Email).First(&existing).Error
	if err == nil {
		return nil, conflict(fmt.Sprintf("email %s is already registered", req.Email))
	}

	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("check email: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := model.User{
		Email:        req.Email,
		PasswordHash: string(hash),
		Name:         req.Name,
		Role:         model.RoleCollaborator,
	}
	if err := db.Create(&user).Error; err != nil {
		return nil, fmt.Errorf("create collaborator: %w", err)
	}

	return &user, nil
}

// Update 更新协作者资料，nil 字段不变.
func (s *CollaboratorService) Update(ctx context.Context, id uint, req *types.UpdateCollaboratorRequest) (*model.User, error) {
	db := s.dbClient.GetDB().WithContext(ctx)

	user, err := s.loadCollaborator(ctx, id)
	if err != nil {
		return nil, err
	}

	cols := map[string]any{}

	if req.Email != nil {
		cols["email"] = *req.Email
	}

	if req.Name != nil {
		cols["name"] = *req.Name
	}

	if req.Password != nil {
		hash, err := bcrypt.GenerateFromPassword([]byte(*req.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, fmt.Errorf("hash password: %w", err)
		}

		cols["password_hash"] = string(hash)
	}

	if len(cols) > 0 {
		if err := db.Model(user).Updates(cols).Error; err != nil {
			return nil, fmt.Errorf("update collaborator: %w", err)
		}
	}

	return user, nil
}

// Delete 删除协作者账号. 其创建的房源保留 CreatedByID 供审计.
func (s *CollaboratorService) Delete(ctx context.Context, id uint) error {
	user, err := s.loadCollaborator(ctx, id)
	if err != nil {
		return err
	}

	err = s.dbClient.GetDB().WithContext(ctx).Delete(user).Error
	if err != nil {
		return fmt.Errorf("delete collaborator: %w", err)
	}

	return nil
}

func (s *CollaboratorService) loadCollaborator(ctx context.Context, id uint) (*model.User, error) {
	var user model.User

	err := s.dbClient.GetDB().WithContext(ctx).
		Where("id = ? AND role = ?", id, model.RoleCollaborator).
		First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFound(fmt.Sprintf("collaborator with id %d not found", id))
		}

		return nil, fmt.Errorf("load collaborator: %w", err)
	}

	return &user, nil
}
