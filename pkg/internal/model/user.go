package model

import (
	"time"

	"gorm.io/gorm"
)

// UserRole 用户角色.
type UserRole string

const (
	RoleAdmin        UserRole = "ADMIN"
	RoleCollaborator UserRole = "COLLABORATOR"
)

// User 用户模型. 房源保留 CreatedByID 供审计，用户删除后不级联.
type User struct {
	ID           uint     `gorm:"primaryKey"              json:"id"`
	Email        string   `gorm:"size:255;uniqueIndex"    json:"email"`
	PasswordHash string   `gorm:"size:255"                json:"-"`
	Name         string   `gorm:"size:255"                json:"name"`
	Role         UserRole `gorm:"size:32;index"           json:"role"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

// IsAdmin 判断是否管理员.
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
