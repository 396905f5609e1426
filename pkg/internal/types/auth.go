package types

import "github.com/yeisme/immovault/pkg/internal/model"

// SignupRequest 注册请求. 不接受角色字段，公开注册一律创建协作者账号.
type SignupRequest struct {
	Email    string `json:"email"    rule:"required,email"`
	Password string `json:"password" rule:"required,min=8"`
	Name     string `json:"name"     rule:"required"`
}

// LoginRequest 登录请求.
type LoginRequest struct {
	Email    string `json:"email"    rule:"required,email"`
	Password string `json:"password" rule:"required"`
}

// AuthResponse 认证响应，返回令牌与用户信息.
type AuthResponse struct {
	Token string     `json:"token"`
	User  model.User `json:"user"`
}
