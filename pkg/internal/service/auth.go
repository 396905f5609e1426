package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/yeisme/immovault/pkg/configs"
	"github.com/yeisme/immovault/pkg/internal/model"
	"github.com/yeisme/immovault/pkg/internal/types"
)

// AuthService 用户注册、登录与令牌签发.
type AuthService struct {
	base
	auth *configs.AuthConfig
}

func NewAuthService(c context.Context, auth *configs.AuthConfig) *AuthService {
	return &AuthService{base: newBase(c), auth: auth}
}

// Claims JWT 载荷，携带用户身份与角色.
type Claims struct {
	UserID uint           `json:"uid"`
	Email  string         `json:"email"`
	Role   model.UserRole `json:"role"`
	jwt.RegisteredClaims
}

// Signup 注册新用户. 邮箱已占用返回 409. 公开注册只创建协作者账号，
// 管理员账号由部署方开通.
func (s *AuthService) Signup(ctx context.Context, req *types.SignupRequest) (*types.AuthResponse, error) {
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
		return nil, fmt.Errorf("create user: %w", err)
	}

	return s.respond(&user)
}

// Login 校验邮箱与密码并签发令牌. 凭证无效统一返回 401，不区分
// 用户不存在与密码错误.
func (s *AuthService) Login(ctx context.Context, req *types.LoginRequest) (*types.AuthResponse, error) {
	db := s.dbClient.GetDB().WithContext(ctx)

	var user model.User

	err := db.Where("email = ?", req.Email).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, unauthorized("invalid credentials")
		}

		return nil, fmt.Errorf("load user: %w", err)
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)) != nil {
		return nil, unauthorized("invalid credentials")
	}

	return s.respond(&user)
}

func (s *AuthService) respond(user *model.User) (*types.AuthResponse, error) {
	token, err := s.SignToken(user)
	if err != nil {
		return nil, err
	}

	return &types.AuthResponse{Token: token, User: *user}, nil
}

// SignToken 为用户签发 HS256 令牌.
func (s *AuthService) SignToken(user *model.User) (string, error) {
	now := time.Now()

	claims := Claims{
		UserID: user.ID,
		Email:  user.Email,
		Role:   user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   fmt.Sprintf("%d", user.ID),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.auth.GetTokenTTL())),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(s.auth.Secret))
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}

	return token, nil
}

// ParseToken 解析并校验令牌，只接受 HMAC 签名.
func ParseToken(tokenStr, secret string) (*Claims, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}

		return []byte(secret), nil
	})
	if err != nil {
		return nil, unauthorized("invalid or expired token")
	}

	if !token.Valid {
		return nil, unauthorized("invalid or expired token")
	}

	return claims, nil
}
