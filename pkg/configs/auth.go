package configs

import (
	"time"

	"github.com/spf13/viper"
)

const (
	DefaultTokenTTLHours = 168 // 令牌有效期，7 天
)

// AuthConfig 控制 JWT Bearer 认证（Authorization: Bearer <token>）.
type AuthConfig struct {
	Enabled       bool     `mapstructure:"enabled"`         // 开启认证校验
	Secret        string   `mapstructure:"secret"`          // HMAC 签名密钥（对应 JWT_SECRET）
	TokenTTLHours int      `mapstructure:"token_ttl_hours"` // 令牌有效期（小时）
	SkipPaths     []string `mapstructure:"skip_paths"`      // 跳过认证的路径前缀（如 /metrics、/api/health）
}

// GetTokenTTL 返回令牌有效期作为 time.Duration.
func (c *AuthConfig) GetTokenTTL() time.Duration {
	return time.Duration(c.TokenTTLHours) * time.Hour
}

func (c *AuthConfig) setDefaults(v *viper.Viper) {
	v.SetDefault("auth.enabled", true)
	v.SetDefault("auth.token_ttl_hours", DefaultTokenTTLHours)
	v.SetDefault("auth.skip_paths", []string{
		"/metrics",
		"/api/health",
		"/api/auth",
		"/uploads",
	})
}
