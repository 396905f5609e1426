// Package configs 管理应用程序配置，包括数据库、上传存储和认证的配置信息.
// configs 包支持多种配置格式（YAML、JSON、TOML、dotenv）并启用热重载.
//
// Example:
//
//	err := configs.InitConfig("./")
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	config := configs.GetConfig()
//	fmt.Println(config.Server.Port)
package configs

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
)

type (
	// AppConfig 全局应用程序配置.
	AppConfig struct {
		DB        DBConfig        `mapstructure:"db"`        // DBConfig 数据库配置
		Upload    UploadConfig    `mapstructure:"upload"`    // UploadConfig 附件对象存储配置
		Auth      AuthConfig      `mapstructure:"auth"`      // AuthConfig JWT 认证配置
		Server    ServerConfig    `mapstructure:"server"`    // ServerConfig 其它服务器配置，日志级别、服务器端口等
		Log       LogConfig       `mapstructure:"log"`       // LogConfig 日志相关配置
		Metrics   MetricsConfig   `mapstructure:"metrics"`   // MetricsConfig 指标配置
		RateLimit RateLimitConfig `mapstructure:"ratelimit"` // RateLimitConfig 限流配置
	}
)

var (
	// globalConfig 全局配置实例.
	globalConfig AppConfig
	// appViper 全局 Viper 实例.
	appViper *viper.Viper
)

// InitConfig 加载应用程序配置，支持多种格式(yaml、json、toml、dotenv)并启用热重载.
// 部署环境变量（DATABASE_URL、JWT_SECRET、UPLOAD_DIR、APP_BASE_URL、PORT）
// 会覆盖配置文件中的对应项.
func InitConfig(path string) error {
	appViper = viper.New()
	// 设置默认值
	setAllDefaults(appViper)

	// 检查path是否是文件
	if info, err := os.Stat(path); err == nil && !info.IsDir() {
		// 是文件，使用SetConfigFile，Viper会自动检测类型
		appViper.SetConfigFile(path)
	} else {
		// 是目录，设置配置名和路径
		appViper.SetConfigName("config")
		appViper.AddConfigPath(path)
		appViper.AddConfigPath(path + "/configs")

		exts := []string{"yaml", "yml", "json", "toml", "env", "dotenv"}

		for _, ext := range exts {
			cfg := filepath.Join(path, "config."+ext)
			if _, err := os.Stat(cfg); err == nil {
				appViper.SetConfigFile(cfg)

				break
			}
		}
	}

	appViper.AutomaticEnv()
	appViper.SetEnvPrefix("IMMOVAULT")

	bindDeployEnv(appViper)

	// 读取配置，缺少配置文件时允许仅靠环境变量运行
	if err := appViper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok && !os.IsNotExist(err) {
			return fmt.Errorf("failed to read config: %w", err)
		}
	}

	// 仅靠环境变量运行时 DATABASE_URL 必填，缺失直接失败而不是
	// 连向默认的本地数据库
	if appViper.ConfigFileUsed() == "" && appViper.GetString("db.url") == "" {
		return fmt.Errorf("DATABASE_URL is required when no config file is present")
	}

	// 解析到全局配置
	if err := appViper.Unmarshal(&globalConfig); err != nil {
		return fmt.Errorf("failed to unmarshal config: %w", err)
	}

	reloadConfigs(appViper, globalConfig.Server.ReloadConfig)

	return nil
}

// bindDeployEnv 绑定无前缀的部署环境变量.
func bindDeployEnv(v *viper.Viper) {
	_ = v.BindEnv("db.url", "DATABASE_URL")
	_ = v.BindEnv("auth.secret", "JWT_SECRET")
	_ = v.BindEnv("upload.dir", "UPLOAD_DIR")
	_ = v.BindEnv("upload.base_url", "APP_BASE_URL")
	_ = v.BindEnv("server.port", "PORT")
}

// setAllDefaults 设置所有配置的默认值.
func setAllDefaults(v *viper.Viper) {
	var serverConfig ServerConfig

	var dbConfig DBConfig

	var uploadConfig UploadConfig

	var authConfig AuthConfig

	var logConfig LogConfig

	var metricsConfig MetricsConfig

	var rateLimitConfig RateLimitConfig

	serverConfig.setDefaults(v)
	dbConfig.setDefaults(v)
	uploadConfig.setDefaults(v)
	authConfig.setDefaults(v)
	logConfig.setDefaults(v)
	metricsConfig.setDefaults(v)
	rateLimitConfig.setDefaults(v)
}

func reloadConfigs(v *viper.Viper, isHotReload bool) {
	if !isHotReload {
		return
	}
	// 启用配置热重载
	v.OnConfigChange(func(e fsnotify.Event) {
		fmt.Println("Config file changed:", e.Name)
		fmt.Println("Reloading configuration...")

		if err := v.Unmarshal(&globalConfig); err != nil {
			fmt.Printf("Error reloading config: %v\n", err)
		}
	})
	v.WatchConfig()
}

// GetConfig 返回全局配置实例.
func GetConfig() *AppConfig {
	return &globalConfig
}

func GetViper() *viper.Viper {
	return appViper
}
