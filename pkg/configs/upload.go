package configs

import "github.com/spf13/viper"

type UploadDriver string

const (
	UploadDriverLocal UploadDriver = "local" // 本地磁盘存储
	UploadDriverS3    UploadDriver = "s3"    // S3 兼容对象存储
)

const (
	DefaultUploadDir     = "uploads"               // 附件根目录（对应 UPLOAD_DIR）
	DefaultUploadBaseURL = "http://localhost:8080" // 对外访问地址（对应 APP_BASE_URL）
	DefaultUploadMaxMB   = 20                      // 单文件大小上限（MB）
)

// UploadConfig 附件存储配置. Driver 为 local 时文件写入 Dir 并由
// /uploads 静态路由提供访问；为 s3 时写入对象存储桶.
type UploadConfig struct {
	Driver    UploadDriver `mapstructure:"driver"     rule:"oneof=local s3"`
	Dir       string       `mapstructure:"dir"`
	BaseURL   string       `mapstructure:"base_url"`
	MaxSizeMB int          `mapstructure:"max_size_mb" rule:"min=1"`

	// S3 驱动相关
	Endpoint  string `mapstructure:"endpoint"`
	AccessKey string `mapstructure:"access_key"`
	SecretKey string `mapstructure:"secret_key"`
	Bucket    string `mapstructure:"bucket"`
	UseSSL    bool   `mapstructure:"use_ssl"`
}

func (c *UploadConfig) setDefaults(v *viper.Viper) {
	v.SetDefault("upload.driver", UploadDriverLocal)
	v.SetDefault("upload.dir", DefaultUploadDir)
	v.SetDefault("upload.base_url", DefaultUploadBaseURL)
	v.SetDefault("upload.max_size_mb", DefaultUploadMaxMB)
	v.SetDefault("upload.bucket", "immovault")
	v.SetDefault("upload.use_ssl", true)
}
