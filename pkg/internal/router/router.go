// Package router 管理路由配置，将路径和处理器绑定到 gin 引擎.
package router

import (
	"github.com/gin-gonic/gin"

	"github.com/yeisme/immovault/pkg/configs"
)

// RegisterAll 注册全部业务路由. 认证路由在认证中间件的跳过列表内，
// 其余路由要求有效令牌.
func RegisterAll(e *gin.Engine, cfg *configs.AppConfig) {
	api := e.Group("/api")

	RegisterHealthCheckRoute(api)
	RegisterAuthRoutes(api)
	RegisterPropertyRoutes(api)
	RegisterUploadRoutes(api)
	RegisterCollaboratorRoutes(api)

	registerStatic(e, cfg)
}

// registerStatic 本地存储驱动时由 /uploads 静态路由提供附件访问.
func registerStatic(e *gin.Engine, cfg *configs.AppConfig) {
	if cfg.Upload.Driver == configs.UploadDriverS3 {
		return
	}

	e.Static("/uploads", cfg.Upload.Dir)
}
