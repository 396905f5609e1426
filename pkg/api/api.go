// Package api 定义 HTTP 服务的接口注册入口.
package api

import (
	"github.com/gin-gonic/gin"

	"github.com/yeisme/immovault/pkg/configs"
	"github.com/yeisme/immovault/pkg/internal/router"
)

// RegisterGroup 注册业务路由到传入的 gin 引擎.
func RegisterGroup(e *gin.Engine, cfg *configs.AppConfig) *gin.Engine {
	router.RegisterAll(e, cfg)

	return e
}
