package router

import (
	"github.com/gin-gonic/gin"

	"github.com/yeisme/immovault/pkg/internal/handle"
)

// RegisterAuthRoutes 注册认证路由. 这些路径在认证中间件的跳过列表内.
func RegisterAuthRoutes(g *gin.RouterGroup) {
	authRoutes := g.Group("/auth")

	{
		authRoutes.POST("/signup", handle.Signup)
		authRoutes.POST("/login", handle.Login)
	}
}
