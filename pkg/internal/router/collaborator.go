package router

import (
	"github.com/gin-gonic/gin"

	"github.com/yeisme/immovault/pkg/internal/handle"
	"github.com/yeisme/immovault/pkg/middleware"
)

// RegisterCollaboratorRoutes 注册协作者管理路由，挂在 /admin 组下，
// 整组仅限管理员.
func RegisterCollaboratorRoutes(g *gin.RouterGroup) {
	admin := g.Group("/admin", middleware.RequireAdmin())

	collaborateurs := admin.Group("/collaborateurs")

	{
		collaborateurs.GET("", handle.ListCollaborators)
		collaborateurs.POST("", handle.CreateCollaborator)
		collaborateurs.PUT("/:id", handle.UpdateCollaborator)
		collaborateurs.DELETE("/:id", handle.DeleteCollaborator)
	}
}
