package router

import (
	"github.com/gin-gonic/gin"

	"github.com/yeisme/immovault/pkg/internal/handle"
	"github.com/yeisme/immovault/pkg/middleware"
)

// registerTrashRoutes 注册回收站生命周期路由. 移入回收站、恢复、列表
// 与彻底删除都是管理员动作.
func registerTrashRoutes(properties *gin.RouterGroup) {
	admin := properties.Group("", middleware.RequireAdmin())

	{
		admin.GET("/trash", handle.ListTrash)                // 回收站列表
		admin.DELETE("/:id", handle.SoftDeleteProperty)      // 移入回收站
		admin.PUT("/:id/restore", handle.RestoreProperty)    // 恢复房源
		admin.DELETE("/:id/permanent", handle.PurgeProperty) // 彻底删除
	}
}
