package router

import (
	"github.com/gin-gonic/gin"

	"github.com/yeisme/immovault/pkg/internal/handle"
)

// RegisterPropertyRoutes 注册房源聚合路由，回收站生命周期挂在同一组下.
func RegisterPropertyRoutes(g *gin.RouterGroup) {
	properties := g.Group("/properties")

	{
		properties.POST("", handle.CreateProperty)    // 创建房源聚合
		properties.GET("", handle.ListProperties)     // 分页列表
		properties.GET("/:id", handle.GetProperty)    // 完整聚合详情
		properties.PUT("/:id", handle.UpdateProperty) // 部分更新
	}

	registerTrashRoutes(properties)
}
