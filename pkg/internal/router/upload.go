package router

import (
	"github.com/gin-gonic/gin"

	"github.com/yeisme/immovault/pkg/internal/handle"
)

// RegisterUploadRoutes 注册独立暂存上传路由. 暂存键带分类前缀，
// 删除路由用通配参数接收完整键.
func RegisterUploadRoutes(g *gin.RouterGroup) {
	upload := g.Group("/upload")

	{
		upload.POST("/temp", handle.StageUpload)
		upload.DELETE("/temp/*filename", handle.DiscardUpload)
	}
}
