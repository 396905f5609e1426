// Package handle 提供 HTTP 请求处理器的实现.
package handle

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/yeisme/immovault/pkg/internal/service"
	"github.com/yeisme/immovault/pkg/log"
	"github.com/yeisme/immovault/pkg/middleware"
)

// respondError 按错误类型产出响应. 非业务错误记日志并返回通用 500.
func respondError(c *gin.Context, err error) {
	status := service.StatusOf(err)

	if status >= http.StatusInternalServerError {
		log.Logger().Error().Err(err).
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Msg("request failed")
	}

	c.JSON(status, gin.H{"error": service.MessageOf(err)})
}

// currentActor 获取认证中间件注入的请求方身份.
func currentActor(c *gin.Context) service.Actor {
	return middleware.GetActor(c)
}

// pathID 解析 path 中的数字 id.
func pathID(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || id == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid " + name})

		return 0, false
	}

	return uint(id), true
}
