package handle

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/yeisme/immovault/pkg/internal/service"
	"github.com/yeisme/immovault/pkg/internal/types"
)

// SoftDeleteProperty 把房源移入回收站.
func SoftDeleteProperty(c *gin.Context) {
	trashAction(c, func(svc *service.TrashService, id uint) error {
		return svc.SoftDelete(c.Request.Context(), id)
	})
}

// RestoreProperty 从回收站恢复房源.
func RestoreProperty(c *gin.Context) {
	trashAction(c, func(svc *service.TrashService, id uint) error {
		return svc.Restore(c.Request.Context(), id)
	})
}

// PurgeProperty 彻底删除回收站中的房源.
func PurgeProperty(c *gin.Context) {
	trashAction(c, func(svc *service.TrashService, id uint) error {
		return svc.PermanentDelete(c.Request.Context(), id)
	})
}

// ListTrash 分页列出回收站.
func ListTrash(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	size, _ := strconv.Atoi(c.DefaultQuery("size", "20"))

	svc := service.NewTrashService(c.Request.Context())

	resp, err := svc.ListTrash(c.Request.Context(), page, size)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// trashAction 抽取公共逻辑：解析 path id、调用具体动作.
func trashAction(c *gin.Context, act func(svc *service.TrashService, id uint) error) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	svc := service.NewTrashService(c.Request.Context())

	if err := act(svc, id); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, types.TrashActionResponse{Affected: 1})
}
