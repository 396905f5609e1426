package handle

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yeisme/immovault/pkg/internal/service"
	"github.com/yeisme/immovault/pkg/internal/types"
)

// ListCollaborators 列出协作者（管理员）.
func ListCollaborators(c *gin.Context) {
	svc := service.NewCollaboratorService(c.Request.Context())

	users, err := svc.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"items": users})
}

// CreateCollaborator 创建协作者（管理员）.
func CreateCollaborator(c *gin.Context) {
	var req types.CreateCollaboratorRequest
	if !bindAndValidate(c, &req) {
		return
	}

	svc := service.NewCollaboratorService(c.Request.Context())

	user, err := svc.Create(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, user)
}

// UpdateCollaborator 更新协作者（管理员）.
func UpdateCollaborator(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req types.UpdateCollaboratorRequest
	if !bindAndValidate(c, &req) {
		return
	}

	svc := service.NewCollaboratorService(c.Request.Context())

	user, err := svc.Update(c.Request.Context(), id, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, user)
}

// DeleteCollaborator 删除协作者（管理员）.
func DeleteCollaborator(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	svc := service.NewCollaboratorService(c.Request.Context())

	if err := svc.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
