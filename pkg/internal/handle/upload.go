package handle

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/yeisme/immovault/pkg/internal/model"
	"github.com/yeisme/immovault/pkg/internal/service"
	"github.com/yeisme/immovault/pkg/internal/types"
)

// StageUpload 独立暂存上传，返回的 Name 供创建/更新载荷引用.
// 接受 file 字段的单个或多个文件，category 字段可选（默认 DOCUMENT）.
func StageUpload(c *gin.Context) {
	form, err := c.MultipartForm()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid multipart form"})
		return
	}

	files := form.File["file"]
	if len(files) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "no files uploaded"})
		return
	}

	category := strings.ToUpper(c.PostForm("category"))
	if category == "" {
		category = string(model.AttachmentDocument)
	}

	svc := service.NewUploadService(c.Request.Context())

	resp := types.TempUploadBatchResponse{}

	for _, fh := range files {
		f, err := fh.Open()
		if err != nil {
			respondError(c, err)
			return
		}

		r, err := svc.Stage(c.Request.Context(), category, fh.Filename, f, fh.Size)

		_ = f.Close()

		if err != nil {
			respondError(c, err)
			return
		}

		resp.Files = append(resp.Files, *r)
	}

	c.JSON(http.StatusCreated, resp)
}

// DiscardUpload 按暂存键丢弃未被引用的文件. 键含分类前缀，
// 由通配路由参数整体接收.
func DiscardUpload(c *gin.Context) {
	key := strings.TrimPrefix(c.Param("filename"), "/")

	svc := service.NewUploadService(c.Request.Context())

	if err := svc.Discard(c.Request.Context(), key); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
