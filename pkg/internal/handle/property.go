package handle

import (
	"encoding/json"
	"mime/multipart"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	ctxPkg "github.com/yeisme/immovault/pkg/context"
	"github.com/yeisme/immovault/pkg/internal/model"
	"github.com/yeisme/immovault/pkg/internal/service"
	"github.com/yeisme/immovault/pkg/internal/storage/object"
	"github.com/yeisme/immovault/pkg/internal/types"
	"github.com/yeisme/immovault/pkg/log"
	"github.com/yeisme/immovault/pkg/rule"
)

// 文件字段名与附件分类的对应关系.
var fileFields = map[string]string{
	"photos":    string(model.AttachmentPhoto),
	"documents": string(model.AttachmentDocument),
}

// CreateProperty 创建房源聚合.
// multipart 请求从 data 字段取 JSON 载荷，photos/documents 字段取上传文件；
// 纯 JSON 请求直接绑定 body.
func CreateProperty(c *gin.Context) {
	var req types.CreatePropertyRequest

	staged, ok := bindWithFiles(c, &req)
	if !ok {
		return
	}

	svc := service.NewPropertyService(c.Request.Context())

	property, err := svc.Create(c.Request.Context(), currentActor(c), &req, staged)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, property)
}

// UpdateProperty 部分更新房源聚合.
func UpdateProperty(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req types.UpdatePropertyRequest

	staged, ok := bindWithFiles(c, &req)
	if !ok {
		return
	}

	svc := service.NewPropertyService(c.Request.Context())

	property, err := svc.Update(c.Request.Context(), currentActor(c), id, &req, staged)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, property)
}

// GetProperty 读取完整房源聚合.
func GetProperty(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	svc := service.NewPropertyService(c.Request.Context())

	property, err := svc.Get(c.Request.Context(), currentActor(c), id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, property)
}

// ListProperties 分页列出房源.
func ListProperties(c *gin.Context) {
	var q types.PropertyListQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	svc := service.NewPropertyService(c.Request.Context())

	resp, err := svc.List(c.Request.Context(), currentActor(c), &q)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// bindWithFiles 解析请求载荷并把随附文件写入暂存区.
// 校验或暂存失败时已写响应并丢弃已暂存的文件.
func bindWithFiles[T any](c *gin.Context, req *T) ([]*object.Staged, bool) {
	var staged []*object.Staged

	if strings.HasPrefix(c.ContentType(), "multipart/") {
		form, err := c.MultipartForm()
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid multipart form"})
			return nil, false
		}

		data := c.PostForm("data")
		if data == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "missing data field"})
			return nil, false
		}

		if err := json.Unmarshal([]byte(data), req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid data payload: " + err.Error()})
			return nil, false
		}

		staged, err = stageFormFiles(c, form)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return nil, false
		}
	} else if err := c.ShouldBindJSON(req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return nil, false
	}

	if err := rule.ValidateStruct(req); err != nil {
		discardStaged(c, staged)
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})

		return nil, false
	}

	return staged, true
}

// stageFormFiles 把 photos/documents 字段的文件写入暂存区.
func stageFormFiles(c *gin.Context, form *multipart.Form) ([]*object.Staged, error) {
	store := ctxPkg.GetObjectStore(c.Request.Context())

	var staged []*object.Staged

	for field, category := range fileFields {
		for _, fh := range form.File[field] {
			f, err := fh.Open()
			if err != nil {
				discardStaged(c, staged)
				return nil, err
			}

			st, err := store.Stage(c.Request.Context(), category, fh.Filename, f, fh.Size)

			_ = f.Close()

			if err != nil {
				discardStaged(c, staged)
				return nil, err
			}

			staged = append(staged, st)
		}
	}

	return staged, nil
}

func discardStaged(c *gin.Context, staged []*object.Staged) {
	store := ctxPkg.GetObjectStore(c.Request.Context())

	for _, st := range staged {
		if err := store.Discard(c.Request.Context(), st); err != nil {
			log.Logger().Warn().Err(err).Str("key", st.Key).Msg("discard staged upload failed")
		}
	}
}
