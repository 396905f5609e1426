package service

import (
	"context"
	"fmt"
	"io"

	"github.com/yeisme/immovault/pkg/internal/storage/object"
	"github.com/yeisme/immovault/pkg/internal/types"
)

// UploadService 附件的独立暂存上传，供创建/更新工作流按文件名引用.
type UploadService struct{ base }

func NewUploadService(c context.Context) *UploadService {
	return &UploadService{newBase(c)}
}

// Stage 把文件写入暂存区，不产生任何数据库行.
func (s *UploadService) Stage(ctx context.Context, category, name string, r io.Reader, size int64) (*types.TempUploadResponse, error) {
	if name == "" {
		return nil, badRequest("file name is required")
	}

	st, err := s.objects.Stage(ctx, category, name, r, size)
	if err != nil {
		return nil, fmt.Errorf("stage upload %s: %w", name, err)
	}

	return &types.TempUploadResponse{Name: st.Name, Key: st.Key, Size: st.Size}, nil
}

// Discard 按暂存键丢弃未被引用的文件.
func (s *UploadService) Discard(ctx context.Context, key string) error {
	if key == "" {
		return badRequest("upload key is required")
	}

	return s.objects.Discard(ctx, &object.Staged{Key: key})
}
