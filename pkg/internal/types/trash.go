package types

import "github.com/yeisme/immovault/pkg/internal/model"

// TrashListResponse 回收站列表响应.
type TrashListResponse struct {
	Total int              `json:"total"`
	Page  int              `json:"page"`
	Size  int              `json:"size"`
	Items []model.Property `json:"items"`
}

// TrashActionResponse 回收站操作响应.
type TrashActionResponse struct {
	Affected int `json:"affected"`
}
