package types

// TempUploadResponse 暂存上传响应. Name 供创建/更新载荷按原始文件名引用.
type TempUploadResponse struct {
	Name string `json:"name"`
	Key  string `json:"key"`
	Size int64  `json:"size"`
}

// TempUploadBatchResponse 批量暂存上传响应.
type TempUploadBatchResponse struct {
	Files []TempUploadResponse `json:"files"`
}
