package types

// CreateCollaboratorRequest 创建协作者请求（管理员）.
type CreateCollaboratorRequest struct {
	Email    string `json:"email"    rule:"required,email"`
	Password string `json:"password" rule:"required,min=8"`
	Name     string `json:"name"     rule:"required"`
}

// UpdateCollaboratorRequest 更新协作者请求，nil 字段不变.
type UpdateCollaboratorRequest struct {
	Email    *string `json:"email" rule:"omitempty,email"`
	Password *string `json:"password" rule:"omitempty,min=8"`
	Name     *string `json:"name"`
}
