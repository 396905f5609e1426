// Package service 实现业务工作流：房源聚合的事务读写、回收站生命周期、
// 认证与协作者管理、附件暂存.
package service

import (
	"context"

	ctxPkg "github.com/yeisme/immovault/pkg/context"
	"github.com/yeisme/immovault/pkg/internal/model"
	"github.com/yeisme/immovault/pkg/internal/storage/db"
	"github.com/yeisme/immovault/pkg/internal/storage/object"
)

// Actor 请求方身份，由认证中间件解析后传入服务层.
type Actor struct {
	UserID uint
	Email  string
	Role   model.UserRole
}

// IsAdmin 判断请求方是否管理员.
func (a Actor) IsAdmin() bool {
	return a.Role == model.RoleAdmin
}

// base 持有各服务共享的存储客户端.
type base struct {
	dbClient *db.Client
	objects  object.Store
}

func newBase(c context.Context) base {
	return base{
		dbClient: ctxPkg.GetDBClient(c),
		objects:  ctxPkg.GetObjectStore(c),
	}
}
