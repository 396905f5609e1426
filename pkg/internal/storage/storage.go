// Package storage 聚合持久化资源：数据库客户端与附件对象存储.
//
// Example:
//
//	ctx := context.Background()
//	mgr, err := storage.Init(ctx)
//
//	dbClient := mgr.GetDBClient()
//	objects := mgr.GetObjectStore()
package storage

import (
	"context"
	"fmt"
	"sync"

	"github.com/yeisme/immovault/pkg/configs"
	dbc "github.com/yeisme/immovault/pkg/internal/storage/db"
	"github.com/yeisme/immovault/pkg/internal/storage/object"
	nlog "github.com/yeisme/immovault/pkg/log"
)

// Manager 聚合所有存储资源.
type Manager struct {
	DB      *dbc.Client
	Objects object.Store
}

var (
	mgr     *Manager
	mgrOnce sync.Once
)

// Init 初始化默认存储，使用全局配置. 重复调用只返回已初始化实例.
func Init(ctx context.Context) (*Manager, error) {
	var err error

	mgrOnce.Do(func() {
		cfg := configs.GetConfig()
		m := &Manager{}

		registerDialectors()

		// DB
		if dbi, e := dbc.New(ctx, &cfg.DB); e != nil {
			err = e

			return
		} else {
			m.DB = dbi
		}

		// 对象存储
		if store, e := newObjectStore(ctx, &cfg.Upload); e != nil {
			err = e

			return
		} else {
			m.Objects = store
		}

		mgr = m

		nlog.Logger().Info().Msg("storage manager initialized")
	})

	return mgr, err
}

// NewManager 按显式依赖构造 Manager，测试用.
func NewManager(db *dbc.Client, objects object.Store) *Manager {
	return &Manager{DB: db, Objects: objects}
}

func registerDialectors() {
	dbc.RegisterPostgresDialector()
	dbc.RegisterMySQLDialector()
	dbc.RegisterSQLiteDialector()
}

func newObjectStore(ctx context.Context, cfg *configs.UploadConfig) (object.Store, error) {
	switch cfg.Driver {
	case configs.UploadDriverS3:
		return object.NewS3Store(ctx, cfg)
	case configs.UploadDriverLocal, "":
		return object.NewLocalStore(cfg)
	default:
		return nil, fmt.Errorf("unsupported upload driver: %s", cfg.Driver)
	}
}

// GetDBClient 获取 DB 客户端.
func (m *Manager) GetDBClient() *dbc.Client {
	return m.DB
}

// GetObjectStore 获取附件对象存储.
func (m *Manager) GetObjectStore() object.Store {
	return m.Objects
}
