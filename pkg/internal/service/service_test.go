package service

import (
	"context"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/yeisme/immovault/pkg/configs"
	ctxPkg "github.com/yeisme/immovault/pkg/context"
	"github.com/yeisme/immovault/pkg/internal/model"
	"github.com/yeisme/immovault/pkg/internal/storage"
	dbc "github.com/yeisme/immovault/pkg/internal/storage/db"
	"github.com/yeisme/immovault/pkg/internal/storage/object"
)

// newTestEnv 构建内存数据库 + 临时目录本地存储的测试环境.
func newTestEnv(t *testing.T) (context.Context, *gorm.DB, *object.LocalStore) {
	t.Helper()

	gdb, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, model.AutoMigrate(gdb))

	store, err := object.NewLocalStore(&configs.UploadConfig{Dir: t.TempDir()})
	require.NoError(t, err)

	mgr := storage.NewManager(&dbc.Client{DB: gdb}, store)
	ctx := ctxPkg.WithStorageManager(context.Background(), mgr)

	return ctx, gdb, store
}

var (
	adminActor  = Actor{UserID: 1, Email: "admin@example.com", Role: model.RoleAdmin}
	collabActor = Actor{UserID: 2, Email: "collab@example.com", Role: model.RoleCollaborator}
)
