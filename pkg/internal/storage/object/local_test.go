package object

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yeisme/immovault/pkg/configs"
)

func newLocal(t *testing.T) *LocalStore {
	t.Helper()

	store, err := NewLocalStore(&configs.UploadConfig{Dir: t.TempDir()})
	require.NoError(t, err)

	return store
}

func TestLocalStagePromote(t *testing.T) {
	ctx := context.Background()
	store := newLocal(t)

	st, err := store.Stage(ctx, "photo", "living room.jpg", strings.NewReader("imgdata"), 7)
	require.NoError(t, err)
	assert.EqualValues(t, 7, st.Size)
	assert.Equal(t, "living room.jpg", st.Name)
	// 键带大写分类前缀且文件名被净化
	assert.True(t, strings.HasPrefix(st.Key, "PHOTO/"))
	assert.NotContains(t, st.Key, " ")

	// 暂存阶段正式区没有文件
	finalPath := filepath.Join(store.Dir(), filepath.FromSlash(st.Key))
	_, statErr := os.Stat(finalPath)
	assert.True(t, os.IsNotExist(statErr))

	require.NoError(t, store.Promote(ctx, st))

	data, err := os.ReadFile(finalPath)
	require.NoError(t, err)
	assert.Equal(t, "imgdata", string(data))

	// 暂存文件已被移走
	_, statErr = os.Stat(st.Ref)
	assert.True(t, os.IsNotExist(statErr))

	assert.Equal(t, "/uploads/"+st.Key, store.FinalURL(st))
}

func TestLocalDiscard(t *testing.T) {
	ctx := context.Background()
	store := newLocal(t)

	st, err := store.Stage(ctx, "DOCUMENT", "acte.pdf", strings.NewReader("pdf"), 3)
	require.NoError(t, err)

	require.NoError(t, store.Discard(ctx, st))

	_, statErr := os.Stat(st.Ref)
	assert.True(t, os.IsNotExist(statErr))

	// 重复丢弃不报错
	require.NoError(t, store.Discard(ctx, st))

	// Ref 为空时按 Key 推导
	st2, err := store.Stage(ctx, "DOCUMENT", "acte2.pdf", strings.NewReader("pdf"), 3)
	require.NoError(t, err)
	require.NoError(t, store.Discard(ctx, &Staged{Key: st2.Key}))

	_, statErr = os.Stat(st2.Ref)
	assert.True(t, os.IsNotExist(statErr))
}

func TestLocalDelete(t *testing.T) {
	ctx := context.Background()
	store := newLocal(t)

	st, err := store.Stage(ctx, "PHOTO", "x.jpg", strings.NewReader("img"), 3)
	require.NoError(t, err)
	require.NoError(t, store.Promote(ctx, st))

	require.NoError(t, store.Delete(ctx, store.FinalURL(st)))

	_, statErr := os.Stat(filepath.Join(store.Dir(), filepath.FromSlash(st.Key)))
	assert.True(t, os.IsNotExist(statErr))

	// 外部链接与缺失文件静默返回
	require.NoError(t, store.Delete(ctx, "https://maps.example.com/p/1"))
	require.NoError(t, store.Delete(ctx, "/uploads/PHOTO/gone.jpg"))

	// 路径穿越拒绝
	err = store.Delete(ctx, "/uploads/../../etc/passwd")
	require.Error(t, err)
}

func TestStoreOwns(t *testing.T) {
	local := newLocal(t)

	assert.True(t, local.Owns("/uploads/PHOTO/a.jpg"))
	assert.False(t, local.Owns("https://maps.example.com/p/1"))

	// S3 驱动按桶 URL 前缀判断
	s3 := &S3Store{bucket: "immovault", baseURL: "https://s3.example.com"}
	assert.True(t, s3.Owns("https://s3.example.com/immovault/PHOTO/a.jpg"))
	assert.False(t, s3.Owns("https://maps.example.com/p/1"))
	assert.False(t, s3.Owns("/uploads/PHOTO/a.jpg"))
}

func TestSanitizeFileName(t *testing.T) {
	assert.Equal(t, "a_b.jpg", SanitizeFileName("a b.jpg"))
	assert.Equal(t, "__etc_passwd", SanitizeFileName("../etc/passwd"))
	assert.Equal(t, "file", SanitizeFileName("  "))
}
