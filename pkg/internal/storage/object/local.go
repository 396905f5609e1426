package object

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/yeisme/immovault/pkg/configs"
)

const urlPrefix = "/uploads/"

// LocalStore 本地磁盘驱动. 正式对象位于 <dir>/<TYPE>/<文件>，
// 由 /uploads 静态路由对外提供；暂存对象位于 <dir>/.staging/.
type LocalStore struct {
	dir string
}

// NewLocalStore 创建本地存储，确保根目录与暂存目录存在.
func NewLocalStore(cfg *configs.UploadConfig) (*LocalStore, error) {
	if cfg.Dir == "" {
		return nil, fmt.Errorf("upload dir is required")
	}

	if err := os.MkdirAll(filepath.Join(cfg.Dir, ".staging"), 0o755); err != nil {
		return nil, fmt.Errorf("create staging dir: %w", err)
	}

	return &LocalStore{dir: cfg.Dir}, nil
}

// Dir 返回正式存储根目录，供静态路由挂载.
func (s *LocalStore) Dir() string {
	return s.dir
}

// stagingPath 按对象键推导暂存文件路径.
func (s *LocalStore) stagingPath(key string) string {
	return filepath.Join(s.dir, ".staging", strings.ReplaceAll(key, "/", "_"))
}

// Stage 将内容写入 .staging 下的临时文件.
func (s *LocalStore) Stage(_ context.Context, category, name string, r io.Reader, _ int64) (*Staged, error) {
	key := BuildKey(category, name)
	tmpPath := s.stagingPath(key)

	f, err := os.Create(tmpPath)
	if err != nil {
		return nil, fmt.Errorf("create staged file: %w", err)
	}
	defer f.Close()

	size, err := io.Copy(f, r)
	if err != nil {
		_ = os.Remove(tmpPath)

		return nil, fmt.Errorf("write staged file: %w", err)
	}

	return &Staged{Key: key, Name: name, Size: size, Ref: tmpPath}, nil
}

// FinalURL 返回晋升后的 /uploads/ URL.
func (s *LocalStore) FinalURL(st *Staged) string {
	return urlPrefix + st.Key
}

// Promote 将暂存文件移动到 <dir>/<TYPE>/.
func (s *LocalStore) Promote(_ context.Context, st *Staged) error {
	dst := filepath.Join(s.dir, filepath.FromSlash(st.Key))
	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return fmt.Errorf("create category dir: %w", err)
	}

	if err := os.Rename(st.Ref, dst); err != nil {
		return fmt.Errorf("promote staged file: %w", err)
	}

	return nil
}

// Discard 删除暂存文件.
func (s *LocalStore) Discard(_ context.Context, st *Staged) error {
	ref := st.Ref
	if ref == "" {
		ref = s.stagingPath(st.Key)
	}

	if err := os.Remove(ref); err != nil && !os.IsNotExist(err) {
		return err
	}

	return nil
}

// Owns 判断 URL 是否是本地存储的 /uploads/ 路径.
func (s *LocalStore) Owns(url string) bool {
	return strings.HasPrefix(url, urlPrefix)
}

// Delete 按 URL 删除正式文件，非本地 URL 或文件缺失时静默返回.
func (s *LocalStore) Delete(_ context.Context, url string) error {
	key, ok := strings.CutPrefix(url, urlPrefix)
	if !ok {
		return nil
	}

	path := filepath.Join(s.dir, filepath.FromSlash(key))
	// 防止删除根目录之外的文件
	if rel, err := filepath.Rel(s.dir, path); err != nil || strings.HasPrefix(rel, "..") {
		return fmt.Errorf("refusing to delete outside upload dir: %s", url)
	}

	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return err
	}

	return nil
}
