// Package object 提供附件对象存储抽象：本地磁盘或 S3 兼容存储.
// 上传先写入暂存区（Stage），数据库事务提交后再晋升（Promote）到正式区，
// 回滚时丢弃（Discard），避免事务失败后磁盘上残留孤儿文件.
package object

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Staged 暂存对象. Key 为晋升后的最终对象键，Ref 为驱动内部的暂存引用.
type Staged struct {
	Key  string
	Name string // 原始文件名
	Size int64
	Ref  string
}

// Store 附件对象存储接口.
type Store interface {
	// Stage 将内容写入暂存区，返回暂存对象.
	Stage(ctx context.Context, category, name string, r io.Reader, size int64) (*Staged, error)
	// FinalURL 返回暂存对象晋升后的访问 URL. 入库发生在事务内、
	// 晋升发生在提交后，URL 必须在晋升前就可确定.
	FinalURL(st *Staged) string
	// Promote 将暂存对象移入正式存储.
	Promote(ctx context.Context, st *Staged) error
	// Owns 判断 URL 是否指向本存储中的对象. 外部链接返回 false.
	Owns(url string) bool
	// Discard 丢弃暂存对象，容忍对象已不存在. Ref 为空时按 Key 推导.
	Discard(ctx context.Context, st *Staged) error
	// Delete 按 URL 删除正式对象，对象不存在时不报错.
	Delete(ctx context.Context, url string) error
}

const randSuffixLen = 8

// BuildKey 生成碰撞安全的对象键: <category>/<时间戳>-<随机>-<净化文件名>.
func BuildKey(category, name string) string {
	return fmt.Sprintf("%s/%d-%s-%s",
		strings.ToUpper(category),
		time.Now().UnixMilli(),
		uuid.NewString()[:randSuffixLen],
		SanitizeFileName(name),
	)
}

// SanitizeFileName 净化文件名，剔除路径穿越和分隔符.
func SanitizeFileName(name string) string {
	r := strings.NewReplacer(
		"..", "_", "/", "_", "\\", "_",
		" ", "_", "\x00", "_",
	)

	s := r.Replace(strings.TrimSpace(name))
	if s == "" {
		s = "file"
	}

	return s
}
