package object

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/yeisme/immovault/pkg/configs"
)

const stagingPrefix = ".staging/"

// S3Store S3 兼容对象存储驱动，暂存对象写入 .staging/ 前缀，
// 晋升时服务端复制到最终键.
type S3Store struct {
	client  *minio.Client
	bucket  string
	baseURL string
}

// NewS3Store 创建 S3 驱动并确保桶存在.
func NewS3Store(ctx context.Context, cfg *configs.UploadConfig) (*S3Store, error) {
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("create s3 client: %w", err)
	}

	exists, err := client.BucketExists(ctx, cfg.Bucket)
	if err != nil {
		return nil, fmt.Errorf("check bucket: %w", err)
	}

	if !exists {
		if err := client.MakeBucket(ctx, cfg.Bucket, minio.MakeBucketOptions{}); err != nil {
			return nil, fmt.Errorf("create bucket: %w", err)
		}
	}

	return &S3Store{client: client, bucket: cfg.Bucket, baseURL: strings.TrimSuffix(cfg.BaseURL, "/")}, nil
}

// Stage 上传到暂存前缀.
func (s *S3Store) Stage(ctx context.Context, category, name string, r io.Reader, size int64) (*Staged, error) {
	key := BuildKey(category, name)
	ref := stagingPrefix + key

	info, err := s.client.PutObject(ctx, s.bucket, ref, r, size, minio.PutObjectOptions{})
	if err != nil {
		return nil, fmt.Errorf("stage object %s: %w", name, err)
	}

	return &Staged{Key: key, Name: name, Size: info.Size, Ref: ref}, nil
}

// FinalURL 返回晋升后的对象 URL.
func (s *S3Store) FinalURL(st *Staged) string {
	return fmt.Sprintf("%s/%s/%s", s.baseURL, s.bucket, st.Key)
}

// Promote 服务端复制暂存对象到最终键并删除暂存副本.
func (s *S3Store) Promote(ctx context.Context, st *Staged) error {
	src := minio.CopySrcOptions{Bucket: s.bucket, Object: st.Ref}
	dst := minio.CopyDestOptions{Bucket: s.bucket, Object: st.Key}

	if _, err := s.client.CopyObject(ctx, dst, src); err != nil {
		return fmt.Errorf("promote object %s: %w", st.Key, err)
	}

	_ = s.client.RemoveObject(ctx, s.bucket, st.Ref, minio.RemoveObjectOptions{})

	return nil
}

// Discard 删除暂存对象.
func (s *S3Store) Discard(ctx context.Context, st *Staged) error {
	ref := st.Ref
	if ref == "" {
		ref = stagingPrefix + st.Key
	}

	return s.client.RemoveObject(ctx, s.bucket, ref, minio.RemoveObjectOptions{})
}

// Owns 判断 URL 是否指向本驱动桶内的对象.
func (s *S3Store) Owns(url string) bool {
	return strings.HasPrefix(url, s.baseURL+"/"+s.bucket+"/")
}

// Delete 按 URL 删除正式对象. RemoveObject 对不存在的键本身就是幂等的.
func (s *S3Store) Delete(ctx context.Context, url string) error {
	marker := "/" + s.bucket + "/"

	idx := strings.Index(url, marker)
	if idx < 0 {
		return nil
	}

	key := url[idx+len(marker):]

	return s.client.RemoveObject(ctx, s.bucket, key, minio.RemoveObjectOptions{})
}
