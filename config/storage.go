package config

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// Storage is the blob store the document upload tracker writes to.
// Paths are bucket-relative and use forward slashes.
type Storage interface {
	Put(ctx context.Context, bucket, path string, r io.Reader, size int64, onProgress func(percent int)) (string, error)
	Delete(ctx context.Context, bucket string, paths []string) error
}

// LocalStorage stores blobs on the local filesystem under a root directory,
// one subdirectory per bucket.
type LocalStorage struct {
	Root string
}

// NewLocalStorage returns storage rooted at UPLOAD_PATH (default ./uploads).
func NewLocalStorage() *LocalStorage {
	root := os.Getenv("UPLOAD_PATH")
	if root == "" {
		root = "./uploads"
	}
	return &LocalStorage{Root: root}
}

func (s *LocalStorage) fullPath(bucket, path string) (string, error) {
	cleaned := filepath.Clean(filepath.FromSlash(path))
	if strings.HasPrefix(cleaned, "..") || filepath.IsAbs(cleaned) {
		return "", fmt.Errorf("invalid storage path %q", path)
	}
	return filepath.Join(s.Root, bucket, cleaned), nil
}

func (s *LocalStorage) Put(ctx context.Context, bucket, path string, r io.Reader, size int64, onProgress func(int)) (string, error) {
	dst, err := s.fullPath(bucket, path)
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(filepath.Dir(dst), os.ModePerm); err != nil {
		return "", fmt.Errorf("failed to create storage directory: %w", err)
	}

	f, err := os.Create(dst)
	if err != nil {
		return "", fmt.Errorf("failed to create blob: %w", err)
	}
	defer f.Close()

	var written int64
	buf := make([]byte, 64*1024)
	for {
		if err := ctx.Err(); err != nil {
			os.Remove(dst)
			return "", err
		}
		n, rerr := r.Read(buf)
		if n > 0 {
			if _, werr := f.Write(buf[:n]); werr != nil {
				os.Remove(dst)
				return "", fmt.Errorf("failed to write blob: %w", werr)
			}
			written += int64(n)
			if onProgress != nil && size > 0 {
				pct := int(written * 100 / size)
				if pct > 100 {
					pct = 100
				}
				onProgress(pct)
			}
		}
		if rerr == io.EOF {
			break
		}
		if rerr != nil {
			os.Remove(dst)
			return "", fmt.Errorf("failed to read upload: %w", rerr)
		}
	}

	if onProgress != nil {
		onProgress(100)
	}
	return path, nil
}

func (s *LocalStorage) Delete(ctx context.Context, bucket string, paths []string) error {
	for _, p := range paths {
		if err := ctx.Err(); err != nil {
			return err
		}
		dst, err := s.fullPath(bucket, p)
		if err != nil {
			return err
		}
		if err := os.Remove(dst); err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("failed to delete blob %s: %w", p, err)
		}
	}
	return nil
}
