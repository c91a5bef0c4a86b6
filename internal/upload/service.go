// AngelaMos | 2026
// service.go

package upload

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/gleethreads/storefront-api/internal/core"
)

const sniffLen = 512

var imageExtensions = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/gif":  ".gif",
	"image/webp": ".webp",
}

var (
	ErrStorageDisabled = errors.New("upload storage not configured")
	ErrTooLarge        = errors.New("file too large")
	ErrUnsupportedType = errors.New("unsupported file type")
)

type Result struct {
	URL         string `json:"url"`
	Key         string `json:"key"`
	ContentType string `json:"content_type"`
	Size        int64  `json:"size"`
}

type Service struct {
	store     BlobStore
	maxBytes  int64
	keyPrefix string
	newID     func() string
}

// NewService accepts a nil store; uploads then fail with ErrStorageDisabled.
func NewService(store BlobStore, maxBytes int64, keyPrefix string) *Service {
	if keyPrefix == "" {
		keyPrefix = "uploads/"
	}
	if !strings.HasSuffix(keyPrefix, "/") {
		keyPrefix += "/"
	}

	return &Service{
		store:     store,
		maxBytes:  maxBytes,
		keyPrefix: keyPrefix,
		newID:     func() string { return uuid.New().String() },
	}
}

func (s *Service) Enabled() bool {
	return s.store != nil
}

func (s *Service) MaxBytes() int64 {
	return s.maxBytes
}

// Store sniffs the content type from the first bytes of file and writes it
// under a random key. The declared client content type is ignored.
func (s *Service) Store(ctx context.Context, file io.ReadSeeker, size int64) (*Result, error) {
	if s.store == nil {
		return nil, ErrStorageDisabled
	}
	if size > s.maxBytes {
		return nil, ErrTooLarge
	}

	head := make([]byte, sniffLen)
	n, err := io.ReadFull(file, head)
	if err != nil && !errors.Is(err, io.ErrUnexpectedEOF) && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("read upload: %w", err)
	}
	if n == 0 {
		return nil, core.ValidationError("file is empty")
	}

	contentType := http.DetectContentType(head[:n])
	ext, ok := imageExtensions[contentType]
	if !ok {
		return nil, ErrUnsupportedType
	}

	if _, err := file.Seek(0, io.SeekStart); err != nil {
		return nil, fmt.Errorf("rewind upload: %w", err)
	}

	key := s.keyPrefix + s.newID() + ext

	url, err := s.store.Put(ctx, Object{
		Key:           key,
		ContentType:   contentType,
		ContentLength: size,
		Body:          file,
	})
	if err != nil {
		return nil, err
	}

	return &Result{
		URL:         url,
		Key:         key,
		ContentType: contentType,
		Size:        size,
	}, nil
}
