package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"path"
	"path/filepath"

	pkgerrors "github.com/kerimovok/go-pkg-utils/errors"

	"github.com/tokumei-gr/doki/internal/config"
	"github.com/tokumei-gr/doki/internal/models"
	"github.com/tokumei-gr/doki/internal/store"
	"github.com/tokumei-gr/doki/internal/utils"
)

// ErrNothingToUpload is returned for an empty or missing upload batch.
var ErrNothingToUpload = errors.New("nothing to upload")

// UploadItem is one file of an upload batch, already paired with its
// positional folder/NSFW attributes by the boundary.
type UploadItem struct {
	Name   string
	Size   int64
	Reader io.Reader
	Title  string
	Tags   string
	Folder string
	NSFW   bool
}

// IngestionService validates an upload batch, writes the bytes under the
// content root and records the metadata rows.
type IngestionService struct {
	gateway     store.Gateway
	identity    *IdentityService
	contentRoot string
	filesDir    string
	createDirs  bool
	maxFileSize int64
	blockedExts []string
}

func NewIngestionService(gateway store.Gateway, identity *IdentityService, cfg config.CatalogConfig, contentRoot string) *IngestionService {
	var maxSize int64
	if cfg.Validation.MaxFileSize != "" {
		size, err := utils.ParseSizeString(cfg.Validation.MaxFileSize)
		if err != nil {
			log.Printf("Warning: invalid max_file_size %q, uploads are unbounded: %v", cfg.Validation.MaxFileSize, err)
		} else {
			maxSize = size
		}
	}
	return &IngestionService{
		gateway:     gateway,
		identity:    identity,
		contentRoot: contentRoot,
		filesDir:    cfg.Store.FilesDir,
		createDirs:  cfg.Store.CreateDirs,
		maxFileSize: maxSize,
		blockedExts: cfg.Validation.BlockedExtensions,
	}
}

// ValidateItem checks one batch entry before any bytes are written.
func (s *IngestionService) ValidateItem(item UploadItem) error {
	if s.maxFileSize > 0 && item.Size > s.maxFileSize {
		return pkgerrors.BadRequestError("FILE_TOO_LARGE", fmt.Sprintf("File size exceeds maximum allowed size of %d bytes", s.maxFileSize))
	}
	ext := utils.GetFileExtension(item.Name)
	for _, blocked := range s.blockedExts {
		if ext == blocked {
			return pkgerrors.BadRequestError("BLOCKED_FILE_TYPE", fmt.Sprintf("File type .%s is not allowed", ext))
		}
	}
	if utils.SanitizeFilename(item.Name) == "" {
		return pkgerrors.BadRequestError("INVALID_FILE", "File must have a non-empty name")
	}
	return nil
}

// UploadBatch ingests the batch in the order supplied. The whole batch is
// validated before any bytes are written, so a rejected batch leaves the
// store and the disk untouched. The author is resolved once per batch. Each
// file's byte-write precedes its metadata insert; when the insert fails the
// just-written bytes are removed and the batch aborts. Returns the full
// fresh listing on success.
func (s *IngestionService) UploadBatch(ctx context.Context, token int64, items []UploadItem) ([]models.File, error) {
	if len(items) == 0 {
		return nil, ErrNothingToUpload
	}
	for _, item := range items {
		if err := s.ValidateItem(item); err != nil {
			return nil, err
		}
	}

	author, err := s.identity.ResolveOrCreate(ctx, token)
	if err != nil {
		return nil, err
	}

	for _, item := range items {
		name := utils.SanitizeFilename(item.Name)
		diskPath := filepath.Join(s.contentRoot, filepath.FromSlash(s.filesDir), name)
		written, err := s.writeBytes(diskPath, item.Reader)
		if err != nil {
			return nil, err
		}

		// insert by foreign key only; the listing resolves the Author
		record := models.File{
			AuthorID: author.AuthorID,
			Title:    item.Title,
			Tags:     item.Tags,
			FileURL:  path.Join(s.filesDir, name),
			Folder:   item.Folder,
			NSFW:     item.NSFW,
			Size:     written,
		}
		if err := s.gateway.InsertFile(ctx, &record); err != nil {
			// Attempt to clean up the saved bytes if the insert fails
			_ = os.Remove(diskPath)
			return nil, fmt.Errorf("failed to save file record: %w", err)
		}
	}

	return s.gateway.AllFiles(ctx)
}

func (s *IngestionService) writeBytes(diskPath string, r io.Reader) (int64, error) {
	if s.createDirs {
		if err := os.MkdirAll(filepath.Dir(diskPath), 0755); err != nil {
			return 0, fmt.Errorf("failed to create directory: %w", err)
		}
	}

	dst, err := os.Create(diskPath)
	if err != nil {
		return 0, fmt.Errorf("failed to create destination file: %w", err)
	}
	defer dst.Close()

	written, err := io.Copy(dst, r)
	if err != nil {
		return 0, fmt.Errorf("failed to copy file content: %w", err)
	}
	return written, nil
}
