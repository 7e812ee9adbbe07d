package services

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/tokumei-gr/doki/internal/store"
)

// DeletionService removes file bytes and metadata together, and cascades
// author removal over all owned files.
type DeletionService struct {
	gateway     store.Gateway
	contentRoot string
}

func NewDeletionService(gateway store.Gateway, contentRoot string) *DeletionService {
	return &DeletionService{gateway: gateway, contentRoot: contentRoot}
}

// DeleteFile removes the backing bytes and then the metadata row. Returns
// the number of files deleted: 0 when the id is unknown, 1 otherwise. The
// two removals are not transactional; bytes already gone on disk are
// tolerated with a warning so a half-deleted file can still be cleaned up.
func (s *DeletionService) DeleteFile(ctx context.Context, id uuid.UUID) (int64, error) {
	file, err := s.gateway.FileByID(ctx, id)
	if err != nil {
		return 0, err
	}
	if file == nil {
		return 0, nil
	}

	diskPath := filepath.Join(s.contentRoot, filepath.FromSlash(file.FileURL))
	if err := os.Remove(diskPath); err != nil {
		if !os.IsNotExist(err) {
			return 0, fmt.Errorf("failed to delete file bytes: %w", err)
		}
		log.Printf("Warning: bytes for file %s already missing at %s", file.ID, diskPath)
	}

	return s.gateway.DeleteFile(ctx, id)
}

// DeleteAuthorCascade removes every file owned by the author and then the
// author row. The first failing file deletion aborts the cascade; files
// deleted before the failure stay deleted.
func (s *DeletionService) DeleteAuthorCascade(ctx context.Context, authorID int64) error {
	files, err := s.gateway.FilesByAuthor(ctx, authorID)
	if err != nil {
		return err
	}
	for _, file := range files {
		if _, err := s.DeleteFile(ctx, file.ID); err != nil {
			return fmt.Errorf("cascade aborted at file %s: %w", file.ID, err)
		}
	}
	_, err = s.gateway.DeleteAuthor(ctx, authorID)
	return err
}
