package store

import (
	"context"

	"github.com/google/uuid"

	"github.com/tokumei-gr/doki/internal/models"
)

// The catalog service is written against these interfaces, not against a
// concrete database. Lookups that miss return (nil, nil); deletes that miss
// return 0 affected rows, never an error.

type AuthorStore interface {
	GetAuthor(ctx context.Context, token int64) (*models.Author, error)
	CreateAuthor(ctx context.Context, a *models.Author) error
	DeleteAuthor(ctx context.Context, token int64) (int64, error)
}

type FileStore interface {
	CountFiles(ctx context.Context) (int64, error)
	AllFiles(ctx context.Context) ([]models.File, error)
	FileByID(ctx context.Context, id uuid.UUID) (*models.File, error)
	FilesByAuthor(ctx context.Context, authorID int64) ([]models.File, error)
	FilesByFolder(ctx context.Context, folder string) ([]models.File, error)
	SearchFiles(ctx context.Context, term string) ([]models.File, error)
	InsertFile(ctx context.Context, f *models.File) error
	UpdateFile(ctx context.Context, f *models.File) error
	DeleteFile(ctx context.Context, id uuid.UUID) (int64, error)
	IncrementLikes(ctx context.Context, id uuid.UUID) (int64, error)
	IncrementViews(ctx context.Context, id uuid.UUID) (int64, error)
}

type CommentStore interface {
	InsertComment(ctx context.Context, cm *models.Comment) error
	CommentByID(ctx context.Context, id uuid.UUID) (*models.Comment, error)
	CommentsForFile(ctx context.Context, fileID uuid.UUID) ([]models.Comment, error)
	DeleteComment(ctx context.Context, id uuid.UUID) (int64, error)
}

// Gateway bundles the three record stores behind one handle.
type Gateway interface {
	AuthorStore
	FileStore
	CommentStore
}
