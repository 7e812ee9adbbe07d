package services

import (
	"context"

	"github.com/google/uuid"

	"github.com/tokumei-gr/doki/internal/models"
	"github.com/tokumei-gr/doki/internal/store"
)

// CatalogService owns File/Author/Comment reads and the non-destructive
// mutations. Absent entities come back as nil records or zero counts, never
// as errors, so the boundary can map them to 404s uniformly.
type CatalogService struct {
	gateway  store.Gateway
	identity *IdentityService
}

func NewCatalogService(gateway store.Gateway, identity *IdentityService) *CatalogService {
	return &CatalogService{gateway: gateway, identity: identity}
}

func (s *CatalogService) Count(ctx context.Context) (int64, error) {
	return s.gateway.CountFiles(ctx)
}

func (s *CatalogService) All(ctx context.Context) ([]models.File, error) {
	return s.gateway.AllFiles(ctx)
}

func (s *CatalogService) OneByID(ctx context.Context, id uuid.UUID) (*models.File, error) {
	return s.gateway.FileByID(ctx, id)
}

func (s *CatalogService) AllByAuthor(ctx context.Context, authorID int64) ([]models.File, error) {
	return s.gateway.FilesByAuthor(ctx, authorID)
}

// ByFolder is a case-sensitive exact match on the folder label.
func (s *CatalogService) ByFolder(ctx context.Context, folder string) ([]models.File, error) {
	return s.gateway.FilesByFolder(ctx, folder)
}

func (s *CatalogService) Search(ctx context.Context, term string) ([]models.File, error) {
	return s.gateway.SearchFiles(ctx, term)
}

// AuthorFor returns the owning Author of any file held by the id, nil when
// the id owns no files.
func (s *CatalogService) AuthorFor(ctx context.Context, authorID int64) (*models.Author, error) {
	files, err := s.gateway.FilesByAuthor(ctx, authorID)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, nil
	}
	return &files[0].Author, nil
}

// UpdateFolder moves the file to a new folder label. Returns nil when the
// file does not exist.
func (s *CatalogService) UpdateFolder(ctx context.Context, id uuid.UUID, folder string) (*models.File, error) {
	file, err := s.gateway.FileByID(ctx, id)
	if err != nil || file == nil {
		return nil, err
	}
	file.Folder = folder
	if err := s.gateway.UpdateFile(ctx, file); err != nil {
		return nil, err
	}
	return file, nil
}

// IncrementLikes bumps the like counter by one. Returns false when the file
// does not exist.
func (s *CatalogService) IncrementLikes(ctx context.Context, id uuid.UUID) (bool, error) {
	affected, err := s.gateway.IncrementLikes(ctx, id)
	return affected > 0, err
}

func (s *CatalogService) IncrementViews(ctx context.Context, id uuid.UUID) (bool, error) {
	affected, err := s.gateway.IncrementViews(ctx, id)
	return affected > 0, err
}

func (s *CatalogService) CommentsForFile(ctx context.Context, fileID uuid.UUID) ([]models.Comment, error) {
	return s.gateway.CommentsForFile(ctx, fileID)
}

// AddComment attaches a comment to an existing file. A nil token produces an
// anonymous comment; a known or unseen token goes through identity
// resolution like an upload does. The date is taken from the client as-is.
func (s *CatalogService) AddComment(ctx context.Context, fileID uuid.UUID, token *int64, content string, date int64) (*models.Comment, error) {
	file, err := s.gateway.FileByID(ctx, fileID)
	if err != nil || file == nil {
		return nil, err
	}

	comment := models.Comment{
		FileID:     fileID,
		AuthorName: models.AnonymousName,
		Content:    content,
		Date:       date,
	}
	if token != nil {
		author, err := s.identity.ResolveOrCreate(ctx, *token)
		if err != nil {
			return nil, err
		}
		comment.AuthorID = &author.AuthorID
		comment.AuthorName = author.Name
	}

	if err := s.gateway.InsertComment(ctx, &comment); err != nil {
		return nil, err
	}
	return &comment, nil
}

// DeleteComment removes a single comment. The comment must belong to the
// stated file; a mismatch counts as not found.
func (s *CatalogService) DeleteComment(ctx context.Context, fileID, commentID uuid.UUID) (int64, error) {
	comment, err := s.gateway.CommentByID(ctx, commentID)
	if err != nil {
		return 0, err
	}
	if comment == nil || comment.FileID != fileID {
		return 0, nil
	}
	return s.gateway.DeleteComment(ctx, commentID)
}
