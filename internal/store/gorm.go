package store

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/tokumei-gr/doki/internal/models"
)

// GormGateway implements Gateway on top of a gorm connection.
type GormGateway struct {
	db *gorm.DB
}

func NewGormGateway(db *gorm.DB) *GormGateway {
	return &GormGateway{db: db}
}

func (g *GormGateway) GetAuthor(ctx context.Context, token int64) (*models.Author, error) {
	var author models.Author
	err := g.db.WithContext(ctx).First(&author, "author_id = ?", token).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &author, nil
}

func (g *GormGateway) CreateAuthor(ctx context.Context, a *models.Author) error {
	return g.db.WithContext(ctx).Create(a).Error
}

// DeleteAuthor removes the author row. Comments the author left on other
// files are detached first (the stored display name survives), so the row
// delete never trips over a comment elsewhere in the catalog.
func (g *GormGateway) DeleteAuthor(ctx context.Context, token int64) (int64, error) {
	var affected int64
	err := g.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.Comment{}).Where("author_id = ?", token).
			Update("author_id", nil).Error; err != nil {
			return err
		}
		res := tx.Delete(&models.Author{}, "author_id = ?", token)
		if res.Error != nil {
			return res.Error
		}
		affected = res.RowsAffected
		return nil
	})
	return affected, err
}

func (g *GormGateway) CountFiles(ctx context.Context) (int64, error) {
	var count int64
	err := g.db.WithContext(ctx).Model(&models.File{}).Count(&count).Error
	return count, err
}

func (g *GormGateway) AllFiles(ctx context.Context) ([]models.File, error) {
	var files []models.File
	err := g.db.WithContext(ctx).Preload("Author").Find(&files).Error
	return files, err
}

func (g *GormGateway) FileByID(ctx context.Context, id uuid.UUID) (*models.File, error) {
	var file models.File
	err := g.db.WithContext(ctx).Preload("Author").First(&file, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &file, nil
}

func (g *GormGateway) FilesByAuthor(ctx context.Context, authorID int64) ([]models.File, error) {
	var files []models.File
	err := g.db.WithContext(ctx).Preload("Author").Where("author_id = ?", authorID).Find(&files).Error
	return files, err
}

func (g *GormGateway) FilesByFolder(ctx context.Context, folder string) ([]models.File, error) {
	var files []models.File
	err := g.db.WithContext(ctx).Preload("Author").Where("folder = ?", folder).Find(&files).Error
	return files, err
}

// SearchFiles matches the term as a case-insensitive substring of title,
// tags, folder or file URL, preserving store order. lower() instead of ILIKE
// keeps the query portable across dialects.
func (g *GormGateway) SearchFiles(ctx context.Context, term string) ([]models.File, error) {
	pattern := "%" + strings.ToLower(term) + "%"
	var files []models.File
	err := g.db.WithContext(ctx).Preload("Author").
		Where("lower(title) LIKE ? OR lower(tags) LIKE ? OR lower(folder) LIKE ? OR lower(file_url) LIKE ?",
			pattern, pattern, pattern, pattern).
		Find(&files).Error
	return files, err
}

func (g *GormGateway) InsertFile(ctx context.Context, f *models.File) error {
	return g.db.WithContext(ctx).Create(f).Error
}

func (g *GormGateway) UpdateFile(ctx context.Context, f *models.File) error {
	return g.db.WithContext(ctx).Save(f).Error
}

// DeleteFile removes the file row together with its comments. The two
// deletes share a transaction so a file row can never outlive its removal
// while its comments stay behind.
func (g *GormGateway) DeleteFile(ctx context.Context, id uuid.UUID) (int64, error) {
	var affected int64
	err := g.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("file_id = ?", id).Delete(&models.Comment{}).Error; err != nil {
			return err
		}
		res := tx.Delete(&models.File{}, "id = ?", id)
		if res.Error != nil {
			return res.Error
		}
		affected = res.RowsAffected
		return nil
	})
	return affected, err
}

// IncrementLikes bumps the counter in a single UPDATE so concurrent calls
// never lose a write.
func (g *GormGateway) IncrementLikes(ctx context.Context, id uuid.UUID) (int64, error) {
	res := g.db.WithContext(ctx).Model(&models.File{}).Where("id = ?", id).
		UpdateColumn("likes", gorm.Expr("likes + ?", 1))
	return res.RowsAffected, res.Error
}

func (g *GormGateway) IncrementViews(ctx context.Context, id uuid.UUID) (int64, error) {
	res := g.db.WithContext(ctx).Model(&models.File{}).Where("id = ?", id).
		UpdateColumn("views", gorm.Expr("views + ?", 1))
	return res.RowsAffected, res.Error
}

func (g *GormGateway) InsertComment(ctx context.Context, cm *models.Comment) error {
	return g.db.WithContext(ctx).Create(cm).Error
}

func (g *GormGateway) CommentByID(ctx context.Context, id uuid.UUID) (*models.Comment, error) {
	var comment models.Comment
	err := g.db.WithContext(ctx).Preload("Author").First(&comment, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &comment, nil
}

func (g *GormGateway) CommentsForFile(ctx context.Context, fileID uuid.UUID) ([]models.Comment, error) {
	var comments []models.Comment
	err := g.db.WithContext(ctx).Preload("Author").Where("file_id = ?", fileID).Find(&comments).Error
	return comments, err
}

func (g *GormGateway) DeleteComment(ctx context.Context, id uuid.UUID) (int64, error) {
	res := g.db.WithContext(ctx).Delete(&models.Comment{}, "id = ?", id)
	return res.RowsAffected, res.Error
}
