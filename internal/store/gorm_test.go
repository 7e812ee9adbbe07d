package store

import (
	"context"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/tokumei-gr/doki/internal/models"
)

func newTestGateway(t *testing.T) *GormGateway {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(&models.Author{}, &models.File{}, &models.Comment{}))
	return NewGormGateway(db)
}

func seed(t *testing.T, gw *GormGateway) models.File {
	t.Helper()
	ctx := context.Background()
	require.NoError(t, gw.CreateAuthor(ctx, &models.Author{AuthorID: 1, Name: "Rin", CreationDate: 1600000000}))
	file := models.File{AuthorID: 1, FileURL: "app/build/files/a.png"}
	require.NoError(t, gw.InsertFile(ctx, &file))
	return file
}

func TestGetAuthor_MissingReturnsNil(t *testing.T) {
	gw := newTestGateway(t)

	author, err := gw.GetAuthor(context.Background(), 404)
	require.NoError(t, err)
	assert.Nil(t, author)
}

func TestDeleteAuthor_ReportsAffectedRows(t *testing.T) {
	gw := newTestGateway(t)
	ctx := context.Background()
	require.NoError(t, gw.CreateAuthor(ctx, &models.Author{AuthorID: 5, Name: "Sora", CreationDate: 1}))

	affected, err := gw.DeleteAuthor(ctx, 5)
	require.NoError(t, err)
	assert.Equal(t, int64(1), affected)

	affected, err = gw.DeleteAuthor(ctx, 5)
	require.NoError(t, err)
	assert.Equal(t, int64(0), affected)
}

func TestDeleteFile_RemovesItsComments(t *testing.T) {
	gw := newTestGateway(t)
	ctx := context.Background()
	file := seed(t, gw)

	comment := models.Comment{FileID: file.ID, AuthorName: models.AnonymousName, Content: "hi", Date: 1}
	require.NoError(t, gw.InsertComment(ctx, &comment))

	affected, err := gw.DeleteFile(ctx, file.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), affected)

	comments, err := gw.CommentsForFile(ctx, file.ID)
	require.NoError(t, err)
	assert.Empty(t, comments)
}

func TestDeleteFile_MissingReturnsZero(t *testing.T) {
	gw := newTestGateway(t)

	affected, err := gw.DeleteFile(context.Background(), uuid.New())
	require.NoError(t, err)
	assert.Equal(t, int64(0), affected)
}

func TestIncrementCounters(t *testing.T) {
	gw := newTestGateway(t)
	ctx := context.Background()
	file := seed(t, gw)

	for i := 0; i < 3; i++ {
		affected, err := gw.IncrementViews(ctx, file.ID)
		require.NoError(t, err)
		assert.Equal(t, int64(1), affected)
	}
	affected, err := gw.IncrementLikes(ctx, file.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), affected)

	stored, err := gw.FileByID(ctx, file.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(3), stored.Views)
	assert.Equal(t, int64(1), stored.Likes)
}

func TestSearchFiles_IsCaseInsensitive(t *testing.T) {
	gw := newTestGateway(t)
	ctx := context.Background()
	require.NoError(t, gw.CreateAuthor(ctx, &models.Author{AuthorID: 1, Name: "Rin", CreationDate: 1}))
	require.NoError(t, gw.InsertFile(ctx, &models.File{AuthorID: 1, FileURL: "app/build/files/a.png", Title: "Sunset"}))
	require.NoError(t, gw.InsertFile(ctx, &models.File{AuthorID: 1, FileURL: "app/build/files/b.png", Tags: "SUNSET,sky"}))

	files, err := gw.SearchFiles(ctx, "sunset")
	require.NoError(t, err)
	assert.Len(t, files, 2)
}
