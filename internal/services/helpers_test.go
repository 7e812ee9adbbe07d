package services

import (
	"context"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/tokumei-gr/doki/internal/config"
	"github.com/tokumei-gr/doki/internal/models"
	"github.com/tokumei-gr/doki/internal/store"
)

func newTestGateway(t *testing.T) *store.GormGateway {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	// single connection keeps the in-memory database shared and serialized
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(&models.Author{}, &models.File{}, &models.Comment{}))
	return store.NewGormGateway(db)
}

func seedAuthor(t *testing.T, gw *store.GormGateway, token int64) *models.Author {
	t.Helper()
	author := &models.Author{AuthorID: token, Name: "Yuki", CreationDate: 1600000000}
	require.NoError(t, gw.CreateAuthor(context.Background(), author))
	return author
}

func seedFile(t *testing.T, gw *store.GormGateway, authorID int64, file models.File) models.File {
	t.Helper()
	file.AuthorID = authorID
	require.NoError(t, gw.InsertFile(context.Background(), &file))
	return file
}

func testCatalogConfig() config.CatalogConfig {
	return config.CatalogConfig{
		Validation: config.UploadValidationConfig{
			MaxFileSize:       "1MB",
			BlockedExtensions: []string{"exe"},
		},
		Store: config.ByteStoreConfig{
			FilesDir:   "app/build/files",
			CreateDirs: true,
		},
	}
}
