package services

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tokumei-gr/doki/internal/store"
)

func uploadOne(t *testing.T, gw *store.GormGateway, root string, token int64, name string) uuid.UUID {
	t.Helper()
	svc := NewIngestionService(gw, NewIdentityService(gw), testCatalogConfig(), root)
	listing, err := svc.UploadBatch(context.Background(), token, []UploadItem{
		{Name: name, Size: 4, Reader: strings.NewReader("data")},
	})
	require.NoError(t, err)
	for _, f := range listing {
		if filepath.Base(f.FileURL) == name {
			return f.ID
		}
	}
	t.Fatalf("uploaded file %s not in listing", name)
	return uuid.Nil
}

func TestDeleteFile_RemovesBytesAndRow(t *testing.T) {
	gw := newTestGateway(t)
	root := t.TempDir()
	id := uploadOne(t, gw, root, 1, "a.png")
	deletion := NewDeletionService(gw, root)

	count, err := deletion.DeleteFile(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)

	file, err := gw.FileByID(context.Background(), id)
	require.NoError(t, err)
	assert.Nil(t, file)

	_, statErr := os.Stat(filepath.Join(root, "app", "build", "files", "a.png"))
	assert.True(t, os.IsNotExist(statErr))
}

func TestDeleteFile_UnknownIDReportsZero(t *testing.T) {
	gw := newTestGateway(t)
	deletion := NewDeletionService(gw, t.TempDir())

	count, err := deletion.DeleteFile(context.Background(), uuid.New())
	require.NoError(t, err)
	assert.Equal(t, int64(0), count)
}

func TestDeleteFile_ToleratesMissingBytes(t *testing.T) {
	gw := newTestGateway(t)
	root := t.TempDir()
	id := uploadOne(t, gw, root, 1, "a.png")
	require.NoError(t, os.Remove(filepath.Join(root, "app", "build", "files", "a.png")))

	deletion := NewDeletionService(gw, root)
	count, err := deletion.DeleteFile(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestDeleteAuthorCascade(t *testing.T) {
	gw := newTestGateway(t)
	root := t.TempDir()
	uploadOne(t, gw, root, 7, "ten.png")
	uploadOne(t, gw, root, 7, "eleven.png")
	deletion := NewDeletionService(gw, root)

	require.NoError(t, deletion.DeleteAuthorCascade(context.Background(), 7))

	files, err := gw.FilesByAuthor(context.Background(), 7)
	require.NoError(t, err)
	assert.Empty(t, files)

	author, err := gw.GetAuthor(context.Background(), 7)
	require.NoError(t, err)
	assert.Nil(t, author)

	for _, name := range []string{"ten.png", "eleven.png"} {
		_, statErr := os.Stat(filepath.Join(root, "app", "build", "files", name))
		assert.True(t, os.IsNotExist(statErr))
	}
}

func TestDeleteAuthorCascade_DetachesCommentsOnOtherAuthorsFiles(t *testing.T) {
	gw := newTestGateway(t)
	root := t.TempDir()
	fileID := uploadOne(t, gw, root, 1, "a.png")

	// author 7 owns nothing but commented on author 1's file
	catalog := NewCatalogService(gw, NewIdentityService(gw))
	token := int64(7)
	comment, err := catalog.AddComment(context.Background(), fileID, &token, "drive-by", 1700000000)
	require.NoError(t, err)
	require.NotNil(t, comment.AuthorID)

	deletion := NewDeletionService(gw, root)
	require.NoError(t, deletion.DeleteAuthorCascade(context.Background(), 7))

	author, err := gw.GetAuthor(context.Background(), 7)
	require.NoError(t, err)
	assert.Nil(t, author)

	// the comment survives anonymized, with its display name intact
	comments, err := gw.CommentsForFile(context.Background(), fileID)
	require.NoError(t, err)
	require.Len(t, comments, 1)
	assert.Nil(t, comments[0].AuthorID)
	assert.Equal(t, comment.AuthorName, comments[0].AuthorName)

	// the commented file belongs to author 1 and stays put
	file, err := gw.FileByID(context.Background(), fileID)
	require.NoError(t, err)
	assert.NotNil(t, file)
}

func TestDeleteAuthorCascade_UnknownAuthor(t *testing.T) {
	gw := newTestGateway(t)
	deletion := NewDeletionService(gw, t.TempDir())

	// no files, no author row: the cascade is a no-op, not a failure
	assert.NoError(t, deletion.DeleteAuthorCascade(context.Background(), 999))
}
