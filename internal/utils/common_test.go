package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSanitizeFilename(t *testing.T) {
	assert.Equal(t, "a.png", SanitizeFilename("a.png"))
	assert.Equal(t, "myfile.png", SanitizeFilename("  my file .png "))
	assert.Equal(t, "tabbed.txt", SanitizeFilename("tab\tbed .txt"))
	assert.Equal(t, "", SanitizeFilename("   "))
}

func TestGetFileExtension(t *testing.T) {
	assert.Equal(t, "png", GetFileExtension("photo.PNG"))
	assert.Equal(t, "gz", GetFileExtension("archive.tar.gz"))
	assert.Equal(t, "", GetFileExtension("noext"))
}

func TestMediaKind(t *testing.T) {
	assert.Equal(t, "image", MediaKind("a.jpeg"))
	assert.Equal(t, "video", MediaKind("clip.MP4"))
	assert.Equal(t, "audio", MediaKind("song.flac"))
	assert.Equal(t, "document", MediaKind("notes.md"))
	assert.Equal(t, "other", MediaKind("weird.xyz"))
}

func TestParseSizeString(t *testing.T) {
	cases := map[string]int64{
		"512":   512,
		"512B":  512,
		"1KB":   1024,
		"1.5KB": 1536,
		"2MB":   2 * 1024 * 1024,
		"1GB":   1024 * 1024 * 1024,
	}
	for input, want := range cases {
		got, err := ParseSizeString(input)
		require.NoError(t, err, input)
		assert.Equal(t, want, got, input)
	}

	_, err := ParseSizeString("lots")
	assert.Error(t, err)
}
