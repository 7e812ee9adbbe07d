package utils

import (
	"fmt"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"

	"github.com/shirou/gopsutil/v3/disk"
)

// Common utilities used across the catalog service

var whitespacePattern = regexp.MustCompile(`\s+`)

// SanitizeFilename trims the name and collapses all interior whitespace.
// No other canonicalization is applied, so two uploads can sanitize to the
// same name.
func SanitizeFilename(name string) string {
	return whitespacePattern.ReplaceAllString(strings.TrimSpace(name), "")
}

// GetFileExtension extracts and normalizes the file extension
func GetFileExtension(filename string) string {
	ext := strings.ToLower(filepath.Ext(filename))
	return strings.TrimPrefix(ext, ".")
}

var mediaKinds = map[string]string{
	"jpg":  "image",
	"jpeg": "image",
	"png":  "image",
	"gif":  "image",
	"webp": "image",
	"bmp":  "image",
	"mp4":  "video",
	"webm": "video",
	"avi":  "video",
	"mov":  "video",
	"mkv":  "video",
	"mp3":  "audio",
	"wav":  "audio",
	"ogg":  "audio",
	"flac": "audio",
	"pdf":  "document",
	"txt":  "document",
	"md":   "document",
}

// MediaKind classifies a file name into image/video/audio/document/other
// based on its extension.
func MediaKind(filename string) string {
	if kind, ok := mediaKinds[GetFileExtension(filename)]; ok {
		return kind
	}
	return "other"
}

// FreeDiskSpace returns the free bytes of the filesystem holding path.
func FreeDiskSpace(path string) (uint64, error) {
	usage, err := disk.Usage(path)
	if err != nil {
		return 0, err
	}
	return usage.Free, nil
}

// ParseSizeString converts human-readable size strings to bytes
func ParseSizeString(sizeStr string) (int64, error) {
	sizeStr = strings.TrimSpace(sizeStr)

	units := []struct {
		suffix string
		factor float64
	}{
		{"TB", 1 << 40},
		{"GB", 1 << 30},
		{"MB", 1 << 20},
		{"KB", 1 << 10},
	}

	for _, unit := range units {
		if strings.HasSuffix(sizeStr, unit.suffix) {
			trimmed := strings.TrimSuffix(sizeStr, unit.suffix)
			if size, err := strconv.ParseFloat(trimmed, 64); err == nil {
				return int64(size * unit.factor), nil
			}
			return 0, fmt.Errorf("invalid size format: %s", sizeStr)
		}
	}

	// Handle plain bytes with or without the B suffix
	trimmed := strings.TrimSuffix(sizeStr, "B")
	if size, err := strconv.ParseInt(trimmed, 10, 64); err == nil {
		return size, nil
	}

	return 0, fmt.Errorf("invalid size format: %s", sizeStr)
}
