package services

import (
	"context"
	"math/rand/v2"
	"strings"

	"github.com/google/uuid"

	"github.com/tokumei-gr/doki/internal/models"
	"github.com/tokumei-gr/doki/internal/store"
	"github.com/tokumei-gr/doki/internal/utils"
)

// RandomFilter narrows the candidate set for a random pick. Zero value
// means "any safe file".
type RandomFilter struct {
	// ExcludedFolders lists folder labels the client has filtered out.
	ExcludedFolders []string `json:"excludedFolders"`
	// Kind restricts to a media kind (image, video, audio, document) when set.
	Kind string `json:"kind"`
	// Tag restricts to files tagged with the value when set.
	Tag string `json:"tag"`
	// IncludeNSFW admits NSFW-flagged files.
	IncludeNSFW bool `json:"includeNsfw"`
}

// Matches reports whether the file is eligible under the filter.
func (r RandomFilter) Matches(f *models.File) bool {
	for _, folder := range r.ExcludedFolders {
		if f.Folder == folder {
			return false
		}
	}
	if r.Kind != "" && utils.MediaKind(f.FileURL) != r.Kind {
		return false
	}
	if r.Tag != "" && !hasTag(f.Tags, r.Tag) {
		return false
	}
	if f.NSFW && !r.IncludeNSFW {
		return false
	}
	return true
}

func hasTag(tags, want string) bool {
	for _, tag := range strings.Split(tags, ",") {
		if strings.EqualFold(strings.TrimSpace(tag), want) {
			return true
		}
	}
	return false
}

// SelectionService picks random files over the current catalog snapshot.
// Uniformity at call time is the only guarantee; repeats across calls are
// expected.
type SelectionService struct {
	files store.FileStore
}

func NewSelectionService(files store.FileStore) *SelectionService {
	return &SelectionService{files: files}
}

// RandomFile returns a uniform pick over the whole catalog, nil when empty.
func (s *SelectionService) RandomFile(ctx context.Context) (*models.File, error) {
	files, err := s.files.AllFiles(ctx)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, nil
	}
	return &files[rand.IntN(len(files))], nil
}

// RandomFiltered returns a uniform pick over the files matching the filter,
// excluding excludeID. Nil when the eligible set is empty.
func (s *SelectionService) RandomFiltered(ctx context.Context, excludeID uuid.UUID, filter RandomFilter) (*models.File, error) {
	files, err := s.files.AllFiles(ctx)
	if err != nil {
		return nil, err
	}

	eligible := make([]models.File, 0, len(files))
	for _, f := range files {
		if f.ID == excludeID {
			continue
		}
		if filter.Matches(&f) {
			eligible = append(eligible, f)
		}
	}
	if len(eligible) == 0 {
		return nil, nil
	}
	return &eligible[rand.IntN(len(eligible))], nil
}

// RandomFilteredID is the prefetch variant returning only the chosen id,
// uuid.Nil when nothing is eligible.
func (s *SelectionService) RandomFilteredID(ctx context.Context, excludeID uuid.UUID, filter RandomFilter) (uuid.UUID, error) {
	file, err := s.RandomFiltered(ctx, excludeID, filter)
	if err != nil || file == nil {
		return uuid.Nil, err
	}
	return file.ID, nil
}
