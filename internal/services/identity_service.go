package services

import (
	"context"
	"math/rand/v2"
	"time"

	"github.com/tokumei-gr/doki/internal/constants"
	"github.com/tokumei-gr/doki/internal/models"
	"github.com/tokumei-gr/doki/internal/store"
)

// IdentityService maps client-held author tokens to Author records.
type IdentityService struct {
	authors store.AuthorStore
}

func NewIdentityService(authors store.AuthorStore) *IdentityService {
	return &IdentityService{authors: authors}
}

// ResolveOrCreate returns the Author for the token, creating one on first
// contact with a random display name from the curated pool. Two concurrent
// first contacts from the same token can race; the store's key constraint
// decides the winner and the loser surfaces the conflict to its caller.
func (s *IdentityService) ResolveOrCreate(ctx context.Context, token int64) (*models.Author, error) {
	author, err := s.authors.GetAuthor(ctx, token)
	if err != nil {
		return nil, err
	}
	if author != nil {
		return author, nil
	}

	author = &models.Author{
		AuthorID:     token,
		Name:         constants.AuthorNames[rand.IntN(len(constants.AuthorNames))],
		CreationDate: time.Now().Unix(),
	}
	if err := s.authors.CreateAuthor(ctx, author); err != nil {
		return nil, err
	}
	return author, nil
}
