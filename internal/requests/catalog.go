package requests

import (
	"github.com/tokumei-gr/doki/internal/services"
)

// RandomMediaRequest asks for a random pick excluding the file currently on
// screen, narrowed by the client's filter.
type RandomMediaRequest struct {
	ExcludeID string                `json:"excludeId,omitempty"`
	Filter    services.RandomFilter `json:"filter"`
}

// UpdateFolderRequest moves a file to another folder label.
type UpdateFolderRequest struct {
	Folder string `json:"folder" validate:"required"`
}

// AddCommentRequest submits a comment. AuthorID is the optional client
// token; Date is the client's unix timestamp, accepted as given.
type AddCommentRequest struct {
	AuthorID *int64 `json:"authorId,omitempty"`
	Content  string `json:"content" validate:"required"`
	Date     int64  `json:"date"`
}

// DeleteFileRequest carries the client token as the delete confirmation;
// it is required but not verified against ownership.
type DeleteFileRequest struct {
	AuthorID *int64 `json:"authorId" validate:"required"`
}
