package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AnonymousName is the display name stored for comments submitted without
// an author token.
const AnonymousName = "Anonymous"

// Comment is attached to exactly one File. AuthorID is optional: anonymous
// comments keep a nil reference and the stored display name instead of
// minting a throwaway Author row.
type Comment struct {
	ID         uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	FileID     uuid.UUID `json:"fileId" gorm:"type:uuid;not null;index"`
	File       File      `json:"-" gorm:"foreignKey:FileID;constraint:OnDelete:CASCADE"`
	AuthorID   *int64    `json:"authorId,omitempty"`
	Author     *Author   `json:"author,omitempty" gorm:"foreignKey:AuthorID;references:AuthorID;constraint:OnDelete:SET NULL"`
	AuthorName string    `json:"authorName" gorm:"not null"`
	Content    string    `json:"content" gorm:"type:text;not null"`
	Date       int64     `json:"date" gorm:"not null"` // client-supplied unix seconds
}

func (c *Comment) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}
