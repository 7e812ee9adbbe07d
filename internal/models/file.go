package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// File represents one uploaded media entry. FileURL is the path of the
// backing bytes relative to the content root; the row and the bytes are
// created and removed together.
type File struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	AuthorID  int64     `json:"authorId" gorm:"not null;index"`
	Author    Author    `json:"author" gorm:"foreignKey:AuthorID;references:AuthorID;constraint:OnDelete:CASCADE"`
	Title     string    `json:"title"`
	Tags      string    `json:"tags"` // comma-separated
	FileURL   string    `json:"fileUrl" gorm:"not null"`
	Folder    string    `json:"folder" gorm:"index"`
	NSFW      bool      `json:"nsfw" gorm:"not null;default:false"`
	Likes     int64     `json:"likes" gorm:"not null;default:0"`
	Views     int64     `json:"views" gorm:"not null;default:0"`
	Size      int64     `json:"size" gorm:"not null;default:0"`
	CreatedAt time.Time `json:"createdAt"`
}

func (f *File) BeforeCreate(tx *gorm.DB) error {
	if f.ID == uuid.Nil {
		f.ID = uuid.New()
	}
	return nil
}
