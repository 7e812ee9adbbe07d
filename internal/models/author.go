package models

// Author is a pseudonymous uploader identity. The primary key is the
// client-held token, not a server-generated id, so first contact from an
// unseen token creates the row as-is.
type Author struct {
	AuthorID     int64  `json:"authorId" gorm:"primaryKey;autoIncrement:false"`
	Name         string `json:"name" gorm:"not null"`
	CreationDate int64  `json:"creationDate" gorm:"not null"`
}
