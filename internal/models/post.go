package models

import "time"

// Post is a status update on a user's stream. Content is escaped once at
// write time; Image holds the server-assigned filename of an uploaded image,
// or the empty string. Posts are immutable after creation.
type Post struct {
	ID      uint   `gorm:"primaryKey" json:"id"`
	UserID  uint   `gorm:"not null;index" json:"user_id"`
	Content string `gorm:"not null" json:"content"`
	Image   string `json:"image"`
	User    User   `gorm:"foreignKey:UserID" json:"user"`
	// CommentsCount is not persisted; computed at query time
	CommentsCount int       `gorm:"->" json:"comments_count"`
	CreatedAt     time.Time `json:"created_at"`
}
