package models

import "time"

// Friend is a directed edge: UserID considers FriendID a friend. Edges are
// independent per direction; A adding B neither creates nor blocks B adding
// A. The composite unique index is the authoritative duplicate defense, the
// handler pre-check is only a nicer error message.
type Friend struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null;uniqueIndex:idx_friend_edge" json:"user_id"`
	FriendID  uint      `gorm:"not null;uniqueIndex:idx_friend_edge" json:"friend_id"`
	CreatedAt time.Time `json:"created_at"`

	// Relationships
	User       User `gorm:"foreignKey:UserID" json:"user,omitempty"`
	FriendUser User `gorm:"foreignKey:FriendID" json:"friend,omitempty"`
}

// TableName specifies the table name for GORM
func (Friend) TableName() string {
	return "friends"
}
