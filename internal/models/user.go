// Package models contains data structures for the application's domain models.
package models

import "time"

// User represents a registered member of Parlor. The Password column always
// holds a bcrypt hash, never the submitted plaintext.
type User struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	Username  string `gorm:"uniqueIndex;not null" json:"username"`
	FirstName string `gorm:"not null" json:"first_name"`
	LastName  string `gorm:"not null" json:"last_name"`
	Password  string `gorm:"not null" json:"-"`

	// Optional profile fields, set only through the profile page.
	Education   string `json:"education"`
	Employment  string `json:"employment"`
	Music       string `json:"music"`
	Movie       string `json:"movie"`
	Nationality string `json:"nationality"`
	Birthday    string `json:"birthday"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Profile carries the editable profile fields as one unit so the update
// happens in a single statement.
type Profile struct {
	Education   string
	Employment  string
	Music       string
	Movie       string
	Nationality string
	Birthday    string
}
