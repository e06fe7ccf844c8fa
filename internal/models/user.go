package models

// User represents an author account.
//
// A user's posts are not stored on the record itself; they are derived
// by querying posts whose author_id matches.
type User struct {
	ID    int `gorm:"primaryKey"`
	Name  string
	Email string
}
