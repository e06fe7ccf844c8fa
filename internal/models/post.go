package models

// Post represents a blog post authored by a user.
type Post struct {
	ID       int `gorm:"primaryKey"`
	Title    string
	Category string
	Summary  string
	AuthorID int   `gorm:"not null"`
	Author   *User `gorm:"foreignKey:AuthorID"`
}
