package store

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/tsaacod/Tugas3-EAI/internal/models"
)

// UserByID looks a user up by primary key.
func UserByID(tx *gorm.DB, id int) (*models.User, error) {
	var user models.User
	if err := tx.First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("user %d: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("get user %d: %w", id, err)
	}
	return &user, nil
}

// PostByID looks a post up by primary key.
func PostByID(tx *gorm.DB, id int) (*models.Post, error) {
	var post models.Post
	if err := tx.First(&post, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("post %d: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("get post %d: %w", id, err)
	}
	return &post, nil
}

// PostsByAuthor returns every post whose author_id equals authorID, in
// whatever order the store yields them.
func PostsByAuthor(tx *gorm.DB, authorID int) ([]models.Post, error) {
	var posts []models.Post
	if err := tx.Where("author_id = ?", authorID).Find(&posts).Error; err != nil {
		return nil, fmt.Errorf("posts by author %d: %w", authorID, err)
	}
	return posts, nil
}

// CreateUser inserts user and fills in its generated ID.
func CreateUser(tx *gorm.DB, user *models.User) error {
	if err := tx.Create(user).Error; err != nil {
		if constraintViolated(err) {
			return fmt.Errorf("create user: %w", ErrConstraint)
		}
		return fmt.Errorf("create user: %w", err)
	}
	return nil
}

// CreatePost inserts post and fills in its generated ID. A post whose
// AuthorID does not reference an existing user is rejected by the
// store's foreign key constraint; no row is written.
func CreatePost(tx *gorm.DB, post *models.Post) error {
	if err := tx.Create(post).Error; err != nil {
		if constraintViolated(err) {
			return fmt.Errorf("create post: author %d: %w", post.AuthorID, ErrConstraint)
		}
		return fmt.Errorf("create post: %w", err)
	}
	return nil
}
