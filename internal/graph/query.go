package graph

import (
	"context"

	"gorm.io/gorm"
	"zombiezen.com/go/graphql-server/graphql"

	"github.com/tsaacod/Tugas3-EAI/internal/store"
)

// Query resolves the read-only operations.
type Query struct {
	store *store.Store
}

// GetUser fetches a user by id and expands its posts with a second
// equality-filtered query inside the same session.
func (q *Query) GetUser(ctx context.Context, args map[string]graphql.Value) (*User, error) {
	id, err := intArg(args, "id")
	if err != nil {
		return nil, err
	}
	var out *User
	err = q.store.WithSession(ctx, func(tx *gorm.DB) error {
		user, err := store.UserByID(tx, id)
		if err != nil {
			return err
		}
		posts, err := store.PostsByAuthor(tx, user.ID)
		if err != nil {
			return err
		}
		out = newUser(user, posts)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// GetPost fetches a post by id. The author is returned as authorId
// only; it is not expanded.
func (q *Query) GetPost(ctx context.Context, args map[string]graphql.Value) (*Post, error) {
	id, err := intArg(args, "id")
	if err != nil {
		return nil, err
	}
	var out Post
	err = q.store.WithSession(ctx, func(tx *gorm.DB) error {
		post, err := store.PostByID(tx, id)
		if err != nil {
			return err
		}
		out = newPost(post)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}
