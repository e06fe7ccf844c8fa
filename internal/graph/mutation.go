package graph

import (
	"context"

	"gorm.io/gorm"
	"zombiezen.com/go/graphql-server/graphql"

	"github.com/tsaacod/Tugas3-EAI/internal/models"
	"github.com/tsaacod/Tugas3-EAI/internal/store"
)

// Mutation resolves the create operations. Each call performs exactly
// one insert in its own session, committed immediately.
type Mutation struct {
	store *store.Store
}

// CreateUser persists a new user and returns it with the generated id.
// The new user owns no posts yet, so posts is always empty.
func (m *Mutation) CreateUser(ctx context.Context, args map[string]graphql.Value) (*User, error) {
	user := &models.User{
		Name:  args["name"].Scalar(),
		Email: args["email"].Scalar(),
	}
	err := m.store.WithSession(ctx, func(tx *gorm.DB) error {
		return store.CreateUser(tx, user)
	})
	if err != nil {
		return nil, err
	}
	return newUser(user, nil), nil
}

// CreatePost persists a new post referencing authorId and returns it
// with the generated id. A missing author makes the store's foreign
// key constraint fail the insert; nothing is pre-validated here.
func (m *Mutation) CreatePost(ctx context.Context, args map[string]graphql.Value) (*Post, error) {
	authorID, err := intArg(args, "authorId")
	if err != nil {
		return nil, err
	}
	post := &models.Post{
		Title:    args["title"].Scalar(),
		Category: args["category"].Scalar(),
		Summary:  args["summary"].Scalar(),
		AuthorID: authorID,
	}
	err = m.store.WithSession(ctx, func(tx *gorm.DB) error {
		return store.CreatePost(tx, post)
	})
	if err != nil {
		return nil, err
	}
	out := newPost(post)
	return &out, nil
}
