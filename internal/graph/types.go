package graph

import "github.com/tsaacod/Tugas3-EAI/internal/models"

// User and Post are the GraphQL result shapes. They mirror the stored
// records but are assembled explicitly by the resolvers; field names
// follow the engine's field-to-Go-name mapping.

type User struct {
	Id    int
	Name  string
	Email string
	Posts []Post
}

type Post struct {
	Id       int
	Title    string
	Category string
	Summary  string
	AuthorId int
}

func newUser(u *models.User, posts []models.Post) *User {
	out := &User{
		Id:    u.ID,
		Name:  u.Name,
		Email: u.Email,
		Posts: make([]Post, 0, len(posts)),
	}
	for _, p := range posts {
		out.Posts = append(out.Posts, newPost(&p))
	}
	return out
}

func newPost(p *models.Post) Post {
	return Post{
		Id:       p.ID,
		Title:    p.Title,
		Category: p.Category,
		Summary:  p.Summary,
		AuthorId: p.AuthorID,
	}
}
