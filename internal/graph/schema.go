// Package graph exposes the users/posts data set as a GraphQL
// operation set: two lookup queries and two create mutations. Each
// resolver opens its own store session for the duration of the call.
package graph

import (
	"fmt"
	"strconv"

	"zombiezen.com/go/graphql-server/graphql"

	"github.com/tsaacod/Tugas3-EAI/internal/store"
)

// Note the asymmetry: getUser expands posts but getPost only carries
// authorId. That quirk is part of the published interface and is kept.
const schemaSource = `
type Query {
	getUser(id: Int!): User!
	getPost(id: Int!): Post!
}

type Mutation {
	createUser(name: String!, email: String!): User!
	createPost(title: String!, category: String!, summary: String!, authorId: Int!): Post!
}

type User {
	id: Int!
	name: String!
	email: String!
	posts: [Post!]!
}

type Post {
	id: Int!
	title: String!
	category: String!
	summary: String!
	authorId: Int!
}
`

// NewServer assembles the query and mutation resolvers into a single
// executable GraphQL server backed by st.
func NewServer(st *store.Store) (*graphql.Server, error) {
	schema, err := graphql.ParseSchema(schemaSource)
	if err != nil {
		return nil, fmt.Errorf("graph: %w", err)
	}
	srv, err := graphql.NewServer(schema, &Query{store: st}, &Mutation{store: st})
	if err != nil {
		return nil, fmt.Errorf("graph: %w", err)
	}
	return srv, nil
}

// intArg reads a required Int argument from a resolver's argument map.
func intArg(args map[string]graphql.Value, name string) (int, error) {
	n, err := strconv.Atoi(args[name].Scalar())
	if err != nil {
		return 0, fmt.Errorf("argument %s: %w", name, err)
	}
	return n, nil
}
