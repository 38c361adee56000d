package directory

import (
	"context"
	"net/url"

	"PULSE-backend/internal/platform/graph"
)

type Store struct{ graph *graph.Client }

func NewStore(g *graph.Client) *Store { return &Store{graph: g} }

// FetchUser: Graph /users/{email} からプロフィールを引く。
// email の大文字小文字は外部システムから渡されたまま使う（正規化しない）。
func (s *Store) FetchUser(ctx context.Context, token, email string) (graphUser, error) {
	var u graphUser
	path := "/users/" + url.PathEscape(email)
	err := s.graph.Get(ctx, token, path, map[string]string{
		"$select": "department,displayName",
	}, &u)
	return u, err
}
