package meetings

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"PULSE-backend/internal/platform/graph"
)

const (
	fallbackPageSize = 50
	// nextLink を追う上限。50件 × 20ページ = 1000件まで見る
	maxFallbackPages = 20
)

type Store struct{ graph *graph.Client }

func NewStore(g *graph.Client) *Store { return &Store{graph: g} }

// FetchUserID: email → Graph ユーザID
func (s *Store) FetchUserID(ctx context.Context, token, email string) (string, error) {
	var u graphUser
	path := "/users/" + url.PathEscape(email)
	if err := s.graph.Get(ctx, token, path, nil, &u); err != nil {
		return "", err
	}
	return u.ID, nil
}

// FindByJoinURL: JoinWebUrl 完全一致で主催者の onlineMeetings を検索
func (s *Store) FindByJoinURL(ctx context.Context, token, organizerID, joinURL string) ([]onlineMeeting, error) {
	var page meetingPage
	path := "/users/" + url.PathEscape(organizerID) + "/onlineMeetings"
	// OData 文字列リテラル内のシングルクォートは '' にエスケープ
	escaped := strings.ReplaceAll(joinURL, "'", "''")
	err := s.graph.Get(ctx, token, path, map[string]string{
		"$filter": fmt.Sprintf("JoinWebUrl eq '%s'", escaped),
	}, &page)
	if err != nil {
		return nil, err
	}
	return page.Value, nil
}

// ListMeetings: 主催者の onlineMeetings を @odata.nextLink で辿って列挙する。
// 上限ページ数まで読んだら打ち切る。
func (s *Store) ListMeetings(ctx context.Context, token, organizerID string) ([]onlineMeeting, error) {
	var out []onlineMeeting

	var page meetingPage
	path := "/users/" + url.PathEscape(organizerID) + "/onlineMeetings"
	err := s.graph.Get(ctx, token, path, map[string]string{
		"$top": strconv.Itoa(fallbackPageSize),
	}, &page)
	if err != nil {
		return nil, err
	}
	out = append(out, page.Value...)

	for pages := 1; page.NextLink != "" && pages < maxFallbackPages; pages++ {
		next := page.NextLink
		page = meetingPage{}
		if err := s.graph.Get(ctx, token, next, nil, &page); err != nil {
			return nil, err
		}
		out = append(out, page.Value...)
	}
	return out, nil
}
