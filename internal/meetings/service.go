package meetings

import (
	"context"
	"log"
	"net/url"
	"strings"

	"PULSE-backend/internal/platform/graph"
)

const (
	// 共有リンクに埋め込まれたスレッドIDの目印
	joinLinkMarker     = "meetup-join/"
	threadIDTerminator = "/0?"
)

type Service struct{ store *Store }

func NewService(g *graph.Client) *Service {
	return &Service{store: NewStore(g)}
}

// ResolveOrganizer: 主催者メールアドレス → Graph ユーザID。
// Graph がエラーステータスを返したら「主催者が見つからない」として扱う。
// 通信エラーはそのまま上げる（404 と区別する）。
func (s *Service) ResolveOrganizer(ctx context.Context, token, email string) (string, error) {
	if email == "" {
		return "", NewInvalidArgumentError("organizer_email is required")
	}
	id, err := s.store.FetchUserID(ctx, token, email)
	if err != nil {
		if _, ok := graph.AsStatus(err); ok {
			return "", NewOrganizerNotFoundError(email)
		}
		return "", err
	}
	if id == "" {
		return "", NewOrganizerNotFoundError(email)
	}
	return id, nil
}

// LocateMeeting: 共有リンク → 会議ID。
// 戦略1: JoinWebUrl 完全一致。1件以上ヒットしたら先頭を返す（戦略2には進まない）。
// 戦略2: リンクからスレッドIDを抜き出し、主催者の会議一覧から部分一致で探す。
// 戦略2内の失敗はすべて「見つからず」に落とす（エラーは伝播させない）。
func (s *Service) LocateMeeting(ctx context.Context, token, organizerID, joinLink string) (string, error) {
	if joinLink == "" {
		return "", NewInvalidArgumentError("meeting_link is required")
	}

	ms, err := s.store.FindByJoinURL(ctx, token, organizerID, joinLink)
	if err == nil && len(ms) > 0 {
		return ms[0].ID, nil
	}
	if err != nil {
		log.Printf("[DEBUG] meetings: exact match failed (%v), trying fallback...", err)
	} else {
		log.Printf("[DEBUG] meetings: exact match returned no results, trying fallback...")
	}

	if id, ok := s.locateByThreadID(ctx, token, organizerID, joinLink); ok {
		return id, nil
	}
	return "", NewMeetingNotFoundError()
}

func (s *Service) locateByThreadID(ctx context.Context, token, organizerID, joinLink string) (string, bool) {
	threadID, ok := extractThreadID(joinLink)
	if !ok {
		return "", false
	}

	ms, err := s.store.ListMeetings(ctx, token, organizerID)
	if err != nil {
		log.Printf("[DEBUG] meetings: fallback listing failed: %v", err)
		return "", false
	}
	for _, m := range ms {
		decoded, err := url.QueryUnescape(m.JoinWebURL)
		if err != nil {
			decoded = m.JoinWebURL
		}
		if strings.Contains(decoded, threadID) {
			return m.ID, true
		}
	}
	return "", false
}

// extractThreadID: URLデコードしたリンクから meetup-join/ と /0? に挟まれた
// スレッドIDを取り出す。目印が無ければ不一致扱い。
func extractThreadID(joinLink string) (string, bool) {
	decoded, err := url.QueryUnescape(joinLink)
	if err != nil {
		return "", false
	}
	i := strings.Index(decoded, joinLinkMarker)
	if i < 0 {
		return "", false
	}
	rest := decoded[i+len(joinLinkMarker):]
	if j := strings.Index(rest, threadIDTerminator); j >= 0 {
		rest = rest[:j]
	}
	if rest == "" {
		return "", false
	}
	return rest, true
}
