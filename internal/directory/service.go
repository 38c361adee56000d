package directory

import (
	"context"
	"log"

	lru "github.com/hashicorp/golang-lru/v2"

	"PULSE-backend/internal/platform/graph"
)

const DefaultCacheSize = 1024

type Service struct {
	store *Store
	cache *lru.Cache[string, PersonInfo]
}

func NewService(g *graph.Client, cacheSize int) *Service {
	if cacheSize <= 0 {
		cacheSize = DefaultCacheSize
	}
	// サイズ指定が正なら New は失敗しない
	cache, err := lru.New[string, PersonInfo](cacheSize)
	if err != nil {
		panic(err)
	}
	return &Service{store: NewStore(g), cache: cache}
}

// Resolve: email → PersonInfo。
// 成功・失敗を問わず結果をキャッシュする（同一セッション内で
// 失敗する呼び出しを繰り返さないための割り切り）。
func (s *Service) Resolve(ctx context.Context, token, email string) PersonInfo {
	if email == "" {
		return PersonInfo{Name: UnknownName, Team: UnknownTeam}
	}
	if info, ok := s.cache.Get(email); ok {
		return info
	}
	info := s.lookup(ctx, token, email)
	s.cache.Add(email, info)
	return info
}

func (s *Service) lookup(ctx context.Context, token, email string) PersonInfo {
	u, err := s.store.FetchUser(ctx, token, email)
	if err != nil {
		if status, ok := graph.AsStatus(err); ok {
			log.Printf("[DEBUG] directory: lookup %s returned status %d", email, status)
			return PersonInfo{Name: email, Team: TeamExternal}
		}
		log.Printf("[WARN] directory: lookup %s failed: %v", email, err)
		return PersonInfo{Name: email, Team: TeamError}
	}

	name := u.DisplayName
	if name == "" {
		name = email
	}
	team := u.Department
	if team == "" {
		team = TeamUnassigned
	}
	return PersonInfo{Name: name, Team: team}
}

// CacheLen: テスト・監視用
func (s *Service) CacheLen() int { return s.cache.Len() }
