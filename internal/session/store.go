// 방문자별 view state를 메모리에 보관하는 저장소
//
// go-cache의 TTL로 만료되며 디스크/DB에는 저장하지 않습니다.
// 접근할 때마다 만료 시간이 연장됩니다 (sliding expiration).

package session

import (
	"time"

	"github.com/google/uuid"
	gocache "github.com/patrickmn/go-cache"
)

type Store struct {
	cache *gocache.Cache
	ttl   time.Duration
}

func NewStore(ttl time.Duration) *Store {
	if ttl <= 0 {
		ttl = 2 * time.Hour
	}
	return &Store{
		cache: gocache.New(ttl, ttl/2),
		ttl:   ttl,
	}
}

// Get returns a live visitor and refreshes its expiry.
func (s *Store) Get(id string) (*Visitor, bool) {
	if id == "" {
		return nil, false
	}
	val, ok := s.cache.Get(id)
	if !ok {
		return nil, false
	}
	v, ok := val.(*Visitor)
	if !ok {
		return nil, false
	}
	s.cache.Set(id, v, s.ttl)
	return v, true
}

// Create registers a new visitor with a random id.
func (s *Store) Create() *Visitor {
	v := newVisitor(uuid.NewString())
	s.cache.Set(v.ID, v, s.ttl)
	return v
}

func (s *Store) Delete(id string) {
	s.cache.Delete(id)
}

func (s *Store) Count() int {
	return s.cache.ItemCount()
}

func (s *Store) TTL() time.Duration {
	return s.ttl
}
