package wizard

import (
	"errors"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
)

// CookieName references the draft from the browser. The draft itself never
// leaves the server.
const CookieName = "draft"

var ErrDraftNotFound = errors.New("draft not found")

// Store keeps drafts in memory only. A draft lives for the duration of one
// wizard screen: it is deleted on submit and swept once its deadline passes.
type Store struct {
	mu     sync.Mutex
	ttl    time.Duration
	drafts map[string]*entry
}

type entry struct {
	draft    *Draft
	deadline time.Time
}

func NewStore(ttl time.Duration) *Store {
	return &Store{
		ttl:    ttl,
		drafts: make(map[string]*entry),
	}
}

func (s *Store) Create(now time.Time) *Draft {
	s.mu.Lock()
	defer s.mu.Unlock()

	draft := &Draft{
		ID:   uuid.NewString(),
		Step: StepDetails,
	}

	s.drafts[draft.ID] = &entry{
		draft:    draft,
		deadline: now.Add(s.ttl),
	}

	return draft
}

// Get returns a live draft and pushes its deadline out. An expired draft is
// gone, exactly as if the user had navigated away.
func (s *Store) Get(id string, now time.Time) (*Draft, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.drafts[id]
	if !ok {
		return nil, ErrDraftNotFound
	}

	if now.After(e.deadline) {
		delete(s.drafts, id)
		return nil, ErrDraftNotFound
	}

	e.deadline = now.Add(s.ttl)

	return e.draft, nil
}

func (s *Store) Delete(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.drafts, id)
}

// FromRequest resolves the draft referenced by the request's draft cookie.
func (s *Store) FromRequest(r *http.Request) (*Draft, error) {
	c, err := r.Cookie(CookieName)
	if err != nil || c.Value == "" {
		return nil, ErrDraftNotFound
	}

	return s.Get(c.Value, time.Now())
}

// SweepExpired drops every draft past its deadline and reports how many.
func (s *Store) SweepExpired(now time.Time) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	swept := 0
	for id, e := range s.drafts {
		if now.After(e.deadline) {
			delete(s.drafts, id)
			swept++
		}
	}

	return swept
}
