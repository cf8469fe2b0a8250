package api

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/Gustavowagen/sammenknukket-maskin/internal/model"
)

// session is one uploaded balance workbook held in memory. Nothing here is
// persisted; closing the browser tab and re-uploading starts fresh.
type session struct {
	id         string
	filename   string
	workbook   *model.Workbook
	processing bool
	expiresAt  time.Time
}

type sessionStore struct {
	mu    sync.Mutex
	items map[string]*session
	ttl   time.Duration
}

func newSessionStore(ttl time.Duration) *sessionStore {
	return &sessionStore{
		items: make(map[string]*session),
		ttl:   ttl,
	}
}

func (s *sessionStore) put(filename string, wb *model.Workbook) *session {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.purgeExpiredLocked(time.Now())

	sess := &session{
		id:        uuid.New().String(),
		filename:  filename,
		workbook:  wb,
		expiresAt: time.Now().Add(s.ttl),
	}
	s.items[sess.id] = sess
	return sess
}

func (s *sessionStore) get(id string) (*session, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.purgeExpiredLocked(time.Now())

	sess, ok := s.items[id]
	if !ok {
		return nil, false
	}
	sess.expiresAt = time.Now().Add(s.ttl)
	return sess, true
}

// beginProcessing flips the session's processing flag. Returns false when a
// filter or download is already in flight; actions on one session are
// mutually exclusive by construction.
func (s *sessionStore) beginProcessing(id string) (*session, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.items[id]
	if !ok || sess.processing {
		return nil, false
	}
	sess.processing = true
	return sess, true
}

// endProcessing releases the flag. Callers defer this so the flag is
// released on every exit path, including failures.
func (s *sessionStore) endProcessing(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if sess, ok := s.items[id]; ok {
		sess.processing = false
	}
}

func (s *sessionStore) count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.items)
}

func (s *sessionStore) purgeExpiredLocked(now time.Time) {
	for k, v := range s.items {
		if !v.processing && now.After(v.expiresAt) {
			delete(s.items, k)
		}
	}
}
