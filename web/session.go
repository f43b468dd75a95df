package web

import (
	"crypto/rand"
	"encoding/hex"
	"sync"
	"time"

	"github.com/AmitVSingh/process-signals-dashboard/dataset"
)

// sessionCookie is the cookie carrying the session ID.
const sessionCookie = "sigdash_session"

type session struct {
	ds       *dataset.Dataset
	filename string
	lastSeen time.Time
}

// sessionStore keeps one uploaded dataset per browser session. Sessions are
// isolated; a re-upload replaces the dataset, idle sessions expire after the
// TTL.
type sessionStore struct {
	mu       sync.Mutex
	sessions map[string]*session
	ttl      time.Duration
	done     chan struct{}
}

func newSessionStore(ttl time.Duration) *sessionStore {
	s := &sessionStore{
		sessions: make(map[string]*session),
		ttl:      ttl,
		done:     make(chan struct{}),
	}
	go s.janitor()
	return s
}

// Put stores the dataset under the given ID, creating the session if needed.
func (s *sessionStore) Put(id string, ds *dataset.Dataset, filename string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[id] = &session{ds: ds, filename: filename, lastSeen: time.Now()}
}

// Get returns the session dataset, refreshing its idle timer.
func (s *sessionStore) Get(id string) (*dataset.Dataset, string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[id]
	if !ok {
		return nil, "", false
	}
	sess.lastSeen = time.Now()
	return sess.ds, sess.filename, true
}

// Close stops the janitor goroutine.
func (s *sessionStore) Close() {
	close(s.done)
}

func (s *sessionStore) janitor() {
	interval := s.ttl / 4
	if interval < time.Second {
		interval = time.Second
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-s.done:
			return
		case now := <-ticker.C:
			s.evict(now)
		}
	}
}

func (s *sessionStore) evict(now time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for id, sess := range s.sessions {
		if now.Sub(sess.lastSeen) > s.ttl {
			delete(s.sessions, id)
		}
	}
}

// newSessionID returns a 128-bit random hex ID.
func newSessionID() (string, error) {
	var buf [16]byte
	if _, err := rand.Read(buf[:]); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf[:]), nil
}
