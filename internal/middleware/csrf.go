package middleware

import (
	"net/http"
	"sync"
	"time"

	"budgetbuddy/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	CSRFCookieName = "bb_csrf"
	CSRFHeaderName = "X-CSRF-Token"
)

// TokenStore is a process-wide expiring token set for the double-submit
// cookie check. Multiple requests insert and verify concurrently, so all
// access goes through the mutex; a background sweep drops expired entries.
type TokenStore struct {
	mu     sync.Mutex
	tokens map[string]time.Time
	ttl    time.Duration

	done chan struct{}
	once sync.Once
}

func NewTokenStore(ttl time.Duration) *TokenStore {
	if ttl <= 0 {
		ttl = time.Hour
	}
	return &TokenStore{
		tokens: make(map[string]time.Time),
		ttl:    ttl,
		done:   make(chan struct{}),
	}
}

// Issue registers and returns a fresh token.
func (s *TokenStore) Issue() string {
	token := uuid.NewString()
	s.mu.Lock()
	s.tokens[token] = time.Now().Add(s.ttl)
	s.mu.Unlock()
	return token
}

// TTL returns the lifetime issued tokens carry.
func (s *TokenStore) TTL() time.Duration {
	return s.ttl
}

// Valid reports whether the token is registered and not expired.
func (s *TokenStore) Valid(token string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	expiry, ok := s.tokens[token]
	if !ok {
		return false
	}
	if time.Now().After(expiry) {
		delete(s.tokens, token)
		return false
	}
	return true
}

// StartSweeper removes expired tokens every interval until Stop is called.
func (s *TokenStore) StartSweeper(interval time.Duration) {
	if interval <= 0 {
		interval = 5 * time.Minute
	}
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				s.sweep()
			case <-s.done:
				return
			}
		}
	}()
}

// Stop terminates the sweeper.
func (s *TokenStore) Stop() {
	s.once.Do(func() { close(s.done) })
}

func (s *TokenStore) sweep() {
	now := time.Now()
	s.mu.Lock()
	for token, expiry := range s.tokens {
		if now.After(expiry) {
			delete(s.tokens, token)
		}
	}
	s.mu.Unlock()
}

func (s *TokenStore) size() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.tokens)
}

// CSRF enforces the double-submit cookie check on non-safe methods: the
// cookie and the header must both carry the same known token.
func CSRF(store *TokenStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		switch c.Request.Method {
		case http.MethodGet, http.MethodHead, http.MethodOptions:
			c.Next()
			return
		}

		cookie, err := c.Cookie(CSRFCookieName)
		header := c.GetHeader(CSRFHeaderName)
		if err != nil || cookie == "" || header == "" || cookie != header || !store.Valid(cookie) {
			utils.Error(c, http.StatusForbidden, "invalid or missing CSRF token")
			c.Abort()
			return
		}
		c.Next()
	}
}
