package middleware

import (
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenStoreIssueAndValid(t *testing.T) {
	store := NewTokenStore(time.Minute)
	token := store.Issue()
	assert.True(t, store.Valid(token))
	assert.False(t, store.Valid("unknown"))
}

func TestTokenStoreExpiry(t *testing.T) {
	store := NewTokenStore(time.Millisecond)
	token := store.Issue()
	time.Sleep(5 * time.Millisecond)
	assert.False(t, store.Valid(token))
}

func TestTokenStoreSweep(t *testing.T) {
	store := NewTokenStore(time.Millisecond)
	for i := 0; i < 10; i++ {
		store.Issue()
	}
	time.Sleep(5 * time.Millisecond)
	store.sweep()
	assert.Zero(t, store.size())
}

func TestTokenStoreConcurrentAccess(t *testing.T) {
	store := NewTokenStore(time.Minute)
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			token := store.Issue()
			assert.True(t, store.Valid(token))
		}()
	}
	wg.Wait()
	assert.Equal(t, 50, store.size())
}

func csrfRouter(store *TokenStore) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(CSRF(store))
	ok := func(c *gin.Context) { c.Status(http.StatusOK) }
	r.GET("/x", ok)
	r.POST("/x", ok)
	return r
}

func TestCSRFSafeMethodPasses(t *testing.T) {
	r := csrfRouter(NewTokenStore(time.Minute))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/x", nil))
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestCSRFMissingTokenRejected(t *testing.T) {
	r := csrfRouter(NewTokenStore(time.Minute))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/x", nil))
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestCSRFDoubleSubmitAccepted(t *testing.T) {
	store := NewTokenStore(time.Minute)
	r := csrfRouter(store)
	token := store.Issue()

	req := httptest.NewRequest(http.MethodPost, "/x", nil)
	req.AddCookie(&http.Cookie{Name: CSRFCookieName, Value: token})
	req.Header.Set(CSRFHeaderName, token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestCSRFMismatchedPairRejected(t *testing.T) {
	store := NewTokenStore(time.Minute)
	r := csrfRouter(store)
	token := store.Issue()
	other := store.Issue()
	require.NotEqual(t, token, other)

	req := httptest.NewRequest(http.MethodPost, "/x", nil)
	req.AddCookie(&http.Cookie{Name: CSRFCookieName, Value: token})
	req.Header.Set(CSRFHeaderName, other)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusForbidden, w.Code)
}
