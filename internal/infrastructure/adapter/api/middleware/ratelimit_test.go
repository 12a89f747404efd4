package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"

	domainerr "github.com/amirhossein-jamali/medimeet/internal/domain/error"
	"github.com/amirhossein-jamali/medimeet/internal/infrastructure/adapter/logger"
)

var windowMs = time.Minute.Milliseconds()

func newRateLimitedRouter(t *testing.T) (*gin.Engine, redismock.ClientMock) {
	t.Helper()

	client, mock := redismock.NewClientMock()
	t.Cleanup(func() { _ = client.Close() })

	router := gin.New()
	router.Use(RateLimiter(client, RateLimitConfig{Requests: 2, Window: time.Minute}, logger.NewNoopLogger()))
	router.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })
	return router, mock
}

func expectWindowHit(mock redismock.ClientMock, key string) *redismock.ExpectedCmd {
	return mock.ExpectEvalSha(fixedWindowScript.Hash(), []string{key}, windowMs)
}

func serveFrom(router *gin.Engine, ip string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = ip + ":4321"
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestRateLimiter_FixedWindow(t *testing.T) {
	router, mock := newRateLimitedRouter(t)
	key := "ratelimit:192.168.1.1"

	expectWindowHit(mock, key).SetVal(int64(1))
	expectWindowHit(mock, key).SetVal(int64(2))
	expectWindowHit(mock, key).SetVal(int64(3))

	first := serveFrom(router, "192.168.1.1")
	assert.Equal(t, http.StatusOK, first.Code)
	assert.Equal(t, "2", first.Header().Get("X-RateLimit-Limit"))
	assert.Equal(t, "1", first.Header().Get("X-RateLimit-Remaining"))

	second := serveFrom(router, "192.168.1.1")
	assert.Equal(t, http.StatusOK, second.Code)
	assert.Equal(t, "0", second.Header().Get("X-RateLimit-Remaining"))

	third := serveFrom(router, "192.168.1.1")
	assert.Equal(t, http.StatusTooManyRequests, third.Code)
	assert.Equal(t, domainerr.CodeRateLimited, decodeError(t, third).Code)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRateLimiter_FailsOpen(t *testing.T) {
	router, mock := newRateLimitedRouter(t)

	expectWindowHit(mock, "ratelimit:10.0.0.7").SetErr(errors.New("redis down"))

	rec := serveFrom(router, "10.0.0.7")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}

// A failed window write leaves no counter behind: every request carries the window
// length, so the next one starts a fresh, expiring window instead of being throttled.
func TestRateLimiter_FailedWindowWriteDoesNotThrottle(t *testing.T) {
	router, mock := newRateLimitedRouter(t)
	key := "ratelimit:10.0.0.8"

	expectWindowHit(mock, key).SetErr(errors.New("READONLY You can't write against a read only replica."))
	expectWindowHit(mock, key).SetVal(int64(1))
	expectWindowHit(mock, key).SetVal(int64(2))

	codes := make([]int, 0, 3)
	for range 3 {
		codes = append(codes, serveFrom(router, "10.0.0.8").Code)
	}

	assert.Equal(t, []int{http.StatusOK, http.StatusOK, http.StatusOK}, codes)
	assert.NoError(t, mock.ExpectationsWereMet())
}
