package middleware

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/linskybing/civictrack/internal/domain/user"
	"github.com/linskybing/civictrack/internal/metrics"
	"github.com/linskybing/civictrack/pkg/utils"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type memCounter struct {
	mu   sync.Mutex
	hits map[string]int64
	err  error
}

func (m *memCounter) Hit(_ context.Context, key string, window time.Duration) (int64, time.Duration, error) {
	if m.err != nil {
		return 0, 0, m.err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.hits == nil {
		m.hits = map[string]int64{}
	}
	m.hits[key]++
	return m.hits[key], window / 2, nil
}

func newEngine(handlers ...gin.HandlerFunc) *gin.Engine {
	r := gin.New()
	chain := append([]gin.HandlerFunc{JWTAuthMiddleware()}, handlers...)
	chain = append(chain, func(c *gin.Context) {
		actor, _ := utils.GetActor(c)
		c.JSON(http.StatusOK, gin.H{"user_id": actor.ID, "role": actor.Role})
	})
	r.GET("/p", chain...)
	return r
}

func get(t *testing.T, r http.Handler, token string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/p", nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func mustToken(t *testing.T, id uint, role user.Role, ttl time.Duration) string {
	t.Helper()
	tok, err := GenerateToken(id, role, ttl)
	require.NoError(t, err)
	return tok
}

func TestTokenRoundTrip(t *testing.T) {
	Init("k1", "civictrack")
	tok := mustToken(t, 42, user.RoleDepartment, time.Hour)

	claims, err := ParseToken(tok)
	require.NoError(t, err)
	assert.Equal(t, uint(42), claims.UserID)
	assert.Equal(t, "department", claims.Role)
	assert.Equal(t, "42", claims.Subject)
	assert.Equal(t, "civictrack", claims.Issuer)

	Init("other-key", "civictrack")
	_, err = ParseToken(tok)
	assert.Error(t, err)
}

func TestJWTAuthMiddleware(t *testing.T) {
	Init("k1", "civictrack")
	r := newEngine()

	assert.Equal(t, http.StatusUnauthorized, get(t, r, "").Code)
	assert.Equal(t, http.StatusUnauthorized, get(t, r, "garbage").Code)
	assert.Equal(t, http.StatusUnauthorized, get(t, r, mustToken(t, 1, user.RoleCitizen, -time.Minute)).Code)
	assert.Equal(t, http.StatusUnauthorized, get(t, r, mustToken(t, 1, user.Role("mayor"), time.Hour)).Code)

	w := get(t, r, mustToken(t, 7, user.RoleCitizen, time.Hour))
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"user_id":7,"role":"citizen"}`, w.Body.String())

	req := httptest.NewRequest(http.MethodGet, "/p", nil)
	req.Header.Set("Authorization", "Token abc")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	req = httptest.NewRequest(http.MethodGet, "/p?token="+mustToken(t, 9, user.RoleAdmin, time.Hour), nil)
	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRequireRole(t *testing.T) {
	Init("k1", "civictrack")

	tests := []struct {
		name  string
		guard gin.HandlerFunc
		role  user.Role
		want  int
	}{
		{"admin passes admin", Admin(), user.RoleAdmin, http.StatusOK},
		{"staff blocked from admin", Admin(), user.RoleDepartment, http.StatusForbidden},
		{"department passes staff", Staff(), user.RoleDepartment, http.StatusOK},
		{"admin passes staff", Staff(), user.RoleAdmin, http.StatusOK},
		{"citizen blocked from staff", Staff(), user.RoleCitizen, http.StatusForbidden},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newEngine(tt.guard)
			assert.Equal(t, tt.want, get(t, r, mustToken(t, 1, tt.role, time.Hour)).Code)
		})
	}
}

func TestReportRateLimiter(t *testing.T) {
	Init("k1", "civictrack")
	reg := prometheus.NewRegistry()
	m := metrics.New(reg)
	counter := &memCounter{}
	r := newEngine(ReportRateLimiter(counter, 2, time.Hour, m))

	alice := mustToken(t, 1, user.RoleCitizen, time.Hour)
	bob := mustToken(t, 2, user.RoleCitizen, time.Hour)

	assert.Equal(t, http.StatusOK, get(t, r, alice).Code)
	assert.Equal(t, http.StatusOK, get(t, r, alice).Code)

	w := get(t, r, alice)
	require.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Equal(t, "1800", w.Header().Get("Retry-After"))
	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "rate limit exceeded", body["error"])

	assert.Equal(t, http.StatusOK, get(t, r, bob).Code)
	assert.Equal(t, int64(3), counter.hits["ratelimit:reports:1"])

	families, err := reg.Gather()
	require.NoError(t, err)
	var limited float64
	for _, mf := range families {
		if mf.GetName() == "civictrack_report_rate_limited_total" {
			limited = mf.GetMetric()[0].GetCounter().GetValue()
		}
	}
	assert.Equal(t, 1.0, limited)
}

func TestReportRateLimiter_FailsOpen(t *testing.T) {
	Init("k1", "civictrack")
	r := newEngine(ReportRateLimiter(&memCounter{err: errors.New("redis down")}, 1, time.Hour, nil))
	tok := mustToken(t, 1, user.RoleCitizen, time.Hour)
	for i := 0; i < 3; i++ {
		assert.Equal(t, http.StatusOK, get(t, r, tok).Code)
	}
}

func TestReportRateLimiter_DisabledWithoutCounter(t *testing.T) {
	Init("k1", "civictrack")
	r := newEngine(ReportRateLimiter(nil, 1, time.Hour, nil))
	tok := mustToken(t, 1, user.RoleCitizen, time.Hour)
	assert.Equal(t, http.StatusOK, get(t, r, tok).Code)
	assert.Equal(t, http.StatusOK, get(t, r, tok).Code)
}

func TestCORSMiddleware(t *testing.T) {
	r := gin.New()
	r.Use(CORSMiddleware([]string{"http://localhost:5173"}))
	r.GET("/x", func(c *gin.Context) { c.Status(http.StatusOK) })

	req := httptest.NewRequest(http.MethodGet, "/x", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, "http://localhost:5173", w.Header().Get("Access-Control-Allow-Origin"))

	req = httptest.NewRequest(http.MethodGet, "/x", nil)
	req.Header.Set("Origin", "http://evil.example")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusForbidden, w.Code)
}
