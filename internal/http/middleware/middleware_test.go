package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeTokens map[string]int64

func (f fakeTokens) ParseToken(raw string) (int64, error) {
	if id, ok := f[raw]; ok {
		return id, nil
	}
	return 0, errors.New("bad token")
}

func newEngine() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(RequestID())
	r.GET("/me", RequireUser(fakeTokens{"good": 42}), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"user_id": UserID(c), "request_id": GetRequestID(c)})
	})
	return r
}

func TestRequireUser(t *testing.T) {
	r := newEngine()
	cases := []struct {
		header string
		status int
	}{
		{"", http.StatusUnauthorized},
		{"Basic good", http.StatusUnauthorized},
		{"Bearer nope", http.StatusUnauthorized},
		{"Bearer good", http.StatusOK},
		{"bearer   good", http.StatusOK},
	}
	for _, tc := range cases {
		req := httptest.NewRequest(http.MethodGet, "/me", nil)
		if tc.header != "" {
			req.Header.Set("Authorization", tc.header)
		}
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		assert.Equal(t, tc.status, w.Code, "header %q", tc.header)
	}
}

func TestRequestIDKeepsIncomingHeader(t *testing.T) {
	r := newEngine()

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("X-Request-ID", "abc-123")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, "abc-123", w.Header().Get("X-Request-ID"))

	req = httptest.NewRequest(http.MethodGet, "/me", nil)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Len(t, w.Header().Get("X-Request-ID"), 36)
	assert.Contains(t, w.Body.String(), w.Header().Get("X-Request-ID"))
}
