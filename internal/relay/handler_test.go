//go:build !integration

package relay

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"AdminRelay/pkg/correlation"
	"AdminRelay/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newEngine(t *testing.T, upstreamURL string, timeout time.Duration) *gin.Engine {
	t.Helper()

	gin.SetMode(gin.TestMode)
	engine := gin.New()
	engine.Use(logger.CorrelationMiddleware())

	forwarder := NewForwarder(upstreamURL, timeout, nil)
	NewRouter(NewLoginHandler(forwarder, logger.Discard())).SetUp(engine)
	return engine
}

func postLogin(engine *gin.Engine, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, LoginRoute, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, req)
	return rec
}

func assertCORS(t *testing.T, rec *httptest.ResponseRecorder) {
	t.Helper()
	assert.Equal(t, "*", rec.Header().Get(HeaderAllowOrigin))
	assert.Equal(t, "POST, OPTIONS", rec.Header().Get(HeaderAllowMethods))
	assert.Equal(t, "Content-Type", rec.Header().Get(HeaderAllowHeaders))
}

func assertInternalError(t *testing.T, rec *httptest.ResponseRecorder) {
	t.Helper()
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"success":false,"message":"Internal server error"}`, rec.Body.String())
}

func TestLoginHandler_RelaysStatusAndBody(t *testing.T) {
	testCases := []struct {
		name   string
		status int
		body   string
	}{
		{name: "success", status: http.StatusOK, body: `{"success":true,"message":"ok","data":{"token":"abc"}}`},
		{name: "rejected", status: http.StatusUnauthorized, body: `{"success":false,"message":"Invalid credentials"}`},
		{name: "backend error", status: http.StatusBadGateway, body: `{"success":false,"message":"down"}`},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, http.MethodPost, r.Method)
				assert.Equal(t, "/api/admin/login", r.URL.Path)
				assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

				raw, _ := io.ReadAll(r.Body)
				assert.JSONEq(t, `{"email":"a@b.c","password":"pw"}`, string(raw))

				w.WriteHeader(tc.status)
				_, _ = w.Write([]byte(tc.body))
			}))
			defer upstream.Close()

			rec := postLogin(newEngine(t, upstream.URL+"/api", time.Second), `{"email":"a@b.c","password":"pw"}`)

			assert.Equal(t, tc.status, rec.Code)
			assert.JSONEq(t, tc.body, rec.Body.String())
			assertCORS(t, rec)
		})
	}
}

func TestLoginHandler_ForwardsBodyUnchanged(t *testing.T) {
	const body = `{"email":"a@b.c","password":"pw","extra":[1,2,{"x":null}]}`

	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw, _ := io.ReadAll(r.Body)
		assert.Equal(t, body, string(raw))
		assert.Equal(t, "corr-relay", r.Header.Get(correlation.HeaderName))
		_, _ = w.Write([]byte(`{"success":true}`))
	}))
	defer upstream.Close()

	req := httptest.NewRequest(http.MethodPost, LoginRoute, strings.NewReader(body))
	req.Header.Set(correlation.HeaderName, "corr-relay")
	rec := httptest.NewRecorder()
	newEngine(t, upstream.URL, time.Second).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestLoginHandler_Failures(t *testing.T) {
	t.Run("unreachable backend", func(t *testing.T) {
		upstream := httptest.NewServer(http.NotFoundHandler())
		url := upstream.URL
		upstream.Close()

		rec := postLogin(newEngine(t, url, time.Second), `{"email":"a@b.c"}`)

		assertInternalError(t, rec)
		assertCORS(t, rec)
		assert.NotContains(t, rec.Body.String(), "connection refused")
	})

	t.Run("non-JSON reply", func(t *testing.T) {
		upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
			_, _ = w.Write([]byte(`<html>Bad Gateway</html>`))
		}))
		defer upstream.Close()

		rec := postLogin(newEngine(t, upstream.URL, time.Second), `{"email":"a@b.c"}`)

		assertInternalError(t, rec)
	})

	t.Run("empty reply", func(t *testing.T) {
		upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNoContent)
		}))
		defer upstream.Close()

		rec := postLogin(newEngine(t, upstream.URL, time.Second), `{"email":"a@b.c"}`)

		assertInternalError(t, rec)
	})

	t.Run("non-JSON request is not forwarded", func(t *testing.T) {
		var calls atomic.Int32
		upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			calls.Add(1)
		}))
		defer upstream.Close()

		rec := postLogin(newEngine(t, upstream.URL, time.Second), `email=a@b.c`)

		assertInternalError(t, rec)
		assert.Zero(t, calls.Load())
	})

	t.Run("oversized request is not forwarded", func(t *testing.T) {
		var calls atomic.Int32
		upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			calls.Add(1)
		}))
		defer upstream.Close()

		body := `{"email":"` + strings.Repeat("a", maxBodyBytes) + `"}`
		rec := postLogin(newEngine(t, upstream.URL, time.Second), body)

		assertInternalError(t, rec)
		assertCORS(t, rec)
		assert.Zero(t, calls.Load())
	})

	t.Run("timeout", func(t *testing.T) {
		release := make(chan struct{})
		upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			select {
			case <-release:
			case <-r.Context().Done():
			}
		}))
		defer upstream.Close()
		defer close(release)

		start := time.Now()
		rec := postLogin(newEngine(t, upstream.URL, 50*time.Millisecond), `{"email":"a@b.c"}`)

		assert.Less(t, time.Since(start), time.Second)
		assertInternalError(t, rec)
	})
}

func TestPreflight(t *testing.T) {
	var calls atomic.Int32
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
	}))
	url := upstream.URL
	upstream.Close()

	req := httptest.NewRequest(http.MethodOptions, LoginRoute, nil)
	req.Header.Set("Origin", "http://dashboard.local")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	rec := httptest.NewRecorder()
	newEngine(t, url, time.Second).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, rec.Body.String())
	assertCORS(t, rec)
	assert.Zero(t, calls.Load())
}

func TestForwarder_ReplyIsVerbatim(t *testing.T) {
	const reply = `{"success":true,  "data":{"b":2,"a":1}}`
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(reply))
	}))
	defer upstream.Close()

	got, err := NewForwarder(upstream.URL, time.Second, nil).Forward(context.Background(), http.MethodPost, loginPath, []byte(`{}`))

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, got.Status)
	assert.Equal(t, json.RawMessage(reply), got.Body)
}
