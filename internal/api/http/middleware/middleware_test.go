package middleware

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dtroode/nutrilog-server/internal/logger"
	"github.com/dtroode/nutrilog-server/internal/metrics"
	nooplog "github.com/dtroode/nutrilog-server/internal/testutil"
)

func TestLogging_Handle(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	lg := NewLogging(logger.NewWithWriter(&buf, 0, "text"))

	mux := chi.NewRouter()
	mux.Use(chimw.RequestID, lg.Handle)
	mux.Get("/teapot", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})
	mux.Get("/boom", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	req := httptest.NewRequest(http.MethodGet, "/teapot", nil)
	req.Header.Set(chimw.RequestIDHeader, "req-42")
	mux.ServeHTTP(httptest.NewRecorder(), req)

	out := buf.String()
	assert.Contains(t, out, "HTTP request completed")
	assert.Contains(t, out, "status=418")
	assert.Contains(t, out, "path=/teapot")
	assert.Contains(t, out, "request_id=req-42")

	buf.Reset()
	mux.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/boom", nil))
	assert.Contains(t, buf.String(), "level=ERROR")
}

func TestLogging_Handle_ImplicitOK(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	lg := NewLogging(logger.NewWithWriter(&buf, 0, "text"))

	h := lg.Handle(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {}))
	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Contains(t, buf.String(), "status=200")
}

func TestRecovery_Handle(t *testing.T) {
	t.Parallel()

	rc := NewRecovery(nooplog.MakeNoopLogger())
	h := rc.Handle(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("kaboom")
	}))

	rec := httptest.NewRecorder()
	require.NotPanics(t, func() {
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	})

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"status":"error","error":"internal_error","detail":"internal server error"}`, rec.Body.String())
}

func TestRecovery_Handle_AbortHandlerPropagates(t *testing.T) {
	t.Parallel()

	rc := NewRecovery(nooplog.MakeNoopLogger())
	h := rc.Handle(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic(http.ErrAbortHandler)
	}))

	assert.Panics(t, func() {
		h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
	})
}

func TestMetrics_Handle(t *testing.T) {
	t.Parallel()

	m := metrics.New()
	mux := chi.NewRouter()
	mux.Use(NewMetrics(m).Handle)
	mux.Get("/meals/{user}", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("ok"))
	})

	for _, user := range []string{"a", "b", "c"} {
		mux.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/meals/"+user, nil))
	}
	mux.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/nope", nil))

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	body := rec.Body.String()

	assert.Contains(t, body, `nutrilog_http_requests_total{method="GET",route="/meals/{user}",status="200"} 3`)
	assert.Contains(t, body, `nutrilog_http_requests_total{method="GET",route="unmatched",status="404"} 1`)
	assert.False(t, strings.Contains(body, `route="/meals/a"`))
	assert.Contains(t, body, "nutrilog_http_requests_in_flight 0")
}
