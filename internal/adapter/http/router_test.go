package http

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"github.com/martin00001313/TransactionProcessing/internal/adapter/http/handler"
	"github.com/martin00001313/TransactionProcessing/internal/engine"
)

func newTestRouter() http.Handler {
	processor := engine.New(engine.Policy{}, zerolog.Nop(), nil)
	return NewRouter(RouterConfig{
		EventHandler:  handler.NewEventHandler(processor),
		HealthHandler: handler.NewHealthHandler(nil),
		Logger:        zerolog.Nop(),
	})
}

func TestRouter_Routes(t *testing.T) {
	router := newTestRouter()

	tests := []struct {
		name       string
		method     string
		path       string
		body       string
		wantStatus int
	}{
		{name: "health", method: http.MethodGet, path: "/health", wantStatus: http.StatusOK},
		{name: "ready", method: http.MethodGet, path: "/ready", wantStatus: http.StatusOK},
		{name: "metrics", method: http.MethodGet, path: "/metrics", wantStatus: http.StatusOK},
		{
			name:       "submit event",
			method:     http.MethodPost,
			path:       "/api/v1/events",
			body:       `{"type":"deposit","client":1,"tx":1,"amount":"10"}`,
			wantStatus: http.StatusAccepted,
		},
		{name: "snapshot", method: http.MethodGet, path: "/api/v1/snapshot", wantStatus: http.StatusOK},
		{name: "accounts", method: http.MethodGet, path: "/api/v1/accounts/", wantStatus: http.StatusOK},
		{name: "unknown route", method: http.MethodGet, path: "/nope", wantStatus: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var req *http.Request
			if tt.body != "" {
				req = httptest.NewRequest(tt.method, tt.path, strings.NewReader(tt.body))
			} else {
				req = httptest.NewRequest(tt.method, tt.path, nil)
			}

			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			if rec.Code != tt.wantStatus {
				t.Fatalf("%s %s: expected %d, got %d", tt.method, tt.path, tt.wantStatus, rec.Code)
			}
		})
	}
}

func TestRouter_SubmitThenSnapshot(t *testing.T) {
	router := newTestRouter()

	events := []string{
		`{"type":"deposit","client":1,"tx":1,"amount":"10.0"}`,
		`{"type":"dispute","client":1,"tx":1}`,
	}
	for _, body := range events {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/v1/events", strings.NewReader(body)))
		if rec.Code != http.StatusAccepted {
			t.Fatalf("event rejected: %s", rec.Body.String())
		}
	}

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/snapshot", nil))

	want := "client,available,held,total,locked\n1,0.0000,10.0000,10.0000,false\n"
	if rec.Body.String() != want {
		t.Fatalf("unexpected snapshot:\n%s", rec.Body.String())
	}
}
