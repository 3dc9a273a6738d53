package httpapi

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCORS(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		allowed     []string
		method      string
		origin      string
		wantStatus  int
		wantOrigin  string
		wantVary    bool
		wantReached bool
	}{
		{
			name:        "listed origin is echoed",
			allowed:     []string{"https://club.example.com"},
			method:      http.MethodGet,
			origin:      "https://club.example.com",
			wantStatus:  http.StatusOK,
			wantOrigin:  "https://club.example.com",
			wantVary:    true,
			wantReached: true,
		},
		{
			name:        "wildcard answers star",
			allowed:     []string{" * "},
			method:      http.MethodPost,
			origin:      "http://localhost:5173",
			wantStatus:  http.StatusOK,
			wantOrigin:  "*",
			wantReached: true,
		},
		{
			name:        "unknown origin gets no headers",
			allowed:     []string{"https://club.example.com"},
			method:      http.MethodGet,
			origin:      "https://rival.example.com",
			wantStatus:  http.StatusOK,
			wantReached: true,
		},
		{
			name:       "preflight stops before the handler",
			allowed:    []string{"https://club.example.com"},
			method:     http.MethodOptions,
			origin:     "https://club.example.com",
			wantStatus: http.StatusNoContent,
			wantOrigin: "https://club.example.com",
			wantVary:   true,
		},
		{
			name:        "no origin passes through",
			allowed:     []string{"*"},
			method:      http.MethodOptions,
			wantStatus:  http.StatusOK,
			wantReached: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			reached := false
			handler := CORS(tc.allowed, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				reached = true
				w.WriteHeader(http.StatusOK)
			}))

			req := httptest.NewRequest(tc.method, "/v1/league/standings", nil)
			if tc.origin != "" {
				req.Header.Set("Origin", tc.origin)
			}
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			assert.Equal(t, tc.wantStatus, rec.Code)
			assert.Equal(t, tc.wantReached, reached)
			assert.Equal(t, tc.wantOrigin, rec.Header().Get("Access-Control-Allow-Origin"))
			assert.Equal(t, tc.wantVary, rec.Header().Get("Vary") == "Origin")
			if tc.wantOrigin != "" {
				assert.Contains(t, rec.Header().Get("Access-Control-Allow-Methods"), "PUT")
			}
		})
	}
}
