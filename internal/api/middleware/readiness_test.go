package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

type staticChecker bool

func (c staticChecker) Ready() bool { return bool(c) }

func TestReadinessGate(t *testing.T) {
	t.Parallel()

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	tests := []struct {
		name       string
		ready      bool
		wantStatus int
	}{
		{
			name:       "ready passes through",
			ready:      true,
			wantStatus: http.StatusOK,
		},
		{
			name:       "not ready returns 503",
			ready:      false,
			wantStatus: http.StatusServiceUnavailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := ReadinessGate(staticChecker(tt.ready))(next)

			req := httptest.NewRequest("GET", "/api/tasks", nil)
			recorder := httptest.NewRecorder()
			handler.ServeHTTP(recorder, req)

			assert.Equal(t, tt.wantStatus, recorder.Code)
			if !tt.ready {
				assert.Contains(t, recorder.Body.String(), "temporarily unavailable")
			}
		})
	}
}
