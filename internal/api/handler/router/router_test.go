package router

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRouter(t *testing.T) {
	ok := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	header := func(name, value string) func(http.Handler) http.Handler {
		return func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Header().Add(name, value)
				next.ServeHTTP(w, r)
			})
		}
	}

	rt := New(
		WithRoutes(Route{
			Path:        "/api/profit-data",
			Method:      http.MethodGet,
			Handler:     ok,
			Middlewares: []func(http.Handler) http.Handler{header("X-Order", "first"), header("X-Order", "second")},
		}),
		WithMethodNotAllowed(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusMethodNotAllowed)
		})),
		WithNotFound(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusTeapot)
		})),
	)

	tests := []struct {
		name           string
		method         string
		path           string
		expectedStatus int
	}{
		{"Rota registrada", http.MethodGet, "/api/profit-data", http.StatusOK},
		{"Método não registrado", http.MethodPost, "/api/profit-data", http.StatusMethodNotAllowed},
		{"Rota inexistente", http.MethodGet, "/nada", http.StatusTeapot},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			rt.ServeHTTP(rec, httptest.NewRequest(tt.method, tt.path, nil))

			assert.Equal(t, tt.expectedStatus, rec.Code)
			if tt.expectedStatus == http.StatusOK {
				assert.Equal(t, []string{"first", "second"}, rec.Header().Values("X-Order"))
			}
		})
	}
}
