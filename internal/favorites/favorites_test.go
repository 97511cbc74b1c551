package favorites

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/sabinstha/brewdash/internal/api"
	"github.com/sabinstha/brewdash/internal/session"
)

func TestIsFavoriteSwallowsErrors(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := NewClient(api.NewClient(srv.URL, time.Second, session.NewMemStore(), nil))
	if c.IsFavorite(context.Background(), 5) {
		t.Fatalf("expected failed check to read as not-favorite")
	}
}

func TestIsFavoriteMatchesByProduct(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[{"id": 1, "product": 5}, {"id": 2, "product": 9}]`))
	}))
	defer srv.Close()

	c := NewClient(api.NewClient(srv.URL, time.Second, session.NewMemStore(), nil))
	if !c.IsFavorite(context.Background(), 9) {
		t.Fatalf("expected product 9 to be a favorite")
	}
	if c.IsFavorite(context.Background(), 7) {
		t.Fatalf("expected product 7 to not be a favorite")
	}
}
