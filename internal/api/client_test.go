package api

import (
	"bytes"
	"context"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/sabinstha/brewdash/internal/session"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) (*Client, *session.MemStore, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	sess := session.NewMemStore()
	return NewClient(srv.URL, 5*time.Second, sess, nil), sess, srv
}

func TestBearerHeaderAttachedWhenAuthenticated(t *testing.T) {
	var gotAuth string
	client, sess, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte(`{}`))
	})

	if _, err := client.Get(context.Background(), "/api/category/"); err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if gotAuth != "" {
		t.Fatalf("expected no Authorization header without a token, got %q", gotAuth)
	}

	sess.SetToken("tok123")
	if _, err := client.Get(context.Background(), "/api/category/"); err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if gotAuth != "Bearer tok123" {
		t.Fatalf("expected 'Bearer tok123', got %q", gotAuth)
	}
}

func TestUnauthorizedClearsSessionOnceAndFiresHook(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	sess := session.NewMemStore()
	sess.SetToken("stale")

	hookCalls := 0
	client := NewClient(srv.URL, 5*time.Second, sess, func() { hookCalls++ })

	_, err := client.Get(context.Background(), "/api/auth/profile/")
	if !IsUnauthorized(err) {
		t.Fatalf("expected unauthorized error, got %v", err)
	}
	if sess.Authenticated() {
		t.Fatalf("expected token cleared after 401")
	}
	if hookCalls != 1 {
		t.Fatalf("expected onUnauthorized to fire exactly once, got %d", hookCalls)
	}
}

func TestErrorBodyDetailParsed(t *testing.T) {
	client, _, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"detail": "phone number not registered"}`))
	})

	_, err := client.Post(context.Background(), "/api/login/", map[string]string{"phone_number": "9800000000"})
	if err == nil {
		t.Fatalf("expected error")
	}
	if ErrorKind(err) != KindRequestFailed {
		t.Fatalf("expected request_failed kind, got %q", ErrorKind(err))
	}
	if err.Error() != "phone number not registered" {
		t.Fatalf("expected server detail verbatim, got %q", err.Error())
	}
}

func TestErrorBodyFieldMapConcatenated(t *testing.T) {
	client, _, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"name": ["This field is required."], "price": ["Must be positive."]}`))
	})

	_, err := client.Post(context.Background(), "/api/products/", map[string]string{})
	if err == nil {
		t.Fatalf("expected error")
	}
	msg := err.Error()
	if !strings.Contains(msg, "name: This field is required.") || !strings.Contains(msg, "price: Must be positive.") {
		t.Fatalf("expected concatenated field errors, got %q", msg)
	}
}

func TestErrorBodyFallsBackToStatusText(t *testing.T) {
	client, _, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`<html>nope</html>`))
	})

	_, err := client.Get(context.Background(), "/api/orders/")
	if err == nil {
		t.Fatalf("expected error")
	}
	if !strings.Contains(err.Error(), "500") {
		t.Fatalf("expected status text fallback, got %q", err.Error())
	}
}

func TestNetworkFailureClassified(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // connection refused from here on

	client := NewClient(srv.URL, time.Second, session.NewMemStore(), nil)
	_, err := client.Get(context.Background(), "/api/products/")
	if ErrorKind(err) != KindNetwork {
		t.Fatalf("expected network_error kind, got %v", err)
	}
}

func TestEmptyBodyIsNoContent(t *testing.T) {
	client, _, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	resp, err := client.Delete(context.Background(), "/api/products/5/")
	if err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if !resp.NoContent {
		t.Fatalf("expected NoContent response")
	}
}

func TestMultipartBodyPassedThrough(t *testing.T) {
	var gotContentType, gotName string
	client, _, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotContentType = r.Header.Get("Content-Type")
		if err := r.ParseMultipartForm(1 << 20); err == nil {
			gotName = r.FormValue("full_name")
		}
		w.Write([]byte(`{"id": 1}`))
	})

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	mw.WriteField("full_name", "Asha Tamang")
	fw, _ := mw.CreateFormFile("profile_picture", "me.png")
	io.Copy(fw, strings.NewReader("png-bytes"))
	mw.Close()

	_, err := client.DoMultipart(context.Background(), http.MethodPost, "/api/register/", &buf, mw.FormDataContentType())
	if err != nil {
		t.Fatalf("multipart request failed: %v", err)
	}
	if !strings.HasPrefix(gotContentType, "multipart/form-data") {
		t.Fatalf("expected multipart content type, got %q", gotContentType)
	}
	if gotName != "Asha Tamang" {
		t.Fatalf("expected form field to survive passthrough, got %q", gotName)
	}
}
