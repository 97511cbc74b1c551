package auth

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/sabinstha/brewdash/internal/api"
	"github.com/sabinstha/brewdash/internal/session"
)

type fakeBackend struct {
	loginCalls  atomic.Int32
	verifyCalls atomic.Int32
	loginStatus int
	verifyBody  string
}

func (b *fakeBackend) handler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/login/":
			b.loginCalls.Add(1)
			if b.loginStatus != 0 {
				w.WriteHeader(b.loginStatus)
				w.Write([]byte(`{"detail": "phone number not registered"}`))
				return
			}
			w.Write([]byte(`{"detail": "otp sent", "otp_required": true}`))
		case "/api/verify-otp/":
			b.verifyCalls.Add(1)
			var req map[string]string
			json.NewDecoder(r.Body).Decode(&req)
			if req["phone_number"] == "" || req["otp"] == "" {
				w.WriteHeader(http.StatusBadRequest)
				w.Write([]byte(`{"detail": "missing fields"}`))
				return
			}
			w.Write([]byte(b.verifyBody))
		default:
			http.NotFound(w, r)
		}
	}
}

func newController(t *testing.T, backend *fakeBackend) (*Controller, *session.MemStore, *[]string) {
	t.Helper()
	srv := httptest.NewServer(backend.handler())
	t.Cleanup(srv.Close)

	sess := session.NewMemStore()
	var visited []string
	c := NewController(
		api.NewClient(srv.URL, 5*time.Second, sess, nil),
		sess,
		func(path string) { visited = append(visited, path) },
	)
	return c, sess, &visited
}

func TestSubmitPhoneValidNumbers(t *testing.T) {
	for _, phone := range []string{"9841000000", "9800000000", "9761234567", "+9779841000000", "98-410 00000"} {
		backend := &fakeBackend{}
		c, _, _ := newController(t, backend)
		if err := c.SubmitPhone(context.Background(), phone); err != nil {
			t.Fatalf("expected %q to pass, got %v", phone, err)
		}
		if c.State() != StateOtp {
			t.Fatalf("expected transition to OTP state for %q", phone)
		}
	}
}

func TestSubmitPhoneInvalidNumberMakesNoNetworkCall(t *testing.T) {
	for _, phone := range []string{"123", "9541000000", "984100000", "98410000000", "abcdefghij", ""} {
		backend := &fakeBackend{}
		c, _, _ := newController(t, backend)

		err := c.SubmitPhone(context.Background(), phone)
		var vErr *ValidationError
		if !errors.As(err, &vErr) {
			t.Fatalf("expected validation error for %q, got %v", phone, err)
		}
		if backend.loginCalls.Load() != 0 {
			t.Fatalf("expected no network call for %q", phone)
		}
		if c.State() != StatePhone {
			t.Fatalf("expected to stay on phone step for %q", phone)
		}
	}
}

func TestSubmitPhoneServerFailureStaysOnPhoneStep(t *testing.T) {
	backend := &fakeBackend{loginStatus: http.StatusNotFound}
	c, _, _ := newController(t, backend)

	err := c.SubmitPhone(context.Background(), "9841000000")
	if err == nil || err.Error() != "phone number not registered" {
		t.Fatalf("expected server message verbatim, got %v", err)
	}
	if c.State() != StatePhone {
		t.Fatalf("expected to remain on phone step")
	}
}

func TestSubmitOtpLengthValidation(t *testing.T) {
	backend := &fakeBackend{verifyBody: `{"token": "tok"}`}
	c, _, _ := newController(t, backend)
	if err := c.SubmitPhone(context.Background(), "9841000000"); err != nil {
		t.Fatalf("phone step failed: %v", err)
	}

	var vErr *ValidationError
	if err := c.SubmitOtp(context.Background(), "12345"); !errors.As(err, &vErr) {
		t.Fatalf("expected validation error for 5 digits, got %v", err)
	}
	if err := c.SubmitOtp(context.Background(), "12a456"); !errors.As(err, &vErr) {
		t.Fatalf("expected validation error for non-digits, got %v", err)
	}
	if backend.verifyCalls.Load() != 0 {
		t.Fatalf("expected no verify calls yet, got %d", backend.verifyCalls.Load())
	}

	if err := c.SubmitOtp(context.Background(), "123456"); err != nil {
		t.Fatalf("expected 6 digits to verify, got %v", err)
	}
	if backend.verifyCalls.Load() != 1 {
		t.Fatalf("expected exactly one verify request, got %d", backend.verifyCalls.Load())
	}
}

func TestSubmitOtpAcceptsAccessField(t *testing.T) {
	backend := &fakeBackend{verifyBody: `{"access": "jwt-access-token", "user": {"id": 1}}`}
	c, sess, visited := newController(t, backend)
	c.SubmitPhone(context.Background(), "9841000000")

	if err := c.SubmitOtp(context.Background(), "123456"); err != nil {
		t.Fatalf("verify failed: %v", err)
	}
	tok, _ := sess.Token()
	if tok != "jwt-access-token" {
		t.Fatalf("expected access field used as token, got %q", tok)
	}
	if len(*visited) != 1 || (*visited)[0] != "/dashboard" {
		t.Fatalf("expected navigation to /dashboard, got %v", *visited)
	}
}

func TestSubmitOtpMissingTokenIsProtocolError(t *testing.T) {
	backend := &fakeBackend{verifyBody: `{"user": {"id": 1}}`}
	c, sess, visited := newController(t, backend)
	c.SubmitPhone(context.Background(), "9841000000")

	err := c.SubmitOtp(context.Background(), "123456")
	if api.ErrorKind(err) != api.KindProtocol {
		t.Fatalf("expected protocol error for tokenless 2xx, got %v", err)
	}
	if sess.Authenticated() {
		t.Fatalf("expected no token persisted")
	}
	if len(*visited) != 0 {
		t.Fatalf("expected no navigation, got %v", *visited)
	}
	// the flow stays on the OTP step with the phone retained for a retry
	if c.State() != StateOtp || c.Phone() != "9841000000" {
		t.Fatalf("expected to stay on OTP step with phone retained, got %s %q", c.State(), c.Phone())
	}
}

func TestSubmitOtpConsumesStoredRedirect(t *testing.T) {
	backend := &fakeBackend{verifyBody: `{"token": "tok"}`}
	c, sess, visited := newController(t, backend)
	sess.SetRedirect("/orders")
	c.SubmitPhone(context.Background(), "9841000000")

	if err := c.SubmitOtp(context.Background(), "123456"); err != nil {
		t.Fatalf("verify failed: %v", err)
	}
	if len(*visited) != 1 || (*visited)[0] != "/orders" {
		t.Fatalf("expected navigation to stored redirect, got %v", *visited)
	}
	if sess.Redirect() != "" {
		t.Fatalf("expected redirect consumed")
	}
}

func TestBackToPhone(t *testing.T) {
	backend := &fakeBackend{verifyBody: `{"token": "tok"}`}
	c, _, _ := newController(t, backend)
	c.SubmitPhone(context.Background(), "9841000000")

	c.BackToPhone()
	if c.State() != StatePhone {
		t.Fatalf("expected phone state after going back")
	}
}

func TestLogoutClearsSessionAndNavigates(t *testing.T) {
	backend := &fakeBackend{}
	c, sess, visited := newController(t, backend)
	sess.SetToken("tok")

	c.Logout()
	if sess.Authenticated() {
		t.Fatalf("expected session cleared on logout")
	}
	if len(*visited) != 1 || (*visited)[0] != "/login" {
		t.Fatalf("expected navigation to /login, got %v", *visited)
	}
}
