package account

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/sabinstha/brewdash/internal/api"
	"github.com/sabinstha/brewdash/internal/auth"
	"github.com/sabinstha/brewdash/internal/session"
)

func TestRegisterSendsMultipartForm(t *testing.T) {
	var gotName, gotPhone, gotFile string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseMultipartForm(1 << 20); err != nil {
			t.Errorf("expected multipart form: %v", err)
		}
		gotName = r.FormValue("full_name")
		gotPhone = r.FormValue("phone_number")
		if _, header, err := r.FormFile("profile_picture"); err == nil {
			gotFile = header.Filename
		}
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"id": 3, "full_name": "Asha Tamang", "phone_number": "9841000000"}`))
	}))
	defer srv.Close()

	c := NewClient(api.NewClient(srv.URL, 5*time.Second, session.NewMemStore(), nil))
	user, err := c.Register(context.Background(), RegisterInput{
		FullName:       "Asha Tamang",
		PhoneNumber:    "9841000000",
		ProfilePicture: strings.NewReader("png-bytes"),
		PictureName:    "me.png",
	})
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}
	if user.ID != 3 {
		t.Fatalf("expected user id 3, got %d", user.ID)
	}
	if gotName != "Asha Tamang" || gotPhone != "9841000000" || gotFile != "me.png" {
		t.Fatalf("form not transmitted: name=%q phone=%q file=%q", gotName, gotPhone, gotFile)
	}
}

func TestRegisterValidatesLocally(t *testing.T) {
	called := false
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))
	defer srv.Close()

	c := NewClient(api.NewClient(srv.URL, time.Second, session.NewMemStore(), nil))

	var vErr *auth.ValidationError
	if _, err := c.Register(context.Background(), RegisterInput{FullName: "A", PhoneNumber: "123"}); !errors.As(err, &vErr) {
		t.Fatalf("expected phone validation error, got %v", err)
	}
	if _, err := c.Register(context.Background(), RegisterInput{PhoneNumber: "9841000000"}); !errors.As(err, &vErr) {
		t.Fatalf("expected name validation error, got %v", err)
	}
	if called {
		t.Fatalf("expected no network call for invalid input")
	}
}

func TestProfileRequiresNoBodyAndDecodesUser(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/auth/profile/" {
			http.NotFound(w, r)
			return
		}
		w.Write([]byte(`{"id": 1, "full_name": "Asha Tamang", "points": 120}`))
	}))
	defer srv.Close()

	c := NewClient(api.NewClient(srv.URL, time.Second, session.NewMemStore(), nil))
	user, err := c.Profile(context.Background())
	if err != nil {
		t.Fatalf("profile failed: %v", err)
	}
	if user.Points != 120 {
		t.Fatalf("expected 120 points, got %d", user.Points)
	}
}
