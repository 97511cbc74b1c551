package account

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"

	"github.com/sabinstha/brewdash/internal/api"
	"github.com/sabinstha/brewdash/internal/auth"
)

// User as served by the auth endpoints.
type User struct {
	ID             int     `json:"id"`
	FullName       string  `json:"full_name"`
	PhoneNumber    string  `json:"phone_number"`
	Email          string  `json:"email"`
	ProfilePicture *string `json:"profile_picture"`
	Points         int     `json:"points"`
	IsStaff        bool    `json:"is_staff"`
}

// RegisterInput carries the multipart registration form. ProfilePicture is
// optional; when set, PictureName names the uploaded file.
type RegisterInput struct {
	FullName       string
	PhoneNumber    string
	Email          string
	ProfilePicture io.Reader
	PictureName    string
}

type Client struct {
	api *api.Client
}

func NewClient(client *api.Client) *Client {
	return &Client{api: client}
}

// Register creates an account via the multipart endpoint.
func (c *Client) Register(ctx context.Context, in RegisterInput) (User, error) {
	phone := auth.NormalizePhone(in.PhoneNumber)
	if err := auth.ValidatePhone(phone); err != nil {
		return User{}, err
	}
	if in.FullName == "" {
		return User{}, &auth.ValidationError{Field: "full_name", Message: "full name is required"}
	}

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	if err := mw.WriteField("full_name", in.FullName); err != nil {
		return User{}, fmt.Errorf("failed to build form: %w", err)
	}
	if err := mw.WriteField("phone_number", phone); err != nil {
		return User{}, fmt.Errorf("failed to build form: %w", err)
	}
	if in.Email != "" {
		if err := mw.WriteField("email", in.Email); err != nil {
			return User{}, fmt.Errorf("failed to build form: %w", err)
		}
	}
	if in.ProfilePicture != nil {
		fw, err := mw.CreateFormFile("profile_picture", in.PictureName)
		if err != nil {
			return User{}, fmt.Errorf("failed to build form: %w", err)
		}
		if _, err := io.Copy(fw, in.ProfilePicture); err != nil {
			return User{}, fmt.Errorf("failed to read picture: %w", err)
		}
	}
	if err := mw.Close(); err != nil {
		return User{}, fmt.Errorf("failed to build form: %w", err)
	}

	resp, err := c.api.DoMultipart(ctx, http.MethodPost, "/api/register/", &buf, mw.FormDataContentType())
	if err != nil {
		return User{}, err
	}

	var user User
	if err := resp.Decode(&user); err != nil {
		return User{}, err
	}
	return user, nil
}

// Profile fetches the authenticated user.
func (c *Client) Profile(ctx context.Context) (User, error) {
	resp, err := c.api.Get(ctx, "/api/auth/profile/")
	if err != nil {
		return User{}, err
	}
	var user User
	if err := resp.Decode(&user); err != nil {
		return User{}, err
	}
	return user, nil
}
