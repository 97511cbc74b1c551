package branches

import (
	"context"
	"fmt"
	"strconv"

	"github.com/go-playground/validator/v10"

	"github.com/sabinstha/brewdash/internal/api"
)

type Branch struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	Address  string `json:"address"`
	Phone    string `json:"phone"`
	IsActive bool   `json:"is_active"`
}

type Draft struct {
	Name     string `json:"name" validate:"required"`
	Address  string `json:"address" validate:"required"`
	Phone    string `json:"phone"`
	IsActive bool   `json:"is_active"`
}

type Patch struct {
	Name     *string `json:"name,omitempty"`
	Address  *string `json:"address,omitempty"`
	Phone    *string `json:"phone,omitempty"`
	IsActive *bool   `json:"is_active,omitempty"`
}

type Client struct {
	api      *api.Client
	validate *validator.Validate
}

func NewClient(client *api.Client) *Client {
	return &Client{api: client, validate: validator.New()}
}

func (c *Client) List(ctx context.Context) ([]Branch, error) {
	resp, err := c.api.Get(ctx, "/api/branches/")
	if err != nil {
		return nil, err
	}
	var out []Branch
	if err := resp.Decode(&out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) Create(ctx context.Context, draft Draft) (Branch, error) {
	if err := c.validate.Struct(draft); err != nil {
		return Branch{}, fmt.Errorf("invalid branch: %w", err)
	}
	resp, err := c.api.Post(ctx, "/api/branches/", draft)
	if err != nil {
		return Branch{}, err
	}
	var out Branch
	if err := resp.Decode(&out); err != nil {
		return Branch{}, err
	}
	return out, nil
}

func (c *Client) Update(ctx context.Context, id int, patch Patch) (Branch, error) {
	resp, err := c.api.Patch(ctx, "/api/branches/"+strconv.Itoa(id)+"/", patch)
	if err != nil {
		return Branch{}, err
	}
	var out Branch
	if err := resp.Decode(&out); err != nil {
		return Branch{}, err
	}
	return out, nil
}

func (c *Client) Delete(ctx context.Context, id int) error {
	_, err := c.api.Delete(ctx, "/api/branches/"+strconv.Itoa(id)+"/")
	return err
}
