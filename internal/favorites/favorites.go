package favorites

import (
	"context"
	"log"
	"strconv"

	"github.com/sabinstha/brewdash/internal/api"
)

type Favorite struct {
	ID      int `json:"id"`
	Product int `json:"product"`
}

type Client struct {
	api *api.Client
}

func NewClient(client *api.Client) *Client {
	return &Client{api: client}
}

func (c *Client) List(ctx context.Context) ([]Favorite, error) {
	resp, err := c.api.Get(ctx, "/api/favorites/")
	if err != nil {
		return nil, err
	}
	var out []Favorite
	if err := resp.Decode(&out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) Add(ctx context.Context, productID int) (Favorite, error) {
	resp, err := c.api.Post(ctx, "/api/favorites/", map[string]int{"product": productID})
	if err != nil {
		return Favorite{}, err
	}
	var out Favorite
	if err := resp.Decode(&out); err != nil {
		return Favorite{}, err
	}
	return out, nil
}

func (c *Client) Remove(ctx context.Context, id int) error {
	_, err := c.api.Delete(ctx, "/api/favorites/"+strconv.Itoa(id)+"/")
	return err
}

// IsFavorite is advisory: a failed check logs and reads as "not a favorite"
// instead of propagating the error.
func (c *Client) IsFavorite(ctx context.Context, productID int) bool {
	favs, err := c.List(ctx)
	if err != nil {
		log.Printf("favorite check failed: %v", err)
		return false
	}
	for _, f := range favs {
		if f.Product == productID {
			return true
		}
	}
	return false
}
