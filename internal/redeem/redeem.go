package redeem

import (
	"context"
	"fmt"
	"strconv"

	"github.com/go-playground/validator/v10"

	"github.com/sabinstha/brewdash/internal/api"
)

// Offer is a loyalty-points redemption offer.
type Offer struct {
	ID             int    `json:"id"`
	Title          string `json:"title"`
	Product        int    `json:"product"`
	PointsRequired int    `json:"points_required"`
	IsActive       bool   `json:"is_active"`
}

type OfferDraft struct {
	Title          string `json:"title" validate:"required"`
	Product        int    `json:"product" validate:"required"`
	PointsRequired int    `json:"points_required" validate:"gt=0"`
	IsActive       bool   `json:"is_active"`
}

// Request is a customer's pending redemption of an offer.
type Request struct {
	ID        int    `json:"id"`
	User      int    `json:"user"`
	Offer     int    `json:"offer"`
	Status    string `json:"status"`
	CreatedAt string `json:"created_at"`
}

type Client struct {
	api      *api.Client
	validate *validator.Validate
}

func NewClient(client *api.Client) *Client {
	return &Client{api: client, validate: validator.New()}
}

func (c *Client) ListOffers(ctx context.Context) ([]Offer, error) {
	resp, err := c.api.Get(ctx, "/api/redeem-offers/")
	if err != nil {
		return nil, err
	}
	var out []Offer
	if err := resp.Decode(&out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) CreateOffer(ctx context.Context, draft OfferDraft) (Offer, error) {
	if err := c.validate.Struct(draft); err != nil {
		return Offer{}, fmt.Errorf("invalid offer: %w", err)
	}
	resp, err := c.api.Post(ctx, "/api/redeem-offers/", draft)
	if err != nil {
		return Offer{}, err
	}
	var out Offer
	if err := resp.Decode(&out); err != nil {
		return Offer{}, err
	}
	return out, nil
}

// UpdateOffer replaces the offer wholesale; the endpoint takes PUT, not PATCH.
func (c *Client) UpdateOffer(ctx context.Context, id int, draft OfferDraft) (Offer, error) {
	if err := c.validate.Struct(draft); err != nil {
		return Offer{}, fmt.Errorf("invalid offer: %w", err)
	}
	resp, err := c.api.Put(ctx, "/api/redeem-offers/"+strconv.Itoa(id)+"/", draft)
	if err != nil {
		return Offer{}, err
	}
	var out Offer
	if err := resp.Decode(&out); err != nil {
		return Offer{}, err
	}
	return out, nil
}

func (c *Client) DeleteOffer(ctx context.Context, id int) error {
	_, err := c.api.Delete(ctx, "/api/redeem-offers/"+strconv.Itoa(id)+"/")
	return err
}

func (c *Client) ListRequests(ctx context.Context) ([]Request, error) {
	resp, err := c.api.Get(ctx, "/api/user-redeem/")
	if err != nil {
		return nil, err
	}
	var out []Request
	if err := resp.Decode(&out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) CreateRequest(ctx context.Context, offerID int) (Request, error) {
	resp, err := c.api.Post(ctx, "/api/user-redeem/", map[string]int{"offer": offerID})
	if err != nil {
		return Request{}, err
	}
	var out Request
	if err := resp.Decode(&out); err != nil {
		return Request{}, err
	}
	return out, nil
}
