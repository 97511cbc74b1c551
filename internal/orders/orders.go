package orders

import (
	"context"
	"fmt"
	"strconv"

	"github.com/sabinstha/brewdash/internal/api"
	"github.com/sabinstha/brewdash/internal/auth"
)

// Order statuses accepted by the status endpoint.
const (
	StatusPending   = "pending"
	StatusPreparing = "preparing"
	StatusReady     = "ready"
	StatusCompleted = "completed"
	StatusCancelled = "cancelled"
)

var validStatuses = map[string]bool{
	StatusPending:   true,
	StatusPreparing: true,
	StatusReady:     true,
	StatusCompleted: true,
	StatusCancelled: true,
}

type OrderItem struct {
	Product  int     `json:"product"`
	Quantity int     `json:"quantity"`
	Price    float64 `json:"price"`
}

type Order struct {
	ID         int         `json:"id"`
	User       int         `json:"user"`
	Branch     int         `json:"branch"`
	Status     string      `json:"status"`
	TotalPrice float64     `json:"total_price"`
	Items      []OrderItem `json:"items"`
	CreatedAt  string      `json:"created_at"`
}

type Draft struct {
	Branch int         `json:"branch"`
	Items  []OrderItem `json:"items"`
}

type Client struct {
	api *api.Client
}

func NewClient(client *api.Client) *Client {
	return &Client{api: client}
}

func (c *Client) List(ctx context.Context) ([]Order, error) {
	resp, err := c.api.Get(ctx, "/api/orders/")
	if err != nil {
		return nil, err
	}
	var out []Order
	if err := resp.Decode(&out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) Get(ctx context.Context, id int) (Order, error) {
	resp, err := c.api.Get(ctx, "/api/orders/"+strconv.Itoa(id)+"/")
	if err != nil {
		return Order{}, err
	}
	var out Order
	if err := resp.Decode(&out); err != nil {
		return Order{}, err
	}
	return out, nil
}

func (c *Client) Create(ctx context.Context, draft Draft) (Order, error) {
	if len(draft.Items) == 0 {
		return Order{}, &auth.ValidationError{Field: "items", Message: "an order needs at least one item"}
	}
	resp, err := c.api.Post(ctx, "/api/orders/", draft)
	if err != nil {
		return Order{}, err
	}
	var out Order
	if err := resp.Decode(&out); err != nil {
		return Order{}, err
	}
	return out, nil
}

func (c *Client) Delete(ctx context.Context, id int) error {
	_, err := c.api.Delete(ctx, "/api/orders/"+strconv.Itoa(id)+"/")
	return err
}

// SetStatus transitions an order through its lifecycle. The status is checked
// locally before any network call.
func (c *Client) SetStatus(ctx context.Context, id int, status string) (Order, error) {
	if !validStatuses[status] {
		return Order{}, &auth.ValidationError{Field: "status", Message: fmt.Sprintf("unknown order status %q", status)}
	}
	resp, err := c.api.Patch(ctx, "/api/orders/"+strconv.Itoa(id)+"/status/", map[string]string{"status": status})
	if err != nil {
		return Order{}, err
	}
	var out Order
	if err := resp.Decode(&out); err != nil {
		return Order{}, err
	}
	return out, nil
}
