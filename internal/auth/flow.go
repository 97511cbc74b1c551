package auth

import (
	"context"

	"github.com/sabinstha/brewdash/internal/api"
	"github.com/sabinstha/brewdash/internal/session"
)

// State of the login flow.
type State string

const (
	StatePhone State = "phone"
	StateOtp   State = "otp"
)

// Navigator receives post-login and post-logout navigation targets.
type Navigator func(path string)

// Controller drives the two-step phone to OTP login. It is re-entrant per
// attempt; create a fresh instance per login screen visit.
type Controller struct {
	api      *api.Client
	session  session.Store
	navigate Navigator

	state State
	phone string
}

func NewController(client *api.Client, sess session.Store, navigate Navigator) *Controller {
	if navigate == nil {
		navigate = func(string) {}
	}
	return &Controller{
		api:      client,
		session:  sess,
		navigate: navigate,
		state:    StatePhone,
	}
}

func (c *Controller) State() State {
	return c.state
}

// Phone returns the number remembered after a successful SubmitPhone, for
// display alongside the OTP prompt and for the verify call.
func (c *Controller) Phone() string {
	return c.phone
}

// SubmitPhone validates the number locally and requests an OTP. On success
// the flow advances to the OTP step; on failure it stays on the phone step
// with the server's message surfaced to the caller.
func (c *Controller) SubmitPhone(ctx context.Context, phone string) error {
	phone = NormalizePhone(phone)
	if err := ValidatePhone(phone); err != nil {
		return err
	}

	_, err := c.api.Post(ctx, "/api/login/", map[string]string{"phone_number": phone})
	if err != nil {
		return err
	}

	c.phone = phone
	c.state = StateOtp
	return nil
}

type verifyResponse struct {
	Token  string `json:"token"`
	Access string `json:"access"`
}

// SubmitOtp validates the code locally and exchanges it for a bearer token.
// The verify response must carry a token in either the "token" or "access"
// field; a 2xx without one is a protocol error, not a success. On success the
// token is persisted and the controller navigates to the stored redirect
// target, defaulting to the dashboard. On failure the flow stays on the OTP
// step with the phone retained.
func (c *Controller) SubmitOtp(ctx context.Context, code string) error {
	if err := ValidateOTP(code); err != nil {
		return err
	}

	resp, err := c.api.Post(ctx, "/api/verify-otp/", map[string]string{
		"phone_number": c.phone,
		"otp":          code,
	})
	if err != nil {
		return err
	}

	var verified verifyResponse
	if err := resp.Decode(&verified); err != nil {
		return err
	}

	token := verified.Token
	if token == "" {
		token = verified.Access
	}
	if token == "" {
		return &api.Error{Kind: api.KindProtocol, Status: resp.Status, Message: "verify response carried no token"}
	}

	if err := c.session.SetToken(token); err != nil {
		return err
	}

	dest := c.session.Redirect()
	if dest == "" {
		dest = "/dashboard"
	}
	_ = c.session.ClearRedirect()
	c.navigate(dest)
	return nil
}

// BackToPhone returns to the phone step, discarding any in-flight OTP input.
func (c *Controller) BackToPhone() {
	c.state = StatePhone
}

// Logout clears the session and navigates to the login screen, whatever the
// current state.
func (c *Controller) Logout() {
	_ = c.session.Clear()
	c.navigate("/login")
}
