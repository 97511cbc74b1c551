package cmd

import (
	"fmt"

	"github.com/sabinstha/brewdash/internal/api"
	"github.com/sabinstha/brewdash/internal/config"
	"github.com/sabinstha/brewdash/internal/notify"
	"github.com/sabinstha/brewdash/internal/session"
)

// env wires the shared dependencies every command needs: config, the
// persistent session and an API client whose 401 handling sends the operator
// back to login.
type env struct {
	cfg      *config.Config
	sess     session.Store
	api      *api.Client
	notifier notify.Notifier
}

func newEnv() (*env, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	sess := session.NewFileStore(cfg.Session.Dir)
	notifier := notify.Console{}

	client := api.NewClient(cfg.API.BaseURL, cfg.API.Timeout, sess, func() {
		notifier.Notify(notify.Warning, "Session expired, run 'brewdash login' to sign in again")
	})

	return &env{cfg: cfg, sess: sess, api: client, notifier: notifier}, nil
}

// requireAuth fails fast for commands that only make sense with a session.
func (e *env) requireAuth() error {
	if !e.sess.Authenticated() {
		return fmt.Errorf("not logged in, run 'brewdash login' first")
	}
	return nil
}

func navigateTo(path string) {
	fmt.Printf("➡️  %s\n", path)
}
