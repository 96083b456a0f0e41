// Package types holds the values the root command hands to subcommands
// through the command context.
package types

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"tau/internal/app/client"
	"tau/internal/domain/session"
	"tau/internal/domain/sync"
)

type ctxKey string

const (
	ClientAppKey ctxKey = "app"
	OptionsKey   ctxKey = "options"
)

var (
	ErrNoApp       = errors.New("application is not initialized")
	ErrNotLoggedIn = errors.New("not logged in, run: tau auth login")
)

// Options are the global flags that change how subcommands behave.
type Options struct {
	JSON bool
	Wait bool
}

// Policy maps --wait to the wait policy of mutating operations.
func (o Options) Policy() sync.WaitPolicy {
	if o.Wait {
		return sync.Await
	}
	return sync.Detach
}

func WithApp(ctx context.Context, app *client.App, opts Options) context.Context {
	ctx = context.WithValue(ctx, ClientAppKey, app)
	return context.WithValue(ctx, OptionsKey, opts)
}

func App(cmd *cobra.Command) (*client.App, error) {
	app, ok := cmd.Context().Value(ClientAppKey).(*client.App)
	if !ok || app == nil {
		return nil, ErrNoApp
	}
	return app, nil
}

func Opts(cmd *cobra.Command) Options {
	opts, _ := cmd.Context().Value(OptionsKey).(Options)
	return opts
}

// Owner returns the application together with the logged-in user id.
func Owner(cmd *cobra.Command) (*client.App, int64, error) {
	app, err := App(cmd)
	if err != nil {
		return nil, 0, err
	}
	ownerID, err := app.OwnerID(cmd.Context())
	if errors.Is(err, session.ErrNoSession) {
		return nil, 0, ErrNotLoggedIn
	}
	if err != nil {
		return nil, 0, err
	}
	return app, ownerID, nil
}

// ParseID parses a local record id given on the command line.
func ParseID(arg string) (int64, error) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid id %q", arg)
	}
	return id, nil
}
