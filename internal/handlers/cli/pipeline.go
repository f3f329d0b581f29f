package cli

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/gabapcia/chainnotify/internal/scheduler"

	"github.com/urfave/cli/v3"
	"golang.org/x/sync/errgroup"
)

// startCommand returns a CLI command that starts the channel scheduler and
// the HTTP server.
//
// Usage example:
//
//	chainnotify start
//
// The process runs until it receives an interrupt (SIGINT or SIGTERM) or the
// server fails.
func startCommand(sched scheduler.Service, srv Server) *cli.Command {
	return &cli.Command{
		Name:        "start",
		Description: "Starts the channel scheduler and the HTTP server.",
		Usage:       "Runs every enabled channel on its interval. Terminates gracefully on Ctrl+C or termination signals.",
		Action: func(ctx context.Context, c *cli.Command) error {
			ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			if err := sched.Start(ctx); err != nil {
				return err
			}
			defer sched.Close()

			g, ctx := errgroup.WithContext(ctx)
			g.Go(func() error {
				return srv.ListenAndServe(ctx)
			})

			return g.Wait()
		},
	}
}
