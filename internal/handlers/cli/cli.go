package cli

import (
	"context"
	"os"

	"github.com/gabapcia/chainnotify/internal/registry"
	"github.com/gabapcia/chainnotify/internal/scheduler"
	"github.com/gabapcia/chainnotify/internal/subscriber"

	"github.com/urfave/cli/v3"
)

// Server is the HTTP surface started next to the scheduler.
type Server interface {
	ListenAndServe(ctx context.Context) error
}

// Dependencies groups the services driven by the commands.
type Dependencies struct {
	Registry    registry.Registry
	Subscribers subscriber.Service
	Scheduler   scheduler.Service
	Server      Server
}

func newApp(deps Dependencies) *cli.Command {
	return &cli.Command{
		EnableShellCompletion: true,
		Name:                  "chainnotify",
		Description:           "Command-line interface for running and managing blockchain notification channels.",
		Usage:                 "chainnotify [command] [flags]",
		Commands: []*cli.Command{
			startCommand(deps.Scheduler, deps.Server),
			runCommand(deps.Registry),
			channelsCommand(deps.Registry),
			subscribeCommand(deps.Subscribers),
			unsubscribeCommand(deps.Subscribers),
		},
	}
}

// Run initializes and executes the chainnotify CLI application.
//
// It registers all available commands, including:
//
//   - `start`: Runs every channel on its schedule and serves HTTP.
//   - `run`: Executes a single pass of one channel.
//   - `channels`: Lists the registered channels.
//   - `subscribe` / `unsubscribe`: Manage channel subscribers.
func Run(ctx context.Context, deps Dependencies) error {
	return newApp(deps).Run(ctx, os.Args)
}
