package cli

import (
	"context"

	"github.com/gabapcia/chainnotify/internal/subscriber"

	"github.com/urfave/cli/v3"
)

func subscriptionFlags(action string) []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:     "channel",
			Usage:    "Channel id (e.g., aave, ens)",
			Required: true,
		},
		&cli.StringFlag{
			Name:     "address",
			Usage:    "Subscriber address to " + action,
			Required: true,
		},
	}
}

// subscribeCommand returns a CLI command that adds a subscriber to a channel.
//
// Usage example:
//
//	chainnotify subscribe --channel aave --address 0xABC123...
func subscribeCommand(subs subscriber.Service) *cli.Command {
	return &cli.Command{
		Name:        "subscribe",
		Description: "Add an address to the subscribers of a channel.",
		Usage:       "Subscribes an address. Must provide both channel and address.",
		Flags:       subscriptionFlags("subscribe"),
		Action: func(ctx context.Context, c *cli.Command) error {
			return subs.Subscribe(ctx, c.String("channel"), c.String("address"))
		},
	}
}

// unsubscribeCommand returns a CLI command that removes a subscriber from a
// channel.
//
// Usage example:
//
//	chainnotify unsubscribe --channel aave --address 0xABC123...
func unsubscribeCommand(subs subscriber.Service) *cli.Command {
	return &cli.Command{
		Name:        "unsubscribe",
		Description: "Remove an address from the subscribers of a channel.",
		Usage:       "Unsubscribes an address. Must provide both channel and address.",
		Flags:       subscriptionFlags("unsubscribe"),
		Action: func(ctx context.Context, c *cli.Command) error {
			return subs.Unsubscribe(ctx, c.String("channel"), c.String("address"))
		},
	}
}
