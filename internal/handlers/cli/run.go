package cli

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/gabapcia/chainnotify/internal/registry"
	"github.com/gabapcia/chainnotify/internal/runner"
	"github.com/gabapcia/chainnotify/internal/simulate"

	"github.com/fatih/color"
	"github.com/urfave/cli/v3"
)

var errMissingChannel = errors.New("channel id is required")

var (
	okColor   = color.New(color.FgGreen)
	warnColor = color.New(color.FgYellow)
	failColor = color.New(color.FgRed)
	dimColor  = color.New(color.Faint)
)

// runCommand returns a CLI command that executes one pass of a channel and
// prints its summary.
//
// Usage example:
//
//	chainnotify run aave --dry-run
//	chainnotify run everest --simulate '{"mode":true,"logicOverride":{"fromBlock":100}}'
func runCommand(reg registry.Registry) *cli.Command {
	return &cli.Command{
		Name:        "run",
		Description: "Execute a single pass of a channel.",
		Usage:       "Runs one pass now. --dry-run evaluates everything without uploading or submitting.",
		ArgsUsage:   "<channel>",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "dry-run",
				Usage: "Simulate deliveries",
			},
			&cli.StringFlag{
				Name:  "simulate",
				Usage: "Simulate value as JSON (boolean or override object)",
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			id := c.Args().First()
			if id == "" {
				return errMissingChannel
			}

			rn, err := reg.Get(id)
			if err != nil {
				return err
			}

			ov := simulate.Override{DryRun: c.Bool("dry-run")}
			if raw := c.String("simulate"); raw != "" {
				if ov, err = simulate.Parse([]byte(raw)); err != nil {
					return err
				}
			}

			summary, err := rn.Run(ctx, ov)
			printSummary(c.Root().Writer, summary)
			return err
		},
	}
}

// channelsCommand returns a CLI command that lists the registered channels.
func channelsCommand(reg registry.Registry) *cli.Command {
	return &cli.Command{
		Name:        "channels",
		Description: "List the registered channels.",
		Usage:       "Prints one channel id per line.",
		Action: func(ctx context.Context, c *cli.Command) error {
			for _, id := range reg.List() {
				fmt.Fprintln(c.Root().Writer, id)
			}
			return nil
		},
	}
}

func statusColor(s runner.Status) *color.Color {
	switch s {
	case runner.StatusCompleted:
		return okColor
	case runner.StatusAlreadyRunning, runner.StatusIncomplete:
		return warnColor
	default:
		return failColor
	}
}

func printSummary(w io.Writer, s runner.Summary) {
	mode := "live"
	if s.Simulated {
		mode = "dry run"
	}

	fmt.Fprintf(w, "%s %s (%s)\n", s.Channel, statusColor(s.Status).Sprint(s.Status), mode)
	if s.PassID != "" {
		fmt.Fprintf(w, "  pass:        %s\n", dimColor.Sprint(s.PassID))
	}
	if s.Network != "" {
		fmt.Fprintf(w, "  network:     %s (wallet #%d)\n", s.Network, s.WalletIndex)
	}
	fmt.Fprintf(w, "  subscribers: %d\n", s.Subscribers)
	fmt.Fprintf(w, "  subjects:    %d, notified %d\n", s.Subjects, s.Notified)
	fmt.Fprintf(w, "  deliveries:  %s sent, %s failed, %d skipped\n",
		okColor.Sprint(s.Succeeded), failColor.Sprint(s.Failed), s.Skipped)

	if s.Cursor != nil {
		committed := warnColor.Sprint("not committed")
		if s.Cursor.Committed {
			committed = okColor.Sprint("committed")
		}
		fmt.Fprintf(w, "  blocks:      %d..%d %s\n", s.Cursor.From, s.Cursor.To, committed)
	}

	for _, d := range s.Deliveries {
		ref := d.TxHash
		if ref == "" {
			ref = d.ContentRef
		}
		fmt.Fprintf(w, "  -> %s %s %s\n", d.Recipient, d.Kind, dimColor.Sprint(ref))
	}

	for _, f := range s.Failures {
		fmt.Fprintf(w, "  %s %s [%s] %s\n", failColor.Sprint("x"), f.Subject, f.Stage, f.Error)
	}

	if s.Error != "" {
		fmt.Fprintf(w, "  error: %s\n", failColor.Sprint(s.Error))
	}
}
