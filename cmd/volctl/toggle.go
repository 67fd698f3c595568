package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/volctl/internal/control"
)

var toggleOpts struct {
	all bool
}

var toggleCmd = &cobra.Command{
	Use:   "toggle <name>",
	Short: "Toggle mute for an application",
	Long: `Flip the mute state of the audio session matching <name> and print the
new state. Two toggles restore the original state.

Examples:
  volctl toggle firefox
  volctl toggle "system sounds"
  volctl toggle mpv --all`,
	Args: cobra.ExactArgs(1),
	RunE: runToggle,
}

func init() {
	rootCmd.AddCommand(toggleCmd)

	toggleCmd.Flags().BoolVar(&toggleOpts.all, "all", false,
		"Toggle every session matching the name, not just the first")
}

func runToggle(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	controller, cleanup, err := newController(ctx)
	if err != nil {
		return err
	}
	defer cleanup()

	name := getConfig().ResolveAlias(args[0])
	return toggleMute(ctx, controller, os.Stdout, name, toggleOpts.all)
}

// toggleMute matches sessions by name and flips their mute state.
func toggleMute(ctx context.Context, controller *control.Controller, w io.Writer, name string, all bool) error {
	sessions, err := controller.Sessions(ctx)
	if err != nil {
		return err
	}

	targets, err := matchTargets(name, sessions, all)
	if err != nil {
		return err
	}

	for i := range targets {
		if _, err := controller.ToggleMute(ctx, &targets[i]); err != nil {
			return fmt.Errorf("failed to toggle mute of %s: %w", targets[i].DisplayName(), err)
		}
		fmt.Fprintf(w, "%s is now %s\n", targets[i].DisplayName(), targets[i].MuteLabel())
	}

	return nil
}
