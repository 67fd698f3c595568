package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/volctl/internal/control"
	"github.com/jmylchreest/volctl/internal/core"
)

var getOpts struct {
	all bool
}

var getCmd = &cobra.Command{
	Use:   "get <name>",
	Short: "Print the volume of an application",
	Long: `Print the current volume and mute state of the audio session matching
<name>.

Examples:
  volctl get firefox
  volctl get "system sounds"
  volctl get mpv --all`,
	Args: cobra.ExactArgs(1),
	RunE: runGet,
}

func init() {
	rootCmd.AddCommand(getCmd)

	getCmd.Flags().BoolVar(&getOpts.all, "all", false,
		"Print every session matching the name, not just the first")
}

func runGet(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	controller, cleanup, err := newController(ctx)
	if err != nil {
		return err
	}
	defer cleanup()

	name := getConfig().ResolveAlias(args[0])
	return getVolume(ctx, controller, os.Stdout, name, getOpts.all)
}

// getVolume matches sessions by name and prints their state.
func getVolume(ctx context.Context, controller *control.Controller, w io.Writer, name string, all bool) error {
	sessions, err := controller.Sessions(ctx)
	if err != nil {
		return err
	}

	targets, err := matchTargets(name, sessions, all)
	if err != nil {
		return err
	}

	for i := range targets {
		fmt.Fprintf(w, "%s: %s (%s)\n",
			targets[i].DisplayName(),
			core.FormatPercent(targets[i].Volume),
			targets[i].MuteLabel())
	}

	return nil
}
