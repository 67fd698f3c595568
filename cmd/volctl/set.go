package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/volctl/internal/audio"
	"github.com/jmylchreest/volctl/internal/control"
	"github.com/jmylchreest/volctl/internal/core"
)

var setOpts struct {
	all   bool
	chime bool
}

var setCmd = &cobra.Command{
	Use:   "set <name> <value>",
	Short: "Set the volume of an application",
	Long: `Set the volume of the audio session matching <name>. Matching is a
case-insensitive exact match on the process name; "system sounds"
addresses the system-sounds stream.

<value> is either an integer percentage (0-100) or a fraction
(0.0-1.0). "50" and "0.5" mean the same volume; note that "1" means
1% while "1.0" means full volume.

When several sessions share a name, the first one found is changed;
pass --all to change every instance.

Examples:
  volctl set firefox 50
  volctl set Discord 0.3
  volctl set "system sounds" 25
  volctl set mpv 80 --all --chime`,
	Args: cobra.ExactArgs(2),
	RunE: runSet,
}

func init() {
	rootCmd.AddCommand(setCmd)

	setCmd.Flags().BoolVar(&setOpts.all, "all", false,
		"Apply to every session matching the name, not just the first")
	setCmd.Flags().BoolVar(&setOpts.chime, "chime", false,
		"Play a confirmation tone at the new volume")
}

func runSet(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	controller, cleanup, err := newController(ctx)
	if err != nil {
		return err
	}
	defer cleanup()

	var chime *audio.Chime
	if setOpts.chime || getConfig().Chime.Enabled {
		chime = audio.NewChime(logger, getConfig().Chime.FrequencyHz, getConfig().Chime.DurationMS)
	}

	name := getConfig().ResolveAlias(args[0])
	return setVolume(ctx, controller, os.Stdout, name, args[1], setOpts.all, chime)
}

// setVolume matches sessions by name and applies the parsed volume.
func setVolume(ctx context.Context, controller *control.Controller, w io.Writer, name, value string, all bool, chime *audio.Chime) error {
	// Validate input before touching any session state.
	v, err := core.ParseVolume(value)
	if err != nil {
		return err
	}

	sessions, err := controller.Sessions(ctx)
	if err != nil {
		return err
	}

	targets, err := matchTargets(name, sessions, all)
	if err != nil {
		return err
	}

	for i := range targets {
		if err := controller.ApplyVolume(ctx, &targets[i], v); err != nil {
			return fmt.Errorf("failed to set volume of %s: %w", targets[i].DisplayName(), err)
		}
		fmt.Fprintf(w, "Volume of %s set to %s\n", targets[i].DisplayName(), core.FormatPercent(v))
	}

	if chime != nil {
		if err := chime.Play(v); err != nil {
			logger.Debug("chime failed", "error", err)
		}
	}

	return nil
}
