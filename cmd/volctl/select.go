package main

import (
	"context"
	"time"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/volctl/internal/audio"
	"github.com/jmylchreest/volctl/internal/tui"
)

var selectCmd = &cobra.Command{
	Use:   "select",
	Short: "Interactively pick a session and change its volume",
	Long: `Launch the interactive session picker.

Key bindings:
  j/k, ↑/↓    Navigate list
  enter       Set volume for the highlighted session
  m           Toggle mute
  /           Filter sessions
  r           Refresh the session list
  q           Quit`,
	Args: cobra.NoArgs,
	RunE: runSelect,
}

func init() {
	rootCmd.AddCommand(selectCmd)
}

func runSelect(cmd *cobra.Command, args []string) error {
	// The backend handle lives for the whole interactive run, not a
	// single request, so no deadline here.
	ctx := context.Background()

	connectCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	controller, cleanup, err := newController(connectCtx)
	if err != nil {
		return err
	}
	defer cleanup()

	var chime *audio.Chime
	if getConfig().Chime.Enabled {
		chime = audio.NewChime(logger, getConfig().Chime.FrequencyHz, getConfig().Chime.DurationMS)
	}

	return tui.Run(controller, chime)
}
