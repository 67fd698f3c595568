package main

import (
	"context"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/volctl/internal/adapter/output"
	"github.com/jmylchreest/volctl/internal/control"
)

var listOpts struct {
	format   string
	template string
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List active audio sessions",
	Long: `List all currently active audio sessions with their volume and mute
state. The system-sounds stream is included when present.

Examples:
  # Human-readable listing
  volctl list

  # Machine-readable output
  volctl list --format json

  # Pipe into fuzzel/rofi and toggle the chosen app
  volctl list --format dmenu | fuzzel -d | cut -d'|' -f2 | xargs volctl toggle`,
	Args: cobra.NoArgs,
	RunE: runList,
}

func init() {
	rootCmd.AddCommand(listCmd)

	listCmd.Flags().StringVarP(&listOpts.format, "format", "f", "",
		"Output format (plain, json, yaml, dmenu)")
	listCmd.Flags().StringVar(&listOpts.template, "template", "",
		"Custom Go template for plain/dmenu output")
}

func runList(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	controller, cleanup, err := newController(ctx)
	if err != nil {
		return err
	}
	defer cleanup()

	return listSessions(ctx, controller, os.Stdout, listOpts.format, listOpts.template)
}

// listSessions enumerates and prints all sessions. Format and template
// fall back to config defaults when empty.
func listSessions(ctx context.Context, controller *control.Controller, w io.Writer, format, template string) error {
	sessions, err := controller.Sessions(ctx)
	if err != nil {
		return err
	}

	if format == "" {
		format = getConfig().Output.Format
	}
	if template == "" {
		template = getConfig().Output.Template
	}

	logger.Debug("listing sessions", "count", len(sessions), "format", format)

	opts := output.DefaultFormatterOptions()
	opts.Template = template

	formatter := output.NewFormatter(output.ParseFormat(format), opts)
	return formatter.Format(w, sessions)
}
