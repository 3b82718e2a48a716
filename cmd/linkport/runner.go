package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	"github.com/urfave/cli/v3"

	"github.com/jpp0ca/linkport/internal/domain"
	"github.com/jpp0ca/linkport/internal/ports"
)

// Runner holds the dependencies shared by the CLI actions.
type Runner struct {
	service ports.ConversionService
	out     io.Writer
	logger  *log.Logger
}

func NewRunner(service ports.ConversionService, out io.Writer, logger *log.Logger) *Runner {
	return &Runner{service: service, out: out, logger: logger}
}

func (r *Runner) register() []*cli.Command {
	return []*cli.Command{
		{
			Name:  "convert",
			Usage: "Convert a playlist to another platform",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:     "url",
					Aliases:  []string{"u"},
					Usage:    "Share URL of the source playlist",
					Required: true,
				},
				&cli.StringFlag{
					Name:     "to",
					Aliases:  []string{"t"},
					Usage:    "Target platform (spotify, youtube, soundcloud, apple)",
					Required: true,
				},
				&cli.BoolFlag{
					Name:  "json",
					Usage: "Print the full result as JSON",
				},
			},
			Action: r.Convert,
		},
		{
			Name:   "platforms",
			Usage:  "List the platforms available for conversion",
			Action: r.Platforms,
		},
	}
}

// Convert runs a full conversion and prints a summary or the JSON result.
func (r *Runner) Convert(ctx context.Context, cmd *cli.Command) error {
	req := domain.ConversionRequest{SourceURL: cmd.String("url"), TargetPlatform: cmd.String("to")}
	r.logger.Debug("convert requested", "url", req.SourceURL, "to", req.TargetPlatform)

	result, err := r.service.Convert(ctx, req)
	if err != nil {
		return err
	}

	if cmd.Bool("json") {
		enc := json.NewEncoder(r.out)
		enc.SetIndent("", "  ")
		return enc.Encode(result)
	}

	r.writePlain("%s (%s → %s)\n", result.SourcePlaylist.Title, result.SourcePlaylist.Platform, result.TargetPlaylist.Platform)
	r.writePlain("═══════════════════════════════════════\n")
	for i, m := range result.Matches {
		orig := m.Original()
		r.writePlain("%2d. %s - %s\n", i+1, orig.Artist, orig.Title)
		if st, ok := m.Matched(); ok {
			r.writePlain("    %-9s %3.0f%%  %s - %s\n", m.Status(), st.Confidence*100, st.Track.Artist, st.Track.Title)
		} else {
			r.writePlain("    %-9s       %s\n", m.Status(), m.Explanation())
		}
	}

	s := result.Stats
	r.writePlain("═══════════════════════════════════════\n")
	r.writePlain("Matched: %d  Partial: %d  Not found: %d  (of %d)\n", s.Matched, s.Partial, s.NotFound, s.Total)
	r.writePlain("Share: %s\n", result.ShareableURL)
	return nil
}

// Platforms prints the registered platforms, one per line.
func (r *Runner) Platforms(_ context.Context, _ *cli.Command) error {
	for _, p := range r.service.Platforms() {
		r.writePlain("%s\n", p)
	}
	return nil
}

func (r *Runner) writePlain(format string, args ...any) {
	fmt.Fprintf(r.out, format, args...)
}
