package main

import (
	"fmt"
	"os"
	"strconv"

	raindrop "github.com/raindropctl/raindropctl"
	"github.com/raindropctl/raindropctl/internal/creds"
	"github.com/raindropctl/raindropctl/internal/render"
	"github.com/rs/zerolog"
	"github.com/urfave/cli/v2"
)

func newApp() *cli.App {
	return &cli.App{
		Name:  "raindropctl",
		Usage: "Manage Raindrop.io bookmarks from scripts and agents",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "token",
				Usage:   "access token (overrides env and config file)",
				EnvVars: []string{creds.EnvToken},
			},
			&cli.StringFlag{
				Name:  "base-url",
				Usage: "API base URL override",
			},
			&cli.StringFlag{
				Name:    "format",
				Usage:   "output format: json or compact",
				Value:   "json",
				Aliases: []string{"f"},
			},
			&cli.BoolFlag{
				Name:  "dry-run",
				Usage: "simulate mutating operations without network I/O",
			},
			&cli.BoolFlag{
				Name:    "verbose",
				Usage:   "log retries and dry-run audit lines",
				Aliases: []string{"v"},
			},
		},
		Commands: []*cli.Command{
			authCommand(),
			userCommand(),
			statsCommand(),
			collectionCommand(),
			dropCommand(),
			tagCommand(),
			archiveCommand(),
		},
	}
}

// buildClient constructs the API client from the CLI context, resolving the
// token from flag, environment, then the persisted config file.
func buildClient(c *cli.Context) (*raindrop.Client, error) {
	token := c.String("token")
	if token == "" {
		store, err := creds.NewStore()
		if err != nil {
			return nil, err
		}
		token, _ = store.Token()
	}
	if token == "" {
		return nil, fmt.Errorf("no access token configured: set %s or run 'raindropctl auth login': %w",
			creds.EnvToken, raindrop.ErrMissingToken)
	}

	opts := []raindrop.Option{
		raindrop.WithLogger(newLogger(c.Bool("verbose"))),
		raindrop.WithDryRun(c.Bool("dry-run")),
	}
	if base := c.String("base-url"); base != "" {
		opts = append(opts, raindrop.WithBaseURL(base))
	}
	return raindrop.New(token, opts...)
}

// newLogger writes human-readable log lines to stderr so stdout stays
// machine-parsable.
func newLogger(verbose bool) zerolog.Logger {
	level := zerolog.WarnLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	writer := zerolog.ConsoleWriter{Out: os.Stderr}
	return zerolog.New(writer).Level(level).With().Timestamp().Logger()
}

// output renders a decoded value to stdout in the selected format.
func output(c *cli.Context, v any) error {
	return render.Render(os.Stdout, v, render.Format(c.String("format")))
}

// parseID parses a numeric identifier argument.
func parseID(arg string) (int64, error) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil {
		return 0, &raindrop.ValidationError{Message: fmt.Sprintf("unparsable identifier %q", arg)}
	}
	return id, nil
}

// requireArgs checks the exact positional argument count.
func requireArgs(c *cli.Context, names ...string) error {
	if c.NArg() != len(names) {
		return &raindrop.ValidationError{
			Message: fmt.Sprintf("expected %d argument(s): %v", len(names), names),
		}
	}
	return nil
}
