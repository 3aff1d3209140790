// Package cli implements the png2gradient command.
package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/sirupsen/logrus"

	"github.com/ironsheep/gradient-tools/internal/config"
	"github.com/ironsheep/gradient-tools/internal/gradient"
	"github.com/ironsheep/gradient-tools/internal/imaging"
	"github.com/ironsheep/gradient-tools/internal/logger"
	"github.com/ironsheep/gradient-tools/internal/watch"
)

// Exit codes.
const (
	ExitOK      = 0
	ExitFailure = 1
	ExitUsage   = 2
)

// App carries the streams and build metadata for one invocation.
type App struct {
	Stdout    io.Writer
	Stderr    io.Writer
	Version   string
	BuildTime string
	GitCommit string

	// Config overrides the environment defaults when set.
	Config *config.Config
}

// Run executes the command with the arguments that follow the program name
// and returns the process exit code. ctx only matters in watch mode, where
// cancelling it ends the run.
func (a *App) Run(ctx context.Context, args []string) int {
	if len(args) == 0 {
		a.usage()
		return ExitOK
	}

	cfg := a.Config
	if cfg == nil {
		cfg = config.LoadFromEnv()
		logger.Configure(cfg.LogLevel, cfg.LogFormat)
	}

	opts, err := Parse(args, cfg)
	switch {
	case errors.Is(err, errHelp):
		a.usage()
		return ExitOK
	case errors.Is(err, errVersion):
		a.version()
		return ExitOK
	case err != nil:
		fmt.Fprintf(a.Stderr, "error: %v\n", err)
		fmt.Fprintln(a.Stderr, "Run with --help for usage.")
		return ExitUsage
	}

	log := logger.WithFields(logrus.Fields{
		"path":        opts.Path,
		"orientation": opts.Orientation.String(),
		"tolerance":   opts.Tolerance,
	})

	runErr := a.runOnce(opts, log)
	if runErr != nil {
		fmt.Fprintf(a.Stderr, "error: %v\n", runErr)
	}

	if !opts.Watch {
		if runErr != nil {
			return ExitFailure
		}
		return ExitOK
	}

	return a.watch(ctx, opts, cfg, log)
}

// runOnce decodes the image, detects its stops and writes every requested
// output. The decoded image is released before returning.
func (a *App) runOnce(opts *Options, log *logrus.Entry) error {
	gcfg := opts.Config()
	gcfg.Logger = log
	finder, err := gradient.New(gcfg)
	if err != nil {
		return err
	}

	src, err := imaging.Open(opts.Path)
	if err != nil {
		return err
	}
	defer src.Close()
	img := src.Image()

	stops, err := finder.Find(img)
	if err != nil {
		return fmt.Errorf("%s: %w", opts.Path, err)
	}
	log.WithField("stops", len(stops)).Info("gradient detected")

	var fidelity *gradient.Fidelity
	if opts.Verify {
		if fidelity, err = finder.Verify(img, stops); err != nil {
			return err
		}
	}

	if err := a.writeStops(opts, stops, fidelity); err != nil {
		return err
	}

	if opts.RenderPath != "" {
		b := img.Bounds()
		rendered, err := gradient.Render(stops, b.Dx(), b.Dy(), opts.Orientation)
		if err != nil {
			return err
		}
		if err := imaging.Save(opts.RenderPath, rendered); err != nil {
			return err
		}
		log.WithField("render", opts.RenderPath).Info("rendered stops")
	}
	return nil
}

type jsonReport struct {
	Stops    []gradient.JSONStop `json:"stops"`
	Fidelity *gradient.Fidelity  `json:"fidelity,omitempty"`
}

func (a *App) writeStops(opts *Options, stops []gradient.Stop, fidelity *gradient.Fidelity) error {
	switch opts.Format {
	case FormatJSON:
		if fidelity == nil {
			return gradient.WriteJSON(a.Stdout, stops)
		}
		enc := json.NewEncoder(a.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(jsonReport{Stops: gradient.ToJSON(stops), Fidelity: fidelity})
	case FormatCSS:
		if _, err := fmt.Fprintln(a.Stdout, gradient.CSS(stops, opts.Orientation)); err != nil {
			return err
		}
	default:
		if err := gradient.WriteText(a.Stdout, stops); err != nil {
			return err
		}
	}

	if fidelity != nil {
		verdict := "ok"
		if !fidelity.WithinTolerance {
			verdict = "exceeds tolerance"
		}
		_, err := fmt.Fprintf(a.Stdout, "fidelity: max deviation %d at %.2f%%, mean %.2f (tolerance %d, %s)\n",
			fidelity.MaxDeviation, fidelity.WorstPosition, fidelity.MeanDeviation, fidelity.Tolerance, verdict)
		return err
	}
	return nil
}

// watch re-runs detection whenever the file changes until ctx is done.
func (a *App) watch(ctx context.Context, opts *Options, cfg *config.Config, log *logrus.Entry) int {
	w, err := watch.New(opts.Path, cfg.WatchDebounce, func() error {
		fmt.Fprintf(a.Stdout, "--- %s changed\n", opts.Path)
		return a.runOnce(opts, log)
	}, func(err error) {
		fmt.Fprintf(a.Stderr, "error: %v\n", err)
	})
	if err != nil {
		fmt.Fprintf(a.Stderr, "error: cannot watch %s: %v\n", opts.Path, err)
		return ExitFailure
	}

	w.Start()
	log.Info("watching for changes")
	<-ctx.Done()
	w.Stop()
	return ExitOK
}

func (a *App) usage() {
	fmt.Fprintln(a.Stdout, "png2gradient - recover gradient stops from an image")
	fmt.Fprintln(a.Stdout)
	fmt.Fprintln(a.Stdout, "Usage: png2gradient <filename> [options]")
	fmt.Fprintln(a.Stdout)
	fmt.Fprintln(a.Stdout, "Options:")
	fmt.Fprintln(a.Stdout, "  --horizontal          The gradient runs left to right instead of top to bottom")
	fmt.Fprintln(a.Stdout, "  --tolerance<value>    Per-channel tolerance, 0 to 255 (default 5)")
	fmt.Fprintln(a.Stdout, "  --format=<name>       Output as text, css or json (default text)")
	fmt.Fprintln(a.Stdout, "  --render=<file>       Write the detected gradient to an image file")
	fmt.Fprintln(a.Stdout, "  --verify              Report how closely the stops reproduce the image")
	fmt.Fprintln(a.Stdout, "  --watch               Run again whenever the file changes")
	fmt.Fprintln(a.Stdout, "  --version, -v         Print version information")
	fmt.Fprintln(a.Stdout, "  --help, -h            Print this help message")
	fmt.Fprintln(a.Stdout)
	fmt.Fprintln(a.Stdout, "Environment variables:")
	fmt.Fprintf(a.Stdout, "  %s=debug    Enable debug logging on stderr\n", config.EnvLogLevel)
	fmt.Fprintf(a.Stdout, "  %s=json    Log as JSON\n", config.EnvLogFormat)
	fmt.Fprintf(a.Stdout, "  %s=<n>     Default tolerance\n", config.EnvTolerance)
	fmt.Fprintf(a.Stdout, "  %s=<d>  Watch debounce (default 500ms)\n", config.EnvWatchDebounce)
	fmt.Fprintln(a.Stdout)
	fmt.Fprintln(a.Stdout, "Sample: png2gradient mygradient.png --horizontal --tolerance10")
}

func (a *App) version() {
	fmt.Fprintf(a.Stdout, "png2gradient %s\n", a.Version)
	fmt.Fprintf(a.Stdout, "  Build time: %s\n", a.BuildTime)
	fmt.Fprintf(a.Stdout, "  Git commit: %s\n", a.GitCommit)
}
