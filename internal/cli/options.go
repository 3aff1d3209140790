package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/ironsheep/gradient-tools/internal/config"
	"github.com/ironsheep/gradient-tools/internal/gradient"
)

// Output formats accepted by --format.
const (
	FormatText = "text"
	FormatCSS  = "css"
	FormatJSON = "json"
)

var (
	errHelp    = errors.New("help requested")
	errVersion = errors.New("version requested")
)

// Options is the parsed command line.
type Options struct {
	Path        string
	Orientation gradient.Orientation
	Tolerance   uint8
	Format      string
	RenderPath  string
	Verify      bool
	Watch       bool
}

// Config returns the finder configuration selected by the options.
func (o *Options) Config() gradient.Config {
	return gradient.Config{
		Orientation: o.Orientation,
		Tolerance:   o.Tolerance,
	}
}

// Parse reads the arguments that follow the program name. Flags are matched
// case-insensitively and may appear before or after the file name. defaults
// supplies the tolerance used when --tolerance is absent.
func Parse(args []string, defaults *config.Config) (*Options, error) {
	opts := &Options{
		Orientation: gradient.Vertical,
		Tolerance:   defaults.Tolerance,
		Format:      FormatText,
	}

	for _, arg := range args {
		lower := strings.ToLower(arg)

		switch {
		case lower == "--help" || lower == "-h":
			return nil, errHelp
		case lower == "--version" || lower == "-v":
			return nil, errVersion
		case lower == "--horizontal":
			opts.Orientation = gradient.Horizontal
		case lower == "--vertical":
			opts.Orientation = gradient.Vertical
		case lower == "--verify":
			opts.Verify = true
		case lower == "--watch":
			opts.Watch = true
		case strings.HasPrefix(lower, "--tolerance"):
			tol, err := gradient.ParseTolerance(strings.TrimPrefix(lower[len("--tolerance"):], "="))
			if err != nil {
				return nil, err
			}
			opts.Tolerance = tol
		case strings.HasPrefix(lower, "--format="):
			format := lower[len("--format="):]
			switch format {
			case FormatText, FormatCSS, FormatJSON:
				opts.Format = format
			default:
				return nil, fmt.Errorf("%w: unknown format %q", gradient.ErrInvalidConfiguration, format)
			}
		case strings.HasPrefix(lower, "--render="):
			opts.RenderPath = arg[len("--render="):]
			if opts.RenderPath == "" {
				return nil, fmt.Errorf("%w: --render needs a file name", gradient.ErrInvalidConfiguration)
			}
		case strings.HasPrefix(arg, "-"):
			return nil, fmt.Errorf("%w: unknown option %q", gradient.ErrInvalidConfiguration, arg)
		default:
			if opts.Path != "" {
				return nil, fmt.Errorf("%w: more than one file given (%q and %q)", gradient.ErrInvalidConfiguration, opts.Path, arg)
			}
			opts.Path = arg
		}
	}

	if opts.Path == "" {
		return nil, fmt.Errorf("%w: no image file given", gradient.ErrInvalidConfiguration)
	}
	return opts, nil
}
