package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strconv"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/idelchi/treescan/internal/integration"
	"github.com/idelchi/treescan/internal/treescan"
)

// ErrInvalidArgument is returned for missing or malformed command-line arguments.
var ErrInvalidArgument = errors.New("invalid argument")

// maxArgs is the number of positional arguments accepted.
const maxArgs = 5

// Exit codes returned by ExitCode.
const (
	ExitOK      = 0
	ExitFailure = 1
	ExitUsage   = 2
)

// CLI represents the command-line interface.
type CLI struct {
	version string
}

// New creates a new CLI instance with the given version.
func New(version string) CLI {
	return CLI{version: version}
}

// Arguments holds the parsed positional arguments and flags.
type Arguments struct {
	// Path is the directory to scan.
	Path string
	// Resolution is the unit used for the limit and displayed sizes.
	Resolution treescan.Resolution
	// Limit is the minimum size, in Resolution units, of a listed directory.
	Limit int64
	// Full disables the hidden-directory exclusion.
	Full bool
	// Verbose enables the trace of the first directory levels.
	Verbose bool
	// NoFollow counts symlinked directories as single entries instead of descending into them.
	NoFollow bool
}

// flags holds the values bound to the command's flag set.
type flags struct {
	noFollow    bool
	integration bool
}

func bindFlags(set *pflag.FlagSet, f *flags) {
	set.BoolVar(&f.noFollow, "no-follow", false, "Count symbolic links to directories as files instead of descending into them")
	set.BoolVarP(&f.integration, "init", "i", false, "Output init script for shell usage")
	set.SortFlags = false
}

// ParseArgs parses the positional arguments
// <path> [resolution] [limit] [full] [verbose].
func ParseArgs(args []string) (Arguments, error) {
	parsed := Arguments{Resolution: treescan.DefaultResolution}

	if len(args) == 0 || args[0] == "" {
		return parsed, fmt.Errorf("%w: missing path", ErrInvalidArgument)
	}

	if len(args) > maxArgs {
		return parsed, fmt.Errorf("%w: expected at most %d arguments, got %d", ErrInvalidArgument, maxArgs, len(args))
	}

	parsed.Path = args[0]

	if len(args) > 1 {
		res, err := treescan.ParseResolution(args[1])
		if err != nil {
			return parsed, fmt.Errorf("%w: %w", ErrInvalidArgument, err)
		}

		parsed.Resolution = res
	}

	if len(args) > 2 { //nolint:mnd // Third positional
		limit, err := strconv.ParseInt(args[2], 10, 64)
		if err != nil {
			return parsed, fmt.Errorf("%w: limit %q is not an integer", ErrInvalidArgument, args[2])
		}

		if limit < 0 {
			return parsed, fmt.Errorf("%w: limit %d cannot be negative", ErrInvalidArgument, limit)
		}

		parsed.Limit = limit
	}

	if len(args) > 3 { //nolint:mnd // Fourth positional
		parsed.Full = parseBool(args[3])
	}

	if len(args) > 4 { //nolint:mnd // Fifth positional
		parsed.Verbose = parseBool(args[4])
	}

	return parsed, nil
}

// parseBool treats every token that is not a recognized true value as false.
func parseBool(s string) bool {
	b, err := strconv.ParseBool(s)

	return err == nil && b
}

// ExitCode maps an error returned by Execute to a process exit status.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return ExitOK
	case errors.Is(err, ErrInvalidArgument):
		return ExitUsage
	default:
		return ExitFailure
	}
}

func (c CLI) command() *cobra.Command {
	var f flags

	cmd := &cobra.Command{
		Use:   "treescan <path> [resolution] [limit] [full] [verbose]",
		Short: "Rank subdirectories by recursive disk usage",
		Long: heredoc.Doc(`
			treescan walks a directory tree once, aggregates the size, file count and
			folder count of every subdirectory, and lists them largest first.

			Positional Arguments:
			  path         Directory to scan (required).
			  resolution   Unit for the limit and displayed sizes: B, KB, MB or GB (default KB).
			  limit        Minimum size, in resolution units, of a listed directory (default 0).
			  full         'true' to descend into hidden directories (default false).
			               Otherwise each hidden directory is counted as a single file.
			  verbose      'true' to trace the first 3 directory levels on stderr (default false).

			Directories below the limit are summarized in a single trailing line.
			Symbolic links to directories are followed without cycle detection;
			use '--no-follow' to count them as files.

			The '--init' flag prints a zsh function which pipes the listing to 'fzf'
			and changes into the selected directory.
		`),
		Example: heredoc.Doc(`
			treescan . MB 10
			treescan ~/projects KB 0 true
		`),
		Version:       c.version,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args: func(_ *cobra.Command, args []string) error {
			if f.integration {
				return nil
			}

			_, err := ParseArgs(args)

			return err
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if f.integration {
				rendered, err := integration.Render(cmd.Root().Name())
				if err != nil {
					return fmt.Errorf("rendering integration script: %w", err)
				}

				_, err = fmt.Fprintln(cmd.OutOrStdout(), rendered)

				return err
			}

			parsed, err := ParseArgs(args)
			if err != nil {
				return err
			}

			parsed.NoFollow = f.noFollow

			return logic(cmd.Context(), c.version, parsed, cmd.OutOrStdout(), cmd.ErrOrStderr())
		},
	}

	bindFlags(cmd.Flags(), &f)

	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return fmt.Errorf("%w: %w", ErrInvalidArgument, err)
	})

	return cmd
}

// Execute runs the CLI with the process arguments.
// An interrupt cancels a running scan.
func (c CLI) Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	return c.command().ExecuteContext(ctx)
}
