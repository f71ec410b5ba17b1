// Package cli provides the command-line interface for brandkit.
package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vixseg/brandkit/internal/version"
)

// globalOptions holds the persistent flags.
type globalOptions struct {
	verbose bool
	quiet   bool
	noColor bool
}

// NewRootCmd builds the brandkit command tree.
func NewRootCmd() *cobra.Command {
	opts := &globalOptions{}

	rootCmd := &cobra.Command{
		Use:   "brandkit",
		Short: "Build-time theme tooling for the VixSeg site",
		Long: `brandkit derives the site's colour theme from the company favicon and
exports the static content the site build needs.

The palette has three roles, each with light and dark variants:
primary (green), secondary (blue) and tertiary (gray).`,
		Version:      version.Short(),
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if opts.noColor {
				color.NoColor = true
			}
		},
	}

	rootCmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().BoolVarP(&opts.quiet, "quiet", "q", false, "suppress non-error output")
	rootCmd.PersistentFlags().BoolVar(&opts.noColor, "no-color", false, "disable coloured output")

	rootCmd.SetVersionTemplate(version.String() + "\n")

	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newExtractCmd(opts))
	rootCmd.AddCommand(newGenerateCmd(opts))
	rootCmd.AddCommand(newServicesCmd(opts))

	return rootCmd
}

// Execute runs the root command.
func Execute() error {
	return NewRootCmd().Execute()
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Long:  `Print detailed version information including build date, commit hash, and Go version.`,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), version.String())
		},
	}
}

// newLogger creates the command logger. --verbose and --quiet override the
// configured level.
func (o *globalOptions) newLogger(w io.Writer, level string) hclog.Logger {
	lvl := hclog.LevelFromString(level)
	if lvl == hclog.NoLevel {
		lvl = hclog.Info
	}
	if o.verbose {
		lvl = hclog.Debug
	}
	if o.quiet {
		lvl = hclog.Error
	}

	// Colour only terminal files.
	colorOpt := hclog.ColorOff
	if f, ok := w.(*os.File); ok && !color.NoColor && term.IsTerminal(int(f.Fd())) { // #nosec G115 - file descriptors fit in int
		colorOpt = hclog.AutoColor
	}

	return hclog.New(&hclog.LoggerOptions{
		Name:        "brandkit",
		Output:      w,
		Level:       lvl,
		DisableTime: true,
		Color:       colorOpt,
	})
}

// status prints a user-facing progress line unless --quiet is set.
func (o *globalOptions) status(w io.Writer, format string, a ...any) {
	if o.quiet {
		return
	}
	fmt.Fprintf(w, format+"\n", a...)
}

var (
	successStyle = color.New(color.FgGreen, color.Bold)
	headingStyle = color.New(color.FgCyan, color.Bold)
	dimStyle     = color.New(color.FgHiBlack)
)
