package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// RootOptions holds global flags shared by all commands.
type RootOptions struct {
	Verbose bool
	Format  string // "json" | "text"
	Params  string // run parameter file (YAML)
	LogPath string // report destination for consistency checks
	StatDB  string // chemical-shift statistics store (SQLite)
}

// ValidFormats defines the allowed output formats.
var ValidFormats = []string{"text", "json"}

// NewRootCommand creates the root command for the nmrkit CLI.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "nmrkit",
		Short: "nmrkit - NMR data consistency and conversion toolkit",
		Long:  "Validates NEF and NMR-STAR deposition data, converts between the two vocabularies, and assembles merged deposition artifacts.",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !isValidFormat(opts.Format) {
				return fmt.Errorf("invalid format %q: must be one of %v", opts.Format, ValidFormats)
			}
			return nil
		},
	}

	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", "text", "output format (json|text)")
	cmd.PersistentFlags().StringVar(&opts.Params, "params", "", "run parameter file (YAML)")
	cmd.PersistentFlags().StringVar(&opts.LogPath, "log", "", "write the JSON report to this path")
	cmd.PersistentFlags().StringVar(&opts.StatDB, "stat-db", "", "chemical-shift statistics database (SQLite)")

	cmd.AddCommand(NewNEFCheckCommand(opts))
	cmd.AddCommand(NewSTARCheckCommand(opts))
	cmd.AddCommand(NewCSSTARCheckCommand(opts))
	cmd.AddCommand(NewNEF2STARCommand(opts))
	cmd.AddCommand(NewSTAR2STARCommand(opts))
	cmd.AddCommand(NewSTAR2NEFCommand(opts))
	cmd.AddCommand(NewSTAR2CIFDepositCommand(opts))
	cmd.AddCommand(NewSTAR2CIFAnnotateCommand(opts))
	cmd.AddCommand(NewMergeCommand(opts))
	cmd.AddCommand(NewStatCommand(opts))

	return cmd
}

func isValidFormat(format string) bool {
	for _, f := range ValidFormats {
		if f == format {
			return true
		}
	}
	return false
}

// newLogger builds the command logger. Verbose runs get debug-level
// console output on stderr; quiet runs log warnings and up.
func newLogger(verbose bool) *zap.Logger {
	cfg := zap.NewDevelopmentConfig()
	cfg.OutputPaths = []string{"stderr"}
	cfg.ErrorOutputPaths = []string{"stderr"}
	if verbose {
		cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	} else {
		cfg.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
	}
	log, err := cfg.Build()
	if err != nil {
		return zap.NewNop()
	}
	return log
}
