package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/nmrkit/nmrkit/internal/convert"
	"github.com/nmrkit/nmrkit/internal/report"
	"github.com/nmrkit/nmrkit/internal/schema"
	"github.com/nmrkit/nmrkit/internal/star"
)

// NewNEF2STARCommand creates the NEF to NMR-STAR deposition command.
func NewNEF2STARCommand(rootOpts *RootOptions) *cobra.Command {
	return newConvertCommand(rootOpts, convertOp{
		use:   "nmr-nef2str-deposit <input> <output>",
		short: "Convert a NEF file to NMR-STAR for deposition",
		from:  schema.NEF,
		to:    schema.STAR,
	})
}

// NewSTAR2STARCommand creates the NMR-STAR normalization command.
func NewSTAR2STARCommand(rootOpts *RootOptions) *cobra.Command {
	return newConvertCommand(rootOpts, convertOp{
		use:   "nmr-str2str-deposit <input> <output>",
		short: "Normalize an NMR-STAR file for deposition",
		from:  schema.STAR,
		to:    schema.STAR,
	})
}

// NewSTAR2NEFCommand creates the NMR-STAR to NEF release command.
func NewSTAR2NEFCommand(rootOpts *RootOptions) *cobra.Command {
	return newConvertCommand(rootOpts, convertOp{
		use:   "nmr-str2nef-release <input> <output>",
		short: "Convert an NMR-STAR file to NEF for release",
		from:  schema.STAR,
		to:    schema.NEF,
	})
}

type convertOp struct {
	use   string
	short string
	from  schema.Format
	to    schema.Format
}

func newConvertCommand(rootOpts *RootOptions, op convertOp) *cobra.Command {
	return &cobra.Command{
		Use:           op.use,
		Short:         op.short,
		Args:          cobra.ExactArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConvert(rootOpts, cmd, op, args[0], args[1])
		},
	}
}

func runConvert(opts *RootOptions, cmd *cobra.Command, op convertOp, input, output string) error {
	formatter := &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}

	params, err := LoadParams(opts.Params)
	if err != nil {
		_ = formatter.Error("bad_params", err.Error(), nil)
		return WrapExitError(ExitCommandError, "loading run parameters", err)
	}

	entry, err := star.ParseFile(input)
	if err != nil {
		_ = formatter.Error("unreadable_input", err.Error(), nil)
		return WrapExitError(ExitCommandError, fmt.Sprintf("reading %s", input), err)
	}

	rep := report.New()
	conv := &convert.Converter{
		From:          schema.ForFormat(op.from),
		To:            schema.ForFormat(op.to),
		EntryID:       params.ResolvedEntryID(),
		InsertEntryID: params.InsertEntryIDToLoops,
		Report:        rep,
	}

	out, err := conv.Entry(entry)
	if err != nil {
		_ = formatter.Error("conversion_failed", err.Error(), nil)
		return WrapExitError(ExitValidation, fmt.Sprintf("converting %s", input), err)
	}

	if err := writeEntry(out, output); err != nil {
		_ = formatter.Error("output_write", err.Error(), nil)
		return WrapExitError(ExitCommandError, fmt.Sprintf("writing %s", output), err)
	}

	formatter.VerboseLog("converted %s (%s) to %s (%s)", input, op.from, output, op.to)
	return formatter.Summary(RunSummary{
		File:     output,
		Status:   rep.Status(),
		Errors:   rep.ErrorCount(),
		Warnings: rep.WarningCount(),
	})
}

func writeEntry(entry *star.Entry, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := star.Write(f, entry); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
