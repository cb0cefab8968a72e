package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/nmrkit/nmrkit/internal/ccd"
	"github.com/nmrkit/nmrkit/internal/engine"
	"github.com/nmrkit/nmrkit/internal/report"
	"github.com/nmrkit/nmrkit/internal/schema"
	"github.com/nmrkit/nmrkit/internal/sequence"
	"github.com/nmrkit/nmrkit/internal/shiftstat"
	"github.com/nmrkit/nmrkit/internal/star"
)

// NewNEFCheckCommand creates the NEF consistency-check command.
func NewNEFCheckCommand(rootOpts *RootOptions) *cobra.Command {
	return newCheckCommand(rootOpts, checkOp{
		use:      "nmr-nef-consistency-check <file>",
		short:    "Validate a NEF unified deposition file",
		declared: schema.NEF,
		content:  engine.ContentUnified,
	})
}

// NewSTARCheckCommand creates the NMR-STAR consistency-check command.
func NewSTARCheckCommand(rootOpts *RootOptions) *cobra.Command {
	return newCheckCommand(rootOpts, checkOp{
		use:      "nmr-str-consistency-check <file>",
		short:    "Validate an NMR-STAR unified deposition file",
		declared: schema.STAR,
		content:  engine.ContentUnified,
	})
}

// NewCSSTARCheckCommand creates the shifts-only NMR-STAR check command.
// The reference sequence comes from the coordinate file named in the run
// parameters, not from the shift file itself.
func NewCSSTARCheckCommand(rootOpts *RootOptions) *cobra.Command {
	return newCheckCommand(rootOpts, checkOp{
		use:        "nmr-cs-str-consistency-check <file>",
		short:      "Validate an NMR-STAR chemical-shift file against coordinates",
		declared:   schema.STAR,
		content:    engine.ContentShiftsOnly,
		wantCoords: true,
	})
}

type checkOp struct {
	use        string
	short      string
	declared   schema.Format
	content    engine.ContentRules
	wantCoords bool
}

func newCheckCommand(rootOpts *RootOptions, op checkOp) *cobra.Command {
	return &cobra.Command{
		Use:           op.use,
		Short:         op.short,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(rootOpts, cmd, op, args[0])
		},
	}
}

func runCheck(opts *RootOptions, cmd *cobra.Command, op checkOp, input string) error {
	formatter := &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}
	log := newLogger(opts.Verbose)
	defer log.Sync()

	params, err := LoadParams(opts.Params)
	if err != nil {
		_ = formatter.Error("bad_params", err.Error(), nil)
		return WrapExitError(ExitCommandError, "loading run parameters", err)
	}

	oracle, err := openOracle(cmd, opts.StatDB)
	if err != nil {
		_ = formatter.Error("stat_db", err.Error(), nil)
		return WrapExitError(ExitCommandError, "opening statistics database", err)
	}

	engOpts := params.EngineOptions()
	engOpts.Content = op.content
	if op.wantCoords {
		ref, err := coordinateReference(params.CoordinateFilePath)
		if err != nil {
			_ = formatter.Error("bad_coordinates", err.Error(), nil)
			return WrapExitError(ExitCommandError, "reading coordinate file", err)
		}
		engOpts.Reference = ref
	}

	rep := report.New()
	entry, parseErr := star.ParseFile(input)
	var syntaxErr *star.ParseError
	switch {
	case errors.As(parseErr, &syntaxErr):
		// An unparseable file is a finding, not a crash: the run still
		// produces a report for the depositor.
		rep.Error(report.ErrFormatIssue, report.Finding{
			Description: fmt.Sprintf("file could not be parsed as %s: %v", op.declared, parseErr),
			File:        input,
		})
	case parseErr != nil:
		_ = formatter.Error("unreadable_input", parseErr.Error(), nil)
		return WrapExitError(ExitCommandError, fmt.Sprintf("reading %s", input), parseErr)
	default:
		confirmFormat(rep, entry, op.declared, input)
		profile := schema.ForFormat(op.declared)
		eng := engine.New(profile, rep, ccd.NewResolver(), oracle, log, engOpts)
		eng.Validate(entry, input)
	}

	reportPath := opts.LogPath
	if reportPath == "" {
		reportPath = params.ReportFilePath
	}
	if reportPath != "" {
		if err := writeReport(rep, reportPath); err != nil {
			_ = formatter.Error("report_write", err.Error(), nil)
			return WrapExitError(ExitCommandError, "writing report", err)
		}
	}

	summary := RunSummary{
		File:     input,
		Status:   rep.Status(),
		Errors:   rep.ErrorCount(),
		Warnings: rep.WarningCount(),
		Report:   reportPath,
	}
	if err := formatter.Summary(summary); err != nil {
		return err
	}
	if rep.Status() == report.StatusError {
		return NewExitError(ExitValidation, fmt.Sprintf("%s failed validation with %d error(s)", input, rep.ErrorCount()))
	}
	log.Debug("check finished", zap.String("file", input), zap.String("status", string(rep.Status())))
	return nil
}

// confirmFormat checks the declared format against what the saveframe
// categories actually look like.
func confirmFormat(rep *report.Report, entry *star.Entry, declared schema.Format, file string) {
	categories := make([]string, 0, len(entry.Saveframes))
	for _, sf := range entry.Saveframes {
		categories = append(categories, sf.Category())
	}
	detected, ok := schema.DetectFormat(categories)
	switch {
	case !ok:
		rep.Error(report.ErrFormatIssue, report.Finding{
			Description: fmt.Sprintf("file was submitted as %s but none of its saveframe categories are recognized NEF or NMR-STAR content", declared),
			File:        file,
		})
	case detected != declared:
		rep.Error(report.ErrFormatIssue, report.Finding{
			Description: fmt.Sprintf("file was submitted as %s but its content looks like %s", declared, detected),
			File:        file,
		})
	}
}

// coordinateReference parses the model file and extracts its polymer
// sequence. An empty path is a command error for shifts-only runs: the
// check has no reference without it.
func coordinateReference(path string) (*sequence.Polymer, error) {
	if path == "" {
		return nil, fmt.Errorf("coordinate_file_path is not set in the run parameters")
	}
	entry, err := star.ParseFile(path)
	if err != nil {
		return nil, err
	}
	ref := sequence.FromCoordinates(entry)
	if ref == nil {
		return nil, fmt.Errorf("%s carries no polymer sequence", path)
	}
	return ref, nil
}

// openOracle layers the statistics store, when one is given, over the
// builtin table.
func openOracle(cmd *cobra.Command, path string) (shiftstat.Oracle, error) {
	builtin := shiftstat.NewBuiltin()
	if path == "" {
		return builtin, nil
	}
	store, err := shiftstat.Open(path)
	if err != nil {
		return nil, err
	}
	defer store.Close()

	fromDB, err := store.Oracle(cmd.Context())
	if err != nil {
		return nil, err
	}
	return shiftstat.Layered{fromDB, builtin}, nil
}

func writeReport(rep *report.Report, path string) error {
	data, err := rep.WriteJSON()
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
