package cli

import (
	"fmt"
	"reflect"

	"github.com/spf13/cobra"

	"github.com/nmrkit/nmrkit/internal/convert"
	"github.com/nmrkit/nmrkit/internal/report"
	"github.com/nmrkit/nmrkit/internal/schema"
	"github.com/nmrkit/nmrkit/internal/sequence"
	"github.com/nmrkit/nmrkit/internal/star"
)

// NewMergeCommand creates the chemical-shift + restraint merge command.
// The input files come from the run parameters; the single argument is the
// merged output path.
func NewMergeCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:           "nmr-cs-mr-merge <output>",
		Short:         "Merge chemical-shift and restraint files into one deposition entry",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMerge(rootOpts, cmd, args[0])
		},
	}
}

func runMerge(opts *RootOptions, cmd *cobra.Command, output string) error {
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
	if len(params.ChemShiftFilePathList) == 0 {
		msg := "chem_shift_file_path_list is not set in the run parameters"
		_ = formatter.Error("bad_params", msg, nil)
		return NewExitError(ExitCommandError, msg)
	}

	csEntries, err := parseAll(params.ChemShiftFilePathList)
	if err != nil {
		_ = formatter.Error("unreadable_input", err.Error(), nil)
		return WrapExitError(ExitCommandError, "reading chemical-shift files", err)
	}
	mrPaths := append([]string{}, params.RestraintFilePathList...)
	mrPaths = append(mrPaths, params.AtypicalRestraintFilePathList...)
	mrEntries, err := parseAll(mrPaths)
	if err != nil {
		_ = formatter.Error("unreadable_input", err.Error(), nil)
		return WrapExitError(ExitCommandError, "reading restraint files", err)
	}

	rep := report.New()
	profile := schema.ForFormat(schema.STAR)

	if !params.ResolveConflict {
		if conflict := sequenceConflict(profile, rep, csEntries, params.ChemShiftFilePathList); conflict != "" {
			_ = formatter.Error("sequence_conflict", conflict, nil)
			return NewExitError(ExitValidation, conflict)
		}
	}

	if !params.MergeAnyPkAsIs {
		for i, entry := range csEntries {
			csEntries[i] = dropPeakLists(profile, entry)
		}
	}

	conv := &convert.Converter{
		From:          profile,
		To:            profile,
		EntryID:       params.ResolvedEntryID(),
		InsertEntryID: params.InsertEntryIDToLoops,
		Report:        rep,
	}
	merged, err := conv.MergeCSMR(csEntries, mrEntries)
	if err != nil {
		_ = formatter.Error("merge_failed", err.Error(), nil)
		return WrapExitError(ExitValidation, "merging inputs", err)
	}

	if err := writeEntry(merged, output); err != nil {
		_ = formatter.Error("output_write", err.Error(), nil)
		return WrapExitError(ExitCommandError, fmt.Sprintf("writing %s", output), err)
	}

	formatter.VerboseLog("merged %d shift file(s) and %d restraint file(s) into %s",
		len(csEntries), len(mrEntries), output)
	return formatter.Summary(RunSummary{
		File:     output,
		Status:   rep.Status(),
		Errors:   rep.ErrorCount(),
		Warnings: rep.WarningCount(),
	})
}

func parseAll(paths []string) ([]*star.Entry, error) {
	entries := make([]*star.Entry, 0, len(paths))
	for _, p := range paths {
		entry, err := star.ParseFile(p)
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", p, err)
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

// sequenceConflict reports the first disagreement between the assembly
// sequences of the input files. The merge keeps the first sequence it
// sees, so a silent disagreement would corrupt the deposition.
func sequenceConflict(profile *schema.Profile, rep *report.Report, entries []*star.Entry, paths []string) string {
	var first *sequence.Polymer
	firstPath := ""
	for i, entry := range entries {
		x := &sequence.Extractor{Profile: profile, Report: rep, File: paths[i]}
		p := x.Reference(entry)
		if p == nil {
			continue
		}
		if first == nil {
			first, firstPath = p, paths[i]
			continue
		}
		if !reflect.DeepEqual(first.Chains, p.Chains) {
			return fmt.Sprintf("assembly sequence in %s disagrees with %s; set resolve_conflict to merge anyway", paths[i], firstPath)
		}
	}
	return ""
}

// dropPeakLists removes spectral-peak saveframes; peak lists only survive
// a merge when merge_any_pk_as_is is set.
func dropPeakLists(profile *schema.Profile, entry *star.Entry) *star.Entry {
	peakCategory := profile.SaveframeCategory(schema.SpectralPeak)
	out := &star.Entry{Name: entry.Name, Tags: entry.Tags, Loops: entry.Loops}
	for _, sf := range entry.Saveframes {
		if sf.Category() == peakCategory {
			continue
		}
		out.Saveframes = append(out.Saveframes, sf)
	}
	return out
}
