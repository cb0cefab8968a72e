package cli

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/nmrkit/nmrkit/internal/shiftstat"
)

// NewStatCommand creates the statistics-database admin command group.
func NewStatCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stat",
		Short: "Manage the chemical-shift statistics database",
	}
	cmd.AddCommand(newStatLoadCommand(rootOpts))
	cmd.AddCommand(newStatCountCommand(rootOpts))
	return cmd
}

// newStatLoadCommand imports CSV statistics rows into the store named by
// --stat-db. Columns: comp_id, atom_id, avg, std, min, max, count.
func newStatLoadCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:           "load <csv-file>",
		Short:         "Import statistics rows from a CSV file",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStatLoad(rootOpts, cmd, args[0])
		},
	}
}

func newStatCountCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:           "count",
		Short:         "Report how many statistics rows the database holds",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStatCount(rootOpts, cmd)
		},
	}
}

func runStatLoad(opts *RootOptions, cmd *cobra.Command, csvPath string) error {
	formatter := &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}
	if opts.StatDB == "" {
		msg := "--stat-db is required"
		_ = formatter.Error("stat_db", msg, nil)
		return NewExitError(ExitCommandError, msg)
	}

	rows, err := readStatCSV(csvPath)
	if err != nil {
		_ = formatter.Error("bad_csv", err.Error(), nil)
		return WrapExitError(ExitCommandError, fmt.Sprintf("reading %s", csvPath), err)
	}

	store, err := shiftstat.Open(opts.StatDB)
	if err != nil {
		_ = formatter.Error("stat_db", err.Error(), nil)
		return WrapExitError(ExitCommandError, "opening statistics database", err)
	}
	defer store.Close()

	if err := store.Import(cmd.Context(), rows); err != nil {
		_ = formatter.Error("stat_db", err.Error(), nil)
		return WrapExitError(ExitCommandError, "importing statistics", err)
	}
	return formatter.Success(fmt.Sprintf("imported %d statistics row(s)", len(rows)))
}

func runStatCount(opts *RootOptions, cmd *cobra.Command) error {
	formatter := &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}
	if opts.StatDB == "" {
		msg := "--stat-db is required"
		_ = formatter.Error("stat_db", msg, nil)
		return NewExitError(ExitCommandError, msg)
	}

	store, err := shiftstat.Open(opts.StatDB)
	if err != nil {
		_ = formatter.Error("stat_db", err.Error(), nil)
		return WrapExitError(ExitCommandError, "opening statistics database", err)
	}
	defer store.Close()

	n, err := store.Count(cmd.Context())
	if err != nil {
		_ = formatter.Error("stat_db", err.Error(), nil)
		return WrapExitError(ExitCommandError, "counting statistics", err)
	}
	return formatter.Success(fmt.Sprintf("%d statistics row(s)", n))
}

// readStatCSV parses rows of comp_id, atom_id, avg, std, min, max, count.
// A header row is recognized by a non-numeric third field and skipped.
func readStatCSV(path string) ([]shiftstat.Stat, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = 7

	var rows []shiftstat.Stat
	line := 0
	for {
		rec, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		line++

		avg, err := strconv.ParseFloat(rec[2], 64)
		if err != nil {
			if line == 1 {
				continue // header
			}
			return nil, fmt.Errorf("line %d: bad avg %q", line, rec[2])
		}
		std, err := strconv.ParseFloat(rec[3], 64)
		if err != nil {
			return nil, fmt.Errorf("line %d: bad std %q", line, rec[3])
		}
		min, err := strconv.ParseFloat(rec[4], 64)
		if err != nil {
			return nil, fmt.Errorf("line %d: bad min %q", line, rec[4])
		}
		max, err := strconv.ParseFloat(rec[5], 64)
		if err != nil {
			return nil, fmt.Errorf("line %d: bad max %q", line, rec[5])
		}
		count, err := strconv.Atoi(rec[6])
		if err != nil {
			return nil, fmt.Errorf("line %d: bad count %q", line, rec[6])
		}

		rows = append(rows, shiftstat.Stat{
			CompID: rec[0],
			AtomID: rec[1],
			Avg:    avg,
			Std:    std,
			Min:    min,
			Max:    max,
			Count:  count,
		})
	}
	return rows, nil
}
