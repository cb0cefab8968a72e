package cli

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nmrkit/nmrkit/internal/report"
)

func TestExitError(t *testing.T) {
	t.Run("message only", func(t *testing.T) {
		err := NewExitError(ExitValidation, "validation failed")
		assert.Equal(t, "validation failed", err.Error())
		assert.Equal(t, ExitValidation, GetExitCode(err))
	})

	t.Run("wrapped error", func(t *testing.T) {
		inner := fmt.Errorf("no such file")
		err := WrapExitError(ExitCommandError, "reading input", inner)
		assert.Equal(t, "reading input: no such file", err.Error())
		assert.Equal(t, ExitCommandError, GetExitCode(err))
		assert.ErrorIs(t, err, inner)
	})

	t.Run("plain error defaults to command error", func(t *testing.T) {
		assert.Equal(t, ExitCommandError, GetExitCode(errors.New("boom")))
	})
}

func TestFormatterJSON(t *testing.T) {
	var buf bytes.Buffer
	f := &OutputFormatter{Format: "json", Writer: &buf}

	require.NoError(t, f.Summary(RunSummary{
		File:     "test.nef",
		Status:   report.StatusWarning,
		Warnings: 2,
	}))

	var resp CLIResponse
	require.NoError(t, json.Unmarshal(buf.Bytes(), &resp))
	assert.Equal(t, "ok", resp.Status)
}

func TestFormatterText(t *testing.T) {
	var buf bytes.Buffer
	f := &OutputFormatter{Format: "text", Writer: &buf}

	require.NoError(t, f.Summary(RunSummary{
		File:   "test.nef",
		Status: report.StatusError,
		Errors: 3,
		Report: "report.json",
	}))

	out := buf.String()
	assert.Contains(t, out, "test.nef: ERROR (3 errors, 0 warnings)")
	assert.Contains(t, out, "report written to report.json")
}

func TestFormatterErrorOutput(t *testing.T) {
	var buf bytes.Buffer
	f := &OutputFormatter{Format: "json", Writer: &buf}

	require.NoError(t, f.Error("bad_params", "unknown key", nil))

	var resp CLIResponse
	require.NoError(t, json.Unmarshal(buf.Bytes(), &resp))
	assert.Equal(t, "error", resp.Status)
	require.NotNil(t, resp.Error)
	assert.Equal(t, "bad_params", resp.Error.Code)
}

func TestVerboseLogGoesToErrWriter(t *testing.T) {
	var out, errOut bytes.Buffer
	f := &OutputFormatter{Format: "json", Writer: &out, ErrWriter: &errOut, Verbose: true}

	f.VerboseLog("loaded %d files", 3)

	assert.Empty(t, out.String())
	assert.Equal(t, "loaded 3 files\n", errOut.String())
}
