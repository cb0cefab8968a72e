package star

import (
	"fmt"
	"io"
	"strings"
)

// Write serializes an entry back to star syntax. Values pass through
// unchanged; quoting is chosen per value so the output re-parses to the
// same tree.
func Write(w io.Writer, entry *Entry) error {
	bw := &errWriter{w: w}
	bw.printf("data_%s\n", entry.Name)

	for _, t := range entry.Tags {
		writeTag(bw, t, "")
	}
	for _, lp := range entry.Loops {
		writeLoop(bw, lp, "")
	}

	for _, sf := range entry.Saveframes {
		bw.printf("\nsave_%s\n", sf.Name)
		for _, t := range sf.Tags {
			writeTag(bw, t, "   ")
		}
		for _, lp := range sf.Loops {
			writeLoop(bw, lp, "   ")
		}
		bw.printf("\nsave_\n")
	}
	return bw.err
}

func writeTag(bw *errWriter, t Tag, indent string) {
	v := quote(t.Value)
	if strings.HasPrefix(v, ";") {
		bw.printf("%s%s\n%s", indent, t.Name, v)
		return
	}
	bw.printf("%s%-40s %s\n", indent, t.Name, v)
}

func writeLoop(bw *errWriter, lp *Loop, indent string) {
	bw.printf("\n%sloop_\n", indent)
	for _, c := range lp.Columns {
		bw.printf("%s   %s\n", indent, c)
	}
	bw.printf("\n")
	for _, row := range lp.Rows {
		cells := make([]string, len(row))
		for i, v := range row {
			cells[i] = quote(v)
		}
		bw.printf("%s     %s\n", indent, strings.Join(cells, " "))
	}
	bw.printf("%s   stop_\n", indent)
}

// quote renders a value with the lightest quoting that survives re-parsing.
func quote(v string) string {
	if v == "" {
		return "."
	}
	if strings.ContainsRune(v, '\n') {
		return fmt.Sprintf(";\n%s\n;\n", v)
	}
	plain := !strings.ContainsAny(v, " \t'\"#")
	if plain && !reserved(v) {
		return v
	}
	if !strings.Contains(v, "'") {
		return "'" + v + "'"
	}
	if !strings.Contains(v, `"`) {
		return `"` + v + `"`
	}
	return fmt.Sprintf(";\n%s\n;\n", v)
}

// reserved reports whether a bare value would be read as structure.
func reserved(v string) bool {
	if strings.HasPrefix(v, "_") || strings.HasPrefix(v, "data_") || strings.HasPrefix(v, "save_") {
		return true
	}
	return v == "loop_" || v == "stop_" || v == "global_"
}

type errWriter struct {
	w   io.Writer
	err error
}

func (bw *errWriter) printf(format string, args ...any) {
	if bw.err != nil {
		return
	}
	_, bw.err = fmt.Fprintf(bw.w, format, args...)
}
