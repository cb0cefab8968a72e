package star

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// ParseError reports a syntax problem with its line number.
type ParseError struct {
	Line    int
	Message string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("line %d: %s", e.Line, e.Message)
}

// ParseFile reads a star-family file from disk.
func ParseFile(path string) (*Entry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Parse(f)
}

// Parse reads a star-family entry from r. Exactly one data block is
// expected; content before it is rejected.
func Parse(r io.Reader) (*Entry, error) {
	tz := newTokenizer(r)

	tok, err := tz.next()
	if err == io.EOF {
		return nil, &ParseError{Line: tz.line, Message: "empty input"}
	}
	if err != nil {
		return nil, err
	}
	if !strings.HasPrefix(tok, "data_") {
		return nil, &ParseError{Line: tz.line, Message: fmt.Sprintf("expected data_ block, got %q", tok)}
	}

	entry := &Entry{Name: strings.TrimPrefix(tok, "data_")}
	var sf *Saveframe

	for {
		tok, err = tz.next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}

		switch {
		case tok == "save_":
			if sf == nil {
				return nil, &ParseError{Line: tz.line, Message: "save_ terminator outside a save frame"}
			}
			entry.Saveframes = append(entry.Saveframes, sf)
			sf = nil

		case strings.HasPrefix(tok, "save_"):
			if sf != nil {
				return nil, &ParseError{Line: tz.line, Message: fmt.Sprintf("save frame %q opened inside %q", tok[5:], sf.Name)}
			}
			sf = &Saveframe{Name: tok[5:]}

		case tok == "loop_":
			lp, err := parseLoop(tz)
			if err != nil {
				return nil, err
			}
			if sf != nil {
				sf.Loops = append(sf.Loops, lp)
			} else {
				entry.Loops = append(entry.Loops, lp)
			}

		case strings.HasPrefix(tok, "_"):
			val, err := tz.next()
			if err != nil {
				return nil, &ParseError{Line: tz.line, Message: fmt.Sprintf("tag %s has no value", tok)}
			}
			t := Tag{Name: tok, Value: val}
			if sf != nil {
				sf.Tags = append(sf.Tags, t)
			} else {
				entry.Tags = append(entry.Tags, t)
			}

		case strings.HasPrefix(tok, "data_"):
			return nil, &ParseError{Line: tz.line, Message: "multiple data blocks in one file"}

		default:
			return nil, &ParseError{Line: tz.line, Message: fmt.Sprintf("unexpected token %q", tok)}
		}
	}

	if sf != nil {
		return nil, &ParseError{Line: tz.line, Message: fmt.Sprintf("save frame %q not terminated", sf.Name)}
	}
	return entry, nil
}

func parseLoop(tz *tokenizer) (*Loop, error) {
	lp := &Loop{}

	// Column tags first.
	for {
		tok, err := tz.next()
		if err != nil {
			return nil, &ParseError{Line: tz.line, Message: "unterminated loop_"}
		}
		if strings.HasPrefix(tok, "_") {
			lp.Columns = append(lp.Columns, tok)
			continue
		}
		if len(lp.Columns) == 0 {
			return nil, &ParseError{Line: tz.line, Message: "loop_ without column tags"}
		}
		// First data value.
		if tok == "stop_" {
			return lp, nil
		}
		tz.pushBack(tok)
		break
	}

	ncol := len(lp.Columns)
	row := make([]string, 0, ncol)
	for {
		tok, err := tz.next()
		if err == io.EOF {
			// mmCIF has no stop_; a loop ends at EOF or at the next
			// reserved token.
			break
		}
		if err != nil {
			return nil, err
		}
		if tok == "stop_" {
			break
		}
		if strings.HasPrefix(tok, "_") || strings.HasPrefix(tok, "save_") ||
			strings.HasPrefix(tok, "data_") || tok == "loop_" {
			tz.pushBack(tok)
			break
		}
		row = append(row, tok)
		if len(row) == ncol {
			lp.Rows = append(lp.Rows, row)
			row = make([]string, 0, ncol)
		}
	}
	if len(row) != 0 {
		return nil, &ParseError{Line: tz.line, Message: fmt.Sprintf("loop %s row has %d of %d values", lp.Category(), len(row), ncol)}
	}
	return lp, nil
}

// tokenizer yields star tokens: bare words, quoted strings, and
// semicolon-delimited text fields. Comments run from '#' to end of line.
type tokenizer struct {
	sc     *bufio.Scanner
	line   int
	fields []string
	pushed []string
}

func newTokenizer(r io.Reader) *tokenizer {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	return &tokenizer{sc: sc}
}

func (tz *tokenizer) pushBack(tok string) {
	tz.pushed = append(tz.pushed, tok)
}

func (tz *tokenizer) next() (string, error) {
	if n := len(tz.pushed); n > 0 {
		tok := tz.pushed[n-1]
		tz.pushed = tz.pushed[:n-1]
		return tok, nil
	}
	for len(tz.fields) == 0 {
		if !tz.sc.Scan() {
			if err := tz.sc.Err(); err != nil {
				return "", err
			}
			return "", io.EOF
		}
		tz.line++
		line := tz.sc.Text()
		if strings.HasPrefix(line, ";") {
			text, err := tz.readTextField(line[1:])
			if err != nil {
				return "", err
			}
			return text, nil
		}
		fields, err := splitLine(line, tz.line)
		if err != nil {
			return "", err
		}
		tz.fields = fields
	}
	tok := tz.fields[0]
	tz.fields = tz.fields[1:]
	return tok, nil
}

// readTextField consumes a semicolon-delimited multi-line value. The opening
// line's remainder is the first line of content.
func (tz *tokenizer) readTextField(first string) (string, error) {
	var b strings.Builder
	b.WriteString(first)
	for tz.sc.Scan() {
		tz.line++
		line := tz.sc.Text()
		if strings.HasPrefix(line, ";") {
			rest := strings.TrimSpace(line[1:])
			if rest != "" {
				fields, err := splitLine(rest, tz.line)
				if err != nil {
					return "", err
				}
				tz.fields = fields
			}
			return b.String(), nil
		}
		if b.Len() > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(line)
	}
	if err := tz.sc.Err(); err != nil {
		return "", err
	}
	return "", &ParseError{Line: tz.line, Message: "unterminated text field"}
}

// splitLine tokenizes a single line, honoring single and double quotes and
// '#' comments.
func splitLine(line string, lineno int) ([]string, error) {
	var fields []string
	i := 0
	n := len(line)
	for i < n {
		c := line[i]
		switch {
		case c == ' ' || c == '\t':
			i++
		case c == '#':
			return fields, nil
		case c == '\'' || c == '"':
			quote := c
			j := i + 1
			for {
				k := strings.IndexByte(line[j:], quote)
				if k < 0 {
					return nil, &ParseError{Line: lineno, Message: "unterminated quoted value"}
				}
				j += k
				// A quote closes only when followed by whitespace or EOL.
				if j+1 == n || line[j+1] == ' ' || line[j+1] == '\t' {
					break
				}
				j++
			}
			fields = append(fields, line[i+1:j])
			i = j + 1
		default:
			j := i
			for j < n && line[j] != ' ' && line[j] != '\t' {
				j++
			}
			fields = append(fields, line[i:j])
			i = j
		}
	}
	return fields, nil
}
