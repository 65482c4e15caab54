package rootfile

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

// LineError describes a line which does not hold a trilateral root.
type LineError struct {
	Line   int    // 1-based line number
	Text   string // trimmed line content
	Length int    // number of letters found
}

func (e LineError) Error() string {
	return fmt.Sprintf("line %d: '%s' (length %d instead of 3)", e.Line, e.Text, e.Length)
}

// Reader streams roots from a line-oriented root list.
//
// Every line holds one root. Blank lines and lines starting with '#' are
// skipped:
//
//	# Arabic trilateral roots
//	كتب
//	درس
//
// Lines are trimmed and normalized to NFC, so that letters with combining
// hamza count as one letter. Lines not holding exactly three letters are
// skipped and reported by Rejected.
type Reader struct {
	scanner  *bufio.Scanner
	line     int
	rejected []LineError
}

func NewReader(reader io.Reader) *Reader {
	return &Reader{
		scanner: bufio.NewScanner(reader),
	}
}

// Next returns the next valid root.
// It returns io.EOF when exhausted.
func (r *Reader) Next() (string, error) {
	for r.scanner.Scan() {
		r.line++
		line := norm.NFC.String(strings.TrimSpace(r.scanner.Text()))
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if n := utf8.RuneCountInString(line); n != 3 {
			tracer().Debugf("skipping line %d: %q", r.line, line)
			r.rejected = append(r.rejected, LineError{Line: r.line, Text: line, Length: n})
			continue
		}
		return line, nil
	}
	if err := r.scanner.Err(); err != nil {
		return "", err
	}
	return "", io.EOF
}

// Rejected returns the lines skipped so far because they did not hold a
// trilateral root.
func (r *Reader) Rejected() []LineError {
	return r.rejected
}
