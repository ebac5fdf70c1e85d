package moneytxt

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// StartMarker separates the ledger's free-form preamble from its entries.
// Everything up to and including the marker line is ignored.
const StartMarker = "START"

// LineError reports a ledger line that matches neither the transaction nor
// the command production, carrying the offending line and the cause.
type LineError struct {
	Line string
	N    int // 1-based line number within the decoded input
	Err  error
}

func (e *LineError) Error() string {
	return fmt.Sprintf("line %d %q: %v", e.N, e.Line, e.Err)
}

func (e *LineError) Unwrap() error { return e.Err }

// DecodeLedger reads the ledger text format from r into a new Ledger.
//
// Lines before the first line containing the START marker belong to the
// preamble and are skipped; when no marker is present the whole input is
// decoded. The first malformed line aborts the decode with a *LineError;
// there is no partial recovery.
func DecodeLedger(r io.Reader, monthStartDay int, weekly []Categories) (*Ledger, error) {
	ledger := NewLedger(monthStartDay, weekly)
	if err := ledger.Validate(); err != nil {
		return nil, err
	}

	// The preamble can only be skipped after knowing whether a marker exists
	// at all, so the scan happens over the full text.
	var lines []string
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	start := -1
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
		if start < 0 && strings.Contains(scanner.Text(), StartMarker) {
			start = len(lines) // entries begin on the next line
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading ledger input: %w", err)
	}
	if start < 0 {
		start = 0
	}

	for i, line := range lines[start:] {
		if err := ledger.Account(line); err != nil {
			return nil, &LineError{Line: line, N: start + i + 1, Err: err}
		}
	}
	return ledger, nil
}

// EncodeEntry writes a single entry in its canonical text form, followed by
// a newline.
func EncodeEntry(w io.Writer, e Entry) error {
	if _, err := fmt.Fprintln(w, e.String()); err != nil {
		return fmt.Errorf("failed to write entry: %w", err)
	}
	return nil
}

// EncodeLedger writes the whole ledger in canonical text form, one entry per
// line in chronological order, preceded by the START marker.
func EncodeLedger(w io.Writer, ledger *Ledger) error {
	if _, err := fmt.Fprintln(w, StartMarker); err != nil {
		return fmt.Errorf("failed to write start marker: %w", err)
	}
	for _, e := range ledger.Entries() {
		if err := EncodeEntry(w, e); err != nil {
			return err
		}
	}
	return nil
}
