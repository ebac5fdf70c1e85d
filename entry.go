package moneytxt

import (
	"fmt"
	"regexp"
	"slices"
	"strings"

	"github.com/shopspring/decimal"
)

// Categories is an ordered category path, most general first,
// e.g. ["food", "groceries"].
type Categories []string

// String formats the path in its ledger text form.
func (c Categories) String() string { return strings.Join(c, ",") }

// Top returns the most general (first) element of the path, or "".
func (c Categories) Top() string {
	if len(c) == 0 {
		return ""
	}
	return c[0]
}

// StartsWith reports whether the path starts with the given prefix, element
// by element. Every path starts with the empty prefix.
func (c Categories) StartsWith(prefix Categories) bool {
	if len(c) < len(prefix) {
		return false
	}
	return slices.Equal(c[:len(prefix)], prefix)
}

// ParseCategories parses a comma-separated category path, trimming each
// segment and dropping empty ones.
func ParseCategories(s string) Categories {
	var c Categories
	for _, seg := range strings.Split(s, ",") {
		if seg = strings.TrimSpace(seg); seg != "" {
			c = append(c, seg)
		}
	}
	return c
}

// CmdMilestone is the command recording an externally verified balance,
// used to reconcile the computed running total.
const CmdMilestone = "milestone"

// Entry is one parsed ledger record. It is either a transaction entry
// (Command empty, Categories non-empty) or a command entry (Command set,
// no categories, tags or note).
type Entry struct {
	Day        Date
	Categories Categories
	Value      decimal.Decimal // signed; positive income, negative expense
	Note       string
	Tags       []string
	Command    string
}

// IsCommand reports whether the entry is a command entry.
func (e Entry) IsCommand() bool { return e.Command != "" }

// HasTag reports whether the entry carries at least one of the given tags.
func (e Entry) HasTag(tags ...string) bool {
	for _, t := range tags {
		if slices.Contains(e.Tags, t) {
			return true
		}
	}
	return false
}

// Equal reports whether two entries carry the same record.
func (e Entry) Equal(o Entry) bool {
	return e.Day == o.Day &&
		slices.Equal(e.Categories, o.Categories) &&
		e.Value.Equal(o.Value) &&
		e.Note == o.Note &&
		slices.Equal(e.Tags, o.Tags) &&
		e.Command == o.Command
}

// String renders the entry in its canonical ledger text form. Parsing the
// result yields an equal entry.
func (e Entry) String() string {
	if e.IsCommand() {
		return fmt.Sprintf("%s !%s %s", e.Day, e.Command, e.Value)
	}
	fields := []string{e.Day.String(), e.Categories.String(), e.amountField()}
	if e.Note != "" {
		fields = append(fields, e.Note)
	}
	for _, t := range e.Tags {
		fields = append(fields, "#"+t)
	}
	return strings.Join(fields, " ")
}

// amountField renders the signed value back into an amount field: income
// keeps an explicit '+', expenses are written as a bare magnitude.
func (e Entry) amountField() string {
	if e.Value.IsPositive() {
		return "+" + e.Value.String()
	}
	return e.Value.Neg().String()
}

// The two line productions, tried in order. Dates are strictly YYYY.MM.DD in
// the grammar; the permissive read format only applies to CLI arguments.
var (
	cmdRe   = regexp.MustCompile(`^\s*(\d{4}\.\d{2}\.\d{2})?\s*!(.*?)\s+([()\d+\-.*,]+)\s*$`)
	entryRe = regexp.MustCompile(`^\s*(\d{4}\.\d{2}\.\d{2})?\s*(.*?)\s+([()\d+\-.,*]+)(?:\s+(.*?))?\s*$`)
)

// ParseEntry parses one ledger line into an Entry.
//
// Blank lines and comment lines (first non-space rune '#') yield (nil, nil).
// A transaction line without a date inherits 'last', the date of the most
// recently parsed entry; command lines never inherit and require an explicit
// date. A line matching neither production is an error.
func ParseEntry(line string, last Date) (*Entry, error) {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" || trimmed[0] == '#' {
		return nil, nil
	}

	if m := cmdRe.FindStringSubmatch(line); m != nil {
		dateStr, name, amount := m[1], strings.TrimSpace(m[2]), m[3]
		if dateStr == "" {
			return nil, fmt.Errorf("command entry !%s requires an explicit date", name)
		}
		if name == "" {
			return nil, fmt.Errorf("missing command name")
		}
		day, err := ParseDate(dateStr)
		if err != nil {
			return nil, err
		}
		value, err := EvalAmount(amount)
		if err != nil {
			return nil, err
		}
		return &Entry{Day: day, Value: value, Command: name}, nil
	}

	m := entryRe.FindStringSubmatch(line)
	if m == nil {
		return nil, fmt.Errorf("line matches neither the transaction nor the command form")
	}
	dateStr, desc, amount, note := m[1], m[2], m[3], m[4]

	// A '!' description is a command line that fell through the command
	// production (trailing text after the amount, usually). Surfacing it as
	// an error beats booking "!milestone" as a category.
	if strings.HasPrefix(strings.TrimSpace(desc), "!") {
		return nil, fmt.Errorf("malformed command line: a command is a date, !name and an amount, nothing after")
	}

	e := &Entry{Categories: ParseCategories(desc)}

	if dateStr == "" {
		if last.IsZero() {
			return nil, fmt.Errorf("no date on the line and no previous entry to inherit from")
		}
		e.Day = last
	} else {
		day, err := ParseDate(dateStr)
		if err != nil {
			return nil, err
		}
		e.Day = day
	}

	value, err := parseAmountField(amount)
	if err != nil {
		return nil, err
	}
	e.Value = value

	var noteWords []string
	for _, word := range strings.Fields(note) {
		if strings.HasPrefix(word, "#") {
			e.Tags = append(e.Tags, strings.TrimPrefix(word, "#"))
		} else {
			noteWords = append(noteWords, word)
		}
	}
	e.Note = strings.Join(noteWords, " ")

	if len(e.Categories) == 0 {
		// A line reduced to nothing but a zero amount is treated as blank.
		if e.Value.IsZero() && e.Note == "" && len(e.Tags) == 0 {
			return nil, nil
		}
		return nil, fmt.Errorf("transaction entry requires a non-empty category path")
	}
	return e, nil
}

// parseAmountField evaluates a signed amount field. A leading '+' marks
// income, a leading '-' or a bare field marks an expense; the rest of the
// field is the magnitude expression, which must not evaluate negative: the
// sign lives on the first rune only, never inside the expression.
func parseAmountField(field string) (decimal.Decimal, error) {
	expr := field
	income := false
	switch expr[0] {
	case '+':
		income = true
		expr = expr[1:]
	case '-':
		expr = expr[1:]
	}
	magnitude, err := EvalAmount(expr)
	if err != nil {
		return decimal.Zero, err
	}
	if magnitude.IsNegative() {
		return decimal.Zero, fmt.Errorf("amount %q: magnitude evaluates to %s, the sign goes in front", field, magnitude)
	}
	if income {
		return magnitude, nil
	}
	return magnitude.Neg(), nil
}
