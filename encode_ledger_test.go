package moneytxt

import (
	"errors"
	"strings"
	"testing"
)

func TestDecodeLedgerSkipsPreamble(t *testing.T) {
	input := strings.Join([]string{
		"money.txt",
		"this preamble is free form and never parsed",
		"food 123 not an entry",
		"START",
		"2023.01.05 food 5",
		"transport 2",
	}, "\n")
	ledger, err := DecodeLedger(strings.NewReader(input), 1, nil)
	if err != nil {
		t.Fatalf("DecodeLedger: %v", err)
	}
	if ledger.Len() != 2 {
		t.Errorf("decoded %d entries, want 2", ledger.Len())
	}
}

func TestDecodeLedgerWithoutMarker(t *testing.T) {
	input := "2023.01.05 food 5\n2023.01.06 transport 2\n"
	ledger, err := DecodeLedger(strings.NewReader(input), 1, nil)
	if err != nil {
		t.Fatalf("DecodeLedger: %v", err)
	}
	if ledger.Len() != 2 {
		t.Errorf("decoded %d entries, want 2", ledger.Len())
	}
}

func TestDecodeLedgerFailsFast(t *testing.T) {
	input := strings.Join([]string{
		"START",
		"2023.01.05 food 5",
		"this line is broken",
		"2023.01.06 transport 2",
	}, "\n")
	_, err := DecodeLedger(strings.NewReader(input), 1, nil)
	if err == nil {
		t.Fatal("malformed line accepted, want error")
	}
	var lineErr *LineError
	if !errors.As(err, &lineErr) {
		t.Fatalf("error %T is not a *LineError", err)
	}
	if lineErr.N != 3 {
		t.Errorf("error on line %d, want 3", lineErr.N)
	}
	if lineErr.Line != "this line is broken" {
		t.Errorf("error carries line %q", lineErr.Line)
	}
}

func TestDecodeLedgerRejectsBadMonthStart(t *testing.T) {
	if _, err := DecodeLedger(strings.NewReader("START\n"), 30, nil); err == nil {
		t.Error("month start day 30 accepted, want error")
	}
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	input := strings.Join([]string{
		"notes before the marker",
		"START",
		"2023.01.05 food, snacks -12.50 lunch #work",
		"salary +1500",
		"# a comment",
		"2023.01.02 transport 3,20 bus",
		"2023.01.10 !milestone 2500",
	}, "\n")
	ledger, err := DecodeLedger(strings.NewReader(input), 1, nil)
	if err != nil {
		t.Fatalf("DecodeLedger: %v", err)
	}

	var buf strings.Builder
	if err := EncodeLedger(&buf, ledger); err != nil {
		t.Fatalf("EncodeLedger: %v", err)
	}
	if !strings.HasPrefix(buf.String(), StartMarker+"\n") {
		t.Errorf("encoded output does not start with the marker:\n%s", buf.String())
	}

	back, err := DecodeLedger(strings.NewReader(buf.String()), 1, nil)
	if err != nil {
		t.Fatalf("DecodeLedger of encoded output: %v", err)
	}
	if back.Len() != ledger.Len() {
		t.Fatalf("round trip changed entry count %d into %d", ledger.Len(), back.Len())
	}
	want := make([]Entry, 0, ledger.Len())
	for _, e := range ledger.Entries() {
		want = append(want, e)
	}
	for i, e := range back.Entries() {
		if !e.Equal(want[i]) {
			t.Errorf("entry %d changed from %v into %v", i, want[i], e)
		}
	}
}
