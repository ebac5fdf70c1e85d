package moneytxt

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestEvalAmount(t *testing.T) {
	testCases := []struct {
		in   string
		want string
	}{
		{"12.50", "12.5"},
		{"12,50", "12.5"},
		{"0", "0"},
		{"1+2", "3"},
		{"10-2.5", "7.5"},
		{"2*3", "6"},
		{"(5+3)*2", "16"},
		{"1+2*3", "7"},
		{"(1+2)*3", "9"},
		{"-5", "-5"},
		{"-(2+3)", "-5"},
		{"+4", "4"},
		{"10 - 2", "8"},
		{"0.1+0.2", "0.3"},
	}
	for _, tc := range testCases {
		t.Run(tc.in, func(t *testing.T) {
			got, err := EvalAmount(tc.in)
			if err != nil {
				t.Fatalf("EvalAmount(%q): %v", tc.in, err)
			}
			if want := decimal.RequireFromString(tc.want); !got.Equal(want) {
				t.Errorf("EvalAmount(%q) = %s, want %s", tc.in, got, want)
			}
		})
	}
}

func TestEvalAmountErrors(t *testing.T) {
	testCases := []string{
		"",
		"abc",
		"12.5.0",
		".",
		"(1+2",
		"1+",
		"*3",
		"1 2",
		"2/3",
		"()",
	}
	for _, in := range testCases {
		t.Run(in, func(t *testing.T) {
			if got, err := EvalAmount(in); err == nil {
				t.Errorf("EvalAmount(%q) = %s, want error", in, got)
			}
		})
	}
}
