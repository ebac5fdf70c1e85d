package moneytxt

import "testing"

func TestParseWeeklyCategories(t *testing.T) {
	testCases := []struct {
		in   string
		want []string
	}{
		{"", nil},
		{"food", []string{"food"}},
		{"food,groceries;cafe", []string{"food,groceries", "cafe"}},
		{" food ; ; drinks ", []string{"food", "drinks"}},
	}
	for _, tc := range testCases {
		t.Run(tc.in, func(t *testing.T) {
			got := ParseWeeklyCategories(tc.in)
			if len(got) != len(tc.want) {
				t.Fatalf("ParseWeeklyCategories(%q) = %v, want %v", tc.in, got, tc.want)
			}
			for i := range tc.want {
				if got[i].String() != tc.want[i] {
					t.Errorf("prefix %d = %q, want %q", i, got[i], tc.want[i])
				}
			}
		})
	}
}

func TestConfigValidate(t *testing.T) {
	cfg := Config{MonthStartDay: 1}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate: %v", err)
	}
	cfg.MonthStartDay = 31
	if err := cfg.Validate(); err == nil {
		t.Error("month start day 31 accepted, want error")
	}
}

func TestDropboxErrorSummary(t *testing.T) {
	testCases := []struct {
		name string
		body string
		want string
	}{
		{
			name: "summary field",
			body: `{"error_summary": "invalid_access_token/", "error": {".tag": "invalid_access_token"}}`,
			want: "invalid_access_token/",
		},
		{
			name: "plain text body",
			body: "Error in call to API function\n",
			want: "Error in call to API function",
		},
		{
			name: "json without summary",
			body: `{"error": "nope"}`,
			want: `{"error": "nope"}`,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := dropboxErrorSummary([]byte(tc.body)); got != tc.want {
				t.Errorf("dropboxErrorSummary(%q) = %q, want %q", tc.body, got, tc.want)
			}
		})
	}
}
