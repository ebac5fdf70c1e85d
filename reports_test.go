package moneytxt

import (
	"testing"
)

func TestTotalValue(t *testing.T) {
	l := testLedger(t,
		"2023.01.02 salary +100",
		"2023.01.03 food 30",
		"2023.01.04 !milestone 500",
		"2023.01.05 salary +20",
	)
	if got := l.TotalValue(); !got.Equal(dec("520")) {
		t.Errorf("TotalValue() = %s, want 520", got)
	}
}

func TestTotalValueIgnoresOtherCommands(t *testing.T) {
	l := testLedger(t,
		"2023.01.02 salary +100",
		"2023.01.03 !note 999",
	)
	if got := l.TotalValue(); !got.Equal(dec("100")) {
		t.Errorf("TotalValue() = %s, want 100", got)
	}
}

func TestWeeklyBuckets(t *testing.T) {
	l := NewLedger(1, []Categories{{"food"}})
	for _, line := range []string{
		"2023.01.03 food 5",      // tuesday, week of 01.02
		"2023.01.04 transport 9", // untracked
		"2023.01.05 salary +100", // income, excluded
		"2023.01.12 food, snacks 3", // week of 01.09
	} {
		if err := l.Account(line); err != nil {
			t.Fatal(err)
		}
	}
	buckets := l.WeeklyBuckets(MustParseDate("2023.01.18"))
	if len(buckets) != 3 {
		t.Fatalf("got %d buckets, want 3", len(buckets))
	}
	if from := buckets[0].Period.From; from != MustParseDate("2023.01.02") {
		t.Errorf("first bucket starts %s, want 2023.01.02", from)
	}
	if !buckets[0].Value.Equal(dec("5")) {
		t.Errorf("week one total = %s, want 5", buckets[0].Value)
	}
	if len(buckets[0].Notes) != 1 {
		t.Errorf("week one has %d notes, want 1", len(buckets[0].Notes))
	}
	if !buckets[1].Value.Equal(dec("3")) {
		t.Errorf("week two total = %s, want 3", buckets[1].Value)
	}
	// The week of asOf has no tracked expense but still gets a bucket.
	if !buckets[2].Value.IsZero() || len(buckets[2].Notes) != 0 {
		t.Errorf("empty week = %v, want zero value and no notes", buckets[2].Cell)
	}
}

func TestWeeklyBucketsWithoutTrackedCategories(t *testing.T) {
	// No tracked prefixes configured: the windows still appear, but no
	// expense counts towards them.
	l := testLedger(t,
		"2023.01.03 transport 9",
		"2023.01.04 food 5",
	)
	buckets := l.WeeklyBuckets(MustParseDate("2023.01.08"))
	if len(buckets) != 1 {
		t.Fatalf("got %d buckets, want 1", len(buckets))
	}
	if !buckets[0].Value.IsZero() || len(buckets[0].Notes) != 0 {
		t.Errorf("untracked ledger bucket = %v, want zero value and no notes", buckets[0].Cell)
	}
}

func TestMonthlyByCategory(t *testing.T) {
	l := NewLedger(5, nil)
	for _, line := range []string{
		"2023.01.10 food 30",
		"2023.01.20 salary +1000",
		"2023.02.03 food 20",  // still in the january window, anchor 5
		"2023.02.10 drinks 15", // february window
	} {
		if err := l.Account(line); err != nil {
			t.Fatal(err)
		}
	}
	rows := l.MonthlyByCategory(MustParseDate("2023.02.20"))
	if len(rows) != 2 {
		t.Fatalf("got %d rows, want 2", len(rows))
	}

	jan := rows[0]
	if jan.Label != "2023 January (05.01-04.02)" {
		t.Errorf("january label = %q", jan.Label)
	}
	if !jan.Income.Value.Equal(dec("1000")) {
		t.Errorf("january income = %s, want 1000", jan.Income.Value)
	}
	if !jan.Expenses["food"].Value.Equal(dec("50")) {
		t.Errorf("january food = %s, want 50", jan.Expenses["food"].Value)
	}
	if !jan.TotalSpent.Equal(dec("50")) {
		t.Errorf("january total spent = %s, want 50", jan.TotalSpent)
	}
	if !jan.Balance.Equal(dec("950")) {
		t.Errorf("january balance = %s, want 950", jan.Balance)
	}

	feb := rows[1]
	if !feb.Expenses["drinks"].Value.Equal(dec("15")) {
		t.Errorf("february drinks = %s, want 15", feb.Expenses["drinks"].Value)
	}
	if !feb.Balance.Equal(dec("-15")) {
		t.Errorf("february balance = %s, want -15", feb.Balance)
	}
}

func TestCategoriesSeen(t *testing.T) {
	l := testLedger(t,
		"2023.01.02 food, snacks 5",
		"2023.01.03 food 2",
		"2023.01.04 food, snacks 1",
		"2023.01.05 drinks 3",
		"2023.01.06 !milestone 100",
	)
	got := l.CategoriesSeen()
	want := []string{"drinks", "food", "food,snacks"}
	if len(got) != len(want) {
		t.Fatalf("CategoriesSeen() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i].String() != want[i] {
			t.Errorf("category %d = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestReconcile(t *testing.T) {
	l := testLedger(t,
		"2023.01.02 salary +100",
		"2023.01.03 food 30",
		"2023.01.10 !milestone 80",
		"2023.01.15 food 10",
		"2023.01.20 !milestone 70",
	)
	got := l.Reconcile()
	if len(got) != 2 {
		t.Fatalf("Reconcile() yielded %d milestones, want 2", len(got))
	}
	// First span runs from the first entry to the milestone; 100-30
	// accounted against 80 recorded.
	if got[0].Period != "02.01-10.01" {
		t.Errorf("first period = %q", got[0].Period)
	}
	if !got[0].Diff.Equal(dec("10")) {
		t.Errorf("first diff = %s, want 10", got[0].Diff)
	}
	if !got[0].Accounted.Equal(dec("70")) || !got[0].Actual.Equal(dec("80")) {
		t.Errorf("first figures = %s/%s, want 70/80", got[0].Accounted, got[0].Actual)
	}
	// The second span starts from the recorded 80, spends 10, against 70.
	if !got[1].Diff.IsZero() {
		t.Errorf("second diff = %s, want 0", got[1].Diff)
	}
	if got[1].Period != "10.01-20.01" {
		t.Errorf("second period = %q", got[1].Period)
	}
}

func TestMakeModel(t *testing.T) {
	l := NewLedger(1, []Categories{{"food"}, {"drinks"}})
	for _, line := range []string{
		"2023.01.02 salary +1000",
		"2023.01.03 food 30",
		"2023.01.04 drinks 50",
		"2023.01.05 transport 40",
	} {
		if err := l.Account(line); err != nil {
			t.Fatal(err)
		}
	}
	asOf := MustParseDate("2023.01.08")
	m := l.MakeModel(asOf)

	if m.AsOf != asOf {
		t.Errorf("AsOf = %s", m.AsOf)
	}
	if !m.TotalValue.Equal(dec("880")) {
		t.Errorf("TotalValue = %s, want 880", m.TotalValue)
	}
	if m.WeeklyTracked != "food, drinks" {
		t.Errorf("WeeklyTracked = %q", m.WeeklyTracked)
	}
	if len(m.Weekly) != 1 || !m.Weekly[0].Value.Equal(dec("80")) {
		t.Errorf("Weekly = %v, want one bucket of 80", m.Weekly)
	}
	// Columns descend by total spend, ties alphabetical.
	want := []string{"drinks", "transport", "food"}
	if len(m.CategoryColumns) != len(want) {
		t.Fatalf("CategoryColumns = %v, want %v", m.CategoryColumns, want)
	}
	for i := range want {
		if m.CategoryColumns[i] != want[i] {
			t.Errorf("column %d = %q, want %q", i, m.CategoryColumns[i], want[i])
		}
	}
}
