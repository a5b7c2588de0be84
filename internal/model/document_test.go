package model

import (
	"testing"
	"time"

	"spendlog/internal/category"
)

func day(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := time.Parse(DateKeyLayout, s)
	if err != nil {
		t.Fatalf("parse date %q: %v", s, err)
	}
	return d
}

func TestAddExpenseAccumulates(t *testing.T) {
	doc := NewDocument()
	d := day(t, "2024-05-01")

	doc.AddExpense(d, category.Food, 12.50)
	doc.AddExpense(d, category.Food, 7.50)

	if got := doc.Date["2024-05-01"]["Food"]; got != 20.00 {
		t.Fatalf(`date["2024-05-01"]["Food"] = %.2f, want 20.00`, got)
	}
	if got := doc.Month["May 2024"].Expenses["Food"]; got != 20.00 {
		t.Fatalf(`month["May 2024"]["Food"] = %.2f, want 20.00`, got)
	}
}

func TestAddExpenseNewMonthHasNoLimit(t *testing.T) {
	doc := NewDocument()
	doc.AddExpense(day(t, "2024-05-01"), category.Travel, 100)

	rec, ok := doc.Month["May 2024"]
	if !ok {
		t.Fatal("month record not created")
	}
	if rec.Limit != nil {
		t.Fatalf("new month Limit = %v, want nil", *rec.Limit)
	}
}

func TestAddExpenseKeepsExistingLimit(t *testing.T) {
	doc := NewDocument()
	doc.SetLimit("May 2024", 500)
	doc.AddExpense(day(t, "2024-05-15"), category.Food, 20)

	rec := doc.Month["May 2024"]
	if rec.Limit == nil || *rec.Limit != 500 {
		t.Fatalf("Limit after AddExpense = %v, want 500", rec.Limit)
	}
	if rec.Expenses["Food"] != 20 {
		t.Fatalf("Expenses[Food] = %.2f, want 20", rec.Expenses["Food"])
	}
}

func TestSetLimitCreatesMonthWithEmptyExpenses(t *testing.T) {
	doc := NewDocument()
	doc.SetLimit("June 2024", 250)

	rec, ok := doc.Month["June 2024"]
	if !ok {
		t.Fatal("month record not created by SetLimit")
	}
	if rec.Limit == nil || *rec.Limit != 250 {
		t.Fatalf("Limit = %v, want 250", rec.Limit)
	}
	if rec.Expenses == nil {
		t.Fatal("Expenses map is nil, want empty map")
	}
}

func TestSetLimitOverwritesPreviousLimit(t *testing.T) {
	doc := NewDocument()
	doc.SetLimit("June 2024", 250)
	doc.SetLimit("June 2024", 400)

	if got := *doc.Month["June 2024"].Limit; got != 400 {
		t.Fatalf("Limit = %.2f, want 400", got)
	}
}

// Every date write must increment the matching month rollup, so the two
// mappings always sum to the same totals.
func TestDateMonthCrossConsistency(t *testing.T) {
	doc := NewDocument()

	entries := []struct {
		date   string
		cat    category.Category
		amount float64
	}{
		{"2024-05-01", category.Food, 12.50},
		{"2024-05-01", category.Travel, 80},
		{"2024-05-02", category.Food, 7.50},
		{"2024-05-31", category.Housing, 950},
		{"2024-06-01", category.Food, 5},
	}
	for _, e := range entries {
		doc.AddExpense(day(t, e.date), e.cat, e.amount)
	}

	for monthKey, rec := range doc.Month {
		var fromDates float64
		for dateKey, cats := range doc.Date {
			d := day(t, dateKey)
			if d.Format(MonthKeyLayout) != monthKey {
				continue
			}
			for _, amount := range cats {
				fromDates += amount
			}
		}
		if fromDates != rec.Total() {
			t.Fatalf("%s: date sum %.2f != month sum %.2f", monthKey, fromDates, rec.Total())
		}
	}
}

func TestSortedCategoriesMenuOrder(t *testing.T) {
	amounts := map[string]float64{
		"Travel":  1,
		"Food":    1,
		"Zzz":     1, // unknown, sorts last
		"Housing": 1,
	}
	got := SortedCategories(amounts)
	want := []string{"Food", "Housing", "Travel", "Zzz"}
	if len(got) != len(want) {
		t.Fatalf("len = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}
