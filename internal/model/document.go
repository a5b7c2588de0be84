// Package model holds the persisted expense document and its mutation
// rules.
package model

import (
	"sort"
	"time"

	"spendlog/internal/category"
)

// Date and month key layouts used in the persisted document.
const (
	DateKeyLayout  = "2006-01-02"
	MonthKeyLayout = "January 2006"
	LongDateLayout = "02 January 2006"
)

// MonthRecord holds one month's accumulated expenses and its optional
// spending limit. A nil Limit means no limit is set.
type MonthRecord struct {
	Limit    *float64           `json:"limit"`
	Expenses map[string]float64 `json:"expenses"`
}

// Total sums all category amounts for the month.
func (m MonthRecord) Total() float64 {
	var total float64
	for _, amount := range m.Expenses {
		total += amount
	}
	return total
}

// Document is the whole per-user expense state. Date maps ISO day keys
// to category amounts; Month maps "Month Year" labels to monthly
// rollups. The two mappings are a denormalized pair: every date write
// increments the matching month total.
type Document struct {
	Date  map[string]map[string]float64 `json:"date"`
	Month map[string]MonthRecord        `json:"month"`
}

// NewDocument returns the empty two-key skeleton.
func NewDocument() *Document {
	return &Document{
		Date:  make(map[string]map[string]float64),
		Month: make(map[string]MonthRecord),
	}
}

// Valid reports whether both top-level mappings are present. A document
// failing this check is replaced with the skeleton, never repaired.
func (d *Document) Valid() bool {
	return d != nil && d.Date != nil && d.Month != nil
}

// AddExpense accumulates amount under the given day and category,
// updating both the per-date bucket and the month rollup. A newly
// created month starts with no limit.
func (d *Document) AddExpense(day time.Time, cat category.Category, amount float64) {
	dateKey := day.Format(DateKeyLayout)
	monthKey := day.Format(MonthKeyLayout)
	name := cat.String()

	if d.Date[dateKey] == nil {
		d.Date[dateKey] = make(map[string]float64)
	}
	d.Date[dateKey][name] += amount

	rec, ok := d.Month[monthKey]
	if !ok {
		rec = MonthRecord{Expenses: make(map[string]float64)}
	}
	if rec.Expenses == nil {
		rec.Expenses = make(map[string]float64)
	}
	rec.Expenses[name] += amount
	d.Month[monthKey] = rec
}

// SetLimit sets the spending limit for a month label, creating the
// month record (with an empty expenses map) if it does not exist yet.
func (d *Document) SetLimit(monthKey string, limit float64) {
	rec, ok := d.Month[monthKey]
	if !ok || rec.Expenses == nil {
		rec.Expenses = make(map[string]float64)
	}
	rec.Limit = &limit
	d.Month[monthKey] = rec
}

// SortedCategories returns the category names of an amounts map in
// stable menu order, unknown names last.
func SortedCategories(amounts map[string]float64) []string {
	names := make([]string, 0, len(amounts))
	for name := range amounts {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		oi, oj := category.Ordinal(names[i]), category.Ordinal(names[j])
		if oi != oj {
			return oi < oj
		}
		return names[i] < names[j]
	})
	return names
}
