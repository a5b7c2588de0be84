// Package report renders monthly summaries and date-range breakdowns
// of an expense document.
package report

import (
	"fmt"
	"strings"
	"time"

	"spendlog/internal/cli"
	"spendlog/internal/model"
)

const dayRule = "----------------------------------------------------------------------------------"

// Month renders the detailed report body for one month record. Months
// with three or more categories get a bordered table with a total row;
// smaller months get a flat list, with a Total line only when there is
// more than one category. The limit section is always appended.
func Month(rec model.MonthRecord) string {
	var sections []string

	names := model.SortedCategories(rec.Expenses)
	total := rec.Total()

	if len(names) >= 3 {
		rows := make([][]string, 0, len(names)+2)
		for _, name := range names {
			rows = append(rows, []string{name, cli.FormatAmount(rec.Expenses[name])})
		}
		rows = append(rows, cli.SeparatorRow)
		rows = append(rows, []string{"Total", cli.FormatAmount(total)})

		table := cli.Table{
			Headers: []string{"Category", "Price"},
			Rows:    rows,
		}
		sections = append(sections, table.Render())
	} else {
		var b strings.Builder
		b.WriteString("Expenses:\n")
		for _, name := range names {
			fmt.Fprintf(&b, "%s: %s\n", name, cli.FormatAmount(rec.Expenses[name]))
		}
		sections = append(sections, strings.TrimRight(b.String(), "\n"))

		if len(names) > 1 {
			sections = append(sections, "Total: "+cli.FormatAmount(total))
		}
	}

	if rec.Limit != nil {
		sections = append(sections,
			"Limit: "+cli.FormatAmount(*rec.Limit),
			"Amount available: "+cli.FormatAmount(*rec.Limit-total))
	} else {
		sections = append(sections, "No limit set for this month.")
	}

	return strings.Join(sections, "\n\n")
}

// Summary renders the short month overview: total spent plus limit
// status.
func Summary(monthKey string, rec model.MonthRecord) string {
	var b strings.Builder

	total := rec.Total()
	fmt.Fprintf(&b, "Total amount spent in %s: %s\n", monthKey, cli.FormatAmount(total))

	if rec.Limit != nil {
		fmt.Fprintf(&b, "Limit set for %s: %s\n", monthKey, cli.FormatAmount(*rec.Limit))
		fmt.Fprintf(&b, "Amount available: %s\n", cli.FormatAmount(*rec.Limit-total))
	} else {
		b.WriteString("No limit set for this month.\n")
	}

	return b.String()
}

// Days renders the date-range report: a section per day that has
// entries, walked from end down to start inclusive, followed by
// per-category totals across the range and a grand total. An inverted
// range (start after end) produces a report with no day sections and a
// zero total.
func Days(doc *model.Document, start, end time.Time) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Expenses report for time period from %s to %s\n",
		cli.FormatLongDate(start), cli.FormatLongDate(end))

	totals := make(map[string]float64)
	for cur := end; !cur.Before(start); cur = cur.AddDate(0, 0, -1) {
		entries, ok := doc.Date[cur.Format(model.DateKeyLayout)]
		if !ok {
			continue
		}
		b.WriteString("\n")
		b.WriteString(dayRule + "\n")
		fmt.Fprintf(&b, "%s expenses:\n", cli.FormatLongDate(cur))
		for _, name := range model.SortedCategories(entries) {
			fmt.Fprintf(&b, "  %s: %s\n", name, cli.FormatAmount(entries[name]))
			totals[name] += entries[name]
		}
	}
	b.WriteString(dayRule + "\n")

	b.WriteString("\nTotal expenses for each category:\n")
	var grand float64
	for _, name := range model.SortedCategories(totals) {
		fmt.Fprintf(&b, "  %s: %s\n", name, cli.FormatAmount(totals[name]))
		grand += totals[name]
	}

	fmt.Fprintf(&b, "\nTotal for all expenses: %s\n", cli.FormatAmount(grand))

	return b.String()
}
