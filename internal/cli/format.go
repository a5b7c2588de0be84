// Package cli provides formatting and rendering utilities for terminal
// output.
package cli

import (
	"fmt"
	"time"

	"spendlog/internal/model"
)

// FormatAmount formats a money value the way reports show it: a dollar
// sign and two decimal places. Negative values (overspend) keep their
// sign, e.g. "$-20.00".
func FormatAmount(v float64) string {
	return fmt.Sprintf("$%.2f", v)
}

// FormatLongDate renders a day in the long form used by prompts and
// report headers, e.g. "01 May 2024".
func FormatLongDate(t time.Time) string {
	return t.Format(model.LongDateLayout)
}

// FormatMonth renders a month label, e.g. "May 2024".
func FormatMonth(t time.Time) string {
	return t.Format(model.MonthKeyLayout)
}
