// Package prompt collects validated free-text input from the terminal.
//
// Every prompt re-asks indefinitely on invalid input. Where a cancel
// token is supported, entering it returns ErrCancelled instead of a
// value; this is the only way out of a prompt other than valid input or
// a read failure.
package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"spendlog/internal/category"
	"spendlog/internal/cli"
	"spendlog/internal/model"
)

// ErrCancelled is returned when the user enters a cancel token. It is a
// distinguished outcome, not a failure: the current operation aborts
// with no side effects and control returns to the menu.
var ErrCancelled = errors.New("operation cancelled")

// ErrClosed is returned when the input stream ends. It is the only
// prompt error that should end the session.
var ErrClosed = errors.New("input closed")

// Accepted date entry layouts, tried in order. ISO first, matching the
// prompt hint.
var dateLayouts = []string{
	"2006-01-02",
	"2006/01/02",
	"2006.01.02",
	"02 January 2006",
	"2 January 2006",
	"January 2, 2006",
}

// Prompter reads line-oriented input and writes prompts and corrective
// messages. Now is called at every date validation so that "today"
// stays fresh across long sessions; tests override it.
type Prompter struct {
	in  *bufio.Reader
	out io.Writer
	Now func() time.Time
}

// New returns a Prompter reading from in and writing to out.
func New(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{
		in:  bufio.NewReader(in),
		out: out,
		Now: time.Now,
	}
}

func (p *Prompter) readLine() (string, error) {
	line, err := p.in.ReadString('\n')
	if err != nil && line == "" {
		return "", fmt.Errorf("%w: %v", ErrClosed, err)
	}
	return strings.TrimSpace(line), nil
}

// Pause prints msg and waits for the next keypress (line).
func (p *Prompter) Pause(msg string) {
	fmt.Fprint(p.out, msg)
	_, _ = p.readLine()
}

// Line prints label and returns one trimmed input line.
func (p *Prompter) Line(label string) (string, error) {
	fmt.Fprint(p.out, label)
	return p.readLine()
}

// today returns the current calendar date, time-of-day stripped, in UTC
// so that day arithmetic is immune to DST.
func (p *Prompter) today() time.Time {
	y, m, d := p.Now().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func parseDate(s string) (time.Time, bool) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// Date prompts for a calendar date. Dates after today and dates more
// than 365 days before today are rejected with distinct messages.
// Entering cancelToken returns ErrCancelled.
func (p *Prompter) Date(label, cancelToken string) (time.Time, error) {
	for {
		input, err := p.Line(label)
		if err != nil {
			return time.Time{}, err
		}
		if strings.EqualFold(input, cancelToken) {
			return time.Time{}, ErrCancelled
		}

		d, ok := parseDate(input)
		if !ok {
			fmt.Fprintln(p.out, cli.WarnStyle.Render("INVALID DATE FORMAT!"))
			fmt.Fprintln(p.out, "Please enter a valid date in format YYYY-MM-DD.")
			fmt.Fprintf(p.out, "If you want to cancel operation, enter '%s'\n\n", cancelToken)
			continue
		}

		today := p.today()
		switch {
		case d.After(today):
			fmt.Fprintf(p.out, "Date %s is in the future. Please enter past or present date.\n",
				d.Format(model.DateKeyLayout))
		case int(today.Sub(d).Hours()/24) > 365:
			fmt.Fprintf(p.out, "Date %s was more than a year ago. Please enter a recent date.\n",
				d.Format(model.DateKeyLayout))
		default:
			return d, nil
		}
	}
}

// Amount prompts for a non-negative decimal amount. There is no cancel
// token: the prompt repeats until a valid number is entered.
func (p *Prompter) Amount(label string) (float64, error) {
	for {
		input, err := p.Line(label)
		if err != nil {
			return 0, err
		}

		amount, perr := strconv.ParseFloat(strings.ToLower(input), 64)
		if perr != nil {
			fmt.Fprintln(p.out, cli.WarnStyle.Render("You should enter a number! (e.g - 8.50)"))
			fmt.Fprintln(p.out)
			continue
		}
		if amount < 0 {
			fmt.Fprintln(p.out, cli.WarnStyle.Render("Money you've spent should be a positive number!"))
			fmt.Fprintln(p.out)
			continue
		}
		return amount, nil
	}
}

// Category prompts for a 1-based category ordinal. Entering "cancel"
// returns ErrCancelled.
func (p *Prompter) Category(label string) (category.Category, error) {
	for {
		input, err := p.Line(label)
		if err != nil {
			return 0, err
		}
		if strings.EqualFold(input, "cancel") {
			return 0, ErrCancelled
		}

		n, perr := strconv.Atoi(input)
		if perr != nil {
			fmt.Fprintf(p.out, "Command is not valid. Please enter a number from 1 to %d or 'cancel' to cancel operation\n",
				category.Count)
			continue
		}
		cat, ok := category.FromOrdinal(n)
		if !ok {
			fmt.Fprintf(p.out, "There is only %d commands. Enter a number from 1 to %d or 'cancel' to cancel operation\n",
				category.Count, category.Count)
			continue
		}
		return cat, nil
	}
}

// YesNo prompts until the user enters y or n (case and whitespace
// insensitive).
func (p *Prompter) YesNo(label string) (bool, error) {
	for {
		input, err := p.Line(label)
		if err != nil {
			return false, err
		}
		switch strings.ToLower(input) {
		case "y":
			return true, nil
		case "n":
			return false, nil
		}
		fmt.Fprintln(p.out, "You should enter only 'y' or 'n'!")
	}
}

// Month resolves a month label: first the current month is offered via
// a y/n prompt, otherwise an explicit "Month Year" label is collected.
// The action verb is spliced into the prompts, e.g. "display data for".
func (p *Prompter) Month(action string) (string, error) {
	current := p.Now().Format(model.MonthKeyLayout)
	useCurrent, err := p.YesNo(fmt.Sprintf("Do you want to %s %s? (y/n): ", action, current))
	if err != nil {
		return "", err
	}
	if useCurrent {
		return current, nil
	}

	for {
		input, err := p.Line(fmt.Sprintf("Enter the month you want to %s (e.g., 'May 2024'): ", action))
		if err != nil {
			return "", err
		}
		if t, perr := time.Parse(model.MonthKeyLayout, input); perr == nil {
			return t.Format(model.MonthKeyLayout), nil
		}
		fmt.Fprintln(p.out, cli.WarnStyle.Render(
			"Invalid input! Please enter the month and year in the format 'Month Year' (e.g., 'May 2024')"))
		fmt.Fprintln(p.out)
	}
}

// Limit prompts for a new monthly limit. Entering "cancel" returns
// ErrCancelled; non-numeric input re-prompts.
func (p *Prompter) Limit(monthKey string) (float64, error) {
	for {
		input, err := p.Line(fmt.Sprintf("Enter the new limit for %s (type 'cancel' to cancel): ", monthKey))
		if err != nil {
			return 0, err
		}
		if strings.EqualFold(input, "cancel") {
			return 0, ErrCancelled
		}

		limit, perr := strconv.ParseFloat(input, 64)
		if perr != nil {
			fmt.Fprintln(p.out, cli.WarnStyle.Render("Invalid input! Please enter a number."))
			continue
		}
		return limit, nil
	}
}
