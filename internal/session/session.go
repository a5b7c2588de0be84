// Package session runs the interactive expense tracking menu.
package session

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"spendlog/internal/category"
	"spendlog/internal/cli"
	"spendlog/internal/prompt"
	"spendlog/internal/report"
	"spendlog/internal/store"
)

// Session owns one user's interactive run: the menu loop, the prompts,
// and the store. It holds no document state between operations; every
// operation loads, mutates, and saves the document on its own.
type Session struct {
	user  string
	store *store.Store
	p     *prompt.Prompter
	out   io.Writer
}

// New builds a Session reading commands from in and writing to out.
func New(user string, st *store.Store, in io.Reader, out io.Writer) *Session {
	return &Session{
		user:  user,
		store: st,
		p:     prompt.New(in, out),
		out:   out,
	}
}

// Prompter exposes the session's prompter so callers can inject a fixed
// clock.
func (s *Session) Prompter() *prompt.Prompter {
	return s.p
}

// Run drives the top-level menu until the user logs out or input ends.
// Operation failures are reported and the menu continues; only a closed
// input stream ends the loop early.
func (s *Session) Run() error {
	// Make sure the user's document exists and is well-formed before
	// the first command.
	if _, err := s.store.Load(s.user); err != nil {
		return err
	}

	for {
		cli.ClearScreen(s.out)
		fmt.Fprint(s.out, menuTable().Render())
		fmt.Fprintln(s.out)

		choice, err := s.p.Line("Enter command: ")
		if err != nil {
			return err
		}

		var opErr error
		switch strings.ToLower(choice) {
		case "1":
			opErr = s.addExpenses(s.today())
		case "2":
			opErr = s.addExpenses(time.Time{})
		case "3":
			opErr = s.displayMonthData()
		case "4":
			opErr = s.daysReport()
		case "5":
			opErr = s.setLimit()
		case "6":
			opErr = s.monthSummary()
		case "e":
			return nil
		default:
			cli.ClearScreen(s.out)
			fmt.Fprintln(s.out, cli.WarnStyle.Render("INVALID INPUT."))
			fmt.Fprintln(s.out)
			s.p.Pause("Press to continue... ")
		}

		if opErr != nil {
			if errors.Is(opErr, prompt.ErrClosed) {
				return opErr
			}
			fmt.Fprintln(s.out, cli.ErrorStyle.Render(opErr.Error()))
			s.p.Pause("Press to continue... ")
		}
	}
}

func (s *Session) today() time.Time {
	y, m, d := s.p.Now().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// addExpenses runs the expense entry loop for one day. A zero day means
// the user picks the date first; entering "exit" there aborts cleanly.
func (s *Session) addExpenses(day time.Time) error {
	if day.IsZero() {
		d, err := s.p.Date("Enter date you want to add expenses to (e.g., '2024-05-31'): ", "exit")
		if errors.Is(err, prompt.ErrCancelled) {
			cli.ClearScreen(s.out)
			fmt.Fprintln(s.out, "You have successfully canceled operation!")
			fmt.Fprintln(s.out)
			s.p.Pause("Press to continue... ")
			return nil
		}
		if err != nil {
			return err
		}
		day = d
	}

	longDate := cli.FormatLongDate(day)
	for {
		cli.ClearScreen(s.out)
		fmt.Fprint(s.out, categoryTable().Render())
		fmt.Fprintf(s.out, "SELECTED DATE - %s\n", longDate)
		fmt.Fprintf(s.out, "Username: %s\n\n", cli.BoldStyle.Render(s.user))

		cat, err := s.p.Category("Enter which expense you want to add: ")
		if errors.Is(err, prompt.ErrCancelled) {
			return nil
		}
		if err != nil {
			return err
		}

		cli.ClearScreen(s.out)
		fmt.Fprintf(s.out, "You have selected %s expense.\n\n", cat)

		amount, err := s.p.Amount("Enter amount of money you've spent: $")
		if err != nil {
			return err
		}

		cli.ClearScreen(s.out)
		confirm, err := s.p.YesNo(fmt.Sprintf(
			"Do you want to add %s expense with %s of money spent at %s? (y/n) ",
			cat, cli.FormatAmount(amount), longDate))
		if err != nil {
			return err
		}

		if confirm {
			doc, err := s.store.Load(s.user)
			if err != nil {
				return err
			}
			doc.AddExpense(day, cat, amount)
			if err := s.store.Save(s.user, doc); err != nil {
				return err
			}
			fmt.Fprintln(s.out, cli.GoodStyle.Render("Expense saved."))
		} else {
			fmt.Fprintln(s.out, "Expense wasn't saved to your list!")
		}
		fmt.Fprintln(s.out)

		again, err := s.p.YesNo("Do you want to add another expense? (y/n) ")
		if err != nil {
			return err
		}
		if !again {
			return nil
		}
	}
}

// displayMonthData renders the full report for a selected month.
func (s *Session) displayMonthData() error {
	cli.ClearScreen(s.out)

	monthKey, err := s.p.Month("display data for")
	if err != nil {
		return err
	}

	doc, err := s.store.Load(s.user)
	if err != nil {
		return err
	}

	cli.ClearScreen(s.out)
	rec, ok := doc.Month[monthKey]
	if !ok {
		fmt.Fprintf(s.out, "No data found for %s.\n\n", monthKey)
	} else {
		fmt.Fprintf(s.out, "Month: %s\n", monthKey)
		fmt.Fprintln(s.out, report.Month(rec))
		fmt.Fprintln(s.out)
	}

	s.p.Pause("Press to continue... ")
	return nil
}

// monthSummary renders the short month overview.
func (s *Session) monthSummary() error {
	cli.ClearScreen(s.out)

	monthKey, err := s.p.Month("get information about")
	if err != nil {
		return err
	}

	doc, err := s.store.Load(s.user)
	if err != nil {
		return err
	}

	cli.ClearScreen(s.out)
	rec, ok := doc.Month[monthKey]
	if !ok {
		fmt.Fprintf(s.out, "No data found for %s.\n\n", monthKey)
	} else {
		fmt.Fprint(s.out, report.Summary(monthKey, rec))
		fmt.Fprintln(s.out)
	}

	s.p.Pause("Press to continue... ")
	return nil
}

// daysReport renders the date-range breakdown. Cancelling either date
// prompt aborts the whole report.
func (s *Session) daysReport() error {
	cli.ClearScreen(s.out)

	start, err := s.p.Date("Enter start date for the expense report (e.g., '2024-04-01'): ", "cancel")
	if errors.Is(err, prompt.ErrCancelled) {
		return s.cancelled()
	}
	if err != nil {
		return err
	}

	end, err := s.p.Date("Enter end date for the expense report (e.g., '2024-04-01'): ", "cancel")
	if errors.Is(err, prompt.ErrCancelled) {
		return s.cancelled()
	}
	if err != nil {
		return err
	}

	doc, err := s.store.Load(s.user)
	if err != nil {
		return err
	}

	cli.ClearScreen(s.out)
	fmt.Fprint(s.out, report.Days(doc, start, end))
	fmt.Fprintln(s.out)
	s.p.Pause("Press to continue... ")
	return nil
}

// setLimit updates the spending ceiling for a selected month. Exactly
// one write happens per invocation.
func (s *Session) setLimit() error {
	cli.ClearScreen(s.out)

	monthKey, err := s.p.Month("set a limit for")
	if err != nil {
		return err
	}

	doc, err := s.store.Load(s.user)
	if err != nil {
		return err
	}

	cli.ClearScreen(s.out)
	if rec, ok := doc.Month[monthKey]; ok && rec.Limit != nil {
		fmt.Fprintf(s.out, "The limit for %s is %s\n\n", monthKey, cli.FormatAmount(*rec.Limit))
	}

	limit, err := s.p.Limit(monthKey)
	if errors.Is(err, prompt.ErrCancelled) {
		return s.cancelled()
	}
	if err != nil {
		return err
	}

	doc.SetLimit(monthKey, limit)
	if err := s.store.Save(s.user, doc); err != nil {
		return err
	}

	fmt.Fprintf(s.out, "Limit for %s set to %s\n", monthKey, cli.FormatAmount(limit))
	s.p.Pause("Press to continue... ")
	return nil
}

func (s *Session) cancelled() error {
	fmt.Fprintln(s.out, "You have canceled action!")
	fmt.Fprintln(s.out)
	s.p.Pause("Press to continue... ")
	return nil
}

func menuTable() cli.Table {
	return cli.Table{
		Headers: []string{"Name of the command", "Command"},
		Rows: [][]string{
			{"Add today's expenses", "1"},
			{"Add expenses for selected day", "2"},
			{"Display month data", "3"},
			{"Get days report", "4"},
			{"Set month limit", "5"},
			{"Month summary", "6"},
			{"Log out", "e"},
		},
	}
}

func categoryTable() cli.Table {
	rows := make([][]string, 0, category.Count+1)
	for _, c := range category.All {
		label := c.String()
		if hint := c.Hint(); hint != "" {
			label = fmt.Sprintf("%s (%s)", label, hint)
		}
		rows = append(rows, []string{label, strconv.Itoa(int(c))})
	}
	rows = append(rows, []string{"Cancel operation", "cancel"})
	return cli.Table{
		Headers: []string{"Category", "Command"},
		Rows:    rows,
	}
}
