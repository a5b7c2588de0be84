// Package category defines the closed set of expense categories.
package category

import "strconv"

// Category is one of the fixed expense categories. The zero value is
// invalid; valid categories occupy ordinals 1 through Count.
type Category int

const (
	Food Category = iota + 1
	Housing
	Transportation
	HealthAndWellness
	Entertainment
	Shopping
	Travel
	Utilities
	Education
	DebtPayments
	Insurance
	PersonalCare
	GiftsAndDonations
	HouseholdSupplies
	OtherExpenses
)

// Count is the number of valid categories.
const Count = 15

var names = [Count]string{
	"Food",
	"Housing",
	"Transportation",
	"Health and wellness",
	"Entertainment",
	"Shopping",
	"Travel",
	"Utilities",
	"Education",
	"Debt payments",
	"Insurance",
	"Personal care",
	"Gifts and donations",
	"Household supplies",
	"Other Expenses",
}

// Menu hints shown next to each category during expense entry.
var hints = [Count]string{
	"including groceries, dining out, and takeout",
	"rent or mortgage payments, utilities, maintenance",
	"gasoline, public transit, vehicle maintenance",
	"healthcare expenses, gym memberships, medications",
	"movies, concerts, streaming services",
	"clothing, electronics, personal care products",
	"flights, hotels, vacation activities",
	"electricity, water, internet, phone",
	"tuition, books, supplies",
	"credit card bills, loans",
	"health, auto, home",
	"haircuts, spa treatments, grooming products",
	"birthday presents, charity donations",
	"cleaning products, toiletries",
	"",
}

// All lists every category in ordinal order.
var All = func() [Count]Category {
	var all [Count]Category
	for i := range all {
		all[i] = Category(i + 1)
	}
	return all
}()

// String returns the display name, which is also the key used in the
// persisted document.
func (c Category) String() string {
	if !c.Valid() {
		return "Unknown(" + strconv.Itoa(int(c)) + ")"
	}
	return names[c-1]
}

// Hint returns the example text shown in the category menu, or "" when
// the category has none.
func (c Category) Hint() string {
	if !c.Valid() {
		return ""
	}
	return hints[c-1]
}

// Valid reports whether c is within the closed category set.
func (c Category) Valid() bool {
	return c >= 1 && c <= Count
}

// FromOrdinal maps a 1-based menu ordinal to a Category.
func FromOrdinal(n int) (Category, bool) {
	c := Category(n)
	return c, c.Valid()
}

// Ordinal maps a stored category name back to its ordinal, for stable
// sorting of report rows. Unknown names sort after all known ones.
func Ordinal(name string) int {
	for i, n := range names {
		if n == name {
			return i + 1
		}
	}
	return Count + 1
}
