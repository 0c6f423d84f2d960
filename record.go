package pyft

import (
	"database/sql"
	"fmt"
)

// DefaultCategory is seeded when the schema is created, so entries always
// have somewhere to go.
var DefaultCategory = Category{Name: "Uncategorized", Color: "9E9E9E"}

// UsageError is a user-facing validation failure. Its text is printed to the
// user verbatim, so unlike regular errors it is a full sentence.
type UsageError string

func (e UsageError) Error() string { return string(e) }

// ReferenceError reports an entry naming an account or category that does
// not exist in the store.
type ReferenceError struct {
	Kind string // "account" or "category"
	Name string
}

func (e *ReferenceError) Error() string {
	return fmt.Sprintf("Unknown %s %q.", e.Kind, e.Name)
}

// Record is the closed set of the three record kinds. Each kind knows its
// display name and how to upsert itself into the store.
type Record interface {
	// Key returns the unique name the record is stored under.
	Key() string
	// FormatName returns the lowercase kind name used in user messages.
	FormatName() string
	// upsert inserts the record, or updates it in place when a row with the
	// same key already exists. It reports whether the record was a duplicate.
	upsert(tx *sql.Tx) (duplicate bool, err error)
}

// Account is a named money holder with a stored running balance. The balance
// is derived from the entries created against the account, but it is stored,
// not recomputed on read.
type Account struct {
	Name    string
	Balance Amount
}

func (a Account) Key() string        { return a.Name }
func (a Account) FormatName() string { return "account" }

// NewAccount builds an Account from positional CLI arguments: name and an
// optional starting balance (default 0).
func NewAccount(args []string) (Account, error) {
	if len(args) < 1 || len(args) > 2 {
		return Account{}, UsageError("Expected 2 arguments (name, balance).")
	}
	a := Account{Name: args[0]}
	if len(args) == 2 {
		balance, err := ParseAmount(args[1])
		if err != nil {
			return Account{}, UsageError("Balance must be a number.")
		}
		a.Balance = balance
	}
	return a, nil
}

// Category is a named label with a display color.
type Category struct {
	Name  string
	Color string // 6 hex digits, no "#" prefix, case preserved
}

func (c Category) Key() string        { return c.Name }
func (c Category) FormatName() string { return "category" }

// NewCategory builds a Category from positional CLI arguments: name and a
// 6-hex-digit color. Only the length is validated here; a color that is the
// right length but not valid hex renders as black.
func NewCategory(args []string) (Category, error) {
	if len(args) != 2 {
		return Category{}, UsageError("Expected 2 arguments (name, color).")
	}
	if len(args[1]) != 6 {
		return Category{}, UsageError("Color must be in hex format (i.e. FFFFFF).")
	}
	return Category{Name: args[0], Color: args[1]}, nil
}

// Entry is a dated transaction against an account, labeled with a category.
// The entry name is its unique key: two entries cannot share a name, which
// is what makes duplicate detection work.
type Entry struct {
	Name     string
	Amount   Amount
	Category string
	Account  string
	Date     Date
}

func (e Entry) Key() string        { return e.Name }
func (e Entry) FormatName() string { return "entry" }

// NewEntry builds an Entry from positional CLI arguments: name, amount,
// category, account, date. A malformed date does not fail the construction;
// it defaults to today and dateDefaulted is set so the caller can warn.
func NewEntry(args []string) (e Entry, dateDefaulted bool, err error) {
	if len(args) != 5 {
		return Entry{}, false, UsageError("Expected 5 arguments (name, amount, category, account, date).")
	}
	amount, err := ParseAmount(args[1])
	if err != nil {
		return Entry{}, false, UsageError("Amount must be a number.")
	}
	if amount.IsZero() {
		return Entry{}, false, UsageError("Cannot create an entry with a dollar value of 0.")
	}
	date, dateDefaulted := FallbackDate(args[4])
	return Entry{
		Name:     args[0],
		Amount:   amount,
		Category: args[2],
		Account:  args[3],
		Date:     date,
	}, dateDefaulted, nil
}
