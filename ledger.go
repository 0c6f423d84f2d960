package pyft

import (
	"errors"
	"fmt"
)

// Ledger is the engine tying record creation to balance bookkeeping. It owns
// no state of its own; everything goes through the store handle.
type Ledger struct {
	store *Store
}

// NewLedger returns a ledger operating on the given store.
func NewLedger(store *Store) *Ledger { return &Ledger{store: store} }

// CreateResult reports the outcome of an upsert. Warnings are user-facing
// lines the caller is expected to print; the engine itself never prints.
type CreateResult struct {
	Duplicate bool
	Warnings  []string
}

// EntryResult extends CreateResult with the balance reconciliation outcome.
// BalanceWarning is set when the resulting balance went negative; it is
// separate from Warnings because it belongs after the balance report line.
type EntryResult struct {
	CreateResult
	BalanceApplied bool
	Delta          Amount
	NewBalance     Amount
	BalanceWarning string
}

// CreateAccount upserts an account.
func (l *Ledger) CreateAccount(a Account) (CreateResult, error) {
	return l.create(a)
}

// CreateCategory upserts a category.
func (l *Ledger) CreateCategory(c Category) (CreateResult, error) {
	return l.create(c)
}

func (l *Ledger) create(r Record) (CreateResult, error) {
	duplicate, err := l.store.Upsert(r)
	if err != nil {
		return CreateResult{}, err
	}
	res := CreateResult{Duplicate: duplicate}
	if duplicate {
		res.Warnings = append(res.Warnings, duplicateWarning(r))
	}
	return res, nil
}

func duplicateWarning(r Record) string {
	return fmt.Sprintf("A %s with the name %q already exists. Its fields will be updated.", r.FormatName(), r.Key())
}

// CreateEntry upserts an entry and reconciles the account balance:
//
//   - the amount must be nonzero and the referenced account and category
//     must exist;
//   - a duplicate entry never touches the balance, it already contributed
//     when it was first created;
//   - a new entry adds its amount to the account's stored balance, unless
//     the caller asked for an exemption.
//
// A negative resulting balance is reported as a warning, not an error.
func (l *Ledger) CreateEntry(e Entry, exempt bool) (EntryResult, error) {
	if e.Amount.IsZero() {
		return EntryResult{}, UsageError("Cannot create an entry with a dollar value of 0.")
	}
	account, err := l.store.Account(e.Account)
	if errors.Is(err, ErrNotFound) {
		return EntryResult{}, &ReferenceError{Kind: "account", Name: e.Account}
	}
	if err != nil {
		return EntryResult{}, err
	}
	if _, err := l.store.Category(e.Category); errors.Is(err, ErrNotFound) {
		return EntryResult{}, &ReferenceError{Kind: "category", Name: e.Category}
	} else if err != nil {
		return EntryResult{}, err
	}

	// The upsert and the balance update land in one transaction, so a
	// storage failure cannot record the entry without its balance effect.
	newBalance := account.Balance.Add(e.Amount)
	duplicate, err := l.store.ApplyEntry(e, newBalance, !exempt)
	if err != nil {
		return EntryResult{}, err
	}
	res := EntryResult{CreateResult: CreateResult{Duplicate: duplicate}}
	if duplicate {
		res.Warnings = append(res.Warnings, duplicateWarning(e))
		return res, nil
	}
	if exempt {
		return res, nil
	}

	res.BalanceApplied = true
	res.Delta = e.Amount
	res.NewBalance = newBalance
	if newBalance.IsNegative() {
		res.BalanceWarning = fmt.Sprintf("Account %s's balance is less than 0 (%s)!", e.Account, newBalance)
	}
	return res, nil
}

// Account looks up an account by name.
func (l *Ledger) Account(name string) (Account, error) { return l.store.Account(name) }

// Category looks up a category by name.
func (l *Ledger) Category(name string) (Category, error) { return l.store.Category(name) }

// Entry looks up an entry by name.
func (l *Ledger) Entry(name string) (Entry, error) { return l.store.Entry(name) }

// Accounts lists all accounts in storage order.
func (l *Ledger) Accounts() ([]Account, error) { return l.store.Accounts() }

// Categories lists all categories in storage order.
func (l *Ledger) Categories() ([]Category, error) { return l.store.Categories() }

// Entries lists all entries, most recent first.
func (l *Ledger) Entries() ([]Entry, error) { return l.store.Entries() }

// CategoryColors returns each category's color keyed by name.
func (l *Ledger) CategoryColors() (map[string]string, error) { return l.store.CategoryColors() }

// DeleteAccount removes an account and all entries referencing it.
// The interactive confirmation happens above this call.
func (l *Ledger) DeleteAccount(name string) error {
	if _, err := l.store.Account(name); err != nil {
		return err
	}
	return l.store.DeleteAccount(name)
}

// DeleteCategory removes a category and all entries labeled with it.
func (l *Ledger) DeleteCategory(name string) error {
	if _, err := l.store.Category(name); err != nil {
		return err
	}
	return l.store.DeleteCategory(name)
}

// DeleteEntry removes a single entry. The balance effect the entry had when
// it was created is deliberately not reversed; entries record historical
// fact, the balance records what happened.
func (l *Ledger) DeleteEntry(name string) error {
	if _, err := l.store.Entry(name); err != nil {
		return err
	}
	return l.store.DeleteEntry(name)
}
