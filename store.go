package pyft

import (
	"database/sql"
	"errors"
	"fmt"

	_ "modernc.org/sqlite"
)

// ErrNotFound is returned by lookups when no row has the requested name.
var ErrNotFound = errors.New("not found")

// Amounts and balances are persisted as exact decimal strings, and dates as
// ISO-8601 text so that "ORDER BY date" sorts chronologically.
const schema = `
CREATE TABLE IF NOT EXISTS accounts (
	name    TEXT PRIMARY KEY,
	balance TEXT NOT NULL DEFAULT '0'
);
CREATE TABLE IF NOT EXISTS categories (
	name  TEXT PRIMARY KEY,
	color TEXT NOT NULL
);
CREATE TABLE IF NOT EXISTS entries (
	name        TEXT PRIMARY KEY,
	accountname TEXT NOT NULL,
	amount      TEXT NOT NULL,
	date        TEXT NOT NULL,
	category    TEXT NOT NULL
);`

// Store is the handle to the SQLite database. It is opened once per
// invocation and passed explicitly to every operation that needs it.
type Store struct {
	db *sql.DB
}

// Open opens (or creates) the SQLite database at path. It does not create
// the schema; call Init for that.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open database %q: %w", path, err)
	}
	return &Store{db: db}, nil
}

// Close releases the database handle.
func (s *Store) Close() error { return s.db.Close() }

// Init creates the tables if they do not exist and seeds the default
// category. It is idempotent.
func (s *Store) Init() error {
	if _, err := s.db.Exec(schema); err != nil {
		return fmt.Errorf("create schema: %w", err)
	}
	_, err := s.db.Exec(`INSERT OR IGNORE INTO categories (name, color) VALUES (?, ?)`,
		DefaultCategory.Name, DefaultCategory.Color)
	if err != nil {
		return fmt.Errorf("seed default category: %w", err)
	}
	return nil
}

// Upsert writes a record through its kind-specific upsert and reports
// whether a row with that name already existed. The write is transactional:
// on failure the row is left unchanged.
func (s *Store) Upsert(r Record) (duplicate bool, err error) {
	tx, err := s.db.Begin()
	if err != nil {
		return false, fmt.Errorf("upsert %s %q: %w", r.FormatName(), r.Key(), err)
	}
	duplicate, err = r.upsert(tx)
	if err != nil {
		tx.Rollback()
		return false, fmt.Errorf("upsert %s %q: %w", r.FormatName(), r.Key(), err)
	}
	if err := tx.Commit(); err != nil {
		return false, fmt.Errorf("upsert %s %q: %w", r.FormatName(), r.Key(), err)
	}
	return duplicate, nil
}

// ApplyEntry upserts an entry and, when the entry is new and adjust is set,
// writes the account's new balance in the same transaction. Either both land
// or neither does: a storage failure must not leave an entry recorded with
// the balance unadjusted.
func (s *Store) ApplyEntry(e Entry, balance Amount, adjust bool) (duplicate bool, err error) {
	tx, err := s.db.Begin()
	if err != nil {
		return false, fmt.Errorf("apply entry %q: %w", e.Name, err)
	}
	duplicate, err = e.upsert(tx)
	if err != nil {
		tx.Rollback()
		return false, fmt.Errorf("upsert entry %q: %w", e.Name, err)
	}
	if !duplicate && adjust {
		if _, err := tx.Exec(`UPDATE accounts SET balance = ? WHERE name = ?`, balance.Persist(), e.Account); err != nil {
			tx.Rollback()
			return false, fmt.Errorf("update balance of %q: %w", e.Account, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return false, fmt.Errorf("apply entry %q: %w", e.Name, err)
	}
	return duplicate, nil
}

func (a Account) upsert(tx *sql.Tx) (bool, error) {
	var one int
	err := tx.QueryRow(`SELECT 1 FROM accounts WHERE name = ?`, a.Name).Scan(&one)
	if err == sql.ErrNoRows {
		_, err := tx.Exec(`INSERT INTO accounts (name, balance) VALUES (?, ?)`, a.Name, a.Balance.Persist())
		return false, err
	}
	if err != nil {
		return false, err
	}
	_, err = tx.Exec(`UPDATE accounts SET balance = ? WHERE name = ?`, a.Balance.Persist(), a.Name)
	return true, err
}

func (c Category) upsert(tx *sql.Tx) (bool, error) {
	var one int
	err := tx.QueryRow(`SELECT 1 FROM categories WHERE name = ?`, c.Name).Scan(&one)
	if err == sql.ErrNoRows {
		_, err := tx.Exec(`INSERT INTO categories (name, color) VALUES (?, ?)`, c.Name, c.Color)
		return false, err
	}
	if err != nil {
		return false, err
	}
	_, err = tx.Exec(`UPDATE categories SET color = ? WHERE name = ?`, c.Color, c.Name)
	return true, err
}

func (e Entry) upsert(tx *sql.Tx) (bool, error) {
	var one int
	err := tx.QueryRow(`SELECT 1 FROM entries WHERE name = ?`, e.Name).Scan(&one)
	if err == sql.ErrNoRows {
		_, err := tx.Exec(`INSERT INTO entries (name, accountname, amount, date, category) VALUES (?, ?, ?, ?, ?)`,
			e.Name, e.Account, e.Amount.Persist(), e.Date.String(), e.Category)
		return false, err
	}
	if err != nil {
		return false, err
	}
	_, err = tx.Exec(`UPDATE entries SET accountname = ?, amount = ?, date = ?, category = ? WHERE name = ?`,
		e.Account, e.Amount.Persist(), e.Date.String(), e.Category, e.Name)
	return true, err
}

// Account returns the account with that name, or ErrNotFound.
func (s *Store) Account(name string) (Account, error) {
	var a Account
	var balance string
	err := s.db.QueryRow(`SELECT name, balance FROM accounts WHERE name = ?`, name).Scan(&a.Name, &balance)
	if err == sql.ErrNoRows {
		return Account{}, ErrNotFound
	}
	if err != nil {
		return Account{}, fmt.Errorf("query account %q: %w", name, err)
	}
	a.Balance, err = ParseAmount(balance)
	if err != nil {
		return Account{}, fmt.Errorf("account %q: %w", name, err)
	}
	return a, nil
}

// Category returns the category with that name, or ErrNotFound.
func (s *Store) Category(name string) (Category, error) {
	var c Category
	err := s.db.QueryRow(`SELECT name, color FROM categories WHERE name = ?`, name).Scan(&c.Name, &c.Color)
	if err == sql.ErrNoRows {
		return Category{}, ErrNotFound
	}
	if err != nil {
		return Category{}, fmt.Errorf("query category %q: %w", name, err)
	}
	return c, nil
}

// Entry returns the entry with that name, or ErrNotFound.
func (s *Store) Entry(name string) (Entry, error) {
	var e Entry
	var amount, date string
	err := s.db.QueryRow(`SELECT name, accountname, amount, date, category FROM entries WHERE name = ?`, name).
		Scan(&e.Name, &e.Account, &amount, &date, &e.Category)
	if err == sql.ErrNoRows {
		return Entry{}, ErrNotFound
	}
	if err != nil {
		return Entry{}, fmt.Errorf("query entry %q: %w", name, err)
	}
	if e.Amount, err = ParseAmount(amount); err != nil {
		return Entry{}, fmt.Errorf("entry %q: %w", name, err)
	}
	if e.Date, err = ParseStoredDate(date); err != nil {
		return Entry{}, fmt.Errorf("entry %q: %w", name, err)
	}
	return e, nil
}

// Accounts lists all accounts in storage order.
func (s *Store) Accounts() ([]Account, error) {
	rows, err := s.db.Query(`SELECT name, balance FROM accounts`)
	if err != nil {
		return nil, fmt.Errorf("query accounts: %w", err)
	}
	defer rows.Close()

	var out []Account
	for rows.Next() {
		var a Account
		var balance string
		if err := rows.Scan(&a.Name, &balance); err != nil {
			return nil, fmt.Errorf("scan account: %w", err)
		}
		if a.Balance, err = ParseAmount(balance); err != nil {
			return nil, fmt.Errorf("account %q: %w", a.Name, err)
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

// Categories lists all categories in storage order.
func (s *Store) Categories() ([]Category, error) {
	rows, err := s.db.Query(`SELECT name, color FROM categories`)
	if err != nil {
		return nil, fmt.Errorf("query categories: %w", err)
	}
	defer rows.Close()

	var out []Category
	for rows.Next() {
		var c Category
		if err := rows.Scan(&c.Name, &c.Color); err != nil {
			return nil, fmt.Errorf("scan category: %w", err)
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

// Entries lists all entries, most recent date first.
func (s *Store) Entries() ([]Entry, error) {
	rows, err := s.db.Query(`SELECT name, accountname, amount, date, category FROM entries ORDER BY date DESC`)
	if err != nil {
		return nil, fmt.Errorf("query entries: %w", err)
	}
	defer rows.Close()

	var out []Entry
	for rows.Next() {
		var e Entry
		var amount, date string
		if err := rows.Scan(&e.Name, &e.Account, &amount, &date, &e.Category); err != nil {
			return nil, fmt.Errorf("scan entry: %w", err)
		}
		if e.Amount, err = ParseAmount(amount); err != nil {
			return nil, fmt.Errorf("entry %q: %w", e.Name, err)
		}
		if e.Date, err = ParseStoredDate(date); err != nil {
			return nil, fmt.Errorf("entry %q: %w", e.Name, err)
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

// CategoryColors returns the color of every category, keyed by name.
// The listing renderer uses it to tint entry and category names.
func (s *Store) CategoryColors() (map[string]string, error) {
	categories, err := s.Categories()
	if err != nil {
		return nil, err
	}
	colors := make(map[string]string, len(categories))
	for _, c := range categories {
		colors[c.Name] = c.Color
	}
	return colors, nil
}

// EntryAmounts returns the amounts of all entries recorded against the
// account, for statistics.
func (s *Store) EntryAmounts(account string) ([]Amount, error) {
	rows, err := s.db.Query(`SELECT amount FROM entries WHERE accountname = ?`, account)
	if err != nil {
		return nil, fmt.Errorf("query entry amounts for %q: %w", account, err)
	}
	defer rows.Close()

	var out []Amount
	for rows.Next() {
		var raw string
		if err := rows.Scan(&raw); err != nil {
			return nil, fmt.Errorf("scan amount: %w", err)
		}
		a, err := ParseAmount(raw)
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

// DeleteEntry removes a single entry. It does not touch the account balance.
func (s *Store) DeleteEntry(name string) error {
	_, err := s.db.Exec(`DELETE FROM entries WHERE name = ?`, name)
	if err != nil {
		return fmt.Errorf("delete entry %q: %w", name, err)
	}
	return nil
}

// DeleteAccount removes an account and, in the same transaction, every entry
// that references it.
func (s *Store) DeleteAccount(name string) error {
	return s.cascadeDelete("accounts", "accountname", name)
}

// DeleteCategory removes a category and, in the same transaction, every
// entry labeled with it.
func (s *Store) DeleteCategory(name string) error {
	return s.cascadeDelete("categories", "category", name)
}

func (s *Store) cascadeDelete(table, entryColumn, name string) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("delete from %s: %w", table, err)
	}
	if _, err := tx.Exec(`DELETE FROM entries WHERE `+entryColumn+` = ?`, name); err != nil {
		tx.Rollback()
		return fmt.Errorf("delete entries of %q: %w", name, err)
	}
	if _, err := tx.Exec(`DELETE FROM `+table+` WHERE name = ?`, name); err != nil {
		tx.Rollback()
		return fmt.Errorf("delete %q from %s: %w", name, table, err)
	}
	return tx.Commit()
}
