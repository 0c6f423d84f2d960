// Package pyft provides the types and logic for a small personal finance
// tracker. It is designed to be local-first: all state lives in a single
// SQLite database file that the user owns.
//
// The core functionalities include:
//   - Record Management: accounts, categories, and dated entries, each
//     identified by a unique name and written through an upsert protocol
//     (insert when the name is new, update in place when it already exists).
//   - Balance Bookkeeping: creating a new entry adjusts the referenced
//     account's stored balance by the entry amount, unless the caller opts
//     out or the entry turned out to be a duplicate.
//   - Reporting: listing of records and per-account statistical summaries
//     (mean, median and standard deviation of credits, debits and all
//     amounts).
//
// This package serves as the foundational logic for the `pyft` command-line
// tool; all printing and prompting happens above it.
package pyft
