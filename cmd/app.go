// Package cmd implements the CLI application for the pyft finance tracker.
// A main package calls Commands() to register the component subcommands and
// Execute() on the user-selected one.
package cmd

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/google/subcommands"
	"github.com/mstojako/pyft"
	"github.com/mstojako/pyft/renderer"
)

// As a CLI application the process is very short lived, so package-level
// flag state is acceptable here.
var dbFile = flag.String("db", "", "Path to the database file (defaults to $PYFT_DB, then pyft.db)")

// Commands returns the component subcommands in registration order.
func Commands() []subcommands.Command {
	return []subcommands.Command{
		&accountCmd{},
		&categoryCmd{},
		&entryCmd{},
	}
}

func databasePath() string {
	if *dbFile != "" {
		return *dbFile
	}
	if p := os.Getenv("PYFT_DB"); p != "" {
		return p
	}
	return "pyft.db"
}

// openStore opens the database. On the first run (file absent or empty) it
// warns, asks for confirmation, and creates the schema.
func openStore() (*pyft.Store, error) {
	path := databasePath()
	fresh, err := missingOrEmpty(path)
	if err != nil {
		return nil, err
	}
	if fresh {
		renderer.Warning("No database file detected. pyft will create one at %q. Proceed? (y/n)", path)
		if !confirmed() {
			return nil, errors.New("no database to operate on")
		}
	}
	store, err := pyft.Open(path)
	if err != nil {
		return nil, err
	}
	if fresh {
		if err := store.Init(); err != nil {
			store.Close()
			return nil, err
		}
	}
	return store, nil
}

func missingOrEmpty(path string) (bool, error) {
	info, err := os.Stat(path)
	if errors.Is(err, os.ErrNotExist) {
		return true, nil
	}
	if err != nil {
		return false, fmt.Errorf("stat database %q: %w", path, err)
	}
	return info.Size() == 0, nil
}

// stdin is shared so that successive prompts within one invocation read from
// the same buffered reader.
var stdin = bufio.NewReader(os.Stdin)

// confirmed reads one line from stdin and reports whether the user typed
// "y" (case-insensitive). Anything else, including EOF, counts as no.
func confirmed() bool {
	line, err := stdin.ReadString('\n')
	if err != nil && line == "" {
		return false
	}
	return strings.EqualFold(strings.TrimSpace(line), "y")
}

// exclusive enforces that exactly one of the main component options was set.
func exclusive(opts ...bool) error {
	n := 0
	for _, set := range opts {
		if set {
			n++
		}
	}
	if n == 0 {
		return errors.New("one of -c, -l, -d or -s is required")
	}
	if n > 1 {
		return errors.New("options -c, -l, -d and -s are mutually exclusive")
	}
	return nil
}

// printMarkdown renders a markdown report to the terminal. If rendering
// fails the raw markdown is still printed.
func printMarkdown(markdown string) {
	rendered, err := glamour.Render(markdown, "auto")
	if err != nil {
		fmt.Print(markdown)
		return
	}
	fmt.Print(rendered)
}

// internalError reports a storage or I/O failure and aborts the operation.
func internalError(err error) subcommands.ExitStatus {
	fmt.Fprintln(os.Stderr, err)
	return subcommands.ExitFailure
}
