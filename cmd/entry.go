package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"

	"github.com/google/subcommands"
	"github.com/mstojako/pyft"
	"github.com/mstojako/pyft/renderer"
)

type entryCmd struct {
	create bool
	list   bool
	del    string
	exempt bool
}

func (*entryCmd) Name() string     { return "entry" }
func (*entryCmd) Synopsis() string { return "create, list and delete dated entries" }
func (*entryCmd) Usage() string {
	return `pyft entry [-c <name> <amount> <category> <account> <date> [--exempt] | -l | -d <name>]

  Manages entries. The date accepts "today", "yesterday", "tomorrow" or the
  MM/DD/YYYY form. Creating a new entry adds its amount to the referenced
  account's balance unless --exempt is given. Deleting an entry does not
  adjust the balance back.
`
}

func (c *entryCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.create, "c", false, "Create a new entry from the positional arguments (name, amount, category, account, date)")
	f.BoolVar(&c.create, "create", false, "Alias for -c")
	f.BoolVar(&c.list, "l", false, "List all entries, most recent first")
	f.BoolVar(&c.list, "list", false, "Alias for -l")
	f.StringVar(&c.del, "d", "", "Delete an entry by name")
	f.StringVar(&c.del, "delete", "", "Alias for -d")
	f.BoolVar(&c.exempt, "exempt", false, "Do not adjust the account balance for the created entry")
}

func (c *entryCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if err := exclusive(c.create, c.list, c.del != ""); err != nil {
		renderer.Error("%v", err)
		return subcommands.ExitFailure
	}
	store, err := openStore()
	if err != nil {
		return internalError(err)
	}
	defer store.Close()
	ledger := pyft.NewLedger(store)

	switch {
	case c.create:
		return createEntry(ledger, f.Args(), c.exempt)
	case c.list:
		return listEntries(ledger)
	default:
		return deleteEntry(ledger, c.del)
	}
}

func createEntry(ledger *pyft.Ledger, args []string, exempt bool) subcommands.ExitStatus {
	entry, dateDefaulted, err := pyft.NewEntry(args)
	if err != nil {
		renderer.Error("%v", err)
		return subcommands.ExitSuccess
	}

	res, err := ledger.CreateEntry(entry, exempt)
	var usage pyft.UsageError
	var ref *pyft.ReferenceError
	if errors.As(err, &usage) || errors.As(err, &ref) {
		// Reference validation outranks the date complaint: an entry that
		// names an unknown account or category reports only that.
		renderer.Error("%v", err)
		return subcommands.ExitSuccess
	}
	if err != nil {
		return internalError(err)
	}

	if dateDefaulted {
		renderer.Error("Invalid date. Date should be in the format MM/DD/YYYY")
		renderer.Warning("Date will be set to today.")
	}
	for _, w := range res.Warnings {
		renderer.Warning("%s", w)
	}
	renderer.Success("Created entry with name %q.", entry.Name)
	if res.BalanceApplied {
		if res.Delta.IsNegative() {
			renderer.Success("Subtracted %s from account %s's balance.", res.Delta.Abs(), entry.Account)
		} else {
			renderer.Success("Added %s to account %s's balance.", res.Delta, entry.Account)
		}
	}
	if res.BalanceWarning != "" {
		renderer.Warning("%s", res.BalanceWarning)
	}
	return subcommands.ExitSuccess
}

func listEntries(ledger *pyft.Ledger) subcommands.ExitStatus {
	entries, err := ledger.Entries()
	if err != nil {
		return internalError(err)
	}
	if len(entries) == 0 {
		renderer.Error("No entries found.")
		return subcommands.ExitSuccess
	}
	colors, err := ledger.CategoryColors()
	if err != nil {
		return internalError(err)
	}
	fmt.Printf("Found %d entries:\n", len(entries))
	fmt.Print(renderer.Entries(entries, colors))
	return subcommands.ExitSuccess
}

func deleteEntry(ledger *pyft.Ledger, name string) subcommands.ExitStatus {
	if err := ledger.DeleteEntry(name); errors.Is(err, pyft.ErrNotFound) {
		renderer.Error("No entry found with the name %q.", name)
		return subcommands.ExitSuccess
	} else if err != nil {
		return internalError(err)
	}
	renderer.Success("Deleted entry %q.", name)
	return subcommands.ExitSuccess
}
