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

type accountCmd struct {
	create  bool
	list    bool
	del     string
	summary string
}

func (*accountCmd) Name() string     { return "account" }
func (*accountCmd) Synopsis() string { return "create, list, delete and summarize accounts" }
func (*accountCmd) Usage() string {
	return `pyft account [-c <name> [balance] | -l | -d <name> | -s <account>]

  Manages accounts. Creating an account takes a name and an optional
  starting balance. Deleting an account also deletes every entry that
  references it, after confirmation.
`
}

func (c *accountCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.create, "c", false, "Create a new account from the positional arguments (name, balance)")
	f.BoolVar(&c.create, "create", false, "Alias for -c")
	f.BoolVar(&c.list, "l", false, "List all accounts")
	f.BoolVar(&c.list, "list", false, "Alias for -l")
	f.StringVar(&c.del, "d", "", "Delete an account by name")
	f.StringVar(&c.del, "delete", "", "Alias for -d")
	f.StringVar(&c.summary, "s", "", "Print a statistical summary of an account's entries")
	f.StringVar(&c.summary, "summary", "", "Alias for -s")
}

func (c *accountCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if err := exclusive(c.create, c.list, c.del != "", c.summary != ""); err != nil {
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
		return createAccount(ledger, f.Args())
	case c.list:
		return listAccounts(ledger)
	case c.del != "":
		return deleteAccount(ledger, c.del)
	default:
		return summarizeAccount(ledger, c.summary)
	}
}

func createAccount(ledger *pyft.Ledger, args []string) subcommands.ExitStatus {
	account, err := pyft.NewAccount(args)
	if err != nil {
		renderer.Error("%v", err)
		return subcommands.ExitSuccess
	}
	res, err := ledger.CreateAccount(account)
	if err != nil {
		return internalError(err)
	}
	for _, w := range res.Warnings {
		renderer.Warning("%s", w)
	}
	renderer.Success("Created account with name %q.", account.Name)
	return subcommands.ExitSuccess
}

func listAccounts(ledger *pyft.Ledger) subcommands.ExitStatus {
	accounts, err := ledger.Accounts()
	if err != nil {
		return internalError(err)
	}
	if len(accounts) == 0 {
		renderer.Error("No accounts found.")
		return subcommands.ExitSuccess
	}
	fmt.Printf("Found %d accounts:\n", len(accounts))
	fmt.Print(renderer.Accounts(accounts))
	return subcommands.ExitSuccess
}

func deleteAccount(ledger *pyft.Ledger, name string) subcommands.ExitStatus {
	if _, err := ledger.Account(name); errors.Is(err, pyft.ErrNotFound) {
		renderer.Error("No account found with the name %q.", name)
		return subcommands.ExitSuccess
	} else if err != nil {
		return internalError(err)
	}
	renderer.Warning("All entries with the account name %q will be deleted. Proceed? (y/n)", name)
	if !confirmed() {
		return subcommands.ExitSuccess
	}
	if err := ledger.DeleteAccount(name); err != nil {
		return internalError(err)
	}
	renderer.Success("Deleted account %q.", name)
	return subcommands.ExitSuccess
}

func summarizeAccount(ledger *pyft.Ledger, name string) subcommands.ExitStatus {
	summary, err := ledger.Summarize(name)
	var ref *pyft.ReferenceError
	if errors.As(err, &ref) {
		renderer.Error("%v", ref)
		return subcommands.ExitSuccess
	}
	if err != nil {
		return internalError(err)
	}
	printMarkdown(renderer.SummaryMarkdown(summary))
	return subcommands.ExitSuccess
}
