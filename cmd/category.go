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

type categoryCmd struct {
	create bool
	list   bool
	del    string
}

func (*categoryCmd) Name() string     { return "category" }
func (*categoryCmd) Synopsis() string { return "create, list and delete entry categories" }
func (*categoryCmd) Usage() string {
	return `pyft category [-c <name> <color> | -l | -d <name>]

  Manages categories. The color is six hex digits (i.e. FFFFFF) and is used
  to tint the category's entries in listings. Deleting a category also
  deletes every entry labeled with it, after confirmation.
`
}

func (c *categoryCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.create, "c", false, "Create a new category from the positional arguments (name, color)")
	f.BoolVar(&c.create, "create", false, "Alias for -c")
	f.BoolVar(&c.list, "l", false, "List all categories")
	f.BoolVar(&c.list, "list", false, "Alias for -l")
	f.StringVar(&c.del, "d", "", "Delete a category by name")
	f.StringVar(&c.del, "delete", "", "Alias for -d")
}

func (c *categoryCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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
		return createCategory(ledger, f.Args())
	case c.list:
		return listCategories(ledger)
	default:
		return deleteCategory(ledger, c.del)
	}
}

func createCategory(ledger *pyft.Ledger, args []string) subcommands.ExitStatus {
	category, err := pyft.NewCategory(args)
	if err != nil {
		renderer.Error("%v", err)
		return subcommands.ExitSuccess
	}
	res, err := ledger.CreateCategory(category)
	if err != nil {
		return internalError(err)
	}
	for _, w := range res.Warnings {
		renderer.Warning("%s", w)
	}
	renderer.Success("Created category with name %q.", category.Name)
	return subcommands.ExitSuccess
}

func listCategories(ledger *pyft.Ledger) subcommands.ExitStatus {
	categories, err := ledger.Categories()
	if err != nil {
		return internalError(err)
	}
	if len(categories) == 0 {
		renderer.Error("No categories found.")
		return subcommands.ExitSuccess
	}
	fmt.Printf("Found %d categories:\n", len(categories))
	fmt.Print(renderer.Categories(categories))
	return subcommands.ExitSuccess
}

func deleteCategory(ledger *pyft.Ledger, name string) subcommands.ExitStatus {
	if _, err := ledger.Category(name); errors.Is(err, pyft.ErrNotFound) {
		renderer.Error("No category found with the name %q.", name)
		return subcommands.ExitSuccess
	} else if err != nil {
		return internalError(err)
	}
	renderer.Warning("All entries with the category name %q will be deleted. Proceed? (y/n)", name)
	if !confirmed() {
		return subcommands.ExitSuccess
	}
	if err := ledger.DeleteCategory(name); err != nil {
		return internalError(err)
	}
	renderer.Success("Deleted category %q.", name)
	return subcommands.ExitSuccess
}
