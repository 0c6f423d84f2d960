package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/google/subcommands"
	"github.com/joho/godotenv"
	"github.com/mstojako/pyft/cmd"
)

func main() {
	// A missing .env file is fine; PYFT_DB may come from anywhere.
	_ = godotenv.Load()

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "help")
	commander.Register(commander.FlagsCommand(), "help")
	for _, c := range cmd.Commands() {
		commander.Register(c, "components")
	}

	flag.Parse()
	status := commander.Execute(context.Background())
	// Argument-parsing failures exit 1, whatever the commander thinks.
	if status == subcommands.ExitUsageError {
		status = subcommands.ExitFailure
	}
	os.Exit(int(status))
}
