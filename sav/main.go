// Command sav manages savings accounts and projects their growth.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"log"
	"os"
	"os/signal"
	"path"

	"github.com/etnz/savings/cmd"
	"github.com/etnz/savings/config"
	"github.com/google/subcommands"
	"github.com/joho/godotenv"
)

func main() {
	// A .env file in the working directory can set SAV_ variables.
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Printf("Warning: Error loading .env file: %v", err)
	}
	cfg, err := config.Load(".")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: invalid configuration: %v\n", err)
		os.Exit(int(subcommands.ExitUsageError))
	}
	cmd.Configure(cfg)

	name := path.Base(os.Args[0])
	commander := subcommands.NewCommander(flag.CommandLine, name)
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	commander.Register(commander.CommandsCommand(), "")
	for _, c := range cmd.Commands {
		commander.Register(c, "")
	}

	// Exits when called by the shell for completion.
	cmd.Completion().Complete(name)

	flag.Parse()
	if !*cmd.Verbose {
		log.SetOutput(io.Discard)
	}

	if sub := flag.Arg(0); sub != "" && !registered(commander, sub) {
		if found, code := cmd.RunExtension(sub, flag.Args()[1:]); found {
			os.Exit(code)
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	status := commander.Execute(ctx)
	stop()
	os.Exit(int(status))
}

// registered reports whether 'name' is a command of the commander.
func registered(commander *subcommands.Commander, name string) bool {
	found := false
	commander.VisitCommands(func(_ *subcommands.CommandGroup, c subcommands.Command) {
		if c.Name() == name {
			found = true
		}
	})
	return found
}
