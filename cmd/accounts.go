package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type accountsCmd struct{}

func (*accountsCmd) Name() string     { return "accounts" }
func (*accountsCmd) Synopsis() string { return "list trading accounts" }
func (*accountsCmd) Usage() string {
	return `qej accounts

  List all trading accounts.
`
}

func (*accountsCmd) SetFlags(_ *flag.FlagSet) {}

func (c *accountsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store, _, err := openStore()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	accounts, err := store.LoadAccounts()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	if len(accounts) == 0 {
		fmt.Println("No accounts yet. Create one with add-account.")
		return subcommands.ExitSuccess
	}
	for _, a := range accounts {
		fmt.Printf("%s  %-20s %-15s %s %s\n", a.ID, a.Name, a.Broker, a.Currency, a.InitialBalance)
	}
	return subcommands.ExitSuccess
}
