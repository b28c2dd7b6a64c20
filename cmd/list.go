package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/quantedge/journal/renderer"
)

type listCmd struct {
	account string
}

func (*listCmd) Name() string     { return "list" }
func (*listCmd) Synopsis() string { return "list the trades of an account" }
func (*listCmd) Usage() string {
	return `qej list [-account <id-or-name>]

  List the trades recorded against an account.
`
}

func (c *listCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.account, "account", "", "Account id or name (defaults to the first account)")
}

func (c *listCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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
	account, err := selectAccount(accounts, c.account)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	trades, err := store.LoadTrades()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	listing := renderer.NewTradeListing(account, accountTrades(trades, account.ID))
	fmt.Print(renderMarkdown(renderer.RenderTrades(listing)))
	return subcommands.ExitSuccess
}
