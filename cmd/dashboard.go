package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/quantedge/journal"
	"github.com/quantedge/journal/renderer"
)

type dashboardCmd struct {
	account string
}

func (*dashboardCmd) Name() string     { return "dashboard" }
func (*dashboardCmd) Synopsis() string { return "show the performance dashboard of an account" }
func (*dashboardCmd) Usage() string {
	return `qej dashboard [-account <id-or-name>]

  Derive and display the performance snapshot of an account: win rate,
  profit factor, expectancy, equity curve and per-setup R performance.
`
}

func (c *dashboardCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.account, "account", "", "Account id or name (defaults to the first account)")
}

func (c *dashboardCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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

	stats := journal.ComputeStats(accountTrades(trades, account.ID), account)
	dashboard := renderer.NewDashboard(account, stats)
	fmt.Print(renderMarkdown(renderer.RenderDashboard(dashboard)))
	return subcommands.ExitSuccess
}
