package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/quantedge/journal"
)

// deleteTradeCmd holds the flags for the 'delete-trade' subcommand.
type deleteTradeCmd struct {
	id  string
	yes bool
}

func (*deleteTradeCmd) Name() string     { return "delete-trade" }
func (*deleteTradeCmd) Synopsis() string { return "delete a recorded trade" }
func (*deleteTradeCmd) Usage() string {
	return `qej delete-trade -id <trade-id> [-y]

  Delete a trade record. Asks for confirmation unless -y is given.
`
}

func (c *deleteTradeCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.id, "id", "", "Id of the trade to delete")
	f.BoolVar(&c.yes, "y", false, "Delete without asking for confirmation")
}

func (c *deleteTradeCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.id == "" {
		fmt.Fprintln(os.Stderr, "Error: -id is required")
		return subcommands.ExitUsageError
	}

	store, _, err := openStore()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	trades, err := store.LoadTrades()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	kept := make([]journal.Trade, 0, len(trades))
	found := false
	for _, t := range trades {
		if t.ID == c.id {
			found = true
			continue
		}
		kept = append(kept, t)
	}
	if !found {
		fmt.Fprintf(os.Stderr, "Error: no trade with id %q\n", c.id)
		return subcommands.ExitFailure
	}

	if !c.yes && !confirm(os.Stdin, os.Stdout, "Delete this trade record?") {
		fmt.Println("Aborted.")
		return subcommands.ExitSuccess
	}

	if err := store.SaveTrades(kept); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Deleted trade %s\n", c.id)
	return subcommands.ExitSuccess
}
