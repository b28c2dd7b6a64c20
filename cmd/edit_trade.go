package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

// editTradeCmd holds the flags for the 'edit-trade' subcommand.
type editTradeCmd struct {
	tradeFlags
	id string
}

func (*editTradeCmd) Name() string     { return "edit-trade" }
func (*editTradeCmd) Synopsis() string { return "edit a recorded trade" }
func (*editTradeCmd) Usage() string {
	return `qej edit-trade -id <trade-id> [options]

  Replace a recorded trade. Flags that are not set keep the trade's current
  values; the reward:risk ratio is re-derived from the resulting prices.
`
}

func (c *editTradeCmd) SetFlags(f *flag.FlagSet) {
	c.register(f)
	f.StringVar(&c.id, "id", "", "Id of the trade to edit")
}

func (c *editTradeCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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

	idx := -1
	for i, t := range trades {
		if t.ID == c.id {
			idx = i
			break
		}
	}
	if idx < 0 {
		fmt.Fprintf(os.Stderr, "Error: no trade with id %q\n", c.id)
		return subcommands.ExitFailure
	}

	// Pre-populate the draft from the stored trade, then overlay only the
	// flags the user actually set.
	draft := trades[idx].Draft()
	f.Visit(func(fl *flag.Flag) {
		switch fl.Name {
		case "date":
			draft.Date = c.date
		case "symbol":
			draft.Symbol = c.symbol
		case "side":
			draft.Side = c.side
		case "session":
			draft.Session = c.session
		case "bias":
			draft.Bias = c.bias
		case "entry":
			draft.Entry = c.entry
		case "sl":
			draft.SL = c.sl
		case "tp":
			draft.TP = c.tp
		case "result":
			draft.Result = c.result
		case "result-r":
			draft.ResultR = c.resultR
		case "setups":
			draft.Setups = splitSetups(c.setups)
		case "notes":
			draft.Notes = c.notes
		case "mistake":
			draft.Mistake = c.mistake
		}
	})

	trade, err := draft.Build()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	// Full-record overwrite keyed by id.
	trades[idx] = trade
	if err := store.SaveTrades(trades); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Updated trade %s\n", trade.ID)
	return subcommands.ExitSuccess
}
