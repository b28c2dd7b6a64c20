package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/quantedge/journal"
)

type coachCmd struct {
	account string
}

func (*coachCmd) Name() string     { return "coach" }
func (*coachCmd) Synopsis() string { return "ask the AI coach to review recent trades" }
func (*coachCmd) Usage() string {
	return `qej coach [-account <id-or-name>]

  Send a summary of the account's most recent trades to the AI performance
  coach and display the review. Requires GEMINI_API_KEY in the environment.
`
}

func (c *coachCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.account, "account", "", "Account id or name (defaults to the first account)")
}

func (c *coachCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store, cfg, err := openStore()
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

	owned := accountTrades(trades, account.ID)
	if len(owned) == 0 {
		fmt.Println("Log a few trades to unlock AI performance analysis.")
		return subcommands.ExitSuccess
	}

	fmt.Println("Analyzing...")
	coach := journal.NewCoach(cfg.CoachModel)
	response := coach.Analyze(ctx, owned, account)

	// The response is untrusted text from an external service; it is always
	// rendered as markdown, never as raw markup.
	fmt.Print(renderMarkdown(response))
	return subcommands.ExitSuccess
}
