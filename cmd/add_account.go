package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/shopspring/decimal"

	"github.com/quantedge/journal"
)

// addAccountCmd holds the flags for the 'add-account' subcommand.
type addAccountCmd struct {
	name     string
	broker   string
	balance  string
	currency string
}

func (*addAccountCmd) Name() string     { return "add-account" }
func (*addAccountCmd) Synopsis() string { return "create a new trading account" }
func (*addAccountCmd) Usage() string {
	return `qej add-account -name <name> -broker <broker> -balance <amount> [-currency <code>]

  Create a trading account. Accounts are immutable once created.
`
}

func (c *addAccountCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "name", "", "Account name (e.g. \"Personal Prop 100k\")")
	f.StringVar(&c.broker, "broker", "", "Broker name (e.g. \"IC Markets\", \"FTMO\")")
	f.StringVar(&c.balance, "balance", "", "Initial balance in the account currency")
	f.StringVar(&c.currency, "currency", "USD", "ISO currency code")
}

func (c *addAccountCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	balance, err := decimal.NewFromString(c.balance)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: invalid balance %q: %v\n", c.balance, err)
		return subcommands.ExitUsageError
	}

	account, err := journal.NewAccount(c.name, c.broker, balance, c.currency)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

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
	accounts = append(accounts, account)
	if err := store.SaveAccounts(accounts); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Created account %q (%s)\n", account.Name, account.ID)
	return subcommands.ExitSuccess
}
