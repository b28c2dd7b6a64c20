package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/google/subcommands"

	"github.com/quantedge/journal"
)

// tradeFlags are the flags shared by add-trade and edit-trade. They mirror
// the trade form: everything is collected as raw text and only turned into a
// Trade by the draft builder.
type tradeFlags struct {
	account string
	date    string
	symbol  string
	side    string
	session string
	bias    string
	entry   string
	sl      string
	tp      string
	result  string
	resultR string
	setups  string
	notes   string
	mistake string
}

func (c *tradeFlags) register(f *flag.FlagSet) {
	f.StringVar(&c.account, "account", "", "Account id or name (defaults to the first account)")
	f.StringVar(&c.date, "date", "", "Trade date (YYYY-MM-DD)")
	f.StringVar(&c.symbol, "symbol", "", "Traded symbol (e.g. EURUSD)")
	f.StringVar(&c.side, "side", "", "Trade side: BUY or SELL")
	f.StringVar(&c.session, "session", "", "Market session: Asia, London, New York, NY Close")
	f.StringVar(&c.bias, "bias", "", "Higher-timeframe bias: Bullish, Bearish, Neutral")
	f.StringVar(&c.entry, "entry", "", "Entry price")
	f.StringVar(&c.sl, "sl", "", "Stop-loss price")
	f.StringVar(&c.tp, "tp", "", "Take-profit price")
	f.StringVar(&c.result, "result", "", "Realized profit/loss in account currency")
	f.StringVar(&c.resultR, "result-r", "", "Realized profit/loss in R-multiples")
	f.StringVar(&c.setups, "setups", "", "Comma-separated setup tags (e.g. \"Order Block,Liquidity Sweep\")")
	f.StringVar(&c.notes, "notes", "", "Free-form notes")
	f.StringVar(&c.mistake, "mistake", "", "Mistake made on this trade, if any")
}

// splitSetups turns the -setups flag value into tag names.
func splitSetups(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// addTradeCmd holds the flags for the 'add-trade' subcommand.
type addTradeCmd struct {
	tradeFlags
}

func (*addTradeCmd) Name() string     { return "add-trade" }
func (*addTradeCmd) Synopsis() string { return "record a trade" }
func (*addTradeCmd) Usage() string {
	return `qej add-trade -date <date> -symbol <symbol> -side <side> -session <session> -bias <bias> -entry <price> -sl <price> -tp <price> [options]

  Record a trade against an account. The reward:risk ratio is derived from
  the entry, stop-loss and take-profit prices.
`
}

func (c *addTradeCmd) SetFlags(f *flag.FlagSet) { c.register(f) }

func (c *addTradeCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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

	draft := journal.TradeDraft{
		AccountID: account.ID,
		Date:      c.date,
		Symbol:    c.symbol,
		Side:      c.side,
		Session:   c.session,
		Bias:      c.bias,
		Entry:     c.entry,
		SL:        c.sl,
		TP:        c.tp,
		Result:    c.result,
		ResultR:   c.resultR,
		Setups:    splitSetups(c.setups),
		Notes:     c.notes,
		Mistake:   c.mistake,
	}
	trade, err := draft.Build()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	trades, err := store.LoadTrades()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	trades = append(trades, trade)
	if err := store.SaveTrades(trades); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Recorded %s %s on %s (%s)\n", trade.Side, trade.Symbol, trade.Date, trade.ID)
	return subcommands.ExitSuccess
}
