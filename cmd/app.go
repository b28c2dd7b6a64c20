// Package cmd implements the CLI application to manage a trading journal.
package cmd

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/google/subcommands"

	"github.com/quantedge/journal"
)

// Commands lists every subcommand of the application; the main package
// registers them all.
var Commands = []subcommands.Command{
	&addAccountCmd{},
	&accountsCmd{},
	&addTradeCmd{},
	&editTradeCmd{},
	&deleteTradeCmd{},
	&listCmd{},
	&dashboardCmd{},
	&exportCmd{},
	&coachCmd{},
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var configPath = flag.String("config", "", "Path to the config file (defaults to the user config dir)")
var storeDir = flag.String("store", "", "Path to the journal store directory (overrides the config file)")

// loadAppConfig loads the YAML config and applies command-line overrides.
func loadAppConfig() (journal.Config, error) {
	path := *configPath
	if path == "" {
		path = journal.DefaultConfigPath()
	}
	cfg, err := journal.LoadConfig(path)
	if err != nil {
		return journal.Config{}, err
	}
	if *storeDir != "" {
		cfg.StoreDir = *storeDir
	}
	return cfg, nil
}

// openStore opens the journal store named by the configuration.
func openStore() (*journal.Store, journal.Config, error) {
	cfg, err := loadAppConfig()
	if err != nil {
		return nil, journal.Config{}, err
	}
	store, err := journal.NewStore(cfg.StoreDir)
	if err != nil {
		return nil, journal.Config{}, err
	}
	return store, cfg, nil
}

// selectAccount resolves the account a command operates on. An empty key
// selects the first account, matching the journal's historical behavior of
// auto-selecting the first account on startup.
func selectAccount(accounts []journal.Account, key string) (journal.Account, error) {
	if len(accounts) == 0 {
		return journal.Account{}, fmt.Errorf("no accounts yet, create one with add-account")
	}
	if key == "" {
		return accounts[0], nil
	}
	for _, a := range accounts {
		if a.ID == key || a.Name == key {
			return a, nil
		}
	}
	return journal.Account{}, fmt.Errorf("no account with id or name %q", key)
}

// accountTrades filters trades down to those of one account. Every view and
// derivation operates only on the selected account's trades.
func accountTrades(trades []journal.Trade, accountID string) []journal.Trade {
	var out []journal.Trade
	for _, t := range trades {
		if t.AccountID == accountID {
			out = append(out, t)
		}
	}
	return out
}

// renderMarkdown pretty-prints a markdown document for the terminal. The
// input is always treated as untrusted text; on any rendering error the raw
// markdown is returned instead.
func renderMarkdown(md string) string {
	r, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(100))
	if err != nil {
		return md
	}
	out, err := r.Render(md)
	if err != nil {
		return md
	}
	return out
}

// confirm asks the user a yes/no question and returns true only on an
// explicit yes.
func confirm(r io.Reader, w io.Writer, prompt string) bool {
	fmt.Fprintf(w, "%s [y/N]: ", prompt)
	line, err := bufio.NewReader(r).ReadString('\n')
	if err != nil {
		return false
	}
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes":
		return true
	}
	return false
}
