package renderer

import (
	"github.com/quantedge/journal"
)

// Dashboard is the view of an account's performance snapshot, every value
// already formatted for display.
type Dashboard struct {
	AccountName string
	Broker      string
	Currency    string
	Balance     string // balance after the last trade
	TotalR      string
	TotalTrades int

	WinRate      string
	ProfitFactor string
	Expectancy   string
	AvgWin       string
	AvgLoss      string

	Equity []EquityRow
	Setups []SetupRow
}

// EquityRow is one formatted point of the equity curve.
type EquityRow struct {
	Label   string
	Balance string
}

// SetupRow is one formatted setup performance entry.
type SetupRow struct {
	Name   string
	TotalR string
}

// NewDashboard flattens the account and its stats into a render-ready view.
func NewDashboard(account journal.Account, stats journal.PerformanceStats) *Dashboard {
	d := &Dashboard{
		AccountName:  account.Name,
		Broker:       account.Broker,
		Currency:     account.Currency,
		TotalR:       signedFixed(stats.TotalR, 1),
		TotalTrades:  stats.TotalTrades,
		WinRate:      stats.WinRate.StringFixed(1) + "%",
		ProfitFactor: stats.ProfitFactor.StringFixed(2),
		Expectancy:   stats.Expectancy.String(),
		AvgWin:       stats.AvgWin.String(),
		AvgLoss:      stats.AvgLoss.String(),
	}
	for _, p := range stats.EquityCurve {
		d.Equity = append(d.Equity, EquityRow{Label: p.Label, Balance: p.Balance.String()})
	}
	// The account balance is the last point of the curve.
	if n := len(stats.EquityCurve); n > 0 {
		d.Balance = stats.EquityCurve[n-1].Balance.String()
	}
	for _, s := range stats.SetupStats {
		d.Setups = append(d.Setups, SetupRow{Name: s.Setup.String(), TotalR: signedFixed(s.TotalR, 2)})
	}
	return d
}
