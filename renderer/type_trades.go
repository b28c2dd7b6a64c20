package renderer

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/quantedge/journal"
)

// TradeListing is the view of an account's trades.
type TradeListing struct {
	AccountName string
	Rows        []TradeRow
}

// TradeRow is one formatted trade.
type TradeRow struct {
	Date    string
	Symbol  string
	Side    string
	Session string
	Bias    string
	RR      string
	Result  string
	ResultR string
	Setups  string
	Mistake string
}

// NewTradeListing flattens trades into a render-ready view.
func NewTradeListing(account journal.Account, trades []journal.Trade) *TradeListing {
	l := &TradeListing{AccountName: account.Name}
	for _, t := range trades {
		setups := make([]string, 0, len(t.Setups))
		for _, s := range t.Setups {
			setups = append(setups, s.String())
		}
		l.Rows = append(l.Rows, TradeRow{
			Date:    t.Date.String(),
			Symbol:  t.Symbol,
			Side:    t.Side.String(),
			Session: t.Session.String(),
			Bias:    t.Bias.String(),
			RR:      t.RR.StringFixed(2),
			Result:  journal.M(t.Result, account.Currency).SignedString(),
			ResultR: signedFixed(t.ResultR, 1),
			Setups:  strings.Join(setups, ", "),
			Mistake: t.Mistake,
		})
	}
	return l
}

// signedFixed formats a decimal with a fixed scale, prefixing positives with "+".
func signedFixed(d decimal.Decimal, places int32) string {
	s := d.StringFixed(places)
	if d.IsPositive() {
		return "+" + s
	}
	return s
}
