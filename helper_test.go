package journal

import (
	"fmt"

	"github.com/shopspring/decimal"
)

var tradeSeq int

// usd is a helper for tests to create USD money from const.
func usd(v float64) Money { return M(v, "USD") }

// testAccount is a helper for tests to create a USD account with a given
// starting balance.
func testAccount(balance float64) Account {
	return Account{
		ID:             "acc-1",
		Name:           "Personal Prop 100k",
		Broker:         "FTMO",
		InitialBalance: decimal.NewFromFloat(balance),
		Currency:       "USD",
	}
}

// testTrade is a helper for tests to create a minimal trade on acc-1.
func testTrade(date string, result, resultR float64, setups ...SetupTag) Trade {
	tradeSeq++
	return Trade{
		ID:        fmt.Sprintf("trade-%d", tradeSeq),
		AccountID: "acc-1",
		Date:      MustParseDate(date),
		Symbol:    "EURUSD",
		Side:      Buy,
		Session:   London,
		Bias:      Bullish,
		Result:    decimal.NewFromFloat(result),
		ResultR:   decimal.NewFromFloat(resultR),
		Setups:    setups,
	}
}
