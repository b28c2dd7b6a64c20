package journal

import (
	"slices"

	"github.com/shopspring/decimal"
)

// EquityPoint is one point of the equity curve: the account balance after a
// trade, labeled with the trade date (or "Start" for the opening balance).
type EquityPoint struct {
	Label   string
	Balance Money
}

// SetupPerformance is the summed R-multiple return of one setup tag.
type SetupPerformance struct {
	Setup  SetupTag
	TotalR decimal.Decimal
}

// PerformanceStats is a snapshot of an account's trading performance.
type PerformanceStats struct {
	TotalTrades  int
	WinRate      decimal.Decimal // percentage in [0,100]
	Expectancy   Money
	ProfitFactor decimal.Decimal
	AvgWin       Money
	AvgLoss      Money
	TotalWin     Money
	TotalLoss    Money
	TotalR       decimal.Decimal
	EquityCurve  []EquityPoint
	SetupStats   []SetupPerformance
}

// ComputeStats derives a performance snapshot from the trades of one account.
//
// It is a pure function, total over its domain: empty input, zero-result
// trades and all-winner or all-loser sets all produce defined output. The
// caller is expected to pass only trades whose AccountID matches the account.
//
// A trade with Result == 0 counts as a loss in every aggregate. When the
// gross loss is zero, ProfitFactor falls back to the gross win amount instead
// of dividing; this mirrors the historical behavior and is relied upon by
// consumers, so keep it.
func ComputeStats(trades []Trade, account Account) PerformanceStats {
	var winCount, lossCount int
	totalWin, totalLoss := decimal.Zero, decimal.Zero
	totalR := decimal.Zero

	for _, t := range trades {
		if t.Result.IsPositive() {
			winCount++
			totalWin = totalWin.Add(t.Result)
		} else {
			lossCount++
			totalLoss = totalLoss.Add(t.Result)
		}
		totalR = totalR.Add(t.ResultR)
	}
	totalLoss = totalLoss.Abs()

	n := len(trades)
	winRate := decimal.NewFromInt(int64(winCount * 100)).Div(decimal.NewFromInt(int64(max(1, n))))
	expectancy := totalWin.Sub(totalLoss).Div(decimal.NewFromInt(int64(max(1, n))))

	profitFactor := totalWin
	if !totalLoss.IsZero() {
		profitFactor = totalWin.Div(totalLoss)
	}

	avgWin := totalWin.Div(decimal.NewFromInt(int64(max(1, winCount))))
	avgLoss := totalLoss.Div(decimal.NewFromInt(int64(max(1, lossCount))))

	return PerformanceStats{
		TotalTrades:  n,
		WinRate:      winRate,
		Expectancy:   M(expectancy, account.Currency),
		ProfitFactor: profitFactor,
		AvgWin:       M(avgWin, account.Currency),
		AvgLoss:      M(avgLoss, account.Currency),
		TotalWin:     M(totalWin, account.Currency),
		TotalLoss:    M(totalLoss, account.Currency),
		TotalR:       totalR,
		EquityCurve:  equityCurve(trades, account),
		SetupStats:   setupStats(trades),
	}
}

// equityCurve builds the balance sequence: the initial balance, then one point
// per trade in ascending date order. The sort must be stable: trades sharing a
// date keep their input order, and the curve is visually sensitive to it.
func equityCurve(trades []Trade, account Account) []EquityPoint {
	sorted := slices.Clone(trades)
	slices.SortStableFunc(sorted, func(a, b Trade) int { return a.Date.Compare(b.Date) })

	balance := account.Balance()
	curve := make([]EquityPoint, 0, len(sorted)+1)
	curve = append(curve, EquityPoint{Label: "Start", Balance: balance})
	for _, t := range sorted {
		balance = balance.Add(M(t.Result, account.Currency))
		curve = append(curve, EquityPoint{Label: t.Date.Label(), Balance: balance})
	}
	return curve
}

// setupStats sums ResultR per setup tag, in declaration order, rounded to two
// decimal places. Tags summing to exactly zero are omitted: an unused tag and
// a tag whose trades net out to zero R are indistinguishable in the output.
func setupStats(trades []Trade) []SetupPerformance {
	stats := make([]SetupPerformance, 0, len(Setups()))
	for _, tag := range Setups() {
		sum := decimal.Zero
		for _, t := range trades {
			if t.HasSetup(tag) {
				sum = sum.Add(t.ResultR)
			}
		}
		sum = sum.Round(2)
		if sum.IsZero() {
			continue
		}
		stats = append(stats, SetupPerformance{Setup: tag, TotalR: sum})
	}
	return stats
}
