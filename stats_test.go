package journal

import (
	"reflect"
	"testing"

	"github.com/shopspring/decimal"
)

func TestComputeStatsScenario(t *testing.T) {
	account := testAccount(10000)
	// Deliberately out of date order: the engine must sort for the curve.
	trades := []Trade{
		testTrade("2024-01-02", 500, 2),
		testTrade("2024-01-01", -200, -1),
	}

	stats := ComputeStats(trades, account)

	if !stats.WinRate.Equal(decimal.NewFromInt(50)) {
		t.Errorf("WinRate = %s, want 50", stats.WinRate)
	}
	if !stats.TotalR.Equal(decimal.NewFromInt(1)) {
		t.Errorf("TotalR = %s, want 1", stats.TotalR)
	}
	if !stats.ProfitFactor.Equal(decimal.RequireFromString("2.5")) {
		t.Errorf("ProfitFactor = %s, want 2.5", stats.ProfitFactor)
	}
	if !stats.Expectancy.Equal(usd(150)) {
		t.Errorf("Expectancy = %s, want %s", stats.Expectancy, usd(150))
	}
	if !stats.AvgWin.Equal(usd(500)) {
		t.Errorf("AvgWin = %s, want %s", stats.AvgWin, usd(500))
	}
	if !stats.AvgLoss.Equal(usd(200)) {
		t.Errorf("AvgLoss = %s, want %s", stats.AvgLoss, usd(200))
	}

	wantBalances := []Money{usd(10000), usd(9800), usd(10300)}
	if len(stats.EquityCurve) != len(wantBalances) {
		t.Fatalf("EquityCurve has %d points, want %d", len(stats.EquityCurve), len(wantBalances))
	}
	for i, want := range wantBalances {
		if !stats.EquityCurve[i].Balance.Equal(want) {
			t.Errorf("EquityCurve[%d].Balance = %s, want %s", i, stats.EquityCurve[i].Balance, want)
		}
	}
	if stats.EquityCurve[0].Label != "Start" {
		t.Errorf("EquityCurve[0].Label = %q, want %q", stats.EquityCurve[0].Label, "Start")
	}
	if stats.EquityCurve[1].Label != "Jan 1, 2024" {
		t.Errorf("EquityCurve[1].Label = %q, want %q", stats.EquityCurve[1].Label, "Jan 1, 2024")
	}
}

func TestComputeStatsEmpty(t *testing.T) {
	account := testAccount(10000)

	stats := ComputeStats(nil, account)

	if stats.TotalTrades != 0 {
		t.Errorf("TotalTrades = %d, want 0", stats.TotalTrades)
	}
	if !stats.WinRate.IsZero() {
		t.Errorf("WinRate = %s, want 0", stats.WinRate)
	}
	if !stats.ProfitFactor.IsZero() {
		t.Errorf("ProfitFactor = %s, want 0", stats.ProfitFactor)
	}
	if !stats.Expectancy.Equal(usd(0)) {
		t.Errorf("Expectancy = %s, want 0", stats.Expectancy)
	}
	if len(stats.EquityCurve) != 1 {
		t.Fatalf("EquityCurve has %d points, want 1", len(stats.EquityCurve))
	}
	if stats.EquityCurve[0].Label != "Start" || !stats.EquityCurve[0].Balance.Equal(usd(10000)) {
		t.Errorf("EquityCurve[0] = {%q %s}, want {Start %s}", stats.EquityCurve[0].Label, stats.EquityCurve[0].Balance, usd(10000))
	}
	if len(stats.SetupStats) != 0 {
		t.Errorf("SetupStats = %v, want empty", stats.SetupStats)
	}
}

// A trade with result == 0 counts as a loss, and a zero gross loss makes the
// profit factor fall back to the gross win amount. No division error anywhere.
func TestComputeStatsZeroResultTrade(t *testing.T) {
	account := testAccount(10000)
	stats := ComputeStats([]Trade{testTrade("2024-01-01", 0, 0)}, account)

	if !stats.WinRate.IsZero() {
		t.Errorf("WinRate = %s, want 0", stats.WinRate)
	}
	if !stats.TotalLoss.Equal(usd(0)) {
		t.Errorf("TotalLoss = %s, want 0", stats.TotalLoss)
	}
	if !stats.ProfitFactor.IsZero() {
		t.Errorf("ProfitFactor = %s, want 0 (fallback to gross win)", stats.ProfitFactor)
	}
	if !stats.AvgLoss.Equal(usd(0)) {
		t.Errorf("AvgLoss = %s, want 0", stats.AvgLoss)
	}
}

func TestProfitFactorNoLosses(t *testing.T) {
	account := testAccount(10000)
	trades := []Trade{
		testTrade("2024-01-01", 300, 1),
		testTrade("2024-01-02", 700, 2),
	}
	stats := ComputeStats(trades, account)

	if !stats.ProfitFactor.Equal(decimal.NewFromInt(1000)) {
		t.Errorf("ProfitFactor = %s, want 1000 (gross win fallback)", stats.ProfitFactor)
	}
	if !stats.WinRate.Equal(decimal.NewFromInt(100)) {
		t.Errorf("WinRate = %s, want 100", stats.WinRate)
	}
}

func TestWinRateRange(t *testing.T) {
	account := testAccount(10000)
	sets := [][]Trade{
		nil,
		{testTrade("2024-01-01", 100, 1)},
		{testTrade("2024-01-01", -100, -1)},
		{testTrade("2024-01-01", 100, 1), testTrade("2024-01-02", -50, -0.5), testTrade("2024-01-03", 0, 0)},
	}
	for i, trades := range sets {
		rate := ComputeStats(trades, account).WinRate
		if rate.IsNegative() || rate.GreaterThan(decimal.NewFromInt(100)) {
			t.Errorf("set %d: WinRate = %s, want within [0,100]", i, rate)
		}
	}
}

func TestEquityCurveEndpoints(t *testing.T) {
	account := testAccount(25000)
	trades := []Trade{
		testTrade("2024-03-05", 120, 0.5),
		testTrade("2024-03-01", -80, -1),
		testTrade("2024-03-09", 40, 0.2),
	}
	stats := ComputeStats(trades, account)

	if len(stats.EquityCurve) != len(trades)+1 {
		t.Fatalf("EquityCurve has %d points, want %d", len(stats.EquityCurve), len(trades)+1)
	}
	if first := stats.EquityCurve[0].Balance; !first.Equal(usd(25000)) {
		t.Errorf("first balance = %s, want %s", first, usd(25000))
	}
	if last := stats.EquityCurve[len(stats.EquityCurve)-1].Balance; !last.Equal(usd(25080)) {
		t.Errorf("last balance = %s, want %s", last, usd(25080))
	}
}

// Two trades sharing a date, inserted A then B, must stay A then B in the
// curve: the date sort has to be stable.
func TestEquityCurveStableSort(t *testing.T) {
	account := testAccount(10000)
	a := testTrade("2024-01-02", 100, 1)
	b := testTrade("2024-01-02", -300, -1)
	trades := []Trade{testTrade("2024-01-03", 50, 0.5), a, b}

	stats := ComputeStats(trades, account)

	// After sorting: a, b (same date, input order), then the Jan 3 trade.
	wantBalances := []Money{usd(10000), usd(10100), usd(9800), usd(9850)}
	for i, want := range wantBalances {
		if !stats.EquityCurve[i].Balance.Equal(want) {
			t.Errorf("EquityCurve[%d].Balance = %s, want %s", i, stats.EquityCurve[i].Balance, want)
		}
	}
}

func TestComputeStatsIdempotent(t *testing.T) {
	account := testAccount(10000)
	trades := []Trade{
		testTrade("2024-01-02", 500, 2, OrderBlock),
		testTrade("2024-01-01", -200, -1, LiquiditySweep),
	}

	first := ComputeStats(trades, account)
	second := ComputeStats(trades, account)
	if !reflect.DeepEqual(first, second) {
		t.Errorf("ComputeStats is not idempotent:\nfirst:  %+v\nsecond: %+v", first, second)
	}
}

// A tag nobody used and a tag whose trades net out to exactly zero R are both
// omitted. The conflation is deliberate, keep it.
func TestSetupPerformanceOmitsNetZero(t *testing.T) {
	account := testAccount(10000)
	trades := []Trade{
		testTrade("2024-01-01", 100, 1, OrderBlock, FairValueGap),
		testTrade("2024-01-02", -100, -1, OrderBlock),
		testTrade("2024-01-03", 250, 2.5, FairValueGap),
	}

	stats := ComputeStats(trades, account)

	for _, s := range stats.SetupStats {
		if s.Setup == OrderBlock {
			t.Errorf("OrderBlock nets to zero R and must be omitted, got %s", s.TotalR)
		}
		if s.Setup == LiquiditySweep {
			t.Errorf("LiquiditySweep is unused and must be omitted, got %s", s.TotalR)
		}
	}
	if len(stats.SetupStats) != 1 {
		t.Fatalf("SetupStats = %v, want exactly one entry", stats.SetupStats)
	}
	got := stats.SetupStats[0]
	if got.Setup != FairValueGap || !got.TotalR.Equal(decimal.RequireFromString("3.5")) {
		t.Errorf("SetupStats[0] = {%s %s}, want {Fair Value Gap 3.5}", got.Setup, got.TotalR)
	}
}

func TestSetupPerformanceOrderAndRounding(t *testing.T) {
	account := testAccount(10000)
	trades := []Trade{
		testTrade("2024-01-01", 10, 1.005, VolumeImbalance),
		testTrade("2024-01-02", 10, 0.4, OrderBlock),
	}

	stats := ComputeStats(trades, account)

	if len(stats.SetupStats) != 2 {
		t.Fatalf("SetupStats = %v, want 2 entries", stats.SetupStats)
	}
	// Declaration order: OrderBlock before VolumeImbalance.
	if stats.SetupStats[0].Setup != OrderBlock || stats.SetupStats[1].Setup != VolumeImbalance {
		t.Errorf("SetupStats order = [%s %s], want declaration order", stats.SetupStats[0].Setup, stats.SetupStats[1].Setup)
	}
	if got := stats.SetupStats[1].TotalR; !got.Equal(decimal.RequireFromString("1.01")) {
		t.Errorf("VolumeImbalance TotalR = %s, want 1.01 (rounded to 2 places)", got)
	}
}
