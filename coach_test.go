package journal

import (
	"context"
	"fmt"
	"strings"
	"testing"
)

func TestNewCoachDefaultModel(t *testing.T) {
	if c := NewCoach(""); c.model != DefaultCoachModel {
		t.Errorf("model = %q, want %q", c.model, DefaultCoachModel)
	}
	if c := NewCoach("gemini-2.0-pro"); c.model != "gemini-2.0-pro" {
		t.Errorf("model = %q, want %q", c.model, "gemini-2.0-pro")
	}
}

func TestBuildCoachingPrompt(t *testing.T) {
	account := testAccount(10000)
	trade := testTrade("2024-01-01", 500, 2, OrderBlock)
	trade.Mistake = "moved stop to breakeven too early"
	trade.Notes = "clean sweep of asian low"

	prompt, err := buildCoachingPrompt([]Trade{trade}, account)
	if err != nil {
		t.Fatalf("buildCoachingPrompt() error = %v", err)
	}

	for _, want := range []string{
		`account "Personal Prop 100k"`,
		"- Currency: USD",
		"Psychological & Behavioral Review",
		"Session & Bias Optimization",
		"Strategy Effectiveness",
		"Action Plan",
		`"symbol":"EURUSD"`,
		`"tags":["Order Block"]`,
		`"mistake":"moved stop to breakeven too early"`,
	} {
		if !strings.Contains(prompt, want) {
			t.Errorf("prompt does not contain %q:\n%s", want, prompt)
		}
	}
}

// Only the 10 most recent trades, by array position, are sent.
func TestBuildCoachingPromptTruncates(t *testing.T) {
	account := testAccount(10000)
	var trades []Trade
	for i := 1; i <= 12; i++ {
		trade := testTrade("2024-01-01", 100, 1)
		trade.Symbol = fmt.Sprintf("SYM%02d", i)
		trades = append(trades, trade)
	}

	prompt, err := buildCoachingPrompt(trades, account)
	if err != nil {
		t.Fatalf("buildCoachingPrompt() error = %v", err)
	}
	if strings.Contains(prompt, "SYM01") || strings.Contains(prompt, "SYM02") {
		t.Errorf("prompt contains trades beyond the last 10")
	}
	if !strings.Contains(prompt, "SYM03") || !strings.Contains(prompt, "SYM12") {
		t.Errorf("prompt is missing trades from the last 10")
	}
}

func TestCoachAnalyzeBusy(t *testing.T) {
	c := NewCoach("")
	c.analyzing.Store(true)

	got := c.Analyze(context.Background(), nil, testAccount(10000))
	if got != coachBusyMessage {
		t.Errorf("Analyze() = %q, want the busy message", got)
	}
}
