package journal

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"sync/atomic"

	"github.com/shopspring/decimal"
	"google.golang.org/genai"
)

// DefaultCoachModel is the text-generation model used when none is configured.
const DefaultCoachModel = "gemini-3-flash-preview"

// User-facing messages. Analyze never fails: every failure mode collapses to
// one of these fixed strings.
const (
	coachFailureMessage = "Failed to connect to AI coach. Please try again later."
	coachEmptyMessage   = "Unable to generate analysis at this time."
	coachBusyMessage    = "An analysis is already in progress. Please wait for it to finish."
)

// Coach asks a text-generation provider for a natural-language review of
// recent trades. It is a pluggable capability behind a single fail-soft
// operation: swapping the provider touches nothing else.
type Coach struct {
	model     string
	analyzing atomic.Bool // gates duplicate concurrent requests
}

// NewCoach returns a Coach using the given model, or DefaultCoachModel when empty.
func NewCoach(model string) *Coach {
	if model == "" {
		model = DefaultCoachModel
	}
	return &Coach{model: model}
}

// Analyze builds a coaching prompt from the account and its trades, sends it
// to the provider and returns the prose response.
//
// It never returns an error: transport and provider failures yield a fixed
// human-readable message. Only one request may be outstanding at a time; a
// concurrent call returns immediately with a busy message. The call runs to
// provider completion or failure, no timeout is applied.
func (c *Coach) Analyze(ctx context.Context, trades []Trade, account Account) string {
	if !c.analyzing.CompareAndSwap(false, true) {
		return coachBusyMessage
	}
	defer c.analyzing.Store(false)

	prompt, err := buildCoachingPrompt(trades, account)
	if err != nil {
		log.Printf("coach prompt error: %v", err)
		return coachFailureMessage
	}

	// The client reads its API key from the environment (GEMINI_API_KEY).
	client, err := genai.NewClient(ctx, nil)
	if err != nil {
		log.Printf("coach client error: %v", err)
		return coachFailureMessage
	}

	resp, err := client.Models.GenerateContent(ctx, c.model, genai.Text(prompt), nil)
	if err != nil {
		log.Printf("coach request error: %v", err)
		return coachFailureMessage
	}
	text := resp.Text()
	if text == "" {
		return coachEmptyMessage
	}
	return text
}

// tradeSummary is the trimmed view of a trade embedded in the prompt.
type tradeSummary struct {
	Symbol  string          `json:"symbol"`
	Side    Side            `json:"side"`
	Session Session         `json:"session"`
	Bias    Bias            `json:"bias"`
	Result  decimal.Decimal `json:"result"`
	ResultR decimal.Decimal `json:"resultR"`
	Tags    []SetupTag      `json:"tags"`
	Mistake string          `json:"mistake,omitempty"`
	Notes   string          `json:"notes"`
}

// buildCoachingPrompt renders the prompt template over the account and at
// most the 10 most recent trades. "Recent" means last by input position, not
// by trade date; the consumer has always decided recency by array position.
func buildCoachingPrompt(trades []Trade, account Account) (string, error) {
	recent := trades
	if len(recent) > 10 {
		recent = recent[len(recent)-10:]
	}

	summaries := make([]tradeSummary, 0, len(recent))
	for _, t := range recent {
		summaries = append(summaries, tradeSummary{
			Symbol:  t.Symbol,
			Side:    t.Side,
			Session: t.Session,
			Bias:    t.Bias,
			Result:  t.Result,
			ResultR: t.ResultR,
			Tags:    t.Setups,
			Mistake: t.Mistake,
			Notes:   t.Notes,
		})
	}
	data, err := json.Marshal(summaries)
	if err != nil {
		return "", fmt.Errorf("encoding trade summary: %w", err)
	}

	return fmt.Sprintf(`As a professional trading performance coach, analyze the following trading history for account %q.

Account Metrics:
- Currency: %s
- Recent Trades Data: %s

Please provide a structured performance review (Markdown format):
1. **Psychological & Behavioral Review**: Analyze recurring mistakes or emotional patterns (FOMO, overtrading, poor exit logic) noted in the "mistake" or "notes" fields.
2. **Session & Bias Optimization**: Look at the "session" and "bias" fields. Are they performing better in London vs NY? Is their HTF bias usually correct?
3. **Strategy Effectiveness**: Evaluate which SMC setups (OB, FVG, Liq Sweep) are providing the highest R-multiple returns.
4. **Action Plan**: Provide exactly 3 bullet points for the user to implement in their next 5 trades.

Keep it sharp, professional, and slightly critical if mistakes are repetitive. Use bold text for key insights.`,
		account.Name, account.Currency, data), nil
}
