package journal

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Trade is a single executed trade recorded against an account.
//
// Entry, SL, TP are price levels. Result is the realized profit or loss in the
// account currency; ResultR is the same expressed in risk multiples, taken
// verbatim from user input. RR is the planned reward:risk ratio and is always
// derived from the price levels, never edited directly.
type Trade struct {
	ID        string          `json:"id"`
	AccountID string          `json:"accountId"`
	Date      Date            `json:"date"`
	Symbol    string          `json:"symbol"`
	Side      Side            `json:"side"`
	Session   Session         `json:"session"`
	Bias      Bias            `json:"bias"`
	Entry     decimal.Decimal `json:"entry"`
	SL        decimal.Decimal `json:"sl"`
	TP        decimal.Decimal `json:"tp"`
	RR        decimal.Decimal `json:"rr"`
	Result    decimal.Decimal `json:"result"`
	ResultR   decimal.Decimal `json:"resultR"`
	Setups    []SetupTag      `json:"setups"`
	Notes     string          `json:"notes"`
	Mistake   string          `json:"mistake,omitempty"`
}

// ComputeRR derives the planned reward:risk ratio from the price levels.
// It returns |tp-entry| / |entry-sl| when entry, sl and tp are all non-zero
// and entry differs from sl, and zero otherwise.
func ComputeRR(entry, sl, tp decimal.Decimal) decimal.Decimal {
	if entry.IsZero() || sl.IsZero() || tp.IsZero() || entry.Equal(sl) {
		return decimal.Zero
	}
	return tp.Sub(entry).Abs().Div(entry.Sub(sl).Abs())
}

// TradeDraft collects raw form input for a trade. Only Build can turn it into
// a Trade, so no partially-valid Trade value ever exists.
type TradeDraft struct {
	ID        string // empty for a new trade
	AccountID string `validate:"required"`
	Date      string `validate:"required"`
	Symbol    string `validate:"required"`
	Side      string `validate:"required"`
	Session   string `validate:"required"`
	Bias      string `validate:"required"`
	Entry     string `validate:"required"`
	SL        string `validate:"required"`
	TP        string `validate:"required"`
	Result    string
	ResultR   string
	Setups    []string
	Notes     string
	Mistake   string
}

// Build validates the draft and returns the complete Trade.
func (d TradeDraft) Build() (Trade, error) {
	if err := validate.Struct(d); err != nil {
		return Trade{}, fmt.Errorf("invalid trade: %w", err)
	}

	date, err := ParseDate(d.Date)
	if err != nil {
		return Trade{}, err
	}
	side, err := ParseSide(d.Side)
	if err != nil {
		return Trade{}, err
	}
	session, err := ParseSession(d.Session)
	if err != nil {
		return Trade{}, err
	}
	bias, err := ParseBias(d.Bias)
	if err != nil {
		return Trade{}, err
	}

	entry, err := parseDraftNumber("entry", d.Entry)
	if err != nil {
		return Trade{}, err
	}
	sl, err := parseDraftNumber("sl", d.SL)
	if err != nil {
		return Trade{}, err
	}
	tp, err := parseDraftNumber("tp", d.TP)
	if err != nil {
		return Trade{}, err
	}
	if entry.Equal(sl) {
		return Trade{}, fmt.Errorf("entry and stop-loss must differ (both %s)", entry)
	}
	result, err := parseOptionalDraftNumber("result", d.Result)
	if err != nil {
		return Trade{}, err
	}
	// ResultR is a trusted direct user input, not derived from price levels.
	resultR, err := parseOptionalDraftNumber("result-r", d.ResultR)
	if err != nil {
		return Trade{}, err
	}

	setups := make([]SetupTag, 0, len(d.Setups))
	seen := make(map[SetupTag]bool, len(d.Setups))
	for _, s := range d.Setups {
		tag, err := ParseSetupTag(s)
		if err != nil {
			return Trade{}, err
		}
		if seen[tag] {
			return Trade{}, fmt.Errorf("duplicate setup tag %q", tag)
		}
		seen[tag] = true
		setups = append(setups, tag)
	}

	id := d.ID
	if id == "" {
		id = uuid.NewString()
	}

	return Trade{
		ID:        id,
		AccountID: d.AccountID,
		Date:      date,
		Symbol:    d.Symbol,
		Side:      side,
		Session:   session,
		Bias:      bias,
		Entry:     entry,
		SL:        sl,
		TP:        tp,
		RR:        ComputeRR(entry, sl, tp),
		Result:    result,
		ResultR:   resultR,
		Setups:    setups,
		Notes:     d.Notes,
		Mistake:   d.Mistake,
	}, nil
}

// Draft returns a draft pre-populated from the trade, for edit flows.
func (t Trade) Draft() TradeDraft {
	setups := make([]string, 0, len(t.Setups))
	for _, s := range t.Setups {
		setups = append(setups, s.String())
	}
	return TradeDraft{
		ID:        t.ID,
		AccountID: t.AccountID,
		Date:      t.Date.String(),
		Symbol:    t.Symbol,
		Side:      t.Side.String(),
		Session:   t.Session.String(),
		Bias:      t.Bias.String(),
		Entry:     t.Entry.String(),
		SL:        t.SL.String(),
		TP:        t.TP.String(),
		Result:    t.Result.String(),
		ResultR:   t.ResultR.String(),
		Setups:    setups,
		Notes:     t.Notes,
		Mistake:   t.Mistake,
	}
}

// HasSetup reports whether the trade carries the given tag.
func (t Trade) HasSetup(tag SetupTag) bool {
	for _, s := range t.Setups {
		if s == tag {
			return true
		}
	}
	return false
}

func parseDraftNumber(field, s string) (decimal.Decimal, error) {
	v, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid %s %q: %w", field, s, err)
	}
	return v, nil
}

func parseOptionalDraftNumber(field, s string) (decimal.Decimal, error) {
	if s == "" {
		return decimal.Zero, nil
	}
	return parseDraftNumber(field, s)
}
