package journal

import (
	"encoding/json"
	"fmt"
)

// Bias is the higher-timeframe directional bias behind a trade.
type Bias int

const (
	Bullish Bias = iota
	Bearish
	Neutral
)

func (b Bias) String() string {
	switch b {
	case Bullish:
		return "Bullish"
	case Bearish:
		return "Bearish"
	case Neutral:
		return "Neutral"
	}
	return "unknown"
}

// ParseBias parses a string into a Bias.
func ParseBias(s string) (Bias, error) {
	switch s {
	case "Bullish":
		return Bullish, nil
	case "Bearish":
		return Bearish, nil
	case "Neutral":
		return Neutral, nil
	default:
		return 0, fmt.Errorf("unknown bias: %q", s)
	}
}

func (b Bias) MarshalJSON() ([]byte, error) { return json.Marshal(b.String()) }

func (b *Bias) UnmarshalJSON(bytes []byte) error {
	var str string
	if err := json.Unmarshal(bytes, &str); err != nil {
		return err
	}
	v, err := ParseBias(str)
	if err != nil {
		return err
	}
	*b = v
	return nil
}
