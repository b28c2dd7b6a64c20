package journal

import (
	"encoding/json"
	"fmt"
)

// SetupTag labels the technical pattern that motivated a trade entry.
type SetupTag int

// Declaration order is the order tags are aggregated and rendered in.
const (
	OrderBlock SetupTag = iota
	FairValueGap
	BreakOfStructure
	LiquiditySweep
	ChangeOfCharacter
	VolumeImbalance
)

// Setups returns all setup tags, in declaration order.
func Setups() []SetupTag {
	return []SetupTag{OrderBlock, FairValueGap, BreakOfStructure, LiquiditySweep, ChangeOfCharacter, VolumeImbalance}
}

func (t SetupTag) String() string {
	switch t {
	case OrderBlock:
		return "Order Block"
	case FairValueGap:
		return "Fair Value Gap"
	case BreakOfStructure:
		return "Break of Market Structure"
	case LiquiditySweep:
		return "Liquidity Sweep"
	case ChangeOfCharacter:
		return "Change of Character"
	case VolumeImbalance:
		return "Volume Imbalance"
	}
	return "unknown"
}

// ParseSetupTag parses a string into a SetupTag.
func ParseSetupTag(s string) (SetupTag, error) {
	for _, t := range Setups() {
		if t.String() == s {
			return t, nil
		}
	}
	return 0, fmt.Errorf("unknown setup tag: %q", s)
}

func (t SetupTag) MarshalJSON() ([]byte, error) { return json.Marshal(t.String()) }

func (t *SetupTag) UnmarshalJSON(b []byte) error {
	var str string
	if err := json.Unmarshal(b, &str); err != nil {
		return err
	}
	v, err := ParseSetupTag(str)
	if err != nil {
		return err
	}
	*t = v
	return nil
}
