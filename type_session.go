package journal

import (
	"encoding/json"
	"fmt"
)

// Session is the market session during which a trade was taken.
type Session int

const (
	Asia Session = iota
	London
	NewYork
	NYClose
)

func (s Session) String() string {
	switch s {
	case Asia:
		return "Asia"
	case London:
		return "London"
	case NewYork:
		return "New York"
	case NYClose:
		return "NY Close"
	}
	return "unknown"
}

// ParseSession parses a string into a Session.
func ParseSession(s string) (Session, error) {
	switch s {
	case "Asia":
		return Asia, nil
	case "London":
		return London, nil
	case "New York":
		return NewYork, nil
	case "NY Close":
		return NYClose, nil
	default:
		return 0, fmt.Errorf("unknown session: %q", s)
	}
}

func (s Session) MarshalJSON() ([]byte, error) { return json.Marshal(s.String()) }

func (s *Session) UnmarshalJSON(b []byte) error {
	var str string
	if err := json.Unmarshal(b, &str); err != nil {
		return err
	}
	v, err := ParseSession(str)
	if err != nil {
		return err
	}
	*s = v
	return nil
}
