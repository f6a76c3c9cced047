// Package blocking models the proxy's content-blocking switch.
//
// The switch is a two-valued State (Enabled or Disabled) held by a Store.
// The admin API reads and writes it; the filtering engine consults it on
// every intercepted request. Stores own persistence and cross-goroutine
// visibility, callers never compose multiple accesses into a transaction.
package blocking

import (
	"errors"
	"fmt"
)

// ErrUnknownState is returned when text does not name a State.
var ErrUnknownState = errors.New("unknown blocking state")

// State is whether content blocking is active.
// It is bool-backed so no value other than Enabled or Disabled exists.
type State bool

const (
	// Disabled means requests pass through unfiltered.
	Disabled State = false
	// Enabled means the filtering engine blocks matching requests.
	Enabled State = true
)

const (
	enabledText  = "Enabled"
	disabledText = "Disabled"
)

// StateOf converts a store flag to a State.
func StateOf(enabled bool) State {
	return State(enabled)
}

// Enabled reports whether s is Enabled.
func (s State) Enabled() bool {
	return bool(s)
}

// String returns "Enabled" or "Disabled".
func (s State) String() string {
	if s {
		return enabledText
	}
	return disabledText
}

// ParseState parses the exact, case-sensitive names "Enabled" and "Disabled".
func ParseState(text string) (State, error) {
	switch text {
	case enabledText:
		return Enabled, nil
	case disabledText:
		return Disabled, nil
	default:
		return Disabled, fmt.Errorf("%w: %q", ErrUnknownState, text)
	}
}

// MarshalText implements encoding.TextMarshaler.
func (s State) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
// Unknown names are rejected and leave s untouched.
func (s *State) UnmarshalText(text []byte) error {
	parsed, err := ParseState(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// Status is the wire shape of the blocking endpoint: {"state": "Enabled"}.
type Status struct {
	State State `json:"state"`
}
