package models

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jroosing/blockproxy/internal/blocking"
)

// BlockingStateField is the only key read from a POST /api/blocking body.
// It is matched exactly; "State" or "STATE" do not count.
const BlockingStateField = "state"

var (
	ErrInvalidJSON  = errors.New("body is not a single JSON value")
	ErrMissingState = errors.New("missing state field")
)

// ParseBlockingRequest decodes a POST /api/blocking body. The body must be
// one valid JSON object with a "state" string of exactly "Enabled" or
// "Disabled". Other keys are ignored.
func ParseBlockingRequest(raw []byte) (blocking.State, error) {
	if !json.Valid(raw) {
		return blocking.Disabled, ErrInvalidJSON
	}

	var body map[string]json.RawMessage
	if err := json.Unmarshal(raw, &body); err != nil {
		return blocking.Disabled, fmt.Errorf("body is not an object: %w", err)
	}

	field, ok := body[BlockingStateField]
	if !ok || string(field) == "null" {
		return blocking.Disabled, ErrMissingState
	}

	var state blocking.State
	if err := json.Unmarshal(field, &state); err != nil {
		return blocking.Disabled, fmt.Errorf("invalid state: %w", err)
	}
	return state, nil
}
