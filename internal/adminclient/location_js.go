//go:build js && wasm

package adminclient

import (
	"errors"
	"syscall/js"
)

// FromWindow creates a client from the hosting page's window.location.href.
func FromWindow(opts ...Option) (*Client, error) {
	loc := js.Global().Get("window").Get("location")
	if loc.IsUndefined() || loc.IsNull() {
		return nil, errors.New("window.location is not available")
	}
	return FromLocation(loc.Get("href").String(), opts...)
}
