package adminclient

import (
	"errors"
	"fmt"
	"net/url"
	"strconv"
)

var defaultPorts = map[string]uint16{
	"http":  80,
	"https": 443,
	"ws":    80,
	"wss":   443,
}

// FromLocation creates a client for the gateway that served the page at href.
// The port is the explicit one or the scheme's default.
func FromLocation(href string, opts ...Option) (*Client, error) {
	u, err := url.Parse(href)
	if err != nil {
		return nil, fmt.Errorf("parse location: %w", err)
	}

	host := u.Hostname()
	if host == "" {
		return nil, errors.New("location has no host")
	}

	port, err := locationPort(u)
	if err != nil {
		return nil, err
	}

	return New(host, port, opts...), nil
}

func locationPort(u *url.URL) (uint16, error) {
	if p := u.Port(); p != "" {
		n, err := strconv.ParseUint(p, 10, 16)
		if err != nil {
			return 0, fmt.Errorf("invalid port %q: %w", p, err)
		}
		return uint16(n), nil
	}
	if p, ok := defaultPorts[u.Scheme]; ok {
		return p, nil
	}
	return 0, fmt.Errorf("%w: scheme %q", ErrNoPort, u.Scheme)
}
