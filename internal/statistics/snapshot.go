// Package statistics holds the proxy's activity counters and the snapshot
// type served by GET /api/statistics.
package statistics

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
)

// Source produces point-in-time statistics. Implementations must return a
// consistent view under concurrent updates.
type Source interface {
	Snapshot() Snapshot
}

// Snapshot is an immutable read of the proxy's statistics.
// Counters are nil when the source does not track them.
type Snapshot struct {
	ProxiedRequests   *uint64 `json:"proxied_requests,omitempty"`
	BlockedRequests   *uint64 `json:"blocked_requests,omitempty"`
	ModifiedResponses *uint64 `json:"modified_responses,omitempty"`
	TopBlockedPaths   Ranking `json:"top_blocked_paths"`
	TopClients        Ranking `json:"top_clients"`
}

// Entry is one row of a Ranking.
type Entry struct {
	Key   string
	Count uint64
}

// Ranking is an association list ordered by descending count with unique keys.
// It is encoded as a JSON object whose member order is the ranking order.
type Ranking []Entry

var errDuplicateKey = errors.New("duplicate ranking key")

// MarshalJSON implements json.Marshaler. A nil Ranking encodes as {}.
func (r Ranking) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, e := range r {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(e.Key)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.WriteString(strconv.FormatUint(e.Count, 10))
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON implements json.Unmarshaler, keeping member order.
// An empty object decodes to a nil Ranking.
func (r *Ranking) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		*r = nil
		return nil
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("ranking: expected object, got %v", tok)
	}

	var out Ranking
	seen := make(map[string]struct{})
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		key, ok := tok.(string)
		if !ok {
			return fmt.Errorf("ranking: expected key, got %v", tok)
		}
		if _, dup := seen[key]; dup {
			return fmt.Errorf("ranking: %w %q", errDuplicateKey, key)
		}
		seen[key] = struct{}{}

		var count uint64
		if err := dec.Decode(&count); err != nil {
			return fmt.Errorf("ranking: count for %q: %w", key, err)
		}
		out = append(out, Entry{Key: key, Count: count})
	}
	if _, err := dec.Token(); err != nil {
		return err
	}

	*r = out
	return nil
}

// Get returns the count for key.
func (r Ranking) Get(key string) (uint64, bool) {
	for _, e := range r {
		if e.Key == key {
			return e.Count, true
		}
	}
	return 0, false
}
