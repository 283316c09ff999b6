// Package hydra normalizes the hydra-style collection envelopes
// returned by the mail.tm API into one canonical shape.
package hydra

import (
	"bytes"
	"encoding/json"
)

// Collection is the canonical form of a paginated listing response.
// TotalItems is the server-reported total and may exceed len(Members);
// some endpoints report approximate counts.
type Collection struct {
	Members    []json.RawMessage
	TotalItems int
}

// envelope mirrors the keyed response shape. Unknown keys are ignored.
type envelope struct {
	Members []json.RawMessage `json:"hydra:member"`
	Total   *int              `json:"hydra:totalItems"`
}

// Normalize converts an arbitrary decoded listing response into a
// Collection. A bare array is wrapped, a keyed envelope is read as-is
// with the total defaulting to the member count, and any other shape
// (null, scalar, malformed input) yields the empty collection.
// Normalize never fails; downstream code only ever sees Collections.
func Normalize(raw json.RawMessage) Collection {
	empty := Collection{Members: []json.RawMessage{}}

	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 {
		return empty
	}

	switch trimmed[0] {
	case '[':
		var members []json.RawMessage
		if err := json.Unmarshal(trimmed, &members); err != nil {
			return empty
		}
		return Collection{Members: members, TotalItems: len(members)}

	case '{':
		var env envelope
		if err := json.Unmarshal(trimmed, &env); err != nil {
			return empty
		}
		members := env.Members
		if members == nil {
			members = []json.RawMessage{}
		}
		total := len(members)
		if env.Total != nil && *env.Total >= 0 {
			total = *env.Total
		}
		return Collection{Members: members, TotalItems: total}

	default:
		return empty
	}
}
