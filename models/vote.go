// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

import (
	"encoding/json"
	"fmt"
)

// VotePayload is the decoded form of a raw ballot payload. Exactly one of
// Choice (plurality: a single candidate string) or Ranking (ranked choice:
// an ordered preference list) is set after a successful parse.
type VotePayload struct {
	Choice  *string
	Ranking []string
}

// ParseVotePayload decodes raw into a VotePayload. A JSON string parses as a
// plurality choice, a JSON array of strings as a ranked-choice ordering.
// Anything else fails with ErrValidation. Whether the parsed shape matches
// the event's electoral system is checked separately at submission time.
func ParseVotePayload(raw json.RawMessage) (VotePayload, error) {
	if len(raw) == 0 {
		return VotePayload{}, fmt.Errorf("%w: empty vote payload", ErrValidation)
	}

	var choice string
	if err := json.Unmarshal(raw, &choice); err == nil {
		return VotePayload{Choice: &choice}, nil
	}

	var ranking []string
	if err := json.Unmarshal(raw, &ranking); err == nil {
		return VotePayload{Ranking: ranking}, nil
	}

	return VotePayload{}, fmt.Errorf("%w: vote must be a string or an array of strings", ErrValidation)
}
