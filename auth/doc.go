// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package auth provides token and ID generation utilities.

# Capability Tokens

Every event gets a host token and a share token at creation, and every
ballot gets its own token. All three are opaque 128-bit random UUIDs:

	token, err := auth.NewToken()

Tokens are compared with TokenEqual, which is constant-time:

	if auth.TokenEqual(presented, event.HostToken) { ... }

Tokens are equivalent to passwords: callers must never log them and must
only transmit them over a secured channel.

# ID Generation

Random hex IDs for database records:

	id, err := auth.GenerateID(16)  // 32 hex characters
*/
package auth
