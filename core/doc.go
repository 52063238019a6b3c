// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package core implements the event/ballot lifecycle and the capability-token
authorization model.

# Components

  - EventManager: event creation, status transitions, results visibility,
    and the host's ballot-status and ballot-result views
  - BallotManager: voter self-registration, one-shot vote submission, and
    ballot reads
  - Authorize: the tier predicate both managers consult before any
    state-changing or privileged read operation

# Event Lifecycle

Status moves freely between registering, voting, and closed; no transition
is rejected based on the current state. closedAt is non-nil iff the status
is closed - closing stamps it, everything else clears it. Ballot creation
and submission are not gated on status.

# Access Tiers

	TierHost         host token only
	TierShare        share token only
	TierVoter        host token or any ballot token of the event
	TierParticipant  host, share, or any ballot token of the event

# One-Shot Submission

A ballot transitions unsubmitted → submitted exactly once. The check is a
compare-and-set on submitted_at in the store, so concurrent submissions for
the same ballot resolve to exactly one winner; the loser sees the same
Unauthorized signal as a resubmission.

All operations return the sentinel errors from the models package; nothing
here retries, and a rejected operation leaves no partial writes.
*/
package core
