package models

// ChangeKind identifies the kind of a queued mutation.
type ChangeKind string

const (
	// ChangeCreate creates a new floor plan.
	ChangeCreate ChangeKind = "create"
	// ChangeUpdate updates an existing floor plan.
	ChangeUpdate ChangeKind = "update"
	// ChangeDelete deletes a floor plan.
	ChangeDelete ChangeKind = "delete"
)

// PendingTargetID is the sentinel target for a create of a document that has
// no server-assigned ID yet.
const PendingTargetID = "new"

// Change is one pending local mutation captured while offline. A Change is
// immutable once enqueued; it leaves the queue only after the server durably
// acknowledged it or after it is abandoned.
type Change struct {
	TargetID string     `json:"target_id"` // document ID, or PendingTargetID for creates
	Kind     ChangeKind `json:"kind"`
	Name     string     `json:"name,omitempty"`
	Delta    Payload    `json:"delta,omitempty"`
	// BaseVersion is the document version known to the client at enqueue
	// time; updates are replayed with this as the expected version.
	BaseVersion int64 `json:"base_version,omitempty"`
	// Timestamp is client-assigned and monotonic per client (unix milliseconds).
	Timestamp int64 `json:"timestamp"`
	// ClientSeq is the queue insertion sequence, the stable tie-break for
	// deltas with equal timestamps.
	ClientSeq uint64 `json:"client_seq"`
}

// ConflictReport describes a conditional update whose expected version did
// not match the stored version, after the one merge-and-retry attempt was
// also rejected. Reports are surfaced to the caller and never persisted.
type ConflictReport struct {
	AttemptedChange Change    `json:"attempted_change"`
	ExpectedVersion int64     `json:"expected_version"`
	Latest          *Document `json:"latest"`
}
