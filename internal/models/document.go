package models

import "time"

// Payload is the opaque floor plan data: a mapping of field names to values
// (string/number/bool/null/nested mapping). The core never interprets it
// beyond merge-by-key; JSON is the canonical encoding.
type Payload map[string]any

// Clone returns a shallow copy of the payload. Top-level keys are copied,
// nested values are shared, so callers must not mutate nested maps in place.
func (p Payload) Clone() Payload {
	if p == nil {
		return nil
	}
	out := make(Payload, len(p))
	for k, v := range p {
		out[k] = v
	}
	return out
}

// Document represents one floor plan held by the server.
// Version is the sole concurrency token: it starts at 1 and increases by
// exactly 1 on every accepted write, never reused or decremented.
type Document struct {
	LastModifiedAt time.Time `json:"last_modified_at"`
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	LastModifiedBy string    `json:"last_modified_by"`
	Payload        Payload   `json:"payload"`
	Version        int64     `json:"version"`
}
