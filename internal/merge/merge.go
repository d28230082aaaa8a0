// Package merge implements the deterministic delta-folding policy shared by
// the server batch-sync path and the client conflict review.
package merge

import (
	"sort"

	"github.com/nilesh2630/floorplan/internal/models"
)

// Delta is one payload delta to fold into a base document. Timestamp is the
// client-assigned time of the edit; ClientSeq breaks ties between deltas with
// equal timestamps.
type Delta struct {
	Payload   models.Payload
	Timestamp int64
	ClientSeq uint64
}

// Resolver combines a base payload with an ordered sequence of deltas into a
// new payload. Implementations must be pure: no mutation of base or deltas.
type Resolver interface {
	Merge(base models.Payload, deltas []Delta) models.Payload
}

// ShallowMerge resolves deltas by shallow field overwrite: deltas are applied
// in ascending (Timestamp, ClientSeq) order, and every key present in a delta
// overwrites that key in the accumulator; absent keys are left untouched.
//
// Two deltas touching disjoint fields compose cleanly. Two deltas touching
// the same field resolve to the later delta's value and the earlier write is
// lost without warning. That lossy-on-overlap behavior is the compatibility
// contract of the sync protocol, not an accident: swapping in a richer
// Resolver changes the merged state every existing client expects.
type ShallowMerge struct{}

var _ Resolver = ShallowMerge{}

// Merge applies the shallow-overwrite policy.
func (ShallowMerge) Merge(base models.Payload, deltas []Delta) models.Payload {
	out := base.Clone()
	if out == nil {
		out = models.Payload{}
	}

	for _, d := range SortDeltas(deltas) {
		for k, v := range d.Payload {
			out[k] = v
		}
	}

	return out
}

// SortDeltas returns the deltas ordered ascending by timestamp, ties broken
// by client sequence. The input slice is not modified.
func SortDeltas(deltas []Delta) []Delta {
	sorted := make([]Delta, len(deltas))
	copy(sorted, deltas)

	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Timestamp != sorted[j].Timestamp {
			return sorted[i].Timestamp < sorted[j].Timestamp
		}
		return sorted[i].ClientSeq < sorted[j].ClientSeq
	})

	return sorted
}
