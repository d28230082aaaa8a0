package merge

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/nilesh2630/floorplan/internal/models"
)

func TestShallowMerge_DisjointFields(t *testing.T) {
	base := models.Payload{"x": float64(1)}

	tests := []struct {
		name   string
		deltas []Delta
	}{
		{
			name: "in timestamp order",
			deltas: []Delta{
				{Payload: models.Payload{"x": float64(2)}, Timestamp: 10},
				{Payload: models.Payload{"y": float64(5)}, Timestamp: 20},
			},
		},
		{
			name: "input order reversed, timestamps decide",
			deltas: []Delta{
				{Payload: models.Payload{"y": float64(5)}, Timestamp: 20},
				{Payload: models.Payload{"x": float64(2)}, Timestamp: 10},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ShallowMerge{}.Merge(base, tt.deltas)
			assert.Equal(t, models.Payload{"x": float64(2), "y": float64(5)}, got)
		})
	}
}

func TestShallowMerge_OverlappingFieldLaterWins(t *testing.T) {
	base := models.Payload{"x": float64(1)}
	deltas := []Delta{
		{Payload: models.Payload{"x": "early"}, Timestamp: 10},
		{Payload: models.Payload{"x": "late"}, Timestamp: 20},
	}

	got := ShallowMerge{}.Merge(base, deltas)
	assert.Equal(t, "late", got["x"])

	// Delta order in the slice must not matter, only timestamps.
	got = ShallowMerge{}.Merge(base, []Delta{deltas[1], deltas[0]})
	assert.Equal(t, "late", got["x"])
}

func TestShallowMerge_EqualTimestampsTieBreakByClientSeq(t *testing.T) {
	base := models.Payload{}
	deltas := []Delta{
		{Payload: models.Payload{"x": "seq2"}, Timestamp: 10, ClientSeq: 2},
		{Payload: models.Payload{"x": "seq1"}, Timestamp: 10, ClientSeq: 1},
	}

	got := ShallowMerge{}.Merge(base, deltas)
	assert.Equal(t, "seq2", got["x"])
}

func TestShallowMerge_UntouchedKeysSurvive(t *testing.T) {
	base := models.Payload{"keep": "me", "x": float64(1)}
	deltas := []Delta{
		{Payload: models.Payload{"x": float64(9)}, Timestamp: 5},
	}

	got := ShallowMerge{}.Merge(base, deltas)
	assert.Equal(t, models.Payload{"keep": "me", "x": float64(9)}, got)
}

func TestShallowMerge_DoesNotMutateInputs(t *testing.T) {
	base := models.Payload{"x": float64(1)}
	deltas := []Delta{
		{Payload: models.Payload{"x": float64(2)}, Timestamp: 2},
		{Payload: models.Payload{"y": float64(3)}, Timestamp: 1},
	}

	_ = ShallowMerge{}.Merge(base, deltas)

	assert.Equal(t, models.Payload{"x": float64(1)}, base)
	assert.Equal(t, int64(2), deltas[0].Timestamp, "input slice order preserved")
}

func TestShallowMerge_NilBase(t *testing.T) {
	got := ShallowMerge{}.Merge(nil, []Delta{
		{Payload: models.Payload{"x": float64(1)}, Timestamp: 1},
	})
	assert.Equal(t, models.Payload{"x": float64(1)}, got)
}

func TestSortDeltas(t *testing.T) {
	deltas := []Delta{
		{Timestamp: 30, ClientSeq: 1},
		{Timestamp: 10, ClientSeq: 2},
		{Timestamp: 10, ClientSeq: 1},
	}

	sorted := SortDeltas(deltas)

	assert.Equal(t, []Delta{
		{Timestamp: 10, ClientSeq: 1},
		{Timestamp: 10, ClientSeq: 2},
		{Timestamp: 30, ClientSeq: 1},
	}, sorted)
	assert.Equal(t, int64(30), deltas[0].Timestamp, "input not reordered")
}
