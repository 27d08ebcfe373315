package track

import (
	"sync"

	"github.com/luggagelab/go-regioncount/region"
)

// history represents the recent foot point path of a single track
type history struct {
	points []region.Point
}

// Trail keeps a bounded history of foot points per track used for
// drawing a movement trail on the overlay
type Trail struct {
	// size is the maximum number of most recent points to keep per track
	size int
	// history of foot points keyed by track ID
	history map[int64]*history
	sync.Mutex
}

// NewTrail returns a new trail history instance.  Size specifies the
// maximum number of most recent points to keep per track
func NewTrail(size int) *Trail {
	return &Trail{
		size:    size,
		history: make(map[int64]*history),
	}
}

// Reset clears all history
func (t *Trail) Reset() {
	t.Lock()
	defer t.Unlock()

	t.history = make(map[int64]*history)
}

// Add appends the observation's foot point to the track history
func (t *Trail) Add(obs Observation) {
	t.Lock()
	defer t.Unlock()

	// init history if none exists yet for track id
	if _, exists := t.history[obs.TrackID]; !exists {
		t.history[obs.TrackID] = &history{}
	}

	h := t.history[obs.TrackID]
	h.points = append(h.points, obs.Rect.FootPoint())

	// check if history is exceeded and drop oldest point
	if len(h.points) > t.size {
		h.points = h.points[1:]
	}
}

// GetPoints gets the foot point history for a specific track id
func (t *Trail) GetPoints(id int64) []region.Point {
	t.Lock()
	defer t.Unlock()

	if _, exists := t.history[id]; exists {
		return t.history[id].points
	}

	// no history yet
	return nil
}
