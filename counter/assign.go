package counter

import (
	"sync"

	"github.com/luggagelab/go-regioncount/region"
	"github.com/luggagelab/go-regioncount/track"
)

// IDSequencer remaps the external tracker's track IDs to small
// sequential display IDs starting from 1.  Tracker IDs grow with every
// track ever started so the raw numbers make poor overlay labels
type IDSequencer struct {
	next  int64
	alias map[int64]int64
	sync.Mutex
}

// NewIDSequencer returns a new sequencer with no assigned IDs
func NewIDSequencer() *IDSequencer {
	return &IDSequencer{
		alias: make(map[int64]int64),
	}
}

// DisplayID returns the sequential display ID for the given track ID,
// assigning the next number on first sight
func (s *IDSequencer) DisplayID(trackID int64) int64 {
	s.Lock()
	defer s.Unlock()

	if id, ok := s.alias[trackID]; ok {
		return id
	}

	s.next++
	s.alias[trackID] = s.next

	return s.next
}

// Reset clears all assigned display IDs
func (s *IDSequencer) Reset() {
	s.Lock()
	defer s.Unlock()

	s.next = 0
	s.alias = make(map[int64]int64)
}

// Assigner performs sticky first-region assignment of tracked objects.
// The first region any membership point of an object lands in becomes
// the object's region for the rest of the session and is never
// re-checked, so an object that later drifts across another region is
// not counted twice.  Per region totals are the number of IDs assigned
type Assigner struct {
	regions    []region.Region
	membership Membership
	// assigned maps track ID to the region ID it was assigned
	assigned map[int64]string
}

// NewAssigner creates an Assigner over the given regions.  Regions are
// probed in configuration order so overlapping regions resolve to the
// earlier one
func NewAssigner(regions []region.Region, membership Membership) *Assigner {
	return &Assigner{
		regions:    regions,
		membership: membership,
		assigned:   make(map[int64]string),
	}
}

// Assign checks the observation against the regions and returns the
// region ID the object belongs to.  Already assigned objects return
// their existing region without re-checking.  The second return value
// is false while the object has not yet landed in any region
func (a *Assigner) Assign(obs track.Observation) (string, bool) {

	if regionID, ok := a.assigned[obs.TrackID]; ok {
		return regionID, true
	}

	points := []region.Point{obs.Rect.FootPoint()}

	if a.membership == ProbePoints {
		points = obs.Rect.ProbePoints()
	}

	// the first point inside any region decides the assignment
	for _, pt := range points {
		for _, reg := range a.regions {
			if reg.Poly.Contains(pt) {
				a.assigned[obs.TrackID] = reg.ID
				return reg.ID, true
			}
		}
	}

	return "", false
}

// RegionOf returns the region the given track ID has been assigned, if
// any
func (a *Assigner) RegionOf(trackID int64) (string, bool) {
	regionID, ok := a.assigned[trackID]
	return regionID, ok
}

// Counts returns the number of objects assigned per region ID
func (a *Assigner) Counts() map[string]int {

	counts := make(map[string]int, len(a.regions))

	for _, regionID := range a.assigned {
		counts[regionID]++
	}

	return counts
}

// Total returns the number of objects assigned to any region
func (a *Assigner) Total() int {
	return len(a.assigned)
}

// Reset clears all assignments, used on explicit session restart
func (a *Assigner) Reset() {
	a.assigned = make(map[int64]string)
}
