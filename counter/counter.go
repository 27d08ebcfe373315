package counter

import (
	"fmt"
	"sort"

	"github.com/luggagelab/go-regioncount/region"
	"github.com/luggagelab/go-regioncount/track"
)

// Policy controls how repeat entries by the same track ID are counted
type Policy int

const (
	// CountOnce counts each distinct track ID at most once per region.
	// An object that exits and later re-enters is not counted again.
	// This is the default policy
	CountOnce Policy = iota
	// CountReentries counts every outside to inside transition, so an
	// object that exits and re-enters increments the entry total again
	CountReentries
)

// Membership controls which bounding box points are tested for region
// membership
type Membership int

const (
	// FootPoint tests the bottom center ground contact point of the
	// bounding box.  This is the default mode
	FootPoint Membership = iota
	// ProbePoints tests the box corner and edge midpoint probe set, an
	// object is inside if any probe point is inside
	ProbePoints
)

// EventType identifies the kind of region crossing event
type EventType int

const (
	// Entry is emitted when a track ID transitions from outside to
	// inside a region
	Entry EventType = iota + 1
	// Exit is emitted when a track ID previously inside a region is no
	// longer inside, either because it moved out or left the scene
	Exit
)

// Event represents a single region crossing by a tracked object
type Event struct {
	// Type is the kind of crossing, Entry or Exit
	Type EventType
	// RegionID is the region crossed
	RegionID string
	// TrackID is the object that crossed
	TrackID int64
	// FrameIndex is the frame the crossing was observed in
	FrameIndex int
	// Counted reports whether this event incremented the region's
	// entry total.  Exit events and repeat entries under the CountOnce
	// policy are not counted
	Counted bool
}

// RegionState holds the counting state of a single region.  It is owned
// by the caller's frame loop and mutated only through Update
type RegionState struct {
	// RegionID is the region this state belongs to
	RegionID string
	// TotalEntries is the cumulative entry count for the region.  It is
	// monotonically non-decreasing, exits never decrement it
	TotalEntries int
	// inside is the set of track IDs currently inside the region
	inside map[int64]struct{}
	// seen is the set of track IDs that have ever entered the region,
	// used by the CountOnce policy to suppress re-entry counting
	seen map[int64]struct{}
}

// NewRegionState returns an empty counting state for the given region
func NewRegionState(regionID string) *RegionState {
	return &RegionState{
		RegionID: regionID,
		inside:   make(map[int64]struct{}),
		seen:     make(map[int64]struct{}),
	}
}

// Occupancy returns the number of tracked objects currently inside the
// region
func (s *RegionState) Occupancy() int {
	return len(s.inside)
}

// IsInside reports whether the given track ID is currently inside the
// region
func (s *RegionState) IsInside(trackID int64) bool {
	_, ok := s.inside[trackID]
	return ok
}

// Inside returns the track IDs currently inside the region in ascending
// order
func (s *RegionState) Inside() []int64 {

	ids := make([]int64, 0, len(s.inside))

	for id := range s.inside {
		ids = append(ids, id)
	}

	sort.Slice(ids, func(i, j int) bool {
		return ids[i] < ids[j]
	})

	return ids
}

// Update advances the region state by one frame of observations and
// returns the crossing events that occurred.  Objects with no
// observation this frame are treated as not inside.  One call per
// region per frame from the video processing loop
func (s *RegionState) Update(reg region.Region, frameIndex int,
	obs []track.Observation, policy Policy, membership Membership) []Event {

	var events []Event

	// determine which observed objects are inside this frame
	insideNow := make(map[int64]struct{})

	for _, o := range obs {
		if isInside(reg, o, membership) {
			insideNow[o.TrackID] = struct{}{}
		}
	}

	// entries, objects inside now that were not inside last frame
	for id := range insideNow {

		if _, ok := s.inside[id]; ok {
			continue
		}

		s.inside[id] = struct{}{}

		counted := true

		if policy == CountOnce {
			if _, ok := s.seen[id]; ok {
				counted = false
			}
		}

		s.seen[id] = struct{}{}

		if counted {
			s.TotalEntries++
		}

		events = append(events, Event{
			Type:       Entry,
			RegionID:   s.RegionID,
			TrackID:    id,
			FrameIndex: frameIndex,
			Counted:    counted,
		})
	}

	// exits, objects inside last frame that are not inside now
	for id := range s.inside {

		if _, ok := insideNow[id]; ok {
			continue
		}

		delete(s.inside, id)

		events = append(events, Event{
			Type:       Exit,
			RegionID:   s.RegionID,
			TrackID:    id,
			FrameIndex: frameIndex,
		})
	}

	// sort events for deterministic output as map iteration order is
	// random
	sort.Slice(events, func(i, j int) bool {
		if events[i].Type != events[j].Type {
			return events[i].Type < events[j].Type
		}
		return events[i].TrackID < events[j].TrackID
	})

	return events
}

// isInside tests the observation's bounding box against the region
// polygon using the configured membership mode
func isInside(reg region.Region, obs track.Observation,
	membership Membership) bool {

	if membership == ProbePoints {
		for _, pt := range obs.Rect.ProbePoints() {
			if reg.Poly.Contains(pt) {
				return true
			}
		}
		return false
	}

	return reg.Poly.Contains(obs.Rect.FootPoint())
}

// Counter maintains counting state for a configured list of regions and
// advances them all each frame.  It is frame synchronous and not safe
// for concurrent use, call Update from a single video processing loop
type Counter struct {
	regions    []region.Region
	policy     Policy
	membership Membership
	states     map[string]*RegionState
}

// NewCounter creates a Counter for the given regions.  Region IDs must
// be unique
func NewCounter(regions []region.Region, policy Policy,
	membership Membership) (*Counter, error) {

	states := make(map[string]*RegionState, len(regions))

	for _, reg := range regions {

		if _, exists := states[reg.ID]; exists {
			return nil, fmt.Errorf("duplicate region id %s", reg.ID)
		}

		states[reg.ID] = NewRegionState(reg.ID)
	}

	return &Counter{
		regions:    regions,
		policy:     policy,
		membership: membership,
		states:     states,
	}, nil
}

// Update advances all region states with the observations from one
// frame and returns the crossing events in region configuration order
func (c *Counter) Update(frameIndex int, obs []track.Observation) []Event {

	var events []Event

	for _, reg := range c.regions {
		st := c.states[reg.ID]
		events = append(events,
			st.Update(reg, frameIndex, obs, c.policy, c.membership)...)
	}

	return events
}

// State returns the counting state for the given region ID, or nil if
// the region is not configured
func (c *Counter) State(regionID string) *RegionState {
	return c.states[regionID]
}

// States returns all region states in region configuration order
func (c *Counter) States() []*RegionState {

	res := make([]*RegionState, 0, len(c.regions))

	for _, reg := range c.regions {
		res = append(res, c.states[reg.ID])
	}

	return res
}

// TotalEntries returns the sum of entry counts across all regions
func (c *Counter) TotalEntries() int {

	total := 0

	for _, st := range c.states {
		total += st.TotalEntries
	}

	return total
}

// Reset clears all counting state, used on explicit session restart
func (c *Counter) Reset() {
	for id := range c.states {
		c.states[id] = NewRegionState(id)
	}
}
