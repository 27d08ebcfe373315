package counter

import (
	"sort"

	"gonum.org/v1/gonum/stat"
)

// Dwell records how long tracked objects spend inside each region.  A
// dwell sample is completed when an object exits, measured in frames
// between its entry and exit events
type Dwell struct {
	// entered maps region ID to track ID to the frame the track entered
	entered map[string]map[int64]int
	// samples holds completed dwell durations in frames per region
	samples map[string][]float64
}

// DwellSummary holds the dwell time statistics for one region
type DwellSummary struct {
	// RegionID is the region summarised
	RegionID string
	// Count is the number of completed dwell samples
	Count int
	// MeanFrames is the average dwell time in frames
	MeanFrames float64
	// MedianFrames is the 50th percentile dwell time in frames
	MedianFrames float64
	// P90Frames is the 90th percentile dwell time in frames
	P90Frames float64
}

// NewDwell returns an empty dwell recorder
func NewDwell() *Dwell {
	return &Dwell{
		entered: make(map[string]map[int64]int),
		samples: make(map[string][]float64),
	}
}

// Record consumes the crossing events of one frame.  Entry events open
// a dwell interval and exit events close it, appending a completed
// sample
func (d *Dwell) Record(events []Event) {

	for _, ev := range events {

		switch ev.Type {
		case Entry:
			if _, ok := d.entered[ev.RegionID]; !ok {
				d.entered[ev.RegionID] = make(map[int64]int)
			}
			d.entered[ev.RegionID][ev.TrackID] = ev.FrameIndex

		case Exit:
			tracks, ok := d.entered[ev.RegionID]

			if !ok {
				continue
			}

			entryFrame, ok := tracks[ev.TrackID]

			if !ok {
				continue
			}

			delete(tracks, ev.TrackID)

			d.samples[ev.RegionID] = append(d.samples[ev.RegionID],
				float64(ev.FrameIndex-entryFrame))
		}
	}
}

// Summary calculates dwell statistics for the given region from the
// completed samples recorded so far.  Objects still inside the region
// are not included
func (d *Dwell) Summary(regionID string) DwellSummary {

	res := DwellSummary{
		RegionID: regionID,
	}

	samples := d.samples[regionID]

	if len(samples) == 0 {
		return res
	}

	// quantile calculation requires sorted input
	sorted := append([]float64(nil), samples...)
	sort.Float64s(sorted)

	res.Count = len(sorted)
	res.MeanFrames = stat.Mean(sorted, nil)
	res.MedianFrames = stat.Quantile(0.5, stat.Empirical, sorted, nil)
	res.P90Frames = stat.Quantile(0.9, stat.Empirical, sorted, nil)

	return res
}

// Reset clears all recorded dwell data
func (d *Dwell) Reset() {
	d.entered = make(map[string]map[int64]int)
	d.samples = make(map[string][]float64)
}
