package track

// Observation represents a single tracked object seen in one frame.  It
// is produced by an external detection and tracking pipeline, one per
// visible object per frame
type Observation struct {
	// TrackID is the persistent identifier assigned by the external
	// tracker, stable across frames while the object remains tracked
	TrackID int64
	// Rect is the bounding box of the object in image coordinates
	Rect Rect
	// Label is the class label of the object detected
	Label int
	// Prob is the confidence/probability of the object detected
	Prob float32
	// FrameIndex is the video frame the observation was made in
	FrameIndex int
}

// NewObservation is a constructor function for the Observation struct
func NewObservation(trackID int64, rect Rect, label int, prob float32,
	frameIndex int) Observation {

	return Observation{
		TrackID:    trackID,
		Rect:       rect,
		Label:      label,
		Prob:       prob,
		FrameIndex: frameIndex,
	}
}
