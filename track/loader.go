package track

import (
	"encoding/json"
	"fmt"
	"os"
)

// fileObservation is the JSON wire format of a single observation in a
// track file.  Box coordinates are top-left and bottom-right corners
// (x1, y1, x2, y2) matching the common detector output format
type fileObservation struct {
	TrackID int64      `json:"track_id"`
	Box     [4]float32 `json:"box"`
	Label   int        `json:"label"`
	Prob    float32    `json:"prob"`
}

// LoadFile reads a track file containing the per frame output of an
// external tracker.  The file holds a JSON array with one entry per
// video frame, each entry being an array of observations for the
// objects visible in that frame.  An empty array marks a frame with no
// tracked objects
func LoadFile(file string) ([][]Observation, error) {

	data, err := os.ReadFile(file)

	if err != nil {
		return nil, fmt.Errorf("error opening track file: %w", err)
	}

	var frames [][]fileObservation

	if err := json.Unmarshal(data, &frames); err != nil {
		return nil, fmt.Errorf("error parsing track file: %w", err)
	}

	res := make([][]Observation, len(frames))

	for frameIdx, frame := range frames {

		obs := make([]Observation, 0, len(frame))

		for _, fo := range frame {
			obs = append(obs, NewObservation(
				fo.TrackID,
				NewRectTlbr(fo.Box[0], fo.Box[1], fo.Box[2], fo.Box[3]),
				fo.Label,
				fo.Prob,
				frameIdx,
			))
		}

		res[frameIdx] = obs
	}

	return res, nil
}
