package track

import (
	"os"
	"path/filepath"
	"testing"
)

// TestLoadFile tests parsing a track file into per frame observations
func TestLoadFile(t *testing.T) {

	data := `[
		[
			{"track_id": 1, "box": [100, 200, 150, 280], "label": 28, "prob": 0.91},
			{"track_id": 2, "box": [300, 210, 360, 290], "label": 28, "prob": 0.84}
		],
		[],
		[
			{"track_id": 1, "box": [110, 205, 160, 285], "label": 28, "prob": 0.89}
		]
	]`

	file := filepath.Join(t.TempDir(), "tracks.json")

	if err := os.WriteFile(file, []byte(data), 0644); err != nil {
		t.Fatalf("error writing track file: %v", err)
	}

	frames, err := LoadFile(file)

	if err != nil {
		t.Fatalf("error loading track file: %v", err)
	}

	if len(frames) != 3 {
		t.Fatalf("expected 3 frames, got %d", len(frames))
	}

	if len(frames[0]) != 2 || len(frames[1]) != 0 || len(frames[2]) != 1 {
		t.Fatalf("unexpected observation counts: %d, %d, %d",
			len(frames[0]), len(frames[1]), len(frames[2]))
	}

	obs := frames[0][0]

	if obs.TrackID != 1 || obs.Label != 28 || obs.FrameIndex != 0 {
		t.Errorf("unexpected observation fields: %+v", obs)
	}

	if obs.Rect.TLX() != 100 || obs.Rect.BRY() != 280 {
		t.Errorf("unexpected box corners: tlx=%v bry=%v",
			obs.Rect.TLX(), obs.Rect.BRY())
	}

	if frames[2][0].FrameIndex != 2 {
		t.Errorf("expected frame index 2, got %d", frames[2][0].FrameIndex)
	}
}

// TestLoadFileErrors tests missing and malformed track files are rejected
func TestLoadFileErrors(t *testing.T) {

	if _, err := LoadFile("no-such-file.json"); err == nil {
		t.Error("expected error for missing file")
	}

	file := filepath.Join(t.TempDir(), "bad.json")

	if err := os.WriteFile(file, []byte("not json"), 0644); err != nil {
		t.Fatalf("error writing track file: %v", err)
	}

	if _, err := LoadFile(file); err == nil {
		t.Error("expected error for malformed file")
	}
}
