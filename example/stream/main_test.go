package main

import (
	"testing"

	"github.com/luggagelab/go-regioncount/counter"
	"github.com/luggagelab/go-regioncount/track"
)

func TestFilterObs(t *testing.T) {

	d := &Demo{
		classFilter: []int{28},
		seq:         counter.NewIDSequencer(),
	}

	obs := []track.Observation{
		track.NewObservation(100, track.NewRect(0, 0, 10, 10), 28, 0.9, 0),
		track.NewObservation(101, track.NewRect(5, 5, 10, 10), 0, 0.8, 0),
		track.NewObservation(102, track.NewRect(9, 9, 10, 10), 28, 0.7, 0),
	}

	res := d.filterObs(obs)

	if len(res) != 2 {
		t.Fatalf("expected 2 observations after filtering, got %d", len(res))
	}

	if res[0].TrackID != 1 || res[1].TrackID != 2 {
		t.Errorf("expected sequential display IDs 1 and 2, got %d and %d",
			res[0].TrackID, res[1].TrackID)
	}
}

func TestFilterObsNoFilter(t *testing.T) {

	d := &Demo{
		seq: counter.NewIDSequencer(),
	}

	obs := []track.Observation{
		track.NewObservation(100, track.NewRect(0, 0, 10, 10), 28, 0.9, 0),
		track.NewObservation(101, track.NewRect(5, 5, 10, 10), 0, 0.8, 0),
	}

	if got := len(d.filterObs(obs)); got != 2 {
		t.Errorf("expected all observations kept, got %d", got)
	}
}
