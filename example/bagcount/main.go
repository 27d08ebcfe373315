package main

import (
	"flag"
	"fmt"
	"log"

	regioncount "github.com/luggagelab/go-regioncount"
	"github.com/luggagelab/go-regioncount/counter"
	"github.com/luggagelab/go-regioncount/region"
	"github.com/luggagelab/go-regioncount/render"
	"github.com/luggagelab/go-regioncount/track"
	"gocv.io/x/gocv"
	"golang.org/x/image/font"
)

// TTFFontSize is the point size the optional TTF font is loaded at
const TTFFontSize = 24

// Annotator replays an external tracker's output over the source video,
// counts region entries, and writes an annotated copy of the video
type Annotator struct {
	// cfg is the loaded region configuration
	cfg *regioncount.Config
	// regions are the configured counting regions
	regions []region.Region
	// frames holds the per frame tracker observations
	frames [][]track.Observation
	// classFilter restricts counting to these class indexes, nil counts
	// all classes
	classFilter []int
	// ctr maintains the per region counting state
	ctr *counter.Counter
	// assigner performs sticky first-region assignment for the overlay
	// region tags
	assigner *counter.Assigner
	// dwell records region dwell times
	dwell *counter.Dwell
	// seq remaps tracker IDs to sequential display IDs
	seq *counter.IDSequencer
	// trail keeps foot point history for drawing
	trail *track.Trail
	// fontFace is the optional TTF font face the statistics banner is
	// rendered with, nil uses the builtin Hershey font
	fontFace font.Face
}

// NewAnnotator loads the configuration, track file, optional labels
// file, and optional TTF font and prepares the counting state
func NewAnnotator(cfgFile, trackFile, labelFile,
	fontFile string) (*Annotator, error) {

	cfg, err := regioncount.LoadConfig(cfgFile)

	if err != nil {
		return nil, fmt.Errorf("error loading config: %w", err)
	}

	frames, err := track.LoadFile(trackFile)

	if err != nil {
		return nil, fmt.Errorf("error loading track file: %w", err)
	}

	a := &Annotator{
		cfg:    cfg,
		frames: frames,
		dwell:  counter.NewDwell(),
		seq:    counter.NewIDSequencer(),
		trail:  track.NewTrail(90),
	}

	// resolve configured label names against the model labels file
	if len(cfg.Labels) > 0 {

		if labelFile == "" {
			return nil, fmt.Errorf("config restricts labels but no labels file given")
		}

		labels, err := regioncount.LoadLabels(labelFile)

		if err != nil {
			return nil, fmt.Errorf("error loading model labels: %w", err)
		}

		a.classFilter, err = regioncount.LabelIndexes(labels, cfg.Labels)

		if err != nil {
			return nil, err
		}

		log.Printf("Counting restricted to classes: %v", cfg.Labels)
	}

	a.regions, err = cfg.BuildRegions()

	if err != nil {
		return nil, err
	}

	policy, err := cfg.CountPolicy()

	if err != nil {
		return nil, err
	}

	membership, err := cfg.MembershipMode()

	if err != nil {
		return nil, err
	}

	a.ctr, err = counter.NewCounter(a.regions, policy, membership)

	if err != nil {
		return nil, err
	}

	a.assigner = counter.NewAssigner(a.regions, membership)

	// load optional TTF font for the statistics banner
	if fontFile != "" {
		a.fontFace, err = render.LoadFontFace(fontFile, TTFFontSize)

		if err != nil {
			return nil, fmt.Errorf("error initializing font face: %w", err)
		}
	}

	return a, nil
}

// filterObs drops observations whose class is not in the configured
// filter and remaps track IDs to sequential display IDs
func (a *Annotator) filterObs(obs []track.Observation) []track.Observation {

	res := make([]track.Observation, 0, len(obs))

	for _, o := range obs {

		if len(a.classFilter) > 0 && !containsInt(a.classFilter, o.Label) {
			continue
		}

		o.TrackID = a.seq.DisplayID(o.TrackID)
		res = append(res, o)
	}

	return res
}

// containsInt is a function that takes an int slice and checks if a
// given int exists in the slice
func containsInt(slice []int, item int) bool {
	for _, s := range slice {
		if s == item {
			return true
		}
	}

	return false
}

// Run processes the video frame by frame, writing the annotated result
// to the output file
func (a *Annotator) Run(vidFile, outFile string) error {

	video, err := gocv.VideoCaptureFile(vidFile)

	if err != nil {
		return fmt.Errorf("error opening video file: %w", err)
	}

	defer video.Close()

	width := int(video.Get(gocv.VideoCaptureFrameWidth))
	height := int(video.Get(gocv.VideoCaptureFrameHeight))
	fps := video.Get(gocv.VideoCaptureFPS)

	writer, err := gocv.VideoWriterFile(outFile, "mp4v", fps, width, height, true)

	if err != nil {
		return fmt.Errorf("error opening video writer: %w", err)
	}

	defer writer.Close()

	img := gocv.NewMat()
	defer img.Close()

	font := render.DefaultFont()
	regionStyle := render.DefaultRegionStyle()
	trailStyle := render.DefaultTrailStyle()

	frameNum := 0

	for {
		if ok := video.Read(&img); !ok {
			// reached last video frame
			break
		}

		if img.Empty() {
			continue
		}

		var obs []track.Observation

		if frameNum < len(a.frames) {
			obs = a.filterObs(a.frames[frameNum])
		}

		// advance counting state and record crossings
		events := a.ctr.Update(frameNum, obs)
		a.dwell.Record(events)

		// sticky region assignment for the overlay tags
		tags := make(map[int64]string, len(obs))

		for _, o := range obs {
			a.trail.Add(o)

			if regionID, ok := a.assigner.Assign(o); ok {
				tags[o.TrackID] = regionID
			}
		}

		// draw the overlay
		render.Regions(&img, a.regions, a.ctr.States(), regionStyle)
		render.Trail(&img, obs, a.trail, trailStyle)
		render.ObservationBoxes(&img, obs, tags, font, 2)

		lines := make([]render.StatLine, 0, len(a.regions))

		for i, st := range a.ctr.States() {
			lines = append(lines, render.StatLine{
				Text:  fmt.Sprintf("%s: %d", a.regions[i].Name, st.TotalEntries),
				Color: render.RegionFill(i),
			})
		}

		if a.fontFace != nil {
			err := render.TotalsTTF(&img, a.ctr.TotalEntries(), lines, a.fontFace)

			if err != nil {
				return fmt.Errorf("error drawing statistics banner: %w", err)
			}
		} else {
			render.Totals(&img, a.ctr.TotalEntries(), lines, font)
		}

		if err := writer.Write(img); err != nil {
			return fmt.Errorf("error writing video frame: %w", err)
		}

		frameNum++

		if frameNum%100 == 0 {
			log.Printf("Processed frame %d", frameNum)
		}
	}

	a.printSummary(frameNum)

	return nil
}

// printSummary logs the final counting results
func (a *Annotator) printSummary(frameNum int) {

	log.Printf("Processing complete, %d frames", frameNum)
	log.Printf("Total unique entries: %d", a.ctr.TotalEntries())

	assigned := a.assigner.Counts()

	for _, reg := range a.regions {

		st := a.ctr.State(reg.ID)
		dwell := a.dwell.Summary(reg.ID)

		log.Printf("%s: entries=%d assigned=%d occupancy=%d",
			reg.Name, st.TotalEntries, assigned[reg.ID], st.Occupancy())

		if dwell.Count > 0 {
			log.Printf("%s: dwell mean=%.1f median=%.1f p90=%.1f frames",
				reg.Name, dwell.MeanFrames, dwell.MedianFrames, dwell.P90Frames)
		}
	}

	log.Printf("Total objects assigned to a region: %d", a.assigner.Total())
}

func main() {
	// disable logging timestamps
	log.SetFlags(0)

	// read in cli flags
	vidFile := flag.String("v", "../data/luggage_airport.mp4", "Video file to annotate")
	trackFile := flag.String("t", "../data/luggage_tracks.json", "JSON track file with per frame tracker output")
	cfgFile := flag.String("c", "../data/regions.yaml", "YAML region configuration file")
	labelFile := flag.String("l", "../data/coco_80_labels_list.txt", "Text file containing model labels")
	outFile := flag.String("o", "../data/luggage_counted.mp4", "The output video file with region counting overlay")
	ttfFont := flag.String("f", "", "Optional TTF font to render the statistics banner with")

	flag.Parse()

	annotator, err := NewAnnotator(*cfgFile, *trackFile, *labelFile, *ttfFont)

	if err != nil {
		log.Fatalf("Error creating annotator: %v", err)
	}

	if err := annotator.Run(*vidFile, *outFile); err != nil {
		log.Fatalf("Error processing video: %v", err)
	}
}
