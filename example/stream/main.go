package main

import (
	"flag"
	"fmt"
	"log"
	"net/http"
	"time"

	regioncount "github.com/luggagelab/go-regioncount"
	"github.com/luggagelab/go-regioncount/counter"
	"github.com/luggagelab/go-regioncount/region"
	"github.com/luggagelab/go-regioncount/render"
	"github.com/luggagelab/go-regioncount/track"
	"gocv.io/x/gocv"
)

var (
	// FPS is the number of FPS to simulate
	FPS         = int64(30)
	FPSinterval = time.Duration(float64(time.Second) / float64(FPS))
)

// Demo defines the struct for running the region counting streaming demo
type Demo struct {
	// vidBuffer buffers the video frames into memory
	vidBuffer []gocv.Mat
	// frames holds the per frame tracker observations replayed in a loop
	// with the video
	frames [][]track.Observation
	// regions are the configured counting regions
	regions []region.Region
	// classFilter restricts counting to these class indexes, nil counts
	// all classes
	classFilter []int
	// ctr maintains the per region counting state
	ctr *counter.Counter
	// assigner performs sticky region assignment for the overlay tags
	assigner *counter.Assigner
	// seq remaps tracker IDs to sequential display IDs
	seq *counter.IDSequencer
	// trail keeps foot point history for drawing
	trail *track.Trail
}

// NewDemo returns an instance of Demo, a streaming HTTP server showing
// video with live region counting
func NewDemo(vidFile, trackFile, cfgFile, labelFile string) (*Demo, error) {

	d := &Demo{
		seq:   counter.NewIDSequencer(),
		trail: track.NewTrail(90),
	}

	err := d.bufferVideo(vidFile)

	if err != nil {
		return nil, fmt.Errorf("error buffering video: %w", err)
	}

	d.frames, err = track.LoadFile(trackFile)

	if err != nil {
		return nil, fmt.Errorf("error loading track file: %w", err)
	}

	cfg, err := regioncount.LoadConfig(cfgFile)

	if err != nil {
		return nil, fmt.Errorf("error loading config: %w", err)
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

		d.classFilter, err = regioncount.LabelIndexes(labels, cfg.Labels)

		if err != nil {
			return nil, err
		}

		log.Printf("Counting restricted to classes: %v", cfg.Labels)
	}

	d.regions, err = cfg.BuildRegions()

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

	d.ctr, err = counter.NewCounter(d.regions, policy, membership)

	if err != nil {
		return nil, err
	}

	d.assigner = counter.NewAssigner(d.regions, membership)

	return d, nil
}

// bufferVideo reads in the video frames and saves them to a buffer
func (d *Demo) bufferVideo(vidFile string) error {

	// open handle to read frames of video file
	video, err := gocv.VideoCaptureFile(vidFile)

	if err != nil {
		return err
	}

	defer video.Close()

	d.vidBuffer = make([]gocv.Mat, 0)

	for {
		img := gocv.NewMat()

		// read the next frame from the video
		if ok := video.Read(&img); !ok {
			// reached last video frame
			break
		}

		// Check if the frame is empty
		if img.Empty() {
			continue
		}

		// push frame onto buffer
		d.vidBuffer = append(d.vidBuffer, img)
	}

	return nil
}

// Stream is the HTTP handler function used to stream video frames to
// browser
func (d *Demo) Stream(w http.ResponseWriter, r *http.Request) {

	log.Printf("New client connection established")

	w.Header().Set("Content-Type", "multipart/x-mixed-replace; boundary=frame")

	// pointer to position in video buffer
	frameNum := -1
	// monotonically increasing frame index fed to the counter so a
	// video loop does not replay old frame indexes
	frameIdx := 0

	ticker := time.NewTicker(FPSinterval)
	defer ticker.Stop()

	resImg := gocv.NewMat()
	defer resImg.Close()

loop:
	for {
		select {
		case <-r.Context().Done():
			log.Printf("Client disconnected")
			break loop

		// simulate reading a 30FPS camera feed
		case <-ticker.C:

			// increment pointer to next image in the video buffer
			frameNum++
			if frameNum > len(d.vidBuffer)-1 {
				frameNum = 0
			}

			buf, err := d.ProcessFrame(d.vidBuffer[frameNum], &resImg,
				frameNum, frameIdx)

			frameIdx++

			if err != nil {
				log.Printf("Error occured during ProcessFrame: %v", err)
				continue
			}

			// Write the image to the response writer
			w.Write([]byte("--frame\r\n"))
			w.Write([]byte("Content-Type: image/jpeg\r\n\r\n"))
			w.Write(buf.GetBytes())
			w.Write([]byte("\r\n"))

			// Flush the buffer
			flusher, ok := w.(http.Flusher)
			if ok {
				flusher.Flush()
			}

			buf.Close()
		}
	}
}

// filterObs drops observations whose class is not in the configured
// filter and remaps track IDs to sequential display IDs
func (d *Demo) filterObs(obs []track.Observation) []track.Observation {

	res := make([]track.Observation, 0, len(obs))

	for _, o := range obs {

		if len(d.classFilter) > 0 && !containsInt(d.classFilter, o.Label) {
			continue
		}

		o.TrackID = d.seq.DisplayID(o.TrackID)
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

// ProcessFrame runs the counter over one frame's observations, draws
// the overlay, and returns the result encoded as a JPG
func (d *Demo) ProcessFrame(img gocv.Mat, resImg *gocv.Mat, frameNum,
	frameIdx int) (*gocv.NativeByteBuffer, error) {

	// copy the source image and annotate the copy
	img.CopyTo(resImg)

	var obs []track.Observation

	if frameNum < len(d.frames) {
		obs = d.filterObs(d.frames[frameNum])
	}

	d.ctr.Update(frameIdx, obs)

	tags := make(map[int64]string, len(obs))

	for _, o := range obs {
		d.trail.Add(o)

		if regionID, ok := d.assigner.Assign(o); ok {
			tags[o.TrackID] = regionID
		}
	}

	font := render.DefaultFont()

	render.Regions(resImg, d.regions, d.ctr.States(), render.DefaultRegionStyle())
	render.Trail(resImg, obs, d.trail, render.DefaultTrailStyle())
	render.ObservationBoxes(resImg, obs, tags, font, 2)

	lines := make([]render.StatLine, 0, len(d.regions))

	for i, st := range d.ctr.States() {
		lines = append(lines, render.StatLine{
			Text:  fmt.Sprintf("%s: %d", d.regions[i].Name, st.TotalEntries),
			Color: render.RegionFill(i),
		})
	}

	render.Totals(resImg, d.ctr.TotalEntries(), lines, font)

	// Encode the image to JPEG format
	return gocv.IMEncode(".jpg", *resImg)
}

func main() {
	// disable logging timestamps
	log.SetFlags(0)

	// read in cli flags
	vidFile := flag.String("v", "../data/luggage_airport.mp4", "Video file to stream")
	trackFile := flag.String("t", "../data/luggage_tracks.json", "JSON track file with per frame tracker output")
	cfgFile := flag.String("c", "../data/regions.yaml", "YAML region configuration file")
	labelFile := flag.String("l", "../data/coco_80_labels_list.txt", "Text file containing model labels")
	httpAddr := flag.String("a", "localhost:8080", "HTTP Address to run server on, format address:port")

	flag.Parse()

	demo, err := NewDemo(*vidFile, *trackFile, *cfgFile, *labelFile)

	if err != nil {
		log.Fatalf("Error creating demo: %v", err)
	}

	http.HandleFunc("/stream", demo.Stream)

	// start http server
	log.Printf("Open browser and view video at http://%s/stream", *httpAddr)
	log.Fatal(http.ListenAndServe(*httpAddr, nil))
}
