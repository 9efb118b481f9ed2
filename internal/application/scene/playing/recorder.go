package playing

import (
	"time"

	"github.com/younwookim/sidescroller/internal/application/replay"
	"github.com/younwookim/sidescroller/internal/domain/entity"
)

// Recorder handles input recording for replay
type Recorder struct {
	data      replay.ReplayData
	recording bool
	frame     int
}

// NewRecorder creates a new recorder with seed for deterministic replay
func NewRecorder(seed int64, stage string, tps int, sideTracking string) *Recorder {
	return &Recorder{
		data: replay.ReplayData{
			Version:      replay.Version,
			Seed:         seed,
			Stage:        stage,
			StartTime:    time.Now().Format(time.RFC3339),
			TPS:          tps,
			SideTracking: sideTracking,
			Frames:       make([]replay.FrameInput, 0, 3600), // ~1 minute at 60 tps
		},
		recording: true,
	}
}

// RecordFrame records a single tick's input
func (r *Recorder) RecordFrame(input entity.InputState) {
	if !r.recording {
		return
	}
	r.data.Frames = append(r.data.Frames, replay.NewFrameInput(r.frame, input))
	r.frame++
}

// SetDigest stores the state digest reached after the last recorded frame
func (r *Recorder) SetDigest(d uint64) {
	r.data.Digest = d
}

// Save writes the replay data to a file
func (r *Recorder) Save(filename string) error {
	return replay.Save(filename, r.data)
}

// Stop stops recording
func (r *Recorder) Stop() {
	r.recording = false
}

// FrameCount returns the number of recorded frames
func (r *Recorder) FrameCount() int {
	return len(r.data.Frames)
}
