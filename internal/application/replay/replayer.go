package replay

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/younwookim/sidescroller/internal/domain/entity"
)

var (
	// ErrNoFrames is returned when saving a recording without frames
	ErrNoFrames = errors.New("no frames to save")
	// ErrDigestMismatch is returned when a replay ends in a different state
	// than the one recorded
	ErrDigestMismatch = errors.New("replay digest mismatch")
)

// Replayer handles input playback from recorded data
type Replayer struct {
	data  ReplayData
	frame int
}

// NewReplayer creates a new replayer from replay data
func NewReplayer(data ReplayData) *Replayer {
	return &Replayer{
		data:  data,
		frame: 0,
	}
}

// Save writes replay data to a file as indented JSON
func Save(filename string, data ReplayData) error {
	if len(data.Frames) == 0 {
		return ErrNoFrames
	}

	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer func() { _ = file.Close() }()

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(data); err != nil {
		return fmt.Errorf("failed to encode replay: %w", err)
	}

	return nil
}

// LoadReplay loads replay data from a file
func LoadReplay(filename string) (*ReplayData, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer func() { _ = file.Close() }()

	var data ReplayData
	decoder := json.NewDecoder(file)
	if err := decoder.Decode(&data); err != nil {
		return nil, fmt.Errorf("failed to decode replay: %w", err)
	}

	return &data, nil
}

// GetInput returns the input for the current frame and advances
func (r *Replayer) GetInput() (entity.InputState, bool) {
	if r.frame >= len(r.data.Frames) {
		return entity.InputState{}, false
	}

	fi := r.data.Frames[r.frame]
	r.frame++

	return fi.Input(), true
}

// Verify compares the state reached after the last frame with the recorded
// digest
func (r *Replayer) Verify(got uint64) error {
	if got != r.data.Digest {
		return fmt.Errorf("%w: recorded %016x, replayed %016x", ErrDigestMismatch, r.data.Digest, got)
	}
	return nil
}

// CurrentFrame returns the current frame number
func (r *Replayer) CurrentFrame() int {
	return r.frame
}

// TotalFrames returns the total number of frames
func (r *Replayer) TotalFrames() int {
	return len(r.data.Frames)
}

// Seed returns the seed used for the replay
func (r *Replayer) Seed() int64 {
	return r.data.Seed
}
