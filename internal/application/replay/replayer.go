package replay

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/younwookim/planetonomy/internal/application/session"
	"github.com/younwookim/planetonomy/internal/application/state"
	"github.com/younwookim/planetonomy/internal/application/system"
)

// Replayer handles input playback from recorded data
type Replayer struct {
	data  ReplayData
	frame int
}

// NewReplayer creates a new replayer from replay data
func NewReplayer(data ReplayData) *Replayer {
	return &Replayer{data: data}
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
	if data.DT <= 0 {
		return nil, fmt.Errorf("replay %s: invalid tick length %v", filename, data.DT)
	}

	return &data, nil
}

// GetInput returns the input for the current frame and advances
func (r *Replayer) GetInput() (system.InputState, bool) {
	if r.frame >= len(r.data.Frames) {
		return system.InputState{}, false
	}

	fi := r.data.Frames[r.frame]
	r.frame++
	return fi.Input(), true
}

// CurrentFrame returns the current frame number
func (r *Replayer) CurrentFrame() int {
	return r.frame
}

// TotalFrames returns the total number of frames
func (r *Replayer) TotalFrames() int {
	return len(r.data.Frames)
}

// Done reports whether every frame was consumed
func (r *Replayer) Done() bool {
	return r.frame >= len(r.data.Frames)
}

// DT returns the recorded tick length
func (r *Replayer) DT() float64 {
	return r.data.DT
}

// Stage returns the recorded stage id
func (r *Replayer) Stage() string {
	return r.data.Stage
}

// Reset resets the replayer to the beginning
func (r *Replayer) Reset() {
	r.frame = 0
}

// Play feeds the remaining frames into s until the recording ends or the
// player dies, and returns the final outcome.
func (r *Replayer) Play(s *session.Session) state.Outcome {
	outcome := s.Outcome()
	for !outcome.IsDead() {
		in, ok := r.GetInput()
		if !ok {
			break
		}
		outcome = s.Step(in, r.data.DT)
	}
	return outcome
}

// CreateTestReplayData creates replay data for testing (idle player)
func CreateTestReplayData(frames int, dt float64) ReplayData {
	data := ReplayData{
		Version: FormatVersion,
		Stage:   "test",
		DT:      dt,
		Frames:  make([]FrameInput, frames),
	}

	for i := 0; i < frames; i++ {
		data.Frames[i] = FrameInput{F: i}
	}

	return data
}
