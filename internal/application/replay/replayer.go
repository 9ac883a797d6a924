package replay

import (
	"github.com/younwookim/fruitmachine/internal/application/system"
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

// GetInput returns the input for the current frame and advances.
// Past the last frame it returns an empty state.
func (r *Replayer) GetInput() system.InputState {
	if r.frame >= len(r.data.Frames) {
		return system.InputState{}
	}

	fi := r.data.Frames[r.frame]
	r.frame++

	return system.InputState{
		MouseX:     fi.MX,
		MouseY:     fi.MY,
		MouseClick: fi.MC,
		Escape:     fi.Esc,
	}
}

// Done reports whether every frame has been played
func (r *Replayer) Done() bool {
	return r.frame >= len(r.data.Frames)
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

// Reset resets the replayer to the beginning
func (r *Replayer) Reset() {
	r.frame = 0
}

// CreateIdleReplayData creates replay data with the pointer resting at one spot
func CreateIdleReplayData(seed int64, frames int, mouseX, mouseY int) ReplayData {
	data := ReplayData{
		Version: "1.0",
		Seed:    seed,
		Frames:  make([]FrameInput, frames),
	}

	for i := 0; i < frames; i++ {
		data.Frames[i] = FrameInput{
			F:  i,
			MX: mouseX,
			MY: mouseY,
		}
	}

	return data
}

// Click marks a left click at the resting pointer position on frame f
func (d *ReplayData) Click(f int) {
	if f >= 0 && f < len(d.Frames) {
		d.Frames[f].MC = true
	}
}

// Escape marks an Escape press on frame f
func (d *ReplayData) Escape(f int) {
	if f >= 0 && f < len(d.Frames) {
		d.Frames[f].Esc = true
	}
}
