package replay

// FrameInput records input state for a single frame
type FrameInput struct {
	F   int  // Frame number
	MX  int  // MouseX
	MY  int  // MouseY
	MC  bool // MouseClick
	Esc bool // Escape
}

// ReplayData contains everything needed to replay a session deterministically
type ReplayData struct {
	Version string
	Seed    int64 // Symbol source seed
	Frames  []FrameInput
}
