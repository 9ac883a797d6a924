package system

// Intent represents an action requested by the player
type Intent interface {
	isIntent()
}

// StartIntent requests that every reel start spinning
type StartIntent struct {
	X, Y int // Pointer position of the click
}

func (StartIntent) isIntent() {}

// QuitIntent requests process exit
type QuitIntent struct{}

func (QuitIntent) isIntent() {}
