package system

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/younwookim/fruitmachine/internal/domain/entity"
)

// InputSystem reads pointer and keyboard input from ebiten
type InputSystem struct{}

// NewInputSystem creates a new input system
func NewInputSystem() *InputSystem {
	return &InputSystem{}
}

// InputState holds the input of a single frame
type InputState struct {
	MouseX     int
	MouseY     int
	MouseClick bool // Left button went down this frame
	Escape     bool // Escape went down this frame
}

// GetInput reads the current input state
func (s *InputSystem) GetInput() InputState {
	mx, my := ebiten.CursorPosition()
	return InputState{
		MouseX:     mx,
		MouseY:     my,
		MouseClick: inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft),
		Escape:     inpututil.IsKeyJustPressed(ebiten.KeyEscape),
	}
}

// HitTest reports whether a point lies in the button rectangle.
// The right and bottom edges are outside.
func HitTest(px, py float64, button entity.Rect) bool {
	return button.Contains(px, py)
}

// InputDispatcher maps raw input to intents
type InputDispatcher struct {
	button entity.Rect
}

// NewInputDispatcher creates a dispatcher for the given start button
func NewInputDispatcher(button entity.Rect) *InputDispatcher {
	return &InputDispatcher{button: button}
}

// Button returns the start button rectangle
func (d *InputDispatcher) Button() entity.Rect {
	return d.button
}

// Dispatch converts one frame of input into intents.
// Clicks are not debounced: a click mid-spin restarts the reels.
func (d *InputDispatcher) Dispatch(input InputState) []Intent {
	var intents []Intent
	if input.Escape {
		intents = append(intents, QuitIntent{})
	}
	if input.MouseClick && HitTest(float64(input.MouseX), float64(input.MouseY), d.button) {
		intents = append(intents, StartIntent{X: input.MouseX, Y: input.MouseY})
	}
	return intents
}
