// Package input tracks the per-frame keyboard and mouse state that drives the camera.
package input

// State holds the input sampled for one frame.
type State struct {
	// Mouse state
	MouseX      float32
	MouseY      float32
	MouseDeltaX float32
	MouseDeltaY float32

	// Right button drags the view
	RightDown     bool
	RightPressed  bool
	RightReleased bool

	Scroll float32

	// Movement keys
	Forward bool // W
	Back    bool // S
	Left    bool // A
	Right   bool // D
	Up      bool // E
	Down    bool // Q
	Fast    bool // Shift

	// Set when the UI owns the device this frame
	CaptureMouse    bool
	CaptureKeyboard bool

	prevRight bool
	prevX     float32
	prevY     float32
	primed    bool
}

// FastMultiplier scales movement while Fast is held.
const FastMultiplier = 4

// Update prepares the state for a new frame.
// Call this once per frame after writing the raw values.
func (s *State) Update() {
	if s.primed {
		s.MouseDeltaX = s.MouseX - s.prevX
		s.MouseDeltaY = s.MouseY - s.prevY
	} else {
		// No delta on the first sample
		s.MouseDeltaX, s.MouseDeltaY = 0, 0
		s.primed = true
	}

	s.RightPressed = s.RightDown && !s.prevRight
	s.RightReleased = !s.RightDown && s.prevRight

	s.prevRight = s.RightDown
	s.prevX = s.MouseX
	s.prevY = s.MouseY
}

// EndFrame clears per-frame values.
func (s *State) EndFrame() {
	s.Scroll = 0
	s.RightPressed = false
	s.RightReleased = false
}

// Axes returns the movement request along forward, right and up, each in [-FastMultiplier, FastMultiplier].
// Keyboard input owned by the UI yields zero.
func (s *State) Axes() (forward, right, up float32) {
	if s.CaptureKeyboard {
		return 0, 0, 0
	}
	forward = axis(s.Forward, s.Back)
	right = axis(s.Right, s.Left)
	up = axis(s.Up, s.Down)
	if s.Fast {
		forward *= FastMultiplier
		right *= FastMultiplier
		up *= FastMultiplier
	}
	return forward, right, up
}

// Drag returns the mouse delta while the right button is held outside the UI.
// The press frame reports no motion so the view does not jump.
func (s *State) Drag() (dx, dy float32, ok bool) {
	if s.CaptureMouse || !s.RightDown || s.RightPressed {
		return 0, 0, false
	}
	return s.MouseDeltaX, s.MouseDeltaY, true
}

// Wheel returns the scroll delta unless the UI owns the mouse.
func (s *State) Wheel() float32 {
	if s.CaptureMouse {
		return 0
	}
	return s.Scroll
}

func axis(pos, neg bool) float32 {
	var v float32
	if pos {
		v++
	}
	if neg {
		v--
	}
	return v
}
