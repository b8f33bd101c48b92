// Package nav holds the navigation history of the application: a stack of
// screen frames that is never empty.
package nav

// Params is the optional parameter bag carried by a frame.
type Params struct {
	ServiceOrderID string
	EquipmentID    string
}

// Frame is one entry in the navigation history.
type Frame struct {
	Screen Screen
	Params Params
}

// To builds a frame for screen with no parameters.
func To(s Screen) Frame {
	return Frame{Screen: s}
}

// ToOrder builds a frame for a screen that takes a service order id.
func ToOrder(s Screen, serviceOrderID string) Frame {
	return Frame{Screen: s, Params: Params{ServiceOrderID: serviceOrderID}}
}

// ToEquipment builds a frame for a screen that takes an equipment id.
func ToEquipment(s Screen, equipmentID string) Frame {
	return Frame{Screen: s, Params: Params{EquipmentID: equipmentID}}
}

// Stack is a LIFO history of frames. The bottom frame is the root and can
// never be popped, so Current is always defined.
type Stack struct {
	frames []Frame
}

// NewStack returns a stack holding only root.
func NewStack(root Frame) *Stack {
	return &Stack{frames: []Frame{root}}
}

// Push appends f. There is no deduplication and no depth limit.
func (s *Stack) Push(f Frame) {
	s.frames = append(s.frames, f)
}

// Pop removes the top frame and reports whether it did. At the root it is a
// no-op.
func (s *Stack) Pop() bool {
	if len(s.frames) <= 1 {
		return false
	}
	s.frames[len(s.frames)-1] = Frame{}
	s.frames = s.frames[:len(s.frames)-1]
	return true
}

// PopToRoot drops every frame above the root.
func (s *Stack) PopToRoot() {
	for s.Pop() {
	}
}

// Current returns the top frame.
func (s *Stack) Current() Frame {
	return s.frames[len(s.frames)-1]
}

// Root returns the bottom frame.
func (s *Stack) Root() Frame {
	return s.frames[0]
}

// Len returns the number of frames, always at least 1.
func (s *Stack) Len() int {
	return len(s.frames)
}

// Frames returns a copy of the history, bottom to top.
func (s *Stack) Frames() []Frame {
	out := make([]Frame, len(s.frames))
	copy(out, s.frames)
	return out
}
