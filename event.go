package avada

// Event is an input event delivered by Terminal.Poll or produced by Decode. It
// is one of Resize, Idle, Key or Mouse; switch over all four when consuming
// one
type Event interface {
	isEvent()
}

// Resize is delivered whenever a window size change is detected (via
// SIGWINCH)
type Resize struct {
	Cols int
	Rows int
}

// Idle is delivered when a poll timed out with no input
type Idle struct{}

func (Resize) isEvent() {}
func (Idle) isEvent()   {}
func (Key) isEvent()    {}
func (Mouse) isEvent()  {}
