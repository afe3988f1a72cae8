package avada

import "fmt"

// Mouse is a mouse event. Col and Row are 0-based
type Mouse struct {
	Col  int
	Row  int
	Data MouseData
}

// MouseData is what happened at the mouse position. It is one of MouseMove,
// MouseButtonEvent or MouseScroll
type MouseData interface {
	isMouseData()
}

// MouseMove is a motion report, with or without a button held
type MouseMove struct{}

// MouseButtonEvent is a button press or release
type MouseButtonEvent struct {
	Button MouseButton
	State  ButtonState
}

// MouseScroll is a wheel event
type MouseScroll struct {
	Direction ScrollDirection
}

func (MouseMove) isMouseData()        {}
func (MouseButtonEvent) isMouseData() {}
func (MouseScroll) isMouseData()      {}

// MouseButton represents a mouse button
type MouseButton int

const (
	MouseLeftButton MouseButton = iota
	MouseMiddleButton
	MouseRightButton
)

func (b MouseButton) String() string {
	switch b {
	case MouseLeftButton:
		return "left"
	case MouseMiddleButton:
		return "middle"
	case MouseRightButton:
		return "right"
	default:
		return fmt.Sprintf("button(%d)", int(b))
	}
}

type ButtonState int

const (
	ButtonPressed ButtonState = iota
	ButtonReleased
)

func (s ButtonState) String() string {
	switch s {
	case ButtonPressed:
		return "pressed"
	case ButtonReleased:
		return "released"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

type ScrollDirection int

const (
	ScrollUp ScrollDirection = iota
	ScrollDown
)

func (d ScrollDirection) String() string {
	switch d {
	case ScrollUp:
		return "up"
	case ScrollDown:
		return "down"
	default:
		return fmt.Sprintf("scroll(%d)", int(d))
	}
}

func (m Mouse) String() string {
	switch data := m.Data.(type) {
	case MouseMove:
		return fmt.Sprintf("(%d, %d) [move]", m.Col, m.Row)
	case MouseButtonEvent:
		return fmt.Sprintf("(%d, %d) [%s %s]", m.Col, m.Row, data.Button, data.State)
	case MouseScroll:
		return fmt.Sprintf("(%d, %d) [scroll %s]", m.Col, m.Row, data.Direction)
	default:
		panic(fmt.Sprintf("avada: unknown mouse data %T", data))
	}
}

const (
	buttonBits   = 0b00000011
	motionMin    = 32
	wheelMin     = 64
	maxMouseDigs = 6
)

// parseMouse parses an SGR mouse report: ESC [ < cb ; cx ; cy (M|m). Bytes
// after the final character are ignored. ok is false for anything which
// doesn't follow the grammar or carries an unknown button
func parseMouse(b []byte) (Mouse, bool) {
	if len(b) < 3 || b[0] != 0x1B || b[1] != '[' || b[2] != '<' {
		return Mouse{}, false
	}
	i := 3
	cb, i, ok := parseDecimal(b, i)
	if !ok || i >= len(b) || b[i] != ';' {
		return Mouse{}, false
	}
	cx, i, ok := parseDecimal(b, i+1)
	if !ok || i >= len(b) || b[i] != ';' {
		return Mouse{}, false
	}
	cy, i, ok := parseDecimal(b, i+1)
	if !ok || i >= len(b) || (b[i] != 'M' && b[i] != 'm') {
		return Mouse{}, false
	}

	mouse := Mouse{
		Col: cx - 1,
		Row: cy - 1,
	}
	switch {
	case cb < motionMin:
		state := ButtonPressed
		if b[i] == 'm' {
			state = ButtonReleased
		}
		switch cb & buttonBits {
		case 0:
			mouse.Data = MouseButtonEvent{Button: MouseLeftButton, State: state}
		case 1:
			mouse.Data = MouseButtonEvent{Button: MouseMiddleButton, State: state}
		case 2:
			mouse.Data = MouseButtonEvent{Button: MouseRightButton, State: state}
		default:
			return Mouse{}, false
		}
	case cb >= wheelMin:
		switch cb {
		case 64:
			mouse.Data = MouseScroll{Direction: ScrollUp}
		case 65:
			mouse.Data = MouseScroll{Direction: ScrollDown}
		default:
			return Mouse{}, false
		}
	default:
		mouse.Data = MouseMove{}
	}
	return mouse, true
}

// parseDecimal reads the digits starting at b[i]. At least one digit is
// required
func parseDecimal(b []byte, i int) (n int, next int, ok bool) {
	start := i
	for i < len(b) && b[i] >= '0' && b[i] <= '9' {
		if i-start == maxMouseDigs {
			return 0, i, false
		}
		n = n*10 + int(b[i]-'0')
		i += 1
	}
	return n, i, i > start
}
