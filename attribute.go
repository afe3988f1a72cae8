package avada

// AttributeMask represents a bitmask of boolean attributes to style a cell
type AttributeMask uint8

const (
	AttrNone               = 0
	AttrBold AttributeMask = 1 << (iota - 1)
	AttrItalic
	AttrUnderline
)

func (a AttributeMask) String() string {
	if a == AttrNone {
		return "none"
	}
	s := ""
	if a&AttrBold != 0 {
		s += "bold|"
	}
	if a&AttrItalic != 0 {
		s += "italic|"
	}
	if a&AttrUnderline != 0 {
		s += "underline|"
	}
	if s == "" {
		return "none"
	}
	return s[:len(s)-1]
}
