package avada

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKey(t *testing.T) {
	tests := []struct {
		name string
		key  Key
	}{
		{
			name: "j",
			key:  Key{Codepoint: 'j'},
		},
		{
			name: "J",
			key:  Key{Codepoint: 'J'},
		},
		{
			name: "<c-@>",
			key:  Key{Codepoint: 0x00},
		},
		{
			name: "<c-a>",
			key:  Key{Codepoint: 0x01},
		},
		{
			name: "<c-a>",
			key:  Key{Codepoint: 'a', Modifiers: ModCtrl},
		},
		{
			name: "<a-a>",
			key:  Key{Codepoint: 'a', Modifiers: ModAlt},
		},
		{
			name: "<a-s-x>",
			key:  Key{Codepoint: 'X', Modifiers: ModAlt | ModShift},
		},
		{
			name: "<f1>",
			key:  Key{Codepoint: KeyF01},
		},
		{
			name: "<s-f1>",
			key:  Key{Codepoint: KeyF01, Modifiers: ModShift},
		},
		{
			name: "<c-a-s-up>",
			key:  Key{Codepoint: KeyUp, Modifiers: ModCtrl | ModAlt | ModShift},
		},
		{
			name: "<s-tab>",
			key:  Key{Codepoint: KeyTab, Modifiers: ModShift},
		},
		{
			name: "<esc>",
			key:  Key{Codepoint: KeyEsc},
		},
		{
			name: "<space>",
			key:  Key{Codepoint: KeySpace},
		},
		{
			name: "<bs>",
			key:  Key{Codepoint: KeyBackspace},
		},
		{
			name: "<invalid>",
			key:  Key{Codepoint: -1},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			actual := test.key.String()
			assert.Equal(t, test.name, actual)
		})
	}
}

func TestKeyMatches(t *testing.T) {
	key := Key{Codepoint: 'c', Modifiers: ModCtrl}
	assert.True(t, key.Matches('c', ModCtrl))
	assert.False(t, key.Matches('c'))
	assert.False(t, key.Matches('c', ModCtrl, ModShift))

	up := Key{Codepoint: KeyUp, Modifiers: ModAlt | ModShift}
	assert.True(t, up.Matches(KeyUp, ModShift, ModAlt))
}

func TestMouseString(t *testing.T) {
	tests := []struct {
		name  string
		mouse Mouse
	}{
		{
			name:  "(1, 2) [move]",
			mouse: Mouse{Col: 1, Row: 2, Data: MouseMove{}},
		},
		{
			name:  "(0, 0) [left pressed]",
			mouse: Mouse{Data: MouseButtonEvent{Button: MouseLeftButton, State: ButtonPressed}},
		},
		{
			name:  "(3, 4) [right released]",
			mouse: Mouse{Col: 3, Row: 4, Data: MouseButtonEvent{Button: MouseRightButton, State: ButtonReleased}},
		},
		{
			name:  "(5, 6) [scroll down]",
			mouse: Mouse{Col: 5, Row: 6, Data: MouseScroll{Direction: ScrollDown}},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			assert.Equal(t, test.name, test.mouse.String())
		})
	}
}
