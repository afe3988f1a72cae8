package avada

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGraphemeWidth(t *testing.T) {
	tests := []struct {
		name         string
		input        string
		unicodeWidth int
		wcwidthWidth int
		noZWJWidth   int
	}{
		{
			name:         "a",
			input:        "a",
			unicodeWidth: 1,
			wcwidthWidth: 1,
			noZWJWidth:   1,
		},
		{
			name:         "emoji with ZWJ",
			input:        "\U0001F469\u200D\U0001F680",
			unicodeWidth: 2,
			wcwidthWidth: 4,
			noZWJWidth:   4,
		},
		{
			name:         "emoji with VS16 selector",
			input:        "\u2764\uFE0F",
			unicodeWidth: 2,
			wcwidthWidth: 1,
			noZWJWidth:   2,
		},
		{
			name:         "emoji with skintone selector",
			input:        "\U0001F44B\U0001F3FF",
			unicodeWidth: 2,
			wcwidthWidth: 4,
			noZWJWidth:   2,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			assert.Equal(t, test.unicodeWidth, gwidth(test.input, unicodeStd))
			assert.Equal(t, test.wcwidthWidth, gwidth(test.input, wcwidth))
			assert.Equal(t, test.noZWJWidth, gwidth(test.input, noZWJ))
		})
	}
}

func TestStringWidth(t *testing.T) {
	assert.Equal(t, 5, StringWidth("hello"))
	assert.Equal(t, 4, StringWidth("日本"))
}
