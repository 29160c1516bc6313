package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseHexColor(t *testing.T) {
	tests := []struct {
		hex     string
		r, g, b uint8
		wantErr bool
	}{
		{hex: "#3DC23F", r: 0x3D, g: 0xC2, b: 0x3F},
		{hex: "#bbb", r: 0xbb, g: 0xbb, b: 0xbb},
		{hex: "fff", r: 0xff, g: 0xff, b: 0xff},
		{hex: "#96a2aa80", r: 0x96, g: 0xa2, b: 0xaa},
		{hex: "#12", wantErr: true},
		{hex: "#zzzzzz", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.hex, func(t *testing.T) {
			r, g, b, err := ParseHexColor(tt.hex)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, []uint8{tt.r, tt.g, tt.b}, []uint8{r, g, b})
		})
	}
}

func TestHexForeground(t *testing.T) {
	assert.Equal(t, "\033[38;2;61;194;63m", HexForeground("#3DC23F"))
	assert.Empty(t, HexForeground("nope"))
}

func TestPadRight(t *testing.T) {
	assert.Equal(t, "ab  ", PadRight("ab", 4))
	assert.Equal(t, "日本 ", PadRight("日本", 5))
	assert.Equal(t, "abcdef", PadRight("abcdef", 3))
	assert.Equal(t, 4, GetDisplayWidth("日本"))
}
