package terminal

import (
	"bytes"
	"image"
	"image/color"
	"image/draw"
	"strings"
	"testing"

	"github.com/penwyp/go-linechart/internal/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBlitSplitsCellsVertically(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	draw.Draw(img, image.Rect(0, 0, 4, 2), image.NewUniform(color.RGBA{R: 255, A: 255}), image.Point{}, draw.Src)
	draw.Draw(img, image.Rect(0, 2, 4, 4), image.NewUniform(color.RGBA{B: 255, A: 255}), image.Point{}, draw.Src)

	lines := Blit(img, 2, 1, BlitOptions{})
	require.Len(t, lines, 1)

	want := util.Foreground(255, 0, 0) + util.Background(0, 0, 255) + HalfBlock + HalfBlock + util.ColorReset
	assert.Equal(t, want, lines[0])
}

func TestBlitCompositesOverBackground(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 2, 2))

	lines := Blit(img, 1, 1, BlitOptions{Background: color.RGBA{R: 16, G: 32, B: 48, A: 255}})
	require.Len(t, lines, 1)
	assert.True(t, strings.HasPrefix(lines[0], util.Foreground(16, 32, 48)+util.Background(16, 32, 48)))
}

func TestBlitDimsColumns(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 2, 2))
	draw.Draw(img, img.Bounds(), image.NewUniform(color.RGBA{R: 200, G: 100, B: 50, A: 255}), image.Point{}, draw.Src)

	lines := Blit(img, 2, 1, BlitOptions{Dim: func(col int) bool { return col == 0 }})
	require.Len(t, lines, 1)

	want := util.Foreground(100, 50, 25) + util.Background(100, 50, 25) + HalfBlock +
		util.Foreground(200, 100, 50) + util.Background(200, 100, 50) + HalfBlock + util.ColorReset
	assert.Equal(t, want, lines[0])
}

func TestBlitEmptyTarget(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 2, 2))
	assert.Nil(t, Blit(img, 0, 3, BlitOptions{}))
	assert.Nil(t, Blit(img, 3, 0, BlitOptions{}))
}

func TestBlitUpscales(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 1, 1))
	lines := Blit(img, 3, 2, BlitOptions{})
	require.Len(t, lines, 2)
	assert.Equal(t, 3, strings.Count(lines[1], HalfBlock))
}

func TestScreenDraw(t *testing.T) {
	var buf bytes.Buffer
	s := NewScreen(&buf)

	s.Draw(3, 5, []string{"ab", "cd"})
	assert.Empty(t, buf.String())
	require.NoError(t, s.Flush())
	assert.Equal(t, util.MoveCursor(3, 5)+"ab"+util.MoveCursor(4, 5)+"cd", buf.String())
}

func TestScreenEnterExit(t *testing.T) {
	var buf bytes.Buffer
	s := NewScreen(&buf)

	require.NoError(t, s.Exit())
	assert.Empty(t, buf.String())

	require.NoError(t, s.Enter())
	require.NoError(t, s.Enter())
	assert.Equal(t, 1, strings.Count(buf.String(), util.EnterAltScreen))
	assert.Contains(t, buf.String(), util.EnableMouseTracking)

	require.NoError(t, s.Exit())
	assert.Contains(t, buf.String(), util.DisableMouseTracking)
	assert.True(t, strings.HasSuffix(buf.String(), util.ExitAltScreen))
}
