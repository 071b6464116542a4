package main

import (
	"image/color"
	"testing"

	"github.com/plus3/inkball/geom"
	"github.com/plus3/inkball/inkball"
	"github.com/stretchr/testify/assert"
)

func TestBoardPoint(t *testing.T) {
	p, ok := boardPoint(100, TopBarHeight+50)
	assert.True(t, ok)
	assert.Equal(t, geom.V(100, 50), p)

	_, ok = boardPoint(100, TopBarHeight-1)
	assert.False(t, ok)
}

func TestColorOf(t *testing.T) {
	assert.Equal(t, palette[inkball.Blue], colorOf(inkball.Blue))
	assert.Equal(t, palette[inkball.Grey], colorOf(inkball.ColorInvalid))
	assert.Len(t, palette, len(inkball.Colors()))
}

func TestDarken(t *testing.T) {
	assert.Equal(t, color.RGBA{50, 100, 0, 255}, darken(color.RGBA{100, 200, 0, 255}, 0.5))
}
