package main

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/plus3/inkball/geom"
	"github.com/plus3/inkball/inkball"
)

const strokeWidth = 10

var (
	backgroundColor = color.RGBA{205, 200, 190, 255}
	topBarColor     = color.RGBA{30, 30, 30, 255}
	inkColor        = color.RGBA{20, 20, 20, 255}
	holeColor       = color.RGBA{15, 15, 15, 255}
	spawnerColor    = color.RGBA{70, 70, 70, 255}
	markerColor     = color.RGBA{250, 215, 40, 255}
	textShadow      = color.RGBA{0, 0, 0, 255}
)

var palette = map[inkball.Color]color.RGBA{
	inkball.Grey:   {150, 150, 150, 255},
	inkball.Orange: {240, 140, 30, 255},
	inkball.Blue:   {50, 110, 230, 255},
	inkball.Green:  {50, 180, 70, 255},
	inkball.Yellow: {235, 210, 40, 255},
}

func colorOf(c inkball.Color) color.RGBA {
	if rgba, ok := palette[c]; ok {
		return rgba
	}
	return palette[inkball.Grey]
}

// darken scales the channels of c by f in [0, 1].
func darken(c color.RGBA, f float64) color.RGBA {
	return color.RGBA{uint8(float64(c.R) * f), uint8(float64(c.G) * f), uint8(float64(c.B) * f), c.A}
}

// screenPoint converts a play area point to float screen coordinates.
func screenPoint(p geom.Vec2) (float32, float32) {
	return float32(p.X), float32(p.Y) + TopBarHeight
}

func drawSession(screen *ebiten.Image, s *inkball.Session) {
	screen.Fill(backgroundColor)

	level := s.Level()
	drawLevel(screen, level)

	if c := s.Completion(); c != nil {
		for _, m := range c.Markers() {
			x, y := screenPoint(m.Position)
			vector.DrawFilledRect(screen, x, y, inkball.CellSize, inkball.CellSize, markerColor, false)
		}
	}

	drawTopBar(screen, s)
}

func drawLevel(screen *ebiten.Image, level *inkball.Level) {
	for _, sp := range level.Spawners() {
		x, y := screenPoint(sp.Position)
		vector.DrawFilledRect(screen, x+4, y+4, inkball.CellSize-8, inkball.CellSize-8, spawnerColor, false)
		vector.StrokeRect(screen, x+4, y+4, inkball.CellSize-8, inkball.CellSize-8, 2, inkColor, false)
	}

	for _, h := range level.Holes() {
		x, y := screenPoint(h.Center())
		vector.DrawFilledCircle(screen, x, y, inkball.AttractionRange, colorOf(h.Color), true)
		vector.DrawFilledCircle(screen, x, y, inkball.AttractionRange-6, holeColor, true)
	}

	for _, w := range level.Walls() {
		drawObstacle(screen, w)
	}
	for _, b := range level.Bricks() {
		drawObstacle(screen, b)
	}

	for _, st := range level.Strokes() {
		drawStroke(screen, st)
	}
	if st, ok := level.DrawingStroke(); ok {
		drawStroke(screen, st)
	}

	for _, b := range level.Balls() {
		x, y := screenPoint(b.Position)
		vector.DrawFilledCircle(screen, x, y, float32(b.Radius), colorOf(b.Color), true)
		vector.StrokeCircle(screen, x, y, float32(b.Radius), 1, darken(colorOf(b.Color), 0.6), true)
	}
}

func drawObstacle(screen *ebiten.Image, o inkball.Obstacle) {
	x, y := screenPoint(o.Position)
	fill := colorOf(o.Color)
	if o.Kind == inkball.Wall {
		fill = darken(fill, 0.8)
	}

	vector.DrawFilledRect(screen, x, y, inkball.CellSize, inkball.CellSize, fill, false)
	vector.StrokeRect(screen, x, y, inkball.CellSize, inkball.CellSize, 1, darken(fill, 0.5), false)

	if o.Kind == inkball.Brick {
		// One crack per hit taken.
		for i := 0; i < o.HitCount; i++ {
			off := float32(8 + i*8)
			vector.StrokeLine(screen, x+off, y, x+off-6, y+inkball.CellSize, 2, inkColor, true)
		}
	}
}

func drawStroke(screen *ebiten.Image, st inkball.Stroke) {
	if len(st.Points) == 1 {
		x, y := screenPoint(st.Points[0])
		vector.DrawFilledCircle(screen, x, y, strokeWidth/2, inkColor, true)
		return
	}
	for i := 1; i < len(st.Points); i++ {
		x0, y0 := screenPoint(st.Points[i-1])
		x1, y1 := screenPoint(st.Points[i])
		vector.StrokeLine(screen, x0, y0, x1, y1, strokeWidth, inkColor, true)
		vector.DrawFilledCircle(screen, x1, y1, strokeWidth/2, inkColor, true)
	}
}

func drawTopBar(screen *ebiten.Image, s *inkball.Session) {
	vector.DrawFilledRect(screen, 0, 0, ScreenWidth, TopBarHeight, topBarColor, false)

	// Upcoming balls, next one first.
	const slot = 28
	vector.DrawFilledRect(screen, 8, 16, slot*inkball.UpcomingPreview+8, slot+4, textShadow, false)
	for i, c := range s.Upcoming() {
		cx := float32(8 + 4 + slot/2 + i*slot)
		vector.DrawFilledCircle(screen, cx, 16+2+slot/2, inkball.BallRadius, colorOf(c), true)
	}

	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("%.1f", s.Countdown()), 8+slot*inkball.UpcomingPreview+16, 24)
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("Score: %d", s.Score()), ScreenWidth-120, 12)
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("Time: %d", s.TimeRemaining()), ScreenWidth-120, 36)
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("Level %d/%d", s.LevelIndex()+1, s.LevelCount()), ScreenWidth/2-30, 12)

	if msg := s.Message(); msg != "" {
		ebitenutil.DebugPrintAt(screen, msg, ScreenWidth/2-len(msg)*3, 36)
	}
}
