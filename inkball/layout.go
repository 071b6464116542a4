package inkball

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/plus3/inkball/geom"
)

// Tile is a colored entity placed on the layout grid at the top-left corner of its cell.
type Tile struct {
	Position geom.Vec2
	Color    Color
}

// Layout is the parsed form of a level grid.
type Layout struct {
	Cols, Rows int
	Walls      []Tile
	Bricks     []Tile
	Holes      []Tile
	Balls      []Tile
	Spawners   []geom.Vec2
}

// Size returns the play area covered by the grid, or the default board when the grid is empty.
func (l *Layout) Size() geom.Vec2 {
	if l == nil || l.Cols == 0 || l.Rows == 0 {
		return geom.V(BoardWidth, BoardHeight)
	}
	return geom.V(float64(l.Cols*CellSize), float64(l.Rows*CellSize))
}

// ParseLayout reads a level grid, one character per cell:
//
//	X      wall
//	1-4    colored wall
//	H<d>   hole of color d
//	B<d>   ball of color d
//	E<d>   brick of color d
//	S      spawner
//
// Anything else, including H, B or E without a valid color digit, is skipped.
func ParseLayout(r io.Reader) (*Layout, error) {
	layout := &Layout{}
	scanner := bufio.NewScanner(r)

	row := 0
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r")
		layout.parseRow(row, line)
		layout.Cols = max(layout.Cols, len(line))
		row++
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading layout: %w", err)
	}

	layout.Rows = row
	return layout, nil
}

func (l *Layout) parseRow(row int, line string) {
	for col := 0; col < len(line); col++ {
		pos := geom.V(float64(col*CellSize), float64(row*CellSize))

		switch tile := line[col]; tile {
		case 'X':
			l.Walls = append(l.Walls, Tile{Position: pos, Color: Grey})
		case '1', '2', '3', '4':
			color, _ := colorFromDigit(tile)
			l.Walls = append(l.Walls, Tile{Position: pos, Color: color})
		case 'S':
			l.Spawners = append(l.Spawners, pos)
		case 'H', 'B', 'E':
			if col+1 >= len(line) {
				continue
			}
			color, ok := colorFromDigit(line[col+1])
			if !ok {
				continue
			}
			col++

			t := Tile{Position: pos, Color: color}
			switch tile {
			case 'H':
				l.Holes = append(l.Holes, t)
			case 'B':
				l.Balls = append(l.Balls, t)
			case 'E':
				l.Bricks = append(l.Bricks, t)
			}
		}
	}
}
