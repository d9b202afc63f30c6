package grid

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for grid construction.
var (
	// ErrEmptyGrid indicates input with no rows or no columns.
	ErrEmptyGrid = errors.New("grid: input grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("grid: all rows must have the same length")
)

// Point is a zero-based (Row, Col) coordinate. Points are values and are
// safe to use as map keys.
type Point struct {
	Row, Col int
}

// Compare orders points lexicographically by row, then column.
// It returns -1, 0 or +1.
func Compare(a, b Point) int {
	switch {
	case a.Row < b.Row:
		return -1
	case a.Row > b.Row:
		return 1
	case a.Col < b.Col:
		return -1
	case a.Col > b.Col:
		return 1
	}

	return 0
}

// Less reports whether p sorts before q.
func (p Point) Less(q Point) bool { return Compare(p, q) < 0 }

// Add returns p moved by (dRow, dCol).
func (p Point) Add(dRow, dCol int) Point {
	return Point{Row: p.Row + dRow, Col: p.Col + dCol}
}

// String renders p as "(row,col)".
func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
}

// Direction is one of the eight compass directions. The numeric order
// N, NE, E, SE, S, SW, W, NW is the order rays are produced in.
type Direction uint8

const (
	N Direction = iota
	NE
	E
	SE
	S
	SW
	W
	NW
)

const directionCount = 8

var (
	// Directions lists all eight directions in enumeration order.
	Directions = [directionCount]Direction{N, NE, E, SE, S, SW, W, NW}
	// Cardinals lists the four orthogonal directions, clockwise from N.
	Cardinals = [4]Direction{N, E, S, W}
)

var directionNames = [directionCount]string{"N", "NE", "E", "SE", "S", "SW", "W", "NW"}

// row/col deltas, indexed by Direction.
var directionDeltas = [directionCount][2]int{
	{-1, 0}, {-1, 1}, {0, 1}, {1, 1}, {1, 0}, {1, -1}, {0, -1}, {-1, -1},
}

// RotateRight turns 90° clockwise.
func (d Direction) RotateRight() Direction {
	return (d + 2) % directionCount
}

// RotateLeft turns 90° counter-clockwise. It is the inverse of RotateRight.
func (d Direction) RotateLeft() Direction {
	return (d + directionCount - 2) % directionCount
}

// Opposite turns 180°.
func (d Direction) Opposite() Direction {
	return (d + 4) % directionCount
}

// IsCardinal reports whether d is one of N, E, S, W.
func (d Direction) IsCardinal() bool { return d%2 == 0 }

// Delta returns the row and column step of a single move in direction d.
func (d Direction) Delta() (dRow, dCol int) {
	v := directionDeltas[d%directionCount]
	return v[0], v[1]
}

func (d Direction) String() string {
	if d >= directionCount {
		return fmt.Sprintf("Direction(%d)", uint8(d))
	}
	return directionNames[d]
}

// Grid is a rectangular, row-major matrix of cell bytes. A Grid is treated
// as read-only by every function in this module except Set.
type Grid [][]byte

// Ray is an ordered sequence of in-bounds points starting at its origin.
type Ray []Point

// DirectedRay pairs a ray with the direction it was cast in.
type DirectedRay struct {
	Dir Direction
	Ray Ray
}

// New returns a rows×cols grid filled with fill.
func New(rows, cols int, fill byte) Grid {
	g := make(Grid, rows)
	for r := range g {
		g[r] = make([]byte, cols)
		for c := range g[r] {
			g[r][c] = fill
		}
	}

	return g
}

// Parse builds a Grid from newline separated text. A trailing newline and
// Windows line endings are tolerated.
// Returns ErrEmptyGrid if there is no row or no column and
// ErrNonRectangular if any row length differs from the first.
func Parse(data string) (Grid, error) {
	data = strings.ReplaceAll(data, "\r\n", "\n")
	data = strings.TrimRight(data, "\n")
	if data == "" {
		return nil, ErrEmptyGrid
	}
	lines := strings.Split(data, "\n")
	w := len(lines[0])
	if w == 0 {
		return nil, ErrEmptyGrid
	}
	g := make(Grid, len(lines))
	for r, line := range lines {
		if len(line) != w {
			return nil, fmt.Errorf("%w: row %d has %d columns, want %d", ErrNonRectangular, r, len(line), w)
		}
		g[r] = []byte(line)
	}

	return g, nil
}

// Rows returns the number of rows.
func (g Grid) Rows() int { return len(g) }

// Cols returns the number of columns, or 0 for an empty grid.
func (g Grid) Cols() int {
	if len(g) == 0 {
		return 0
	}
	return len(g[0])
}

// Corner returns the bottom-right point, the inclusive bound for Rays.
// It panics on an empty grid.
func (g Grid) Corner() Point {
	if g.Rows() == 0 || g.Cols() == 0 {
		panic(ErrEmptyGrid.Error())
	}
	return Point{Row: g.Rows() - 1, Col: g.Cols() - 1}
}

// InBounds reports whether p lies inside g.
func (g Grid) InBounds(p Point) bool {
	return p.Row >= 0 && p.Row < g.Rows() && p.Col >= 0 && p.Col < g.Cols()
}

// At returns the cell at p. It panics if p is out of bounds.
func (g Grid) At(p Point) byte { return g[p.Row][p.Col] }

// Set overwrites the cell at p.
func (g Grid) Set(p Point, v byte) { g[p.Row][p.Col] = v }

// Clone returns a deep copy of g.
func (g Grid) Clone() Grid {
	out := make(Grid, len(g))
	for r := range g {
		out[r] = make([]byte, len(g[r]))
		copy(out[r], g[r])
	}

	return out
}

// String renders g back to newline separated text without a trailing newline.
func (g Grid) String() string {
	var sb strings.Builder
	for r, row := range g {
		if r > 0 {
			sb.WriteByte('\n')
		}
		sb.Write(row)
	}

	return sb.String()
}
