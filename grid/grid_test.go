package grid_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/aoc2024/grid"
)

const wordSearch = `MMMSXXMASM
MSAMXMSMSA
AMXSXMAAMM
MSAMASMSMX
XMASAMXAMM
XXAMMXXAMA
SMSMSASXSS
SAXAMASAAA
MAMMMXMMMM
MXMXAXMASX`

// pts builds a ray from (row, col) pairs.
func pts(pairs ...[2]int) grid.Ray {
	out := make(grid.Ray, len(pairs))
	for i, p := range pairs {
		out[i] = grid.Point{Row: p[0], Col: p[1]}
	}

	return out
}

//----------------------------------------------------------------------------//
// Parse
//----------------------------------------------------------------------------//

func TestParse_Errors(t *testing.T) {
	cases := []struct {
		name string
		in   string
		err  error
	}{
		{"Empty", "", grid.ErrEmptyGrid},
		{"OnlyNewlines", "\n\n", grid.ErrEmptyGrid},
		{"EmptyFirstRow", "\nabc", grid.ErrEmptyGrid},
		{"Ragged", "abc\nab", grid.ErrNonRectangular},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := grid.Parse(tc.in)
			assert.ErrorIs(t, err, tc.err)
		})
	}
}

func TestParse_TrailingNewlineAndCRLF(t *testing.T) {
	g, err := grid.Parse("ab\r\ncd\r\n")
	require.NoError(t, err)
	assert.Equal(t, 2, g.Rows())
	assert.Equal(t, 2, g.Cols())
	assert.Equal(t, grid.Point{Row: 1, Col: 1}, g.Corner())
	assert.Equal(t, "ab\ncd", g.String())
}

func TestGrid_CloneIsDeep(t *testing.T) {
	g := grid.New(2, 3, '.')
	c := g.Clone()
	c.Set(grid.Point{Row: 1, Col: 2}, '#')
	assert.Equal(t, byte('.'), g.At(grid.Point{Row: 1, Col: 2}))
	assert.Equal(t, byte('#'), c.At(grid.Point{Row: 1, Col: 2}))
}

func TestGrid_CornerPanicsOnEmpty(t *testing.T) {
	assert.Panics(t, func() { grid.Grid{}.Corner() })
}

func TestGrid_InBounds(t *testing.T) {
	g := grid.New(2, 3, '.')
	for _, p := range []grid.Point{{0, 0}, {1, 2}, {0, 2}} {
		assert.True(t, g.InBounds(p), "InBounds(%v)", p)
	}
	for _, p := range []grid.Point{{-1, 0}, {2, 0}, {0, 3}, {0, -1}} {
		assert.False(t, g.InBounds(p), "InBounds(%v)", p)
	}
}

//----------------------------------------------------------------------------//
// Points and directions
//----------------------------------------------------------------------------//

func TestCompare(t *testing.T) {
	a := grid.Point{Row: 1, Col: 5}
	b := grid.Point{Row: 2, Col: 0}
	c := grid.Point{Row: 2, Col: 3}
	assert.Equal(t, -1, grid.Compare(a, b))
	assert.Equal(t, 1, grid.Compare(c, b))
	assert.Equal(t, 0, grid.Compare(c, c))
	assert.True(t, b.Less(c))
	assert.Equal(t, "(2,3)", c.String())
}

func TestDirection_RotationGroup(t *testing.T) {
	for _, d := range grid.Directions {
		r := d
		for i := 0; i < 8; i++ {
			r = r.RotateRight()
		}
		assert.Equal(t, d, r, "8×RotateRight(%v)", d)
		assert.Equal(t, d, d.RotateRight().RotateLeft(), "RotateLeft∘RotateRight(%v)", d)
		assert.Equal(t, d, d.RotateLeft().RotateRight(), "RotateRight∘RotateLeft(%v)", d)
		assert.Equal(t, d.Opposite(), d.RotateRight().RotateRight())
	}
}

func TestDirection_RotateRightTable(t *testing.T) {
	want := map[grid.Direction]grid.Direction{
		grid.N: grid.E, grid.NE: grid.SE, grid.E: grid.S, grid.SE: grid.SW,
		grid.S: grid.W, grid.SW: grid.NW, grid.W: grid.N, grid.NW: grid.NE,
	}
	for from, to := range want {
		assert.Equal(t, to, from.RotateRight(), "%v.RotateRight()", from)
		assert.Equal(t, from, to.RotateLeft(), "%v.RotateLeft()", to)
	}
}

func TestDirection_CardinalsAndNames(t *testing.T) {
	for _, d := range grid.Cardinals {
		assert.True(t, d.IsCardinal(), d.String())
	}
	assert.False(t, grid.NE.IsCardinal())
	assert.Equal(t, "SW", grid.SW.String())
	assert.Equal(t, "Direction(9)", grid.Direction(9).String())
}

//----------------------------------------------------------------------------//
// Rays
//----------------------------------------------------------------------------//

func TestRays_Corners(t *testing.T) {
	corner := grid.Point{Row: 3, Col: 3}
	cases := []struct {
		name   string
		origin grid.Point
		want   [8]grid.Ray
	}{
		{
			name:   "TopLeft",
			origin: grid.Point{Row: 0, Col: 0},
			want: [8]grid.Ray{
				pts([2]int{0, 0}),
				pts([2]int{0, 0}),
				pts([2]int{0, 0}, [2]int{0, 1}, [2]int{0, 2}, [2]int{0, 3}),
				pts([2]int{0, 0}, [2]int{1, 1}, [2]int{2, 2}, [2]int{3, 3}),
				pts([2]int{0, 0}, [2]int{1, 0}, [2]int{2, 0}, [2]int{3, 0}),
				pts([2]int{0, 0}),
				pts([2]int{0, 0}),
				pts([2]int{0, 0}),
			},
		},
		{
			name:   "BottomRight",
			origin: grid.Point{Row: 3, Col: 3},
			want: [8]grid.Ray{
				pts([2]int{3, 3}, [2]int{2, 3}, [2]int{1, 3}, [2]int{0, 3}),
				pts([2]int{3, 3}),
				pts([2]int{3, 3}),
				pts([2]int{3, 3}),
				pts([2]int{3, 3}),
				pts([2]int{3, 3}),
				pts([2]int{3, 3}, [2]int{3, 2}, [2]int{3, 1}, [2]int{3, 0}),
				pts([2]int{3, 3}, [2]int{2, 2}, [2]int{1, 1}, [2]int{0, 0}),
			},
		},
		{
			name:   "BottomLeft",
			origin: grid.Point{Row: 3, Col: 0},
			want: [8]grid.Ray{
				pts([2]int{3, 0}, [2]int{2, 0}, [2]int{1, 0}, [2]int{0, 0}),
				pts([2]int{3, 0}, [2]int{2, 1}, [2]int{1, 2}, [2]int{0, 3}),
				pts([2]int{3, 0}, [2]int{3, 1}, [2]int{3, 2}, [2]int{3, 3}),
				pts([2]int{3, 0}),
				pts([2]int{3, 0}),
				pts([2]int{3, 0}),
				pts([2]int{3, 0}),
				pts([2]int{3, 0}),
			},
		},
		{
			name:   "TopRight",
			origin: grid.Point{Row: 0, Col: 3},
			want: [8]grid.Ray{
				pts([2]int{0, 3}),
				pts([2]int{0, 3}),
				pts([2]int{0, 3}),
				pts([2]int{0, 3}),
				pts([2]int{0, 3}, [2]int{1, 3}, [2]int{2, 3}, [2]int{3, 3}),
				pts([2]int{0, 3}, [2]int{1, 2}, [2]int{2, 1}, [2]int{3, 0}),
				pts([2]int{0, 3}, [2]int{0, 2}, [2]int{0, 1}, [2]int{0, 0}),
				pts([2]int{0, 3}),
			},
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, grid.Rays(tc.origin, corner, 4))
		})
	}
}

func TestRays_ClippedMidway(t *testing.T) {
	// 3 steps available east, only 1 north.
	rays := grid.Rays(grid.Point{Row: 1, Col: 5}, grid.Point{Row: 9, Col: 8}, 6)
	assert.Len(t, rays[grid.N], 2)
	assert.Len(t, rays[grid.E], 4)
	assert.Len(t, rays[grid.NE], 2)
	assert.Len(t, rays[grid.S], 6)
	assert.Len(t, rays[grid.SE], 4)
}

func TestRays_LengthBeyondGrid(t *testing.T) {
	corner := grid.Point{Row: 2, Col: 2}
	rays := grid.Rays(grid.Point{}, corner, 1<<40)
	assert.Equal(t, pts([2]int{0, 0}, [2]int{0, 1}, [2]int{0, 2}), rays[grid.E])
	assert.Equal(t, pts([2]int{0, 0}, [2]int{1, 1}, [2]int{2, 2}), rays[grid.SE])
	assert.Equal(t, pts([2]int{0, 0}), rays[grid.N])
	for _, r := range rays {
		assert.LessOrEqual(t, cap(r), 3)
	}

	// Same clipping as an exact-fit length.
	assert.Equal(t, grid.Rays(grid.Point{Row: 1, Col: 1}, corner, 3), grid.Rays(grid.Point{Row: 1, Col: 1}, corner, 1<<40))
}

func TestRays_LengthOne(t *testing.T) {
	p := grid.Point{Row: 2, Col: 2}
	for d, r := range grid.Rays(p, grid.Point{Row: 4, Col: 4}, 1) {
		assert.Equal(t, grid.Ray{p}, r, "direction %v", grid.Direction(d))
	}
}

func TestRays_Preconditions(t *testing.T) {
	corner := grid.Point{Row: 3, Col: 3}
	assert.Panics(t, func() { grid.Rays(grid.Point{}, corner, 0) }, "zero length")
	assert.Panics(t, func() { grid.Rays(grid.Point{Row: 4, Col: 0}, corner, 2) }, "row past corner")
	assert.Panics(t, func() { grid.Rays(grid.Point{Row: 0, Col: -1}, corner, 2) }, "negative column")
}

func TestRaysWithDirections(t *testing.T) {
	res := grid.RaysWithDirections(grid.Point{Row: 3, Col: 2}, grid.Point{Row: 8, Col: 8}, 2)
	assert.Equal(t, grid.DirectedRay{Dir: grid.N, Ray: pts([2]int{3, 2}, [2]int{2, 2})}, res[0])
	for i, dr := range res {
		assert.Equal(t, grid.Directions[i], dr.Dir)
	}
}

// Cardinal rays from opposite ends of a segment are reverses of each other.
func TestRays_CardinalSymmetry(t *testing.T) {
	g, err := grid.Parse(wordSearch)
	require.NoError(t, err)
	corner := g.Corner()
	const L = 4
	for _, p := range []grid.Point{{3, 0}, {5, 5}, {9, 9}, {4, 7}} {
		north := grid.Rays(p, corner, L)[grid.N]
		require.Len(t, north, L, "N ray from %v must be in-bounds", p)
		south := grid.Rays(north[L-1], corner, L)[grid.S]
		require.Len(t, south, L)

		rev := make(grid.Ray, L)
		for i := range north {
			rev[L-1-i] = north[i]
		}
		assert.Equal(t, rev, south)
		assert.Equal(t, reverse(grid.Extract(g, north)), grid.Extract(g, south))
	}
}

func reverse(s string) string {
	b := []byte(s)
	for i, j := 0, len(b)-1; i < j; i, j = i+1, j-1 {
		b[i], b[j] = b[j], b[i]
	}

	return string(b)
}

func TestStep(t *testing.T) {
	corner := grid.Point{Row: 2, Col: 2}
	next, ok := grid.Step(grid.Point{Row: 0, Col: 0}, corner, grid.SE)
	assert.True(t, ok)
	assert.Equal(t, grid.Point{Row: 1, Col: 1}, next)
	_, ok = grid.Step(grid.Point{Row: 0, Col: 0}, corner, grid.N)
	assert.False(t, ok)
}

//----------------------------------------------------------------------------//
// Extract and Find
//----------------------------------------------------------------------------//

func TestExtract(t *testing.T) {
	g, err := grid.Parse(wordSearch)
	require.NoError(t, err)
	r := pts([2]int{0, 5}, [2]int{0, 6}, [2]int{0, 7}, [2]int{0, 8})
	assert.Equal(t, "XMAS", grid.Extract(g, r))
	assert.Equal(t, "", grid.Extract(g, nil))
}

func TestFind(t *testing.T) {
	g, err := grid.Parse(wordSearch)
	require.NoError(t, err)
	want := pts(
		[2]int{0, 4}, [2]int{0, 5}, [2]int{1, 4}, [2]int{2, 2}, [2]int{2, 4},
		[2]int{3, 9}, [2]int{4, 0}, [2]int{4, 6}, [2]int{5, 0}, [2]int{5, 1},
		[2]int{5, 5}, [2]int{5, 6}, [2]int{6, 7}, [2]int{7, 2}, [2]int{8, 5},
		[2]int{9, 1}, [2]int{9, 3}, [2]int{9, 5}, [2]int{9, 9},
	)
	assert.Equal(t, []grid.Point(want), grid.Find(g, 'X'))
	assert.Nil(t, grid.Find(g, 'Z'))

	p, ok := grid.FindOne(g, 'X')
	assert.True(t, ok)
	assert.Equal(t, grid.Point{Row: 0, Col: 4}, p)
	_, ok = grid.FindOne(g, 'Z')
	assert.False(t, ok)
}

// Find over every distinct byte covers each cell exactly once, and repeated
// calls agree.
func TestFind_PartitionsGrid(t *testing.T) {
	g, err := grid.Parse(wordSearch)
	require.NoError(t, err)

	seen := make(map[grid.Point]int)
	for _, v := range []byte("XMAS") {
		first := grid.Find(g, v)
		assert.Equal(t, first, grid.Find(g, v))
		for _, p := range first {
			seen[p]++
		}
	}
	assert.Len(t, seen, g.Rows()*g.Cols())
	for p, n := range seen {
		assert.Equal(t, 1, n, "cell %v", p)
	}
}

//----------------------------------------------------------------------------//
// Regions
//----------------------------------------------------------------------------//

func TestRegions(t *testing.T) {
	g, err := grid.Parse("AAAA\nBBCD\nBBCC\nEEEC")
	require.NoError(t, err)

	want := [][]grid.Point{
		pts([2]int{0, 0}, [2]int{0, 1}, [2]int{0, 2}, [2]int{0, 3}),
		pts([2]int{1, 0}, [2]int{1, 1}, [2]int{2, 0}, [2]int{2, 1}),
		pts([2]int{1, 2}, [2]int{2, 2}, [2]int{2, 3}, [2]int{3, 3}),
		pts([2]int{1, 3}),
		pts([2]int{3, 0}, [2]int{3, 1}, [2]int{3, 2}),
	}
	assert.Equal(t, want, grid.Regions(g))
}

func TestRegions_SameLabelDisjoint(t *testing.T) {
	g, err := grid.Parse("OOOOO\nOXOXO\nOOOOO")
	require.NoError(t, err)
	regions := grid.Regions(g)
	require.Len(t, regions, 3)
	assert.Len(t, regions[0], 13)
	assert.Equal(t, []grid.Point{{Row: 1, Col: 1}}, regions[1])
	assert.Equal(t, []grid.Point{{Row: 1, Col: 3}}, regions[2])
}

func TestRegions_Empty(t *testing.T) {
	assert.Nil(t, grid.Regions(nil))
}
