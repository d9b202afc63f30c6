package grid

import "golang.org/x/exp/slices"

// Regions splits g into maximal 4-connected groups of cells holding the same
// byte. Regions are ordered by their first cell in row-major order and the
// points of each region are sorted with Compare.
//
// Neighbours are taken from the cardinal rays of length 2, so the boundary
// clipping rule is the one Rays applies everywhere else.
//
// Time:   O(W·H·4).
// Memory: O(W·H) for seen flags and output.
func Regions(g Grid) [][]Point {
	if g.Rows() == 0 || g.Cols() == 0 {
		return nil
	}
	corner := g.Corner()
	seen := make([][]bool, g.Rows())
	for r := range seen {
		seen[r] = make([]bool, g.Cols())
	}

	var regions [][]Point
	for r := 0; r < g.Rows(); r++ {
		for c := 0; c < g.Cols(); c++ {
			if seen[r][c] {
				continue
			}
			start := Point{Row: r, Col: c}
			label := g.At(start)
			// BFS to collect region
			queue := []Point{start}
			seen[r][c] = true
			for qi := 0; qi < len(queue); qi++ {
				u := queue[qi]
				rays := Rays(u, corner, 2)
				for _, d := range Cardinals {
					ray := rays[d]
					if len(ray) < 2 {
						continue
					}
					v := ray[1]
					if seen[v.Row][v.Col] || g.At(v) != label {
						continue
					}
					seen[v.Row][v.Col] = true
					queue = append(queue, v)
				}
			}
			slices.SortFunc(queue, Compare)
			regions = append(regions, queue)
		}
	}

	return regions
}
