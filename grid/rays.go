package grid

import "fmt"

// Rays casts one ray per compass direction from p, in the order
// N, NE, E, SE, S, SW, W, NW. Each ray starts at p and holds at most length
// points; it is cut short where the next step would leave [0, corner].
//
// Rays panics if length < 1 or if p does not lie within [0, corner]: both
// are caller bugs, not data conditions.
//
// Complexity: O(8·length) time and memory.
func Rays(p, corner Point, length int) [directionCount]Ray {
	checkRayArgs(p, corner, length)

	var out [directionCount]Ray
	for _, d := range Directions {
		out[d] = cast(p, corner, d, length)
	}

	return out
}

// RaysWithDirections is Rays with each ray tagged by its direction.
func RaysWithDirections(p, corner Point, length int) [directionCount]DirectedRay {
	rays := Rays(p, corner, length)

	var out [directionCount]DirectedRay
	for _, d := range Directions {
		out[d] = DirectedRay{Dir: d, Ray: rays[d]}
	}

	return out
}

// Step returns the neighbour of p in direction d and whether it lies within
// [0, corner].
func Step(p, corner Point, d Direction) (Point, bool) {
	dr, dc := d.Delta()
	next := p.Add(dr, dc)

	return next, withinCorner(next, corner)
}

// Extract concatenates the cells of g along r, in ray order.
// Points are not re-validated; a ray cast against a different corner is a
// caller error.
func Extract(g Grid, r Ray) string {
	buf := make([]byte, len(r))
	for i, p := range r {
		buf[i] = g[p.Row][p.Col]
	}

	return string(buf)
}

// Find returns every point whose cell equals v, in row-major order.
// The result is nil when v does not occur.
func Find(g Grid, v byte) []Point {
	var out []Point
	for r, row := range g {
		for c, cell := range row {
			if cell == v {
				out = append(out, Point{Row: r, Col: c})
			}
		}
	}

	return out
}

// FindOne returns the first point (row-major) whose cell equals v.
func FindOne(g Grid, v byte) (Point, bool) {
	for r, row := range g {
		for c, cell := range row {
			if cell == v {
				return Point{Row: r, Col: c}, true
			}
		}
	}

	return Point{}, false
}

func cast(p, corner Point, d Direction, length int) Ray {
	// No ray is longer than the grid's longer side.
	ray := make(Ray, 1, min(length, max(corner.Row, corner.Col)+1))
	ray[0] = p
	dr, dc := d.Delta()
	cur := p
	for i := 1; i < length; i++ {
		cur = cur.Add(dr, dc)
		if !withinCorner(cur, corner) {
			break
		}
		ray = append(ray, cur)
	}

	return ray
}

func withinCorner(p, corner Point) bool {
	return p.Row >= 0 && p.Col >= 0 && p.Row <= corner.Row && p.Col <= corner.Col
}

func checkRayArgs(p, corner Point, length int) {
	if length < 1 {
		panic(fmt.Sprintf("grid: ray length must be at least 1, got %d", length))
	}
	if corner.Row < 0 || corner.Col < 0 {
		panic(fmt.Sprintf("grid: corner %v is negative", corner))
	}
	if !withinCorner(p, corner) {
		panic(fmt.Sprintf("grid: point %v outside grid bounded by %v", p, corner))
	}
}
