// Package grid is the geometry half of the puzzle toolkit: points, compass
// directions and rectangular byte grids, plus ray casting over them.
//
// What:
//
//   - Rays casts the eight compass rays of a given length from a point,
//     clipped to the grid's bottom-right corner.
//   - Extract reads the bytes under a ray, so a ray can be matched against a
//     literal word.
//   - Find and FindOne locate cells by value in row-major order.
//   - Regions groups 4-connected cells of equal value.
//
// Why:
//
//   - Word searches need all eight directions; maze and flood-fill code needs
//     only the four cardinals. Casting all eight uniformly keeps the boundary
//     clipping in one place.
//
// Ray layout for Rays(p, corner, 3) with p in the middle of a 5×5 grid:
//
//	NW .  N  .  NE
//	.  NW N  NE .
//	W  W  p  E  E
//	.  SW S  SE .
//	SW .  S  .  SE
//
// Complexity:
//
//   - Rays:    O(8·length)
//   - Extract: O(len(ray))
//   - Find:    O(W·H)
//   - Regions: O(W·H)
//
// Errors:
//
//   - ErrEmptyGrid: Parse got no rows or no columns.
//   - ErrNonRectangular: Parse got rows of differing lengths.
//
// Rays panics on a zero length or an origin outside the grid.
//
// Every function here is pure with respect to its Grid argument, so one Grid
// may be shared by any number of goroutines as long as nobody calls Set.
package grid
