package scoring

// pointInPolygon reports whether p falls inside poly using the even-odd
// ray-casting rule: walk the edges and toggle the inside flag each time a
// horizontal ray from p crosses one. Polygons with fewer than 3 vertices
// contain no point.
//
// Points exactly on an edge inherit ray casting's boundary ambiguity and
// may land on either side; that is intentional and left undefined rather
// than patched with a tie-break.
func pointInPolygon(p Point, poly []Point) bool {
	if len(poly) < 3 {
		return false
	}
	inside := false
	j := len(poly) - 1
	for i := 0; i < len(poly); i++ {
		a, b := poly[i], poly[j]
		if (a.Y > p.Y) != (b.Y > p.Y) {
			span := b.Y - a.Y
			if span == 0 {
				// degenerate horizontal edge; avoid dividing by zero
				span = 1e-12
			}
			crossX := (b.X-a.X)*(p.Y-a.Y)/span + a.X
			if p.X < crossX {
				inside = !inside
			}
		}
		j = i
	}
	return inside
}
