package scoring

import "testing"

func TestPointInPolygon_Square(t *testing.T) {
	square := []Point{{0, 0}, {0.5, 0}, {0.5, 0.5}, {0, 0.5}}

	tests := []struct {
		name string
		p    Point
		want bool
	}{
		{"center inside", Point{0.25, 0.25}, true},
		{"outside both axes", Point{0.75, 0.75}, false},
		{"outside x only", Point{0.75, 0.25}, false},
		{"outside y only", Point{0.25, 0.75}, false},
		{"near inner corner", Point{0.49, 0.49}, true},
		{"just past edge", Point{0.51, 0.25}, false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := pointInPolygon(tc.p, square); got != tc.want {
				t.Fatalf("pointInPolygon(%v)=%v, want %v", tc.p, got, tc.want)
			}
		})
	}
}

func TestPointInPolygon_Triangle(t *testing.T) {
	tri := []Point{{0, 0}, {1, 0}, {0.5, 1}}
	if !pointInPolygon(Point{0.5, 0.4}, tri) {
		t.Fatal("expected centroid-ish point inside triangle")
	}
	if pointInPolygon(Point{0.05, 0.9}, tri) {
		t.Fatal("expected corner-adjacent exterior point outside triangle")
	}
}

func TestPointInPolygon_Degenerate(t *testing.T) {
	// fewer than 3 vertices contains nothing
	if pointInPolygon(Point{0.5, 0.5}, nil) {
		t.Fatal("nil polygon must contain no point")
	}
	if pointInPolygon(Point{0.5, 0.5}, []Point{{0, 0}, {1, 1}}) {
		t.Fatal("2-vertex polygon must contain no point")
	}
	// repeated vertices give zero-length edges; must not divide by zero
	degenerate := []Point{{0, 0}, {1, 0}, {1, 0}, {1, 1}, {0, 1}}
	if !pointInPolygon(Point{0.5, 0.5}, degenerate) {
		t.Fatal("expected interior point inside square with duplicated vertex")
	}
}
