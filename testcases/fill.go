package testcases

import "seehuhn.de/go/geom/vec"

var basicCases = []TestCase{
	{
		Name:   "triangle_nonzero",
		Points: triangle(10, 50, 32, 10, 54, 50),
		Width:  64,
		Height: 64,
		Rule:   NonZero,
		Convex: true,
	},
	{
		Name:   "triangle_evenodd",
		Points: triangle(10, 50, 32, 10, 54, 50),
		Width:  64,
		Height: 64,
		Rule:   EvenOdd,
		Convex: true,
	},
	{
		Name:   "triangle_ccw",
		Points: triangle(10, 50, 54, 50, 32, 10),
		Width:  64,
		Height: 64,
		Rule:   NonZero,
		Convex: true,
	},
	{
		Name:   "star_nonzero",
		Points: fivePointStar(32, 32, 25),
		Width:  64,
		Height: 64,
		Rule:   NonZero,
	},
	{
		Name:   "star_evenodd",
		Points: fivePointStar(32, 32, 25),
		Width:  64,
		Height: 64,
		Rule:   EvenOdd,
	},
	{
		Name:   "rectangle",
		Points: rectangle(10, 10, 44, 44),
		Width:  64,
		Height: 64,
		Rule:   NonZero,
		Convex: true,
	},
	{
		Name:   "hexagon",
		Points: regularPolygon(32, 32, 20, 6),
		Width:  64,
		Height: 64,
		Rule:   EvenOdd,
		Convex: true,
	},
	{
		Name:   "concave_l",
		Points: []vec.Vec2{pt(8, 8), pt(24, 8), pt(24, 40), pt(56, 40), pt(56, 56), pt(8, 56)},
		Width:  64,
		Height: 64,
		Rule:   NonZero,
	},
	{
		Name:   "bowtie_nonzero",
		Points: []vec.Vec2{pt(8, 8), pt(56, 56), pt(56, 8), pt(8, 56)},
		Width:  64,
		Height: 64,
		Rule:   NonZero,
	},
}

// triangle returns the three corners of a triangle.
func triangle(x1, y1, x2, y2, x3, y3 float64) []vec.Vec2 {
	return []vec.Vec2{pt(x1, y1), pt(x2, y2), pt(x3, y3)}
}

// fivePointStar returns a self-intersecting five-pointed star.
func fivePointStar(cx, cy, r float64) []vec.Vec2 {
	pts := regularPolygon(cx, cy, r, 5)

	// connect every second point: 0 -> 2 -> 4 -> 1 -> 3
	order := []int{0, 2, 4, 1, 3}
	star := make([]vec.Vec2, len(order))
	for i, j := range order {
		star[i] = pts[j]
	}
	return star
}
