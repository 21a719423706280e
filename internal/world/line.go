package world

// Line rasterizes the segment from start to end with Bresenham's
// algorithm, stepping along the major axis. The returned points exclude
// start and include end, so the length of the line equals
// Distance(start, end). Equal endpoints yield an empty line.
func Line(start, end Pos) []Pos {
	dx := end.X - start.X
	dy := end.Y - start.Y
	adx, ady := abs(dx), abs(dy)
	stepX, stepY := signum(dx), signum(dy)

	if adx == 0 && ady == 0 {
		return nil
	}

	points := make([]Pos, 0, max(adx, ady))
	x, y := start.X, start.Y

	if adx >= ady {
		err := 2*ady - adx
		for x != end.X {
			x += stepX
			if err > 0 {
				y += stepY
				err -= 2 * adx
			}
			err += 2 * ady
			points = append(points, Pos{X: x, Y: y})
		}
	} else {
		err := 2*adx - ady
		for y != end.Y {
			y += stepY
			if err > 0 {
				x += stepX
				err -= 2 * ady
			}
			err += 2 * adx
			points = append(points, Pos{X: x, Y: y})
		}
	}

	return points
}
