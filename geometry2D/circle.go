package geometry2D

// DrawCircle marks the outline of a discrete circle of radius r centered on
// (xm, ym) with val. The outline is computed for one octant with the integer
// midpoint recurrence and mirrored eight ways, so the result is symmetric under
// all reflections and rotations of the square. Diagonal steps are bridged with
// one extra cell so the outline is 4-connected and a 4-connected flood fill
// cannot leak through it.
//
// The plane must hold at least 2r+1 cells in each direction around the center.
func DrawCircle(p *Plane, xm, ym, r int, val float64) {
	var (
		x, y = 0, r
		d    = 1 - r
	)
	plot := func(a, b int) {
		p.Set(xm+a, ym+b, val)
		p.Set(xm+b, ym+a, val)
		p.Set(xm-a, ym+b, val)
		p.Set(xm-b, ym+a, val)
		p.Set(xm+a, ym-b, val)
		p.Set(xm+b, ym-a, val)
		p.Set(xm-a, ym-b, val)
		p.Set(xm-b, ym-a, val)
	}
	for x <= y {
		plot(x, y)
		xOld, yOld := x, y
		if d < 0 {
			d += 2*x + 3
		} else {
			d += 2*(x-y) + 5
			y--
		}
		x++
		if y != yOld {
			bx, by := bridgeCell(xOld, yOld, r)
			// Bridges past the diagonal belong to a mirrored octant
			if bx <= by {
				plot(bx, by)
			}
		}
	}
}

// bridgeCell picks the cell joining (x, y) and (x+1, y-1) that lies closest to
// the true radius, preferring the outer cell on ties.
func bridgeCell(x, y, r int) (bx, by int) {
	var (
		rr       = r * r
		outerErr = iabs(x*x + 2*x + 1 + y*y - rr)
		innerErr = iabs(x*x + y*y - 2*y + 1 - rr)
	)
	if outerErr <= innerErr {
		return x + 1, y
	}
	return x, y - 1
}

func iabs(a int) int {
	if a < 0 {
		return -a
	}
	return a
}
