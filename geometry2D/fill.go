package geometry2D

// FloodFill replaces every empty (zero) cell 4-connected to the seed (sx, sy)
// with val and returns the number of cells filled. Any non-zero cell and the
// plane border stop the fill. A seed outside the plane or on a non-zero cell
// fills nothing, so filling an already filled region is a no-op.
//
// The frontier is an explicit stack, cells are marked when pushed so none is
// visited twice.
func FloodFill(p *Plane, sx, sy int, val float64) (filled int) {
	if val == 0 || !p.InBounds(sx, sy) || p.At(sx, sy) != 0 {
		return
	}
	var (
		stack = [][2]int{{sx, sy}}
		steps = [4][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}
	)
	p.Set(sx, sy, val)
	filled++
	for len(stack) > 0 {
		cell := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, s := range steps {
			x, y := cell[0]+s[0], cell[1]+s[1]
			if !p.InBounds(x, y) || p.At(x, y) != 0 {
				continue
			}
			p.Set(x, y, val)
			filled++
			stack = append(stack, [2]int{x, y})
		}
	}
	return
}

// fillSentinel marks cells reached from outside or from a hole while
// FillEnclosed runs. Material values are positive, so it never collides.
const fillSentinel = -1.

/*
FillEnclosed sets every empty cell that is cut off from the plane border and
from each hole seed to val, and returns the number of cells filled.

	- Empty cells 4-connected to the border are outside
	- Empty cells 4-connected to a hole seed are voids to keep, a seed on a
	  non-zero cell marks nothing
	- Everything else that is still empty is enclosed by the outlines, however
	  many pockets the outlines split it into
*/
func FillEnclosed(p *Plane, val float64, holes ...[2]int) (filled int) {
	if val == 0 || val == fillSentinel {
		return
	}
	for x := 0; x < p.Nx; x++ {
		FloodFill(p, x, 0, fillSentinel)
		FloodFill(p, x, p.Ny-1, fillSentinel)
	}
	for y := 0; y < p.Ny; y++ {
		FloodFill(p, 0, y, fillSentinel)
		FloodFill(p, p.Nx-1, y, fillSentinel)
	}
	for _, h := range holes {
		FloodFill(p, h[0], h[1], fillSentinel)
	}
	for i, v := range p.Data {
		switch v {
		case 0:
			p.Data[i] = val
			filled++
		case fillSentinel:
			p.Data[i] = 0
		}
	}
	return
}
