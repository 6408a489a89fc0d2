package shapes

import (
	"fmt"
	"log"
	"math"

	"github.com/reox/basicshapes/geometry2D"
	"github.com/reox/basicshapes/mesh"
	"github.com/reox/basicshapes/types"
)

// PlateValue marks the rigid loading/constraint platens added to cylinders,
// distinct from any material modulus.
const PlateValue = 255.

const latticeTol = 1.e-9

// BuildBox returns an L x B x H box along x, y, z uniformly filled with value
func BuildBox(L, B, H, voxelSize, value float64) (g *Grid, err error) {
	var nx, ny, nz int
	if err = checkValue(value); err != nil {
		return
	}
	if nx, err = VoxelCount("length", L, voxelSize); err != nil {
		return
	}
	if ny, err = VoxelCount("breadth", B, voxelSize); err != nil {
		return
	}
	if nz, err = VoxelCount("height", H, voxelSize); err != nil {
		return
	}
	g = NewGrid(nx, ny, nz)
	for i := range g.Data {
		g.Data[i] = value
	}
	log.Printf("box: %v\n", g)
	return
}

/*
BuildHollowCylinder builds a cylinder of outer diameter D and height H extruded along axis.
d > 0 cuts a concentric bore of diameter d, d == 0 gives a solid cylinder.

	- The cross-section is a square of D voxels, bumped to the next odd count so the
	  circle is centered on a cell
	- Outer and inner outlines are rasterized, every cell enclosed between them is
	  filled, the outside and the bore (seeded at the center) stay empty
	- The cross-section is extruded along z for H voxels, optional base/top plates of
	  PlateValue cover the whole square below/above
	- The result is rotated so the extrusion runs along axis
*/
func BuildHollowCylinder(D, d, H, voxelSize, value float64, hasBase, hasTop bool,
	axis mesh.Axis) (g *Grid, err error) {
	var (
		nD, nd, nH int
	)
	if err = checkValue(value); err != nil {
		return
	}
	if !axis.Valid() {
		err = fmt.Errorf("%w: invalid extrusion axis %d", types.ErrConfiguration, int(axis))
		return
	}
	if nD, err = VoxelCount("outer diameter", D, voxelSize); err != nil {
		return
	}
	if nH, err = VoxelCount("height", H, voxelSize); err != nil {
		return
	}
	switch {
	case math.IsNaN(d) || d < 0:
		err = fmt.Errorf("%w: inner diameter must be >= 0, have %v", types.ErrConfiguration, d)
		return
	case d > 0:
		if nd, err = VoxelCount("inner diameter", d, voxelSize); err != nil {
			return
		}
		if d >= D {
			err = fmt.Errorf("%w: inner diameter %v must be smaller than outer diameter %v",
				types.ErrConfiguration, d, D)
			return
		}
	}
	if nD%2 == 0 {
		nD++
	}
	var (
		r  = nD / 2
		ri = nd / 2
		cs = geometry2D.NewPlane(nD, nD)
	)
	geometry2D.DrawCircle(cs, r, r, r, value)
	if nd > 0 {
		geometry2D.DrawCircle(cs, r, r, ri, value)
		geometry2D.FillEnclosed(cs, value, [2]int{r, r})
	} else {
		geometry2D.FillEnclosed(cs, value)
	}

	parts := []*Grid{}
	if hasBase {
		parts = append(parts, plate(nD))
	}
	parts = append(parts, Extrude(cs, nH))
	if hasTop {
		parts = append(parts, plate(nD))
	}
	g = Rotate(StackZ(parts...), axis)
	log.Printf("cylinder: D=%d, d=%d voxels, extruded along %s: %v\n", nD, nd, axis, g)
	return
}

func plate(n int) (g *Grid) {
	p := geometry2D.NewPlane(n, n)
	for i := range p.Data {
		p.Data[i] = PlateValue
	}
	return Extrude(p, 1)
}

// VoxelCount converts a physical length into an exact number of voxels
func VoxelCount(name string, length, voxelSize float64) (n int, err error) {
	if math.IsNaN(voxelSize) || voxelSize <= 0 {
		err = fmt.Errorf("%w: voxel size must be > 0, have %v", types.ErrConfiguration, voxelSize)
		return
	}
	if math.IsNaN(length) || math.IsInf(length, 0) || length <= 0 {
		err = fmt.Errorf("%w: %s must be > 0, have %v", types.ErrConfiguration, name, length)
		return
	}
	var (
		ratio = length / voxelSize
		nf    = math.Round(ratio)
	)
	if nf < 1 || math.Abs(ratio-nf) > latticeTol*math.Max(1, ratio) {
		err = fmt.Errorf("%w: %s %v is not a multiple of the voxel size %v",
			types.ErrConfiguration, name, length, voxelSize)
		return
	}
	n = int(nf)
	return
}

func checkValue(value float64) error {
	if math.IsNaN(value) || math.IsInf(value, 0) || value <= 0 {
		return fmt.Errorf("%w: material value must be a positive number, have %v",
			types.ErrConfiguration, value)
	}
	return nil
}
