package shapes

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/reox/basicshapes/mesh"
	"github.com/reox/basicshapes/utils"
)

// Grid is the 3D material field, one stiffness value per voxel element, zero is void.
// Storage is row major with x slowest and z fastest.
type Grid struct {
	Nx, Ny, Nz int
	Data       []float64
}

func NewGrid(nx, ny, nz int) (g *Grid) {
	if nx < 0 || ny < 0 || nz < 0 {
		panic(fmt.Errorf("invalid grid dimensions: %d x %d x %d", nx, ny, nz))
	}
	g = &Grid{
		Nx:   nx,
		Ny:   ny,
		Nz:   nz,
		Data: make([]float64, nx*ny*nz),
	}
	return
}

func (g *Grid) Shape() mesh.Shape { return mesh.Shape{g.Nx, g.Ny, g.Nz} }

func (g *Grid) At(x, y, z int) float64 { return g.Data[g.index(x, y, z)] }

func (g *Grid) Set(x, y, z int, val float64) { g.Data[g.index(x, y, z)] = val }

// NonZero counts the voxels holding material
func (g *Grid) NonZero() (n int) {
	for _, v := range g.Data {
		if v != 0 {
			n++
		}
	}
	return
}

func (g *Grid) Sum() float64 { return floats.Sum(g.Data) }

func (g *Grid) Clone() (gc *Grid) {
	gc = NewGrid(g.Nx, g.Ny, g.Nz)
	copy(gc.Data, g.Data)
	return
}

// HasNaN reports whether any voxel value is NaN
func (g *Grid) HasNaN() bool { return utils.IsNan(g.Data) }

// MidPlane returns the slice through the middle of axis a, rows and columns
// are the two remaining axes in x, y, z order
func (g *Grid) MidPlane(a mesh.Axis) (M *mat.Dense) {
	var (
		s      = g.Shape()
		mid    = s[a] / 2
		r, c   = inPlane(a)
		nr, nc = s[r], s[c]
	)
	if nr == 0 || nc == 0 || s[a] == 0 {
		return nil
	}
	M = mat.NewDense(nr, nc, nil)
	for i := 0; i < nr; i++ {
		for j := 0; j < nc; j++ {
			var ind [3]int
			ind[a], ind[r], ind[c] = mid, i, j
			M.Set(i, j, g.At(ind[0], ind[1], ind[2]))
		}
	}
	return
}

func (g *Grid) String() string {
	return fmt.Sprintf("Grid[%d x %d x %d], %d material voxels", g.Nx, g.Ny, g.Nz, g.NonZero())
}

func (g *Grid) index(x, y, z int) int {
	if x < 0 || x >= g.Nx || y < 0 || y >= g.Ny || z < 0 || z >= g.Nz {
		panic(fmt.Errorf("grid index out of bounds: (%d, %d, %d) in %d x %d x %d",
			x, y, z, g.Nx, g.Ny, g.Nz))
	}
	return (x*g.Ny+y)*g.Nz + z
}

// inPlane returns the two axes orthogonal to a, in ascending order
func inPlane(a mesh.Axis) (r, c mesh.Axis) {
	switch a {
	case mesh.X:
		return mesh.Y, mesh.Z
	case mesh.Y:
		return mesh.X, mesh.Z
	}
	return mesh.X, mesh.Y
}
