package shapes

import (
	"runtime"
	"sync"

	"github.com/reox/basicshapes/geometry2D"
	"github.com/reox/basicshapes/mesh"
	"github.com/reox/basicshapes/utils"
)

// Extrude stacks copies of the cross-section p along z, one per layer.
// Layers are split over workers, every worker writes a disjoint z range.
func Extrude(p *geometry2D.Plane, layers int) (g *Grid) {
	g = NewGrid(p.Nx, p.Ny, layers)
	forLayers(layers, func(kMin, kMax int) {
		for x := 0; x < p.Nx; x++ {
			for y := 0; y < p.Ny; y++ {
				v := p.At(x, y)
				for z := kMin; z < kMax; z++ {
					g.Set(x, y, z, v)
				}
			}
		}
	})
	return
}

// StackZ concatenates grids with identical x, y extent along z
func StackZ(grids ...*Grid) (g *Grid) {
	var nz int
	for _, gg := range grids {
		nz += gg.Nz
	}
	g = NewGrid(grids[0].Nx, grids[0].Ny, nz)
	var k0 int
	for _, gg := range grids {
		if gg.Nx != g.Nx || gg.Ny != g.Ny {
			panic("StackZ: mismatched cross sections")
		}
		for x := 0; x < gg.Nx; x++ {
			for y := 0; y < gg.Ny; y++ {
				for z := 0; z < gg.Nz; z++ {
					g.Set(x, y, k0+z, gg.At(x, y, z))
				}
			}
		}
		k0 += gg.Nz
	}
	return
}

/*
Rotate turns the grid by 90 degrees so that its z direction is aligned with
axis a, following the numpy rot90 convention:

	a == x: out[i][j][k] = in[k][j][Nz-1-i], shape (Nz, Ny, Nx)
	a == y: out[i][j][k] = in[i][k][Nz-1-j], shape (Nx, Nz, Ny)
	a == z: unchanged copy
*/
func Rotate(g *Grid, a mesh.Axis) (out *Grid) {
	switch a {
	case mesh.X:
		out = NewGrid(g.Nz, g.Ny, g.Nx)
		forLayers(out.Nx, func(iMin, iMax int) {
			for i := iMin; i < iMax; i++ {
				for j := 0; j < out.Ny; j++ {
					for k := 0; k < out.Nz; k++ {
						out.Set(i, j, k, g.At(k, j, g.Nz-1-i))
					}
				}
			}
		})
	case mesh.Y:
		out = NewGrid(g.Nx, g.Nz, g.Ny)
		forLayers(out.Nx, func(iMin, iMax int) {
			for i := iMin; i < iMax; i++ {
				for j := 0; j < out.Ny; j++ {
					for k := 0; k < out.Nz; k++ {
						out.Set(i, j, k, g.At(i, k, g.Nz-1-j))
					}
				}
			}
		})
	default:
		out = g.Clone()
	}
	return
}

// forLayers runs f over [0, n) split into contiguous chunks, one goroutine per chunk
func forLayers(n int, f func(kMin, kMax int)) {
	if n == 0 {
		return
	}
	var (
		NP = runtime.NumCPU()
		wg sync.WaitGroup
	)
	if NP > n {
		NP = n
	}
	pm := utils.NewPartitionMap(NP, n)
	wg.Add(NP)
	for np := 0; np < NP; np++ {
		go func(np int) {
			defer wg.Done()
			kMin, kMax := pm.GetBucketRange(np)
			f(kMin, kMax)
		}(np)
	}
	wg.Wait()
}
