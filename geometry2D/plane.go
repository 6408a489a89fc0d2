package geometry2D

import "fmt"

// Plane is a 2D scalar raster indexed [x][y], stored row major with x slowest.
type Plane struct {
	Nx, Ny int
	Data   []float64
}

func NewPlane(nx, ny int) (p *Plane) {
	if nx < 0 || ny < 0 {
		panic(fmt.Errorf("invalid plane dimensions: %d x %d", nx, ny))
	}
	p = &Plane{
		Nx:   nx,
		Ny:   ny,
		Data: make([]float64, nx*ny),
	}
	return
}

func (p *Plane) InBounds(x, y int) bool {
	return x >= 0 && x < p.Nx && y >= 0 && y < p.Ny
}

func (p *Plane) At(x, y int) float64 {
	return p.Data[p.index(x, y)]
}

func (p *Plane) Set(x, y int, val float64) {
	p.Data[p.index(x, y)] = val
}

// Count returns the number of cells holding val
func (p *Plane) Count(val float64) (n int) {
	for _, v := range p.Data {
		if v == val {
			n++
		}
	}
	return
}

func (p *Plane) index(x, y int) int {
	if !p.InBounds(x, y) {
		panic(fmt.Errorf("plane index out of bounds: (%d, %d) in %d x %d", x, y, p.Nx, p.Ny))
	}
	return x*p.Ny + y
}
