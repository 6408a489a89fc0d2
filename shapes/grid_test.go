package shapes

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reox/basicshapes/geometry2D"
	"github.com/reox/basicshapes/mesh"
	"github.com/reox/basicshapes/types"
)

func TestGrid(t *testing.T) {
	g := NewGrid(2, 3, 4)
	for x := 0; x < 2; x++ {
		for y := 0; y < 3; y++ {
			for z := 0; z < 4; z++ {
				g.Set(x, y, z, float64(100*x+10*y+z))
			}
		}
	}
	assert.Equal(t, 123., g.At(1, 2, 3))
	assert.Equal(t, 23, g.NonZero())
	assert.Panics(t, func() { g.At(2, 0, 0) })
	{
		gc := g.Clone()
		gc.Set(0, 0, 0, 9)
		assert.Equal(t, 0., g.At(0, 0, 0))
	}
	{ // Mid planes
		M := g.MidPlane(mesh.Z)
		r, c := M.Dims()
		assert.Equal(t, 2, r)
		assert.Equal(t, 3, c)
		assert.Equal(t, 122., M.At(1, 2))
		M = g.MidPlane(mesh.X)
		r, c = M.Dims()
		assert.Equal(t, 3, r)
		assert.Equal(t, 4, c)
		assert.Equal(t, 123., M.At(2, 3))
		M = g.MidPlane(mesh.Y)
		r, c = M.Dims()
		assert.Equal(t, 2, r)
		assert.Equal(t, 4, c)
		assert.Equal(t, 111., M.At(1, 1))
	}
	{
		assert.False(t, g.HasNaN())
		g.Set(0, 0, 0, math.NaN())
		assert.True(t, g.HasNaN())
	}
}

func TestExtrudeRotate(t *testing.T) {
	p := geometry2D.NewPlane(3, 2)
	p.Set(2, 1, 4)
	g := Extrude(p, 37)
	assert.Equal(t, mesh.Shape{3, 2, 37}, g.Shape())
	assert.Equal(t, 37, g.NonZero())
	for z := 0; z < 37; z++ {
		assert.Equal(t, 4., g.At(2, 1, z))
	}
	g.Set(0, 0, 0, 1) // mark the base
	gx := Rotate(g, mesh.X)
	assert.Equal(t, mesh.Shape{37, 2, 3}, gx.Shape())
	assert.Equal(t, 1., gx.At(36, 0, 0))
	assert.Equal(t, 4., gx.At(0, 1, 2))
	gy := Rotate(g, mesh.Y)
	assert.Equal(t, mesh.Shape{3, 37, 2}, gy.Shape())
	assert.Equal(t, 1., gy.At(0, 36, 0))
	assert.Equal(t, 4., gy.At(2, 0, 1))
	gz := Rotate(g, mesh.Z)
	assert.Equal(t, g.Data, gz.Data)

	s := StackZ(NewGrid(3, 2, 1), g)
	assert.Equal(t, 38, s.Nz)
	assert.Equal(t, 1., s.At(0, 0, 1))
}

func TestFills(t *testing.T) {
	g, err := BuildHollowCylinder(11, 0, 3, 1, 1000, true, false, mesh.Z)
	require.NoError(t, err)
	g2 := g.Clone()
	require.NoError(t, FillNormal(g, 1000, 50, 42))
	require.NoError(t, FillNormal(g2, 1000, 50, 42))
	assert.Equal(t, g.Data, g2.Data)
	var changed int
	for x := 0; x < g.Nx; x++ {
		for y := 0; y < g.Ny; y++ {
			assert.Equal(t, PlateValue, g.At(x, y, 0))
			for z := 1; z < g.Nz; z++ {
				v := g.At(x, y, z)
				assert.GreaterOrEqual(t, v, 0.)
				if v != 0 && v != 1000 {
					changed++
				}
			}
		}
	}
	assert.Greater(t, changed, 0)
	{
		err = FillNormal(g, -1, 1, 0)
		assert.True(t, errors.Is(err, types.ErrConfiguration))
		err = FillNormal(g, math.Inf(1), math.Inf(1), 0)
		assert.True(t, errors.Is(err, types.ErrConfiguration))
		assert.False(t, g.HasNaN())
		err = FillNoise(g, 1000, 10, 1, 0)
		assert.True(t, errors.Is(err, types.ErrCapabilityUnavailable))
	}
}
