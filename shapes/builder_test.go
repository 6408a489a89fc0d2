package shapes

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reox/basicshapes/mesh"
	"github.com/reox/basicshapes/types"
)

func TestBuildBox(t *testing.T) {
	{
		g, err := BuildBox(8, 64, 8, 0.25, 1000)
		require.NoError(t, err)
		assert.Equal(t, mesh.Shape{32, 256, 32}, g.Shape())
		for _, v := range g.Data {
			require.Equal(t, 1000., v)
		}
		assert.Equal(t, 32*256*32, g.NonZero())
	}
	{
		g, err := BuildBox(3, 2, 1, 1, 5)
		require.NoError(t, err)
		assert.Equal(t, mesh.Shape{3, 2, 1}, g.Shape())
		assert.Equal(t, 30., g.Sum())
	}
	{ // Dimensions must sit on the voxel lattice
		for _, dims := range [][4]float64{
			{8, 64, 8.1, 0.25},
			{1, 1, 1, 0.3},
			{0, 1, 1, 1},
			{1, -1, 1, 1},
			{1, 1, 1, 0},
			{1, 1, math.NaN(), 1},
		} {
			g, err := BuildBox(dims[0], dims[1], dims[2], dims[3], 1)
			assert.Nil(t, g)
			assert.True(t, errors.Is(err, types.ErrConfiguration), "%v", dims)
		}
		_, err := BuildBox(1, 1, 1, 1, 0)
		assert.True(t, errors.Is(err, types.ErrConfiguration))
	}
}

func TestBuildHollowCylinder(t *testing.T) {
	{ // Solid cylinder
		g, err := BuildHollowCylinder(11, 0, 5, 1, 1, false, false, mesh.Z)
		require.NoError(t, err)
		assert.Equal(t, mesh.Shape{11, 11, 5}, g.Shape())
		assert.InEpsilon(t, math.Pi*5.5*5.5*5, float64(g.NonZero()), 0.1)
		// Every layer is the same cross-section
		for x := 0; x < 11; x++ {
			for y := 0; y < 11; y++ {
				for z := 1; z < 5; z++ {
					require.Equal(t, g.At(x, y, 0), g.At(x, y, z))
				}
			}
		}
		assert.Equal(t, 1., g.At(5, 5, 2))
		assert.Equal(t, 1., g.At(0, 5, 2))
		assert.Equal(t, 0., g.At(0, 0, 2))
	}
	{ // Even diameters are bumped to the next odd voxel count
		g, err := BuildHollowCylinder(10, 0, 2, 1, 1, false, false, mesh.Z)
		require.NoError(t, err)
		assert.Equal(t, mesh.Shape{11, 11, 2}, g.Shape())
	}
	{ // Hollow cylinder keeps the bore empty
		g, err := BuildHollowCylinder(21, 10, 3, 1, 7, false, false, mesh.Z)
		require.NoError(t, err)
		assert.Equal(t, 0., g.At(10, 10, 1))
		assert.Equal(t, 7., g.At(10, 2, 1))
		assert.Equal(t, 7., g.At(10, 5, 1))
		assert.Equal(t, 0., g.At(10, 7, 1))
		for _, xy := range [][2]int{{10, 1}, {1, 10}, {10, 19}, {19, 10}, {4, 4}, {16, 16}} {
			assert.Equal(t, 7., g.At(xy[0], xy[1], 1), "%v", xy)
		}
		solid, err := BuildHollowCylinder(21, 0, 3, 1, 7, false, false, mesh.Z)
		require.NoError(t, err)
		assert.Less(t, g.NonZero(), solid.NonZero())
	}
	{ // Plates
		g, err := BuildHollowCylinder(11, 0, 5, 1, 1, true, true, mesh.Z)
		require.NoError(t, err)
		assert.Equal(t, mesh.Shape{11, 11, 7}, g.Shape())
		for x := 0; x < 11; x++ {
			for y := 0; y < 11; y++ {
				require.Equal(t, PlateValue, g.At(x, y, 0))
				require.Equal(t, PlateValue, g.At(x, y, 6))
			}
		}
		assert.Equal(t, 1., g.At(5, 5, 3))
	}
	{ // Rotation aligns the extrusion with the requested axis
		gz, err := BuildHollowCylinder(11, 0, 5, 1, 1, true, false, mesh.Z)
		require.NoError(t, err)
		gx, err := BuildHollowCylinder(11, 0, 5, 1, 1, true, false, mesh.X)
		require.NoError(t, err)
		gy, err := BuildHollowCylinder(11, 0, 5, 1, 1, true, false, mesh.Y)
		require.NoError(t, err)
		assert.Equal(t, mesh.Shape{6, 11, 11}, gx.Shape())
		assert.Equal(t, mesh.Shape{11, 6, 11}, gy.Shape())
		assert.Equal(t, gz.NonZero(), gx.NonZero())
		assert.Equal(t, gz.NonZero(), gy.NonZero())
		for j := 0; j < 11; j++ {
			for k := 0; k < 11; k++ {
				require.Equal(t, PlateValue, gx.At(5, j, k))
				require.Equal(t, PlateValue, gy.At(j, 5, k))
			}
		}
	}
	{ // Invalid input
		for _, c := range [][4]float64{
			{0, 0, 5, 1},
			{11, 0, 0, 1},
			{11, -1, 5, 1},
			{11, 11, 5, 1},
			{11, 12, 5, 1},
			{10.5, 0, 5, 1},
			{11, 2.5, 5, 1},
		} {
			g, err := BuildHollowCylinder(c[0], c[1], c[2], c[3], 1, false, false, mesh.Z)
			assert.Nil(t, g)
			assert.True(t, errors.Is(err, types.ErrConfiguration), "%v", c)
		}
		_, err := BuildHollowCylinder(11, 0, 5, 1, 1, false, false, mesh.Axis(3))
		assert.True(t, errors.Is(err, types.ErrConfiguration))
	}
}

func TestHollowCylinderWall(t *testing.T) {
	type section struct{ D, d int }
	cases := []section{{11, 7}, {11, 9}, {21, 17}, {21, 10}, {41, 39}}
	for D := 3; D <= 41; D += 2 {
		for d := 0; d <= D-2; d += 3 {
			cases = append(cases, section{D, d})
		}
	}
	for _, c := range cases {
		g, err := BuildHollowCylinder(float64(c.D), float64(c.d), 2, 1, 7, false, false, mesh.Z)
		require.NoError(t, err)
		var (
			r  = c.D / 2
			ri = c.d / 2
		)
		for x := 0; x < c.D; x++ {
			for y := 0; y < c.D; y++ {
				var (
					v    = g.At(x, y, 0)
					a, b = x-r, y-r
					dist = math.Hypot(float64(a), float64(b))
				)
				// Strictly between the radii is wall
				if dist < float64(r) && (c.d == 0 || dist > float64(ri)) {
					require.Equal(t, 7., v, "D=%d d=%d void wall cell (%d,%d)", c.D, c.d, x, y)
				}
				if dist > float64(r)+1 {
					require.Equal(t, 0., v, "D=%d d=%d (%d,%d)", c.D, c.d, x, y)
				}
				// Eight-way symmetry of the cross-section
				require.Equal(t, v, g.At(r+b, r+a, 0), "D=%d d=%d (%d,%d)", c.D, c.d, x, y)
				require.Equal(t, v, g.At(r-a, r+b, 0), "D=%d d=%d (%d,%d)", c.D, c.d, x, y)
				require.Equal(t, v, g.At(r+a, r-b, 0), "D=%d d=%d (%d,%d)", c.D, c.d, x, y)
				require.Equal(t, v, g.At(x, y, 1))
			}
		}
		if ri > 0 {
			assert.Equal(t, 0., g.At(r, r, 0), "D=%d d=%d bore", c.D, c.d)
		}
	}
}

func TestVoxelCount(t *testing.T) {
	n, err := VoxelCount("length", 8, 0.25)
	require.NoError(t, err)
	assert.Equal(t, 32, n)
	n, err = VoxelCount("length", 0.3, 0.1)
	require.NoError(t, err)
	assert.Equal(t, 3, n)
	_, err = VoxelCount("length", 0.05, 0.1)
	assert.Error(t, err)
}
