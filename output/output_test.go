package output

import (
	"errors"
	"image"
	"os"
	"path/filepath"
	"testing"

	"github.com/ghodss/yaml"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/tiff"

	"github.com/reox/basicshapes/bcs"
	"github.com/reox/basicshapes/mesh"
	"github.com/reox/basicshapes/shapes"
	"github.com/reox/basicshapes/types"
)

func testDataset(t *testing.T) *Dataset {
	g, err := shapes.BuildBox(2, 3, 4, 1, 100)
	require.NoError(t, err)
	g.Set(1, 2, 3, 7)
	g.Set(0, 0, 0, 0)
	loads, constraints, err := bcs.Apply(g, &bcs.Request{
		VoxelSize:  1,
		AreaLoad:   &bcs.AreaLoadSpec{Face: mesh.Top, Direction: mesh.Z, Force: -12},
		Constraint: &bcs.ConstraintSpec{Face: mesh.Bottom, DOFs: []mesh.Axis{mesh.Z}},
	})
	require.NoError(t, err)
	return NewDataset("unit box", g, 0.3, 1, loads, constraints)
}

func TestAxisConvention(t *testing.T) {
	ds := testDataset(t)
	dims, data := ds.ImageZYX()
	assert.Equal(t, [3]int{4, 3, 2}, dims)
	// (x, y, z) = (1, 2, 3) lands at [z][y][x]
	assert.Equal(t, 7., data[(3*3+2)*2+1])
	assert.Equal(t, 0., data[0])
	assert.Equal(t, ds.Image.Sum(), sumOf(data))

	rows := [][4]int{{1, 2, 3, 0}, {4, 5, 6, 2}}
	sw := SwapXZ(rows)
	assert.Equal(t, [][4]int{{3, 2, 1, 0}, {6, 5, 4, 2}}, sw)
	assert.Equal(t, rows, SwapXZ(sw))
}

func TestSQLite(t *testing.T) {
	var (
		ds   = testDataset(t)
		path = filepath.Join(t.TempDir(), "case.db")
	)
	w, err := NewWriter("sqlite")
	require.NoError(t, err)
	require.NoError(t, w.Write(path, ds))
	// Writing again replaces the file
	require.NoError(t, w.Write(path, ds))

	rd, err := ReadSQLite(path)
	require.NoError(t, err)
	assert.Equal(t, ds.RunID, rd.RunID)
	assert.Equal(t, "unit box", rd.Title)
	assert.Equal(t, 0.3, rd.Poisson)
	assert.Equal(t, 1., rd.VoxelSize)
	assert.Equal(t, ds.Image.Shape(), rd.Image.Shape())
	assert.Equal(t, ds.Image.Data, rd.Image.Data)
	assert.Equal(t, ds.Loads, rd.Loads)
	assert.Equal(t, ds.Constraints, rd.Constraints)
	{ // Optional tables stay absent
		ds.Loads = nil
		require.NoError(t, w.Write(path, ds))
		rd, err = ReadSQLite(path)
		require.NoError(t, err)
		assert.Nil(t, rd.Loads)
		assert.NotNil(t, rd.Constraints)
	}
	{
		_, err = ReadSQLite(filepath.Join(t.TempDir(), "missing.db"))
		assert.Error(t, err)
	}
}

func TestYAML(t *testing.T) {
	var (
		ds   = testDataset(t)
		path = filepath.Join(t.TempDir(), "case.yaml")
	)
	w, err := NewWriter("YAML")
	require.NoError(t, err)
	require.NoError(t, w.Write(path, ds))
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	var doc yamlDocument
	require.NoError(t, yaml.Unmarshal(data, &doc))
	assert.Equal(t, ds.RunID.String(), doc.RunID)
	assert.Equal(t, 0.3, doc.Poisson)
	assert.Equal(t, [3]int{4, 3, 2}, doc.ImageShape)
	assert.Len(t, doc.Image, 24)
	assert.Equal(t, SwapXZ(ds.Loads.Coordinates), doc.LoadCoords)
	assert.Equal(t, ds.Constraints.Values, doc.FixedValues)
	assert.InDelta(t, -12., sumOf(doc.LoadValues), 1.e-12)
	for _, c := range doc.LoadCoords {
		// Top face nodes, z is the first column on disk
		assert.Equal(t, 4, c[0])
	}
}

func TestWriterErrors(t *testing.T) {
	_, err := NewWriter("hdf5")
	assert.True(t, errors.Is(err, types.ErrConfiguration))
	w, err := NewWriter("")
	require.NoError(t, err)
	assert.IsType(t, &SQLiteWriter{}, w)
	err = w.Write(filepath.Join(t.TempDir(), "x.db"), &Dataset{VoxelSize: 1})
	assert.True(t, errors.Is(err, types.ErrConfiguration))
	{ // A target that cannot be replaced is reported, not overwritten
		busy := filepath.Join(t.TempDir(), "busy.db")
		require.NoError(t, os.MkdirAll(filepath.Join(busy, "keep"), 0o755))
		err = w.Write(busy, testDataset(t))
		assert.Error(t, err)
		_, err = os.Stat(filepath.Join(busy, "keep"))
		assert.NoError(t, err)
	}
}

func TestWriteMidPlane(t *testing.T) {
	g, err := shapes.BuildHollowCylinder(11, 5, 3, 1, 50, false, false, mesh.Z)
	require.NoError(t, err)
	path := filepath.Join(t.TempDir(), "mid.tif")
	require.NoError(t, WriteMidPlane(path, g, mesh.Z))
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	img, err := tiff.Decode(f)
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 11, 11), img.Bounds())
	gray, ok := img.(*image.Gray16)
	require.True(t, ok)
	// Centre of the bore is void, the rim is full scale
	assert.Equal(t, uint16(0), gray.Gray16At(5, 5).Y)
	assert.Equal(t, uint16(0xffff), gray.Gray16At(5, 0).Y)

	assert.Error(t, WriteMidPlane(path, g, mesh.Axis(4)))
}

func sumOf(v []float64) (s float64) {
	for _, f := range v {
		s += f
	}
	return
}
