package output

import (
	"fmt"
	"log"
	"strings"

	"github.com/google/uuid"

	"github.com/reox/basicshapes/bcs"
	"github.com/reox/basicshapes/shapes"
	"github.com/reox/basicshapes/types"
)

// Dataset names shared by every format
const (
	ImageName        = "Image"
	FixedCoordinates = "Fixed_Displacement_Coordinates"
	FixedValues      = "Fixed_Displacement_Values"
	LoadCoordinates  = "Loaded_Nodes_Coordinates"
	LoadValues       = "Loaded_Nodes_Values"
	PoissonName      = "Poisson_ratio"
	VoxelSizeName    = "Voxel_size"
)

/*
Dataset is everything persisted for one test case. The consuming solver
reads the image in Z-Y-X order, so on disk:

  - the image is transposed from the internal X-Y-Z grid
  - coordinate rows of both tables are (z, y, x, dof), the dof index is unchanged

Loads and Constraints are optional.
*/
type Dataset struct {
	RunID       uuid.UUID
	Title       string
	Image       *shapes.Grid
	Poisson     float64
	VoxelSize   float64
	Loads       *bcs.Table
	Constraints *bcs.Table
}

func NewDataset(title string, g *shapes.Grid, poisson, voxelSize float64,
	loads, constraints *bcs.Table) (ds *Dataset) {
	ds = &Dataset{
		RunID:       uuid.New(),
		Title:       title,
		Image:       g,
		Poisson:     poisson,
		VoxelSize:   voxelSize,
		Loads:       loads,
		Constraints: constraints,
	}
	return
}

// ImageZYX returns the image shape and values with z varying slowest
func (ds *Dataset) ImageZYX() (dims [3]int, data []float64) {
	g := ds.Image
	dims = [3]int{g.Nz, g.Ny, g.Nx}
	data = make([]float64, len(g.Data))
	var i int
	for z := 0; z < g.Nz; z++ {
		for y := 0; y < g.Ny; y++ {
			for x := 0; x < g.Nx; x++ {
				data[i] = g.At(x, y, z)
				i++
			}
		}
	}
	return
}

// SwapXZ returns a copy of coordinate rows with the x and z columns exchanged.
// It is its own inverse.
func SwapXZ(coords [][4]int) (swapped [][4]int) {
	swapped = make([][4]int, len(coords))
	for i, c := range coords {
		swapped[i] = [4]int{c[2], c[1], c[0], c[3]}
	}
	return
}

func (ds *Dataset) check() error {
	switch {
	case ds.Image == nil:
		return fmt.Errorf("%w: dataset has no image", types.ErrConfiguration)
	case ds.VoxelSize <= 0:
		return fmt.Errorf("%w: voxel size must be > 0, have %v", types.ErrConfiguration, ds.VoxelSize)
	}
	return nil
}

// Writer persists a dataset at path, replacing any existing file
type Writer interface {
	Write(path string, ds *Dataset) error
}

func NewWriter(format string) (w Writer, err error) {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "", "sqlite", "db":
		w = &SQLiteWriter{}
	case "yaml", "yml":
		w = &YAMLWriter{}
	default:
		err = fmt.Errorf("%w: unknown output format %q, must be sqlite or yaml", types.ErrConfiguration, format)
	}
	return
}

func logWritten(format, path string, ds *Dataset) {
	var nl, nc int
	if ds.Loads != nil {
		nl = ds.Loads.Len()
	}
	if ds.Constraints != nil {
		nc = ds.Constraints.Len()
	}
	log.Printf("%s: wrote %s, run %s, %d loads, %d constraints\n", format, path, ds.RunID, nl, nc)
}
