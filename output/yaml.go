package output

import (
	"os"

	"github.com/ghodss/yaml"
)

type yamlDocument struct {
	RunID       string    `json:"RunID"`
	Title       string    `json:"Title,omitempty"`
	Poisson     float64   `json:"Poisson_ratio"`
	VoxelSize   float64   `json:"Voxel_size"`
	ImageShape  [3]int    `json:"Image_shape"`
	Image       []float64 `json:"Image"`
	FixedCoords [][4]int  `json:"Fixed_Displacement_Coordinates,omitempty"`
	FixedValues []float64 `json:"Fixed_Displacement_Values,omitempty"`
	LoadCoords  [][4]int  `json:"Loaded_Nodes_Coordinates,omitempty"`
	LoadValues  []float64 `json:"Loaded_Nodes_Values,omitempty"`
}

// YAMLWriter writes a human readable document, the image as a flat Z-Y-X list.
// Meant for small cases and inspection.
type YAMLWriter struct{}

func (w *YAMLWriter) Write(path string, ds *Dataset) (err error) {
	if err = ds.check(); err != nil {
		return
	}
	doc := yamlDocument{
		RunID:     ds.RunID.String(),
		Title:     ds.Title,
		Poisson:   ds.Poisson,
		VoxelSize: ds.VoxelSize,
	}
	doc.ImageShape, doc.Image = ds.ImageZYX()
	if t := ds.Constraints; t != nil && t.Len() != 0 {
		doc.FixedCoords, doc.FixedValues = SwapXZ(t.Coordinates), t.Values
	}
	if t := ds.Loads; t != nil && t.Len() != 0 {
		doc.LoadCoords, doc.LoadValues = SwapXZ(t.Coordinates), t.Values
	}
	var data []byte
	if data, err = yaml.Marshal(doc); err != nil {
		return
	}
	if err = os.WriteFile(path, data, 0644); err != nil {
		return
	}
	logWritten("yaml", path, ds)
	return
}
