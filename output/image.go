package output

import (
	"fmt"
	"image"
	"image/color"
	"math"
	"os"

	"golang.org/x/image/tiff"
	"gonum.org/v1/gonum/mat"

	"github.com/reox/basicshapes/mesh"
	"github.com/reox/basicshapes/shapes"
	"github.com/reox/basicshapes/types"
)

// WriteMidPlane saves the slice through the middle of axis a as a 16 bit
// grayscale TIFF. Values are scaled so the largest maps to white, void is black.
func WriteMidPlane(path string, g *shapes.Grid, a mesh.Axis) (err error) {
	if !a.Valid() {
		return fmt.Errorf("%w: invalid mid-plane axis %d", types.ErrConfiguration, int(a))
	}
	M := g.MidPlane(a)
	if M == nil {
		return fmt.Errorf("%w: empty grid has no mid-plane", types.ErrConfiguration)
	}
	img := toGray16(M)
	var f *os.File
	if f, err = os.Create(path); err != nil {
		return
	}
	if err = tiff.Encode(f, img, &tiff.Options{Compression: tiff.Deflate}); err != nil {
		f.Close()
		return
	}
	return f.Close()
}

// toGray16 maps matrix rows to image rows
func toGray16(M *mat.Dense) (img *image.Gray16) {
	var (
		nr, nc = M.Dims()
		vmax   = mat.Max(M)
		scale  float64
	)
	if vmax > 0 {
		scale = math.MaxUint16 / vmax
	}
	img = image.NewGray16(image.Rect(0, 0, nc, nr))
	for i := 0; i < nr; i++ {
		for j := 0; j < nc; j++ {
			v := math.Max(0, M.At(i, j)) * scale
			img.SetGray16(j, i, color.Gray16{Y: uint16(math.Round(v))})
		}
	}
	return
}
