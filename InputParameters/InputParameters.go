package InputParameters

import (
	"fmt"
	"math"
	"strings"

	"github.com/ghodss/yaml"

	"github.com/reox/basicshapes/bcs"
	"github.com/reox/basicshapes/mesh"
	"github.com/reox/basicshapes/shapes"
	"github.com/reox/basicshapes/types"
)

// LoadCase is a complete test case as read from a YAML input file
type LoadCase struct {
	Title  string       `json:"Title"`
	Body   string       `json:"Body"` // box or cylinder
	Box    BoxParams    `json:"Box"`
	Cyl    CylParams    `json:"Cylinder"`
	Voxel  float64      `json:"VoxelSize"`
	Value  float64      `json:"Modulus"`
	Nu     float64      `json:"Poisson"`
	Fill   FillParams   `json:"Fill"`
	Load   *LoadParams  `json:"Load"`
	Fixed  *FixedParams `json:"Constraint"`
	Output OutputParams `json:"Output"`
}

type BoxParams struct {
	Length  float64 `json:"Length"`
	Breadth float64 `json:"Breadth"`
	Height  float64 `json:"Height"`
}

type CylParams struct {
	OuterDiameter float64 `json:"OuterDiameter"`
	InnerDiameter float64 `json:"InnerDiameter"`
	Height        float64 `json:"Height"`
	Base          bool    `json:"Base"`
	Top           bool    `json:"Top"`
	Axis          string  `json:"Axis"`
}

type FillParams struct {
	Mode      string  `json:"Mode"` // none, normal or noise
	Sigma     float64 `json:"Sigma"`
	Amplitude float64 `json:"Amplitude"`
	Scale     float64 `json:"Scale"`
	Seed      uint64  `json:"Seed"`
}

// LoadParams names the single load of the case. Kind selects which of the
// remaining fields are read: area uses Face, bending uses Face and BendingAxis,
// edge uses Edge and Direction. Axis names should be quoted in YAML, a bare y
// reads as a boolean.
type LoadParams struct {
	Kind        string  `json:"Kind"`
	Face        string  `json:"Face"`
	Edge        string  `json:"Edge"`
	Direction   string  `json:"Direction"`
	BendingAxis string  `json:"BendingAxis"`
	Force       float64 `json:"Force"`
}

type FixedParams struct {
	Face string   `json:"Face"`
	DOFs []string `json:"DOFs"`
}

type OutputParams struct {
	File     string `json:"File"`
	Format   string `json:"Format"`   // sqlite or yaml
	MidPlane string `json:"MidPlane"` // axis of an optional mid-plane TIFF
}

func (lc *LoadCase) Parse(data []byte) error {
	return yaml.Unmarshal(data, lc)
}

func (lc *LoadCase) Print() {
	fmt.Printf("\"%s\"\t\t= Title\n", lc.Title)
	fmt.Printf("[%s]\t\t\t= Body\n", lc.Body)
	switch strings.ToLower(lc.Body) {
	case "box":
		fmt.Printf("%8.5f x %8.5f x %8.5f\t= L x B x H\n", lc.Box.Length, lc.Box.Breadth, lc.Box.Height)
	case "cylinder":
		fmt.Printf("%8.5f / %8.5f x %8.5f\t= D / d x H\n", lc.Cyl.OuterDiameter, lc.Cyl.InnerDiameter, lc.Cyl.Height)
		fmt.Printf("base %v, top %v, axis [%s]\t= Cylinder options\n", lc.Cyl.Base, lc.Cyl.Top, lc.Cyl.Axis)
	}
	fmt.Printf("%8.5f\t\t= Voxel Size\n", lc.Voxel)
	fmt.Printf("%8.5f\t\t= Modulus\n", lc.Value)
	fmt.Printf("%8.5f\t\t= Poisson Ratio\n", lc.Nu)
	if lc.Fill.Mode != "" {
		fmt.Printf("[%s]\t\t\t= Fill\n", lc.Fill.Mode)
	}
	if l := lc.Load; l != nil {
		fmt.Printf("[%s] %8.5f\t= Load, Force\n", l.Kind, l.Force)
	}
	if c := lc.Fixed; c != nil {
		fmt.Printf("[%s] %v\t\t= Constraint\n", c.Face, c.DOFs)
	}
	fmt.Printf("[%s] %s\t= Output\n", lc.Output.Format, lc.Output.File)
}

// Build constructs the body grid and applies the requested material fill
func (lc *LoadCase) Build() (g *shapes.Grid, err error) {
	switch strings.ToLower(strings.TrimSpace(lc.Body)) {
	case "box":
		b := lc.Box
		g, err = shapes.BuildBox(b.Length, b.Breadth, b.Height, lc.Voxel, lc.Value)
	case "cylinder":
		c := lc.Cyl
		axis := mesh.Z
		if c.Axis != "" {
			if axis, err = mesh.ParseAxis(c.Axis); err != nil {
				return
			}
		}
		g, err = shapes.BuildHollowCylinder(c.OuterDiameter, c.InnerDiameter, c.Height,
			lc.Voxel, lc.Value, c.Base, c.Top, axis)
	default:
		err = fmt.Errorf("%w: unknown body %q, must be box or cylinder", types.ErrConfiguration, lc.Body)
	}
	if err != nil {
		return nil, err
	}
	f := lc.Fill
	switch strings.ToLower(f.Mode) {
	case "", "none":
	case "normal":
		err = shapes.FillNormal(g, lc.Value, f.Sigma, f.Seed)
	case "noise":
		err = shapes.FillNoise(g, lc.Value, f.Amplitude, f.Scale, f.Seed)
	default:
		err = fmt.Errorf("%w: unknown fill mode %q, must be none, normal or noise", types.ErrConfiguration, f.Mode)
	}
	if err == nil {
		err = checkGrid(g)
	}
	if err != nil {
		return nil, err
	}
	return
}

// checkGrid rejects a grid left with NaN voxels by the material fill
func checkGrid(g *shapes.Grid) error {
	if g.HasNaN() {
		return fmt.Errorf("%w: material fill left NaN voxel values", types.ErrConfiguration)
	}
	return nil
}

// Request translates the names of the case into a boundary condition request.
// Unknown names and conflicting loads are rejected here, before generation.
func (lc *LoadCase) Request() (r *bcs.Request, err error) {
	if math.IsNaN(lc.Nu) || lc.Nu < 0 || lc.Nu >= 0.5 {
		err = fmt.Errorf("%w: Poisson ratio must be in [0, 0.5), have %v", types.ErrConfiguration, lc.Nu)
		return
	}
	r = &bcs.Request{VoxelSize: lc.Voxel}
	if l := lc.Load; l != nil {
		if err = l.apply(r); err != nil {
			return nil, err
		}
	}
	if c := lc.Fixed; c != nil {
		spec := &bcs.ConstraintSpec{}
		if spec.Face, err = mesh.ParseFace(c.Face); err != nil {
			return nil, err
		}
		for _, name := range c.DOFs {
			var a mesh.Axis
			if a, err = mesh.ParseAxis(name); err != nil {
				return nil, err
			}
			spec.DOFs = append(spec.DOFs, a)
		}
		r.Constraint = spec
	}
	if err = r.Validate(); err != nil {
		return nil, err
	}
	return
}

func (l *LoadParams) apply(r *bcs.Request) (err error) {
	kind := types.ParseBCFlag(l.Kind)
	if !kind.IsLoad() {
		err = fmt.Errorf("%w: %q is not a load kind, must be area, bending or edge", types.ErrConfiguration, l.Kind)
		return
	}
	switch kind {
	case types.BC_AreaLoad:
		spec := &bcs.AreaLoadSpec{Force: l.Force}
		if spec.Face, err = mesh.ParseFace(l.Face); err != nil {
			return
		}
		spec.Direction = spec.Face.Axis()
		if l.Direction != "" {
			if spec.Direction, err = mesh.ParseAxis(l.Direction); err != nil {
				return
			}
		}
		r.AreaLoad = spec
	case types.BC_BendingLoad:
		spec := &bcs.BendingLoadSpec{Force: l.Force}
		if spec.Face, err = mesh.ParseFace(l.Face); err != nil {
			return
		}
		if spec.BendingAxis, err = mesh.ParseAxis(l.BendingAxis); err != nil {
			return
		}
		r.BendingLoad = spec
	case types.BC_EdgeLoad:
		spec := &bcs.EdgeLoadSpec{Force: l.Force}
		if spec.Edge, err = mesh.ParseEdge(l.Edge); err != nil {
			return
		}
		if spec.DOF, err = mesh.ParseAxis(l.Direction); err != nil {
			return
		}
		r.EdgeLoad = spec
	}
	return
}
