package bcs

import (
	"fmt"
	"log"
	"math"
	"sort"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/reox/basicshapes/mesh"
	"github.com/reox/basicshapes/types"
	"github.com/reox/basicshapes/utils"
)

// Stiffness is the read-only material grid the generators work on
type Stiffness interface {
	Shape() mesh.Shape
	At(x, y, z int) float64
}

// Fixed constrains every node of face that touches material, one zero entry per dof
func Fixed(g Stiffness, face mesh.Face, dofs []mesh.Axis) (t *Table, err error) {
	if len(dofs) == 0 {
		err = fmt.Errorf("%w: fixed constraint on %s needs at least one dof", types.ErrConfiguration, face)
		return
	}
	for _, dof := range dofs {
		if !dof.Valid() {
			err = fmt.Errorf("%w: invalid dof %d", types.ErrConfiguration, int(dof))
			return
		}
	}
	var (
		s   = g.Shape()
		acc = newAccumulator()
	)
	for _, n := range mesh.FaceNodes(face, s) {
		if !touchesMaterial(g, n) {
			continue
		}
		for _, dof := range dofs {
			acc.Add(n, dof, 0)
		}
	}
	t = acc.Table()
	warnEmpty(t, "fixed constraint", face.String())
	return
}

/*
AreaLoad spreads force uniformly over the material elements of face along its normal.

	w = force / (voxelArea * activeElements)

Every corner node of an active element on the face plane receives 0.25*w*voxelArea,
nodes shared by neighboring elements accumulate, so the values sum to force.
*/
func AreaLoad(g Stiffness, face mesh.Face, dir mesh.Axis, force, voxelSize float64) (t *Table, err error) {
	if err = checkLoad(force, voxelSize); err != nil {
		return
	}
	if dir != face.Axis() {
		err = fmt.Errorf("%w: area load on %s must act along its normal %s, have %s",
			types.ErrConfiguration, face, face.Axis(), dir)
		return
	}
	var (
		active = activeFaceElements(g, face)
		area   = voxelSize * voxelSize
		acc    = newAccumulator()
	)
	if len(active) != 0 {
		w := force / (area * float64(len(active)))
		for _, e := range active {
			for _, n := range mesh.NodesOfElementFace(e, face) {
				acc.Add(n, dir, 0.25*w*area)
			}
		}
	}
	t = acc.Table()
	warnEmpty(t, "area load", face.String())
	return
}

/*
BendingLoad applies a pure bending moment about bendingAxis at face. The nodal
load acts along the face normal and varies linearly along the remaining in-plane axis.

  - Active face elements are re-centered about the midpoint of their bounding box
    and scaled to physical units
  - The second moment of area of each in-plane axis is summed element by element
    with the parallel axis theorem, I = h^4/12 + offset^2 * h^2. This is exact for
    rectangles, rasterized circles carry a small discretization bias
  - The moment arm is the full body length along the face normal, M = force * N_normal * h
  - Bending about the axis preceding the normal in x -> y -> z order gives negative
    normal loads on the positive side of the varying axis, the other order positive ones

Each node on the face quad of an active element accumulates
0.25 * sign * M / I[bendingAxis] * offset[varying].
*/
func BendingLoad(g Stiffness, face mesh.Face, force, voxelSize float64,
	bendingAxis mesh.Axis) (t *Table, err error) {
	if err = checkLoad(force, voxelSize); err != nil {
		return
	}
	var (
		normal  = face.Axis()
		varying mesh.Axis
	)
	if varying, err = varyingAxis(normal, bendingAxis); err != nil {
		return
	}
	var (
		s      = g.Shape()
		active = activeFaceElements(g, face)
		acc    = newAccumulator()
	)
	if len(active) != 0 {
		var (
			offsets = centeredOffsets(active, voxelSize)
			I       = SecondMomentOfArea(offsets, voxelSize, normal)
			M       = force * float64(s[normal]) * voxelSize
			sign    = 1.
		)
		if normal == bendingAxis.Next() {
			sign = -1
		}
		k := sign * M / I[bendingAxis]
		for i, e := range active {
			val := 0.25 * k * component(offsets[i], varying)
			for _, n := range mesh.NodesOfElementFace(e, face) {
				acc.Add(n, normal, val)
			}
		}
	}
	t = acc.Table()
	warnEmpty(t, "bending load", face.String())
	return
}

// SecondMomentOfArea returns the second moments about the two axes in the plane
// normal to normal, indexed by axis; the normal entry is zero. offsets are the
// element centers relative to the bending centre, in physical units.
func SecondMomentOfArea(offsets []r3.Vec, voxelSize float64, normal mesh.Axis) (I [3]float64) {
	var (
		area = voxelSize * voxelSize
		own  = utils.POW(voxelSize, 4) / 12
	)
	for _, a := range []mesh.Axis{mesh.X, mesh.Y, mesh.Z} {
		if a == normal {
			continue
		}
		// The lever of bending about a is the in-plane axis other than a
		lever := 3 - normal - a
		for _, off := range offsets {
			d := component(off, lever)
			I[a] += own + d*d*area
		}
	}
	return
}

/*
EdgeLoad distributes force along the material-touching nodes of edge as a line load.
The nodes must vary along exactly one axis. With N nodes spaced by h the loaded
length is (N-1)*h, so

	w = force / (h * (N-1))

interior nodes carry w*h and the two end nodes half of that, summing to force.
The sum is (N-2)*w*h + w*h = force for any N >= 2, a single loaded node has no
varying axis and is rejected.
*/
func EdgeLoad(g Stiffness, edge mesh.Edge, dof mesh.Axis, force, voxelSize float64) (t *Table, err error) {
	if err = checkLoad(force, voxelSize); err != nil {
		return
	}
	if !dof.Valid() {
		err = fmt.Errorf("%w: invalid dof %d", types.ErrConfiguration, int(dof))
		return
	}
	var (
		s     = g.Shape()
		nodes []mesh.Node
		acc   = newAccumulator()
	)
	for _, n := range mesh.EdgeNodes(edge, s) {
		if touchesMaterial(g, n) {
			nodes = append(nodes, n)
		}
	}
	if len(nodes) != 0 {
		var axis mesh.Axis
		if axis, err = singleVaryingAxis(nodes); err != nil {
			err = fmt.Errorf("%w (edge %s, %d nodes)", err, edge, len(nodes))
			return
		}
		sort.Slice(nodes, func(i, j int) bool { return nodes[i][axis] < nodes[j][axis] })
		var (
			N   = len(nodes)
			w   = force / (voxelSize * float64(N-1))
			val = w * voxelSize
		)
		for i, n := range nodes {
			if i == 0 || i == N-1 {
				acc.Add(n, dof, 0.5*val)
			} else {
				acc.Add(n, dof, val)
			}
		}
	}
	t = acc.Table()
	warnEmpty(t, "edge load", edge.String())
	return
}

func touchesMaterial(g Stiffness, n mesh.Node) bool {
	for _, e := range mesh.ElementsTouchingNode(n, g.Shape()) {
		if g.At(e[0], e[1], e[2]) != 0 {
			return true
		}
	}
	return false
}

func activeFaceElements(g Stiffness, face mesh.Face) (active []mesh.Element) {
	for _, e := range mesh.FaceElements(face, g.Shape()) {
		if g.At(e[0], e[1], e[2]) != 0 {
			active = append(active, e)
		}
	}
	return
}

// centeredOffsets places the elements relative to the midpoint of their bounding box, scaled by h
func centeredOffsets(elems []mesh.Element, h float64) (offsets []r3.Vec) {
	var (
		lo = elems[0]
		hi = elems[0]
	)
	for _, e := range elems {
		for a := 0; a < 3; a++ {
			lo[a] = min(lo[a], e[a])
			hi[a] = max(hi[a], e[a])
		}
	}
	mid := r3.Vec{
		X: 0.5 * float64(lo[0]+hi[0]),
		Y: 0.5 * float64(lo[1]+hi[1]),
		Z: 0.5 * float64(lo[2]+hi[2]),
	}
	offsets = make([]r3.Vec, len(elems))
	for i, e := range elems {
		pos := r3.Vec{X: float64(e[0]), Y: float64(e[1]), Z: float64(e[2])}
		offsets[i] = r3.Scale(h, r3.Sub(pos, mid))
	}
	return
}

func component(v r3.Vec, a mesh.Axis) float64 {
	switch a {
	case mesh.X:
		return v.X
	case mesh.Y:
		return v.Y
	}
	return v.Z
}

func varyingAxis(normal, bendingAxis mesh.Axis) (varying mesh.Axis, err error) {
	if !bendingAxis.Valid() {
		err = fmt.Errorf("%w: invalid bending axis %d", types.ErrConfiguration, int(bendingAxis))
		return
	}
	varying = 3 - normal - bendingAxis
	if bendingAxis == normal || varying == normal || varying == bendingAxis || !varying.Valid() {
		err = fmt.Errorf("%w: bending axis %s, varying axis %s and face normal %s must be distinct",
			types.ErrConfiguration, bendingAxis, varying, normal)
	}
	return
}

func singleVaryingAxis(nodes []mesh.Node) (axis mesh.Axis, err error) {
	var count int
	for a := mesh.X; a <= mesh.Z; a++ {
		for _, n := range nodes[1:] {
			if n[a] != nodes[0][a] {
				axis = a
				count++
				break
			}
		}
	}
	if count != 1 {
		err = fmt.Errorf("%w: edge nodes do not have a single variable axis, found %d",
			types.ErrConfiguration, count)
	}
	return
}

func checkLoad(force, voxelSize float64) error {
	switch {
	case utils.IsNan(force) || math.IsInf(force, 0):
		return fmt.Errorf("%w: force must be finite, have %v", types.ErrConfiguration, force)
	case utils.IsNan(voxelSize) || voxelSize <= 0:
		return fmt.Errorf("%w: voxel size must be > 0, have %v", types.ErrConfiguration, voxelSize)
	}
	return nil
}

func warnEmpty(t *Table, what, where string) {
	if t.Len() == 0 {
		log.Printf("warning: %v\n", fmt.Errorf("%w: %s on %s selects no node adjacent to material",
			types.ErrTopologyInconsistency, what, where))
	}
}
