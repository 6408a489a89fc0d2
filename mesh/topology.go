package mesh

import (
	"github.com/reox/basicshapes/utils"
)

/*
The mesh is implicit: a grid of Nx x Ny x Nz hexahedral elements (voxels) with
(Nx+1) x (Ny+1) x (Nz+1) corner nodes. Nothing here is stored, every function
below derives coordinates from the grid shape alone. All sequences iterate
lexicographically, x slowest and z fastest.
*/

// Shape is the element count along x, y and z
type Shape [3]int

// NodeShape is the node count along each axis
func (s Shape) NodeShape() Shape { return Shape{s[0] + 1, s[1] + 1, s[2] + 1} }

func (s Shape) NumElements() int { return s[0] * s[1] * s[2] }

type Node [3]int

type Element [3]int

func (e Element) Contains(s Shape) bool {
	for a := 0; a < 3; a++ {
		if e[a] < 0 || e[a] >= s[a] {
			return false
		}
	}
	return true
}

// FaceNodes returns the node coordinates on the named face
func FaceNodes(f Face, s Shape) (nodes []Node) {
	ranges := fullRanges(s.NodeShape())
	ranges[f.Axis()] = pinned(f.IsMax(), s[f.Axis()])
	for _, c := range cartesian(ranges) {
		nodes = append(nodes, Node(c))
	}
	return
}

// FaceElements returns the element coordinates in the layer touching the named face
func FaceElements(f Face, s Shape) (elems []Element) {
	if s.NumElements() == 0 {
		return
	}
	ranges := fullRanges(s)
	ranges[f.Axis()] = pinned(f.IsMax(), s[f.Axis()]-1)
	for _, c := range cartesian(ranges) {
		elems = append(elems, Element(c))
	}
	return
}

// EdgeNodes returns the node coordinates on the named edge, two axes are pinned
func EdgeNodes(e Edge, s Shape) (nodes []Node) {
	ranges := fullRanges(s.NodeShape())
	for _, f := range [2]Face{e.First, e.Second} {
		ranges[f.Axis()] = pinned(f.IsMax(), s[f.Axis()])
	}
	for _, c := range cartesian(ranges) {
		nodes = append(nodes, Node(c))
	}
	return
}

// ElementsTouchingNode returns the up to eight elements sharing node n,
// fewer at the grid boundary
func ElementsTouchingNode(n Node, s Shape) (elems []Element) {
	var ranges [3]utils.Index
	for a := 0; a < 3; a++ {
		ranges[a] = utils.NewRange(n[a]-1, n[a])
	}
	for _, c := range cartesian(ranges) {
		if e := Element(c); e.Contains(s) {
			elems = append(elems, e)
		}
	}
	return
}

// NodesOfElement returns the eight corner nodes of element e
func NodesOfElement(e Element) (nodes [8]Node) {
	var i int
	for dx := 0; dx <= 1; dx++ {
		for dy := 0; dy <= 1; dy++ {
			for dz := 0; dz <= 1; dz++ {
				nodes[i] = Node{e[0] + dx, e[1] + dy, e[2] + dz}
				i++
			}
		}
	}
	return
}

// NodesOfElementFace returns the four corner nodes of element e lying on its
// local face f, i.e. the outward facing quad when e sits on grid face f
func NodesOfElementFace(e Element, f Face) (nodes [4]Node) {
	var (
		a   = f.Axis()
		off int
		i   int
	)
	if f.IsMax() {
		off = 1
	}
	for _, n := range NodesOfElement(e) {
		if n[a] == e[a]+off {
			nodes[i] = n
			i++
		}
	}
	return
}

func fullRanges(s Shape) (ranges [3]utils.Index) {
	for a := 0; a < 3; a++ {
		ranges[a] = utils.NewRange(0, s[a]-1)
	}
	return
}

func pinned(isMax bool, max int) utils.Index {
	if isMax {
		return utils.Index{max}
	}
	return utils.Index{0}
}

func cartesian(ranges [3]utils.Index) (coords [][3]int) {
	coords = make([][3]int, 0, len(ranges[0])*len(ranges[1])*len(ranges[2]))
	for _, i := range ranges[0] {
		for _, j := range ranges[1] {
			for _, k := range ranges[2] {
				coords = append(coords, [3]int{i, j, k})
			}
		}
	}
	return
}
