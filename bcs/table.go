package bcs

import (
	"sort"

	"github.com/james-bowman/sparse"
	"gonum.org/v1/gonum/floats"

	"github.com/reox/basicshapes/mesh"
	"github.com/reox/basicshapes/types"
)

// Table holds boundary entries as parallel arrays, one row per (node, dof):
// Coordinates[i] = (x, y, z, dof) carries Values[i]. Rows are sorted by
// x, y, z, dof and each (node, dof) appears once.
type Table struct {
	Coordinates [][4]int
	Values      []float64
}

func (t *Table) Len() int { return len(t.Values) }

// Sum returns the total of all values acting along dof
func (t *Table) Sum(dof mesh.Axis) float64 {
	vals := make([]float64, 0, len(t.Values))
	for i, c := range t.Coordinates {
		if c[3] == int(dof) {
			vals = append(vals, t.Values[i])
		}
	}
	return floats.Sum(vals)
}

func (t *Table) Lookup(n mesh.Node, dof mesh.Axis) (val float64, ok bool) {
	row := [4]int{n[0], n[1], n[2], int(dof)}
	i := sort.Search(len(t.Coordinates), func(i int) bool {
		return !rowLess(t.Coordinates[i], row)
	})
	if i < len(t.Coordinates) && t.Coordinates[i] == row {
		return t.Values[i], true
	}
	return
}

// Nodes returns the distinct nodes referenced by the table, in table order
func (t *Table) Nodes() (nodes []mesh.Node) {
	for i, c := range t.Coordinates {
		n := mesh.Node{c[0], c[1], c[2]}
		if i > 0 && nodes[len(nodes)-1] == n {
			continue
		}
		nodes = append(nodes, n)
	}
	return
}

// Vector scatters the table into the global degree of freedom vector of a
// grid with element shape s. Node (x, y, z) owns the three entries starting at
// 3*((x*(Ny+1)+y)*(Nz+1)+z).
func (t *Table) Vector(s mesh.Shape) *sparse.Vector {
	var (
		ns   = s.NodeShape()
		ind  = make([]int, t.Len())
		data = make([]float64, t.Len())
	)
	for i, c := range t.Coordinates {
		ind[i] = 3*((c[0]*ns[1]+c[1])*ns[2]+c[2]) + c[3]
		data[i] = t.Values[i]
	}
	return sparse.NewVector(3*ns[0]*ns[1]*ns[2], ind, data)
}

// Resultant sums a global degree of freedom vector per direction
func Resultant(v *sparse.Vector) (f [3]float64) {
	v.DoNonZero(func(i, _ int, val float64) {
		f[i%3] += val
	})
	return
}

func rowLess(a, b [4]int) bool {
	for i := 0; i < 4; i++ {
		if a[i] != b[i] {
			return a[i] < b[i]
		}
	}
	return false
}

// accumulator sums contributions of elements sharing a node
type accumulator struct {
	vals map[types.NodeDOFKey]float64
}

func newAccumulator() *accumulator {
	return &accumulator{vals: make(map[types.NodeDOFKey]float64)}
}

func (acc *accumulator) Add(n mesh.Node, dof mesh.Axis, val float64) {
	acc.vals[types.NewNodeDOFKey([3]int(n), int(dof))] += val
}

func (acc *accumulator) Table() (t *Table) {
	keys := make([]types.NodeDOFKey, 0, len(acc.vals))
	for k := range acc.vals {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	t = &Table{
		Coordinates: make([][4]int, len(keys)),
		Values:      make([]float64, len(keys)),
	}
	for i, k := range keys {
		t.Coordinates[i] = k.Row()
		t.Values[i] = acc.vals[k]
	}
	return
}
