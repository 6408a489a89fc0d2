package types

import (
	"fmt"
)

/*
NodeDOFKey is an always positive number that stores a lattice node coordinate and a degree of freedom in a way that
can be compared and used as a map key. Keys sort lexicographically by (x, y, z, dof).
*/
type NodeDOFKey uint64

const (
	axisBits = 20
	dofBits  = 2
	axisMask = 1<<axisBits - 1
	dofMask  = 1<<dofBits - 1
)

func NewNodeDOFKey(node [3]int, dof int) (packed NodeDOFKey) {
	// This packs three 20 bit coordinates and a 2 bit dof into a uint64 to act as a hash and an indirect access method
	for _, c := range node {
		if c < 0 || c > axisMask {
			panic(fmt.Errorf("unable to pack node coordinate into a uint64, have %v as input", node))
		}
	}
	if dof < 0 || dof > 2 {
		panic(fmt.Errorf("degree of freedom must be 0, 1 or 2, have %d", dof))
	}
	packed = NodeDOFKey(dof) |
		NodeDOFKey(node[2])<<dofBits |
		NodeDOFKey(node[1])<<(dofBits+axisBits) |
		NodeDOFKey(node[0])<<(dofBits+2*axisBits)
	return
}

func (k NodeDOFKey) GetNode() (node [3]int) {
	node[2] = int(k>>dofBits) & axisMask
	node[1] = int(k>>(dofBits+axisBits)) & axisMask
	node[0] = int(k>>(dofBits+2*axisBits)) & axisMask
	return
}

func (k NodeDOFKey) GetDOF() int {
	return int(k & dofMask)
}

// Row returns the (x, y, z, dof) tuple used by boundary tables
func (k NodeDOFKey) Row() (row [4]int) {
	node := k.GetNode()
	row[0], row[1], row[2] = node[0], node[1], node[2]
	row[3] = k.GetDOF()
	return
}
