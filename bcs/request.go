package bcs

import (
	"fmt"
	"log"
	"strings"

	"github.com/reox/basicshapes/mesh"
	"github.com/reox/basicshapes/types"
)

type ConstraintSpec struct {
	Face mesh.Face
	DOFs []mesh.Axis
}

type AreaLoadSpec struct {
	Face      mesh.Face
	Direction mesh.Axis
	Force     float64
}

type BendingLoadSpec struct {
	Face        mesh.Face
	BendingAxis mesh.Axis
	Force       float64
}

type EdgeLoadSpec struct {
	Edge  mesh.Edge
	DOF   mesh.Axis
	Force float64
}

// Request selects at most one load and at most one constraint for a grid
type Request struct {
	VoxelSize   float64
	Constraint  *ConstraintSpec
	AreaLoad    *AreaLoadSpec
	BendingLoad *BendingLoadSpec
	EdgeLoad    *EdgeLoadSpec
}

// LoadKind reports which load the request carries, BC_None if none
func (r *Request) LoadKind() types.BCFLAG {
	switch {
	case r.AreaLoad != nil:
		return types.BC_AreaLoad
	case r.BendingLoad != nil:
		return types.BC_BendingLoad
	case r.EdgeLoad != nil:
		return types.BC_EdgeLoad
	}
	return types.BC_None
}

// Validate rejects mutually exclusive loads before any generation runs
func (r *Request) Validate() error {
	var loads []string
	if r.AreaLoad != nil {
		loads = append(loads, types.BC_AreaLoad.String())
	}
	if r.BendingLoad != nil {
		loads = append(loads, types.BC_BendingLoad.String())
	}
	if r.EdgeLoad != nil {
		loads = append(loads, types.BC_EdgeLoad.String())
	}
	if len(loads) > 1 {
		return fmt.Errorf("%w: loads are mutually exclusive, have %s",
			types.ErrConfiguration, strings.Join(loads, " and "))
	}
	if r.Constraint != nil && len(r.Constraint.DOFs) == 0 {
		return fmt.Errorf("%w: constraint on %s needs at least one dof", types.ErrConfiguration, r.Constraint.Face)
	}
	if len(loads) > 0 && r.VoxelSize <= 0 {
		return fmt.Errorf("%w: voxel size must be > 0, have %v", types.ErrConfiguration, r.VoxelSize)
	}
	return nil
}

// Apply generates the load and constraint tables of the request. A table is nil
// when the request does not ask for it. No table is returned on error.
func Apply(g Stiffness, r *Request) (loads, constraints *Table, err error) {
	if err = r.Validate(); err != nil {
		return
	}
	switch r.LoadKind() {
	case types.BC_AreaLoad:
		l := r.AreaLoad
		loads, err = AreaLoad(g, l.Face, l.Direction, l.Force, r.VoxelSize)
	case types.BC_BendingLoad:
		l := r.BendingLoad
		loads, err = BendingLoad(g, l.Face, l.Force, r.VoxelSize, l.BendingAxis)
	case types.BC_EdgeLoad:
		l := r.EdgeLoad
		loads, err = EdgeLoad(g, l.Edge, l.DOF, l.Force, r.VoxelSize)
	}
	if err != nil {
		return nil, nil, err
	}
	if r.Constraint != nil {
		if constraints, err = Fixed(g, r.Constraint.Face, r.Constraint.DOFs); err != nil {
			return nil, nil, err
		}
	}
	if kind := r.LoadKind(); kind.IsLoad() && loads != nil {
		log.Printf("%s: %d nodal loads\n", kind, loads.Len())
	}
	if constraints != nil {
		log.Printf("%s: %d constrained dofs on %s\n", types.BC_Fixed, constraints.Len(), r.Constraint.Face)
	}
	return
}
