package mesh

import (
	"fmt"
	"strings"

	"github.com/reox/basicshapes/types"
)

// Axis is a lattice direction, it doubles as the translational degree of freedom index.
type Axis int

const (
	X Axis = iota
	Y
	Z
)

func (a Axis) String() string {
	switch a {
	case X:
		return "x"
	case Y:
		return "y"
	case Z:
		return "z"
	}
	return fmt.Sprintf("Axis(%d)", int(a))
}

func (a Axis) Valid() bool { return a >= X && a <= Z }

// Next returns the following axis in cyclic x -> y -> z -> x order
func (a Axis) Next() Axis { return (a + 1) % 3 }

func ParseAxis(name string) (a Axis, err error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "x", "0":
		return X, nil
	case "y", "1":
		return Y, nil
	case "z", "2":
		return Z, nil
	}
	err = fmt.Errorf("%w: unknown axis %q, must be one of x, y, z", types.ErrConfiguration, name)
	return
}

// Face is one of the six bounding planes of the grid. Each pins one axis to
// its minimum or maximum:
//
//	west/east   -> x min/max
//	south/north -> y min/max
//	bottom/top  -> z min/max
type Face uint8

const (
	West Face = iota
	East
	South
	North
	Bottom
	Top
)

var faceNames = [...]string{"west", "east", "south", "north", "bottom", "top"}

func (f Face) String() string {
	if int(f) < len(faceNames) {
		return faceNames[f]
	}
	return fmt.Sprintf("Face(%d)", int(f))
}

// Axis returns the axis normal to the face
func (f Face) Axis() Axis { return Axis(f / 2) }

// IsMax is true when the face pins its axis to the maximum index
func (f Face) IsMax() bool { return f%2 == 1 }

func AllFaces() []Face { return []Face{West, East, South, North, Bottom, Top} }

func ParseFace(name string) (f Face, err error) {
	lname := strings.ToLower(strings.TrimSpace(name))
	for i, fn := range faceNames {
		if fn == lname {
			return Face(i), nil
		}
	}
	err = fmt.Errorf("%w: unknown face %q, must be one of %s",
		types.ErrConfiguration, name, strings.Join(faceNames[:], ", "))
	return
}

// Edge is the intersection line of two perpendicular faces. Names are the
// concatenation of the two face names, first top/bottom followed by any side
// face, or north/south followed by east/west, e.g. "topnorth", "southeast".
type Edge struct {
	First, Second Face
}

func (e Edge) String() string { return e.First.String() + e.Second.String() }

func AllEdges() (edges []Edge) {
	for _, first := range []Face{Top, Bottom} {
		for _, second := range []Face{North, South, East, West} {
			edges = append(edges, Edge{first, second})
		}
	}
	for _, first := range []Face{North, South} {
		for _, second := range []Face{East, West} {
			edges = append(edges, Edge{first, second})
		}
	}
	return
}

func ParseEdge(name string) (e Edge, err error) {
	lname := strings.ToLower(strings.TrimSpace(name))
	for _, candidate := range AllEdges() {
		if candidate.String() == lname {
			return candidate, nil
		}
	}
	err = fmt.Errorf("%w: unknown edge %q, must be <top|bottom><north|south|east|west> or <north|south><east|west>",
		types.ErrConfiguration, name)
	return
}
