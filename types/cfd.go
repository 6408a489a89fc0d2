package types

import "strings"

type BCFLAG uint8

const (
	BC_None BCFLAG = iota
	BC_Fixed
	BC_AreaLoad
	BC_BendingLoad
	BC_EdgeLoad
)

func (bf BCFLAG) String() string {
	switch bf {
	case BC_Fixed:
		return "Fixed"
	case BC_AreaLoad:
		return "AreaLoad"
	case BC_BendingLoad:
		return "BendingLoad"
	case BC_EdgeLoad:
		return "EdgeLoad"
	}
	return "None"
}

var BCNameMap = map[string]BCFLAG{
	"fixed":       BC_Fixed,
	"constraint":  BC_Fixed,
	"area":        BC_AreaLoad,
	"areaload":    BC_AreaLoad,
	"pressure":    BC_AreaLoad,
	"bending":     BC_BendingLoad,
	"bendingload": BC_BendingLoad,
	"moment":      BC_BendingLoad,
	"edge":        BC_EdgeLoad,
	"edgeload":    BC_EdgeLoad,
	"line":        BC_EdgeLoad,
}

// IsLoad reports whether the flag produces nodal forces rather than constraints
func (bf BCFLAG) IsLoad() bool {
	return bf == BC_AreaLoad || bf == BC_BendingLoad || bf == BC_EdgeLoad
}

// ParseBCFlag converts a boundary condition kind name to a BCFLAG.
// The matching is case-insensitive, unknown names map to BC_None
func ParseBCFlag(name string) BCFLAG {
	return BCNameMap[strings.ToLower(strings.TrimSpace(name))]
}
