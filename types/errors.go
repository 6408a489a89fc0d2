package types

import "errors"

var (
	// ErrConfiguration covers invalid geometry, names, axis choices and
	// mutually exclusive boundary condition requests.
	ErrConfiguration = errors.New("configuration error")
	// ErrTopologyInconsistency is reported when a selection has no active nodes.
	ErrTopologyInconsistency = errors.New("topology inconsistency")
	// ErrCapabilityUnavailable is returned by optional components not wired into the build.
	ErrCapabilityUnavailable = errors.New("capability unavailable")
)
