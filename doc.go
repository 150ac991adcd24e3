// Package racepilot is an autonomous pilot for a turn-based, grid-based
// racing game. Given the circuit, the pilot's own kinematic state, and
// its opponents' positions, it decides one turn's acceleration by
// running a kinematic A* search over the grid and reducing the
// resulting path to a single move.
//
// The decision function itself lives in package pilot; geometry,
// circuit, search, and destination are its supporting packages. config,
// telemetry, and cmd/pilot are the host-facing layers around it.
package racepilot
