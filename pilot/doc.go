// Package pilot implements the per-turn decision function: given an
// Observation, Drive picks a destination, runs the kinematic A* search,
// and reduces the resulting path to a single acceleration.
//
// Drive is pure and synchronous: one call in, one answer out, no shared
// state across calls.
package pilot
