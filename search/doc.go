// Package search implements kinematic A*: a variable-acceleration
// shortest-path search over (position, velocity, fuel) states.
//
// Overview:
//
//   - State is the unit of expansion: (pos, vel, fuel, g, h, parent),
//     identified for deduplication purposes by (pos, vel) alone — fuel is
//     deliberately excluded from identity, trading a larger optimal path
//     space for a much smaller state space.
//   - OpenSet is a binary min-heap keyed by f = g + h, paired with an
//     identity index for O(log n) decrease-key relaxation.
//   - ClosedSet tracks the best f seen per identity and supports
//     reopening, required because the sand surcharge makes the heuristic
//     admissible but not consistent.
//   - Expander enumerates the nine legal accelerations per state under
//     velocity, bounds, collision, sand, and fuel constraints, and
//     computes the fuel burn via a pluggable GasFormula.
//   - Search runs the main loop and returns the reconstructed Path, or
//     ErrNoPath if the open set empties first.
//
// The whole package is single-threaded and synchronous: Search allocates
// a fresh OpenSet/ClosedSet per call and returns a Path whose States are
// owned by the caller from that point on.
package search
