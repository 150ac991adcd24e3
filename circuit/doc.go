// Package circuit treats a 2D grid of terrain cells as the racing
// circuit the pilot observes and searches over: width/height bounds,
// per-cell classification, collision and occupancy tests, the host's
// line-oriented character encoding, and a connectivity sanity check the
// host can run at load time.
//
// A Circuit is immutable once built, mirroring gridgraph.GridGraph:
// construction deep-copies the input grid so later mutation of the
// caller's slices cannot invalidate an in-flight search.
package circuit
