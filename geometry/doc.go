// Package geometry provides the integer 2D vectors, Euclidean norms, and
// the line-rasterization primitive the rest of the pilot builds on:
// collision tests, sand/bounds predicates, and the A* heuristic all
// reduce to operations on Vector.
//
// Arithmetic is integer throughout; Euclidean norm is computed in
// float64 and used only for heuristic and scoring purposes, never for
// identity or equality.
package geometry
