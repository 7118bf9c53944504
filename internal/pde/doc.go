// Package pde defines the shared domain types for the benchmarking core.
//
// Everything downstream of a parsed configuration speaks in these types:
//
//   - [Field]: a sampled 1D solution
//   - [Params]: the equation being solved (heat or linear advection)
//   - [Scheme]: the finite-difference scheme used to step it
//   - [Boundary]: Dirichlet or periodic edge handling
//   - [Initial]: the initial profile at t=0
//
// Scheme/equation compatibility is a closed set checked with
// [Scheme.Compatible] before any stepping begins, never mid-run.
//
// The error taxonomy is two-valued: [ConfigError] for anything detectable
// before numeric work starts, [NumericalError] for failures during a run
// (near-singular solves, non-finite field values). Both are plain error
// values; the core never logs or prints.
package pde
