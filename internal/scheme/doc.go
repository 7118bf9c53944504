// Package scheme implements the per-scheme time-stepping kernels.
//
// Each stepper advances a [grid.Grid] by one timestep, writing the next
// state into the grid's scratch buffer and swapping, so a step never
// aliases its own reads and never allocates:
//
//   - FTCS: forward-time centered-space explicit heat
//   - BackwardEuler: implicit heat, tridiagonal solve per step
//   - CrankNicolson: time-averaged implicit/explicit heat
//   - Upwind: advection, stencil biased toward the incoming direction
//   - LaxFriedrichs: advection with implicit numerical diffusion
//
// The set is closed: [New] dispatches with an exhaustive switch and
// rejects scheme/equation mismatches before any stepping begins.
//
// Periodic boundaries are handled inside the stencils by reading edge
// neighbors modulo N; for the implicit schemes this turns the system
// cyclic-tridiagonal and the solve goes through [solver.Cyclic] rather
// than plain Thomas elimination.
package scheme
