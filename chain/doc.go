// Package chain builds and solves linear transmutation/decay chains rooted
// at a target nuclide.
//
// What:
//
//	A Chain is an ordered sequence of ranks; rank 0 is the target. Build()
//	advances a truncation-driven depth-first traversal of the nuclear graph
//	one step per call: every call either extends the chain by one rank and
//	reports a valid chain to solve, or unwinds exhausted ranks and tries the
//	next sibling daughter. Growth below the ignore limit is pruned; growth
//	below the truncation limit is solved but not extended.
//
//	The chain also owns the numerical glue between its rate data and the
//	transfer matrices: CollapseRates folds the per-rank rate vectors with
//	every flux of the problem into one packed scalar array, FillTMat and
//	SetDecay populate lower-triangular matrices through the math kernel, and
//	Mult multiplies matrices rank-aware.
//
// Why the rank bookkeeping matters:
//
//	Consecutive chains share a path prefix. NewRank marks the first rank
//	that changed since the previous chain, so matrix fills and multiplies
//	touch only rows ≥ NewRank and all work on the shared prefix is reused.
//	SetRank marks the first rank to tally for this chain; a nuclide is
//	tallied exactly once, on the chain where it entered.
//
// Loops:
//
//	The nuclear graph is cyclic (isomer chains, (n,2n)/(n,g) ladders). When
//	a daughter already appears earlier in the chain the new rank records
//	that first appearance in loopRank, and the kernel switches to the
//	degenerate-pole solution for elements spanning the loop.
//
// Complexity:
//
//	Build O(daughters) per step · CollapseRates O(nFluxes·length) ·
//	FillTMat O(length²) kernel calls, rows ≥ NewRank only.
package chain
