// Package result accumulates per-nuclide concentration contributions and
// persists them in the solver's binary dump format.
//
// What:
//
//   - List: the per-target accumulator. One row per daughter nuclide
//     encountered in any chain rooted at the target; each row holds
//     nCoolingTimes+1 values (shutdown first, then one per cooling time).
//     TallyChain pulls the rows of the current chain out of the schedule
//     storage, from the chain's set rank to its tail, and adds them in.
//   - Record/Entry and the dump codec: one record per target with one
//     entry per mixture component that contains it, written little-endian
//     with 32-bit integers and IEEE-754 doubles. Read-back reproduces the
//     values bit for bit.
//
// Why rows are ordered:
//
//	Rows keep first-touch order, so output listings and dump files are
//	reproducible run to run without sorting.
//
// Errors:
//
//	ErrCorruptRecord - a dump record's layout does not match its counts;
//	reported with the offending target.
package result
