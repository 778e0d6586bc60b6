// Package nucdata defines the narrow query interface the activation engine
// consumes for nuclear data, an in-memory Library implementing it, and the
// RateCache that memoizes flux-collapsed scalar rates.
//
// What:
//
//   - Service: the read-only contract of §"external interfaces" — enumerate
//     a parent's daughters with the reaction path that produces each, fetch
//     group-wise production/destruction rate vectors, decay constants,
//     branching ratios and fission yields.
//   - Library: an adjacency-list store of nuclides and reaction edges with
//     a small builder surface. Immutable once handed to the solver.
//   - RateCache: memoizes collapsed scalars keyed by flux identity so the
//     repeated queries during chain solution are O(1) after first touch.
//
// Why:
//
//	Library parsing of on-disk formats is out of scope; everything upstream
//	of the solver binds to Service only, so tests and the CLI construct
//	problems directly through the Library builder.
//
// Ordering:
//
//	Daughters returns edges in a deterministic order (daughter KZA
//	ascending, then decay edges before transmutation edges, then reaction
//	label): chain construction is depth-first and
//	the traversal order must be reproducible run to run.
//
// Errors:
//
//	ErrGroupMismatch (from package flux) - rate vector length differs from
//	the library's group structure; fatal at build time, never at query time.
//	Missing data is not an error anywhere in this package: unknown nuclides
//	have no daughters, nil rate vectors collapse to zero, absent scalars
//	read as zero.
package nucdata
