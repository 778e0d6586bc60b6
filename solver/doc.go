// Package solver orchestrates a full activation calculation: for every
// target nuclide it builds chains, walks the irradiation schedule, and
// tallies concentrations into per-mixture, per-component results.
//
// What:
//
//   - Mixture/Component: the material bookkeeping. A component lists its
//     target nuclides with number densities; a mixture is an ordered set of
//     components. The same target may appear in several components — each
//     (mixture, component) pair receives its own scaled results.
//   - Solver: the top-level driver. Solve iterates targets in KZA order;
//     per target it creates one Chain and, for every mixture containing the
//     target, one schedule storage tree. Each valid chain bumps the
//     generation token (invalidating the schedule's per-chain decay caches),
//     collapses rates, populates decay matrices once, evaluates the
//     schedule per mixture and tallies.
//   - Output: per-target, per-component scaled rows, convertible to the
//     binary dump records of package result.
//
// Configuration follows the functional-option pattern: DefaultOptions(),
// WithTruncationLimit, WithIgnoreLimit, WithMode. Option constructors panic
// on nonsensical values (programmer error); cross-field validation happens
// in New and returns errors.
//
// Concurrency: a Solver is single-threaded by design. Targets are
// independent — callers wanting parallelism run one Solver per target set
// with separate storages and merge the outputs.
//
// Errors:
//
//	ErrBadLimits     - ignore limit exceeds the truncation limit
//	ErrNoSchedule    - nil or cycle-carrying schedule (wraps the cause)
//	flux.ErrGroupMismatch - data service and flux registry disagree on the
//	group structure (fatal at construction, reported with both sizes)
package solver
