// Package schedule models irradiation histories as a tree of schedule nodes
// and composes per-pulse transfer matrices into one operator per cooling
// time.
//
// What:
//
//   - PulseHistory: a multi-level pulsing pattern (pulse count + dwell time
//     per level). DoHistory wraps a base transfer matrix into the full
//     pattern; Merge fuses two histories around a gap, which is what makes
//     single-child schedules collapsible.
//   - Schedule: one node of the schedule tree — either a leaf pulse
//     (operation time + flux) or a composite of ordered sub-schedules, each
//     with a pre-delay and a pulsing history. The root is the same type
//     with Top set: it carries cooling times instead of a final delay.
//   - Storage: the per-solve numerical mirror of a Schedule — the operation
//     block, after-history, and total matrices per node, plus one cooled
//     matrix per cooling time at the root. Schedules are shared, read-only
//     state during the solve; Storage owns all transient matrices.
//
// Preprocessing:
//
//	Validate rejects trees where a node reaches itself (ErrScheduleCycle).
//	Collapse then removes every single-child composite by merging histories,
//	so that afterwards no composite has exactly one child and leaves are
//	true pulses. Collapse mutates the tree; run it once, before solving.
//
// Caching:
//
//	Decay matrices depend only on the chain, not on fluxes, and schedule
//	nodes and histories can be referenced from many points in the tree.
//	SetDecay is keyed by a Generation token: a node whose token matches the
//	current generation skips recomputation.
//
// Errors:
//
//	ErrScheduleCycle - a node transitively references itself (fatal at
//	preprocessing; the error reports the depth at which the repeated node
//	is reached).
package schedule
