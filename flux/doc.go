// Package flux manages the group-wise neutron flux vectors of a problem and
// the scalar collapse of rate vectors against them.
//
// What:
//
//   - Vector: a sequence of ngroups non-negative values, units cm⁻²·s⁻¹.
//   - Registry: assigns each distinct flux vector a small integer identity.
//     Identity is content-derived: the registry hashes the canonical
//     little-endian encoding of the vector (BLAKE3) and maps equal content
//     to one ID, so repeated definitions of the same flux share collapsed
//     rates downstream.
//   - Collapse: the inner product ⟨σ, φ⟩ over the fixed group structure.
//
// Why:
//
//	Every (flux, nuclide) pair collapses a handful of rate vectors to four
//	scalars, and those scalars are cached by flux ID. Deduplicating fluxes
//	by content keeps that cache — and the per-flux blocks of the chain's
//	collapsed-rate array — as small as the problem allows.
//
// Errors:
//
//	ErrGroupMismatch - vector length differs from the registry's ngroups.
//	                   Fatal at data-binding time, reported with both sizes.
package flux
