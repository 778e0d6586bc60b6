// Package nuclide defines the KZA nuclide identifier used throughout the
// activation engine, plus the fission-type enumeration consumed by the
// nuclear-data layer.
//
// What:
//
//   - KZA: an integer encoding Z·10000 + A·10 + I (Z = atomic number,
//     A = mass number, I = isomeric-state index). Unique per physical
//     species, immutable, cheap to compare and to use as a map key.
//   - FissionType: which fission spectrum a yield belongs to.
//
// Why:
//
//	Every layer of the engine — data service, chains, results, dump files —
//	refers to nuclides by this one identity. Keeping it a distinct named type
//	(rather than a bare int) lets the compiler catch rank/identity mix-ups.
//
// Errors:
//
//	ErrBadKZA - encoded value does not describe a physical nuclide.
package nuclide
