// Package kernel holds the free-standing numerical routines that evaluate
// single elements of a chain transfer matrix under one constant-flux pulse.
//
// What:
//
//	An off-diagonal element T[row,col] is the inverse Laplace transform of
//
//	    Π_{k=col+1..row} P[k] · Π_{k=col..row} 1/(s + d[k])
//
//	evaluated at the pulse length t. Three methods implement it:
//
//	  - Bateman: the classic closed form, valid when all poles d[col..row]
//	    are distinct. Uses expm1 differences for stability at small d·t.
//	  - LaplaceInverse: generalized inversion that groups nearly equal poles
//	    into multiplicities and applies the derivative recurrence, handling
//	    the degeneracies that loops in the nuclear graph introduce.
//	  - LaplaceExpansion: a truncated Taylor expansion in matrix form,
//	    cheap when every pole in the segment is small; an a-priori bound
//	    (SmallExpansion) predicts whether 15 terms suffice.
//
// Why:
//
//	No single method is robust across the dynamic range of destruction
//	rates (stable isotopes to Be-8). FillTElement selects adaptively and
//	falls back, so a non-finite intermediate never escapes this package.
//
// Failure semantics:
//
//	None of these routines return errors. Each reports a boolean verdict:
//	"finite and non-negative" for Bateman and LaplaceInverse, "converged
//	and finite" for LaplaceExpansion; FillTElement chains the fallbacks and the ultimate
//	fallback (inversion) yields a finite value, possibly 0.
package kernel
