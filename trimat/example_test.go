package trimat_test

import (
	"fmt"

	"github.com/katalvlaran/alara/trimat"
)

// ExampleTri_Pow shows repeated pulsing as a matrix power: three identical
// pulses with no dwell compose to T³.
func ExampleTri_Pow() {
	T := trimat.Identity(2)
	_ = T.Set(0, 0, 0.5)  // half the parent survives one pulse
	_ = T.Set(1, 0, 0.5)  // the other half becomes the daughter
	_ = T.Set(1, 1, 1.0)  // daughter is stable

	T3, _ := T.Pow(3)
	v, _ := T3.At(0, 0)
	fmt.Printf("parent after 3 pulses: %.3f\n", v)
	// Output: parent after 3 pulses: 0.125
}
