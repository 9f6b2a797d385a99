package matdesc_test

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/velatra/descmat/atoms"
	"github.com/velatra/descmat/coulomb"
	"github.com/velatra/descmat/matdesc"
)

// //////////////////////////////////////////////////////////////////////////////
// ExampleEngine_Create
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	Describe a single water molecule (H, O, H) with the Coulomb kernel,
//	keeping the structure's own atom order (PermNone) and padding to a
//	capacity of 5 atoms. The three real diagonal entries are the atomic
//	self-energies 0.5·Z^2.4; the trailing two are padding.
//
// Complexity: O(N²) — one kernel evaluation plus padding.
func ExampleEngine_Create() {
	angle := 76.0 / 180.0 * math.Pi
	pos := mat.NewDense(3, 3, []float64{
		0, 0, 0,
		0.95, 0, 0,
		0.95 * (1 + math.Cos(angle)), 0.95 * math.Sin(angle), 0,
	})
	water, err := atoms.FromSymbols([]string{"H", "O", "H"}, pos)
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	engine, err := matdesc.New(coulomb.New(), matdesc.Options{
		NAtomsMax:   5,
		Permutation: matdesc.PermNone,
	})
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	cm, err := engine.Create(water)
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	rows, cols := cm.Dims()
	fmt.Printf("shape=%dx%d\n", rows, cols)
	for i := 0; i < rows; i++ {
		fmt.Printf("diag[%d]=%.4f\n", i, cm.At(i, i))
	}
	// Output:
	// shape=5x5
	// diag[0]=0.5000
	// diag[1]=73.5167
	// diag[2]=0.5000
	// diag[3]=0.0000
	// diag[4]=0.0000
}

// ExampleEngine_NumFeatures shows how the feature count depends on the
// permutation mode alone.
func ExampleEngine_NumFeatures() {
	matrixMode, _ := matdesc.New(coulomb.New(), matdesc.DefaultOptions(5))
	spectrumMode, _ := matdesc.New(coulomb.New(), matdesc.Options{
		NAtomsMax:   5,
		Permutation: matdesc.PermEigenspectrum,
	})

	fmt.Println("sorted_l2:", matrixMode.NumFeatures())
	fmt.Println("eigenspectrum:", spectrumMode.NumFeatures())
	// Output:
	// sorted_l2: 25
	// eigenspectrum: 5
}
