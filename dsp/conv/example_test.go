package conv_test

import (
	"fmt"

	"github.com/cwbudde/algo-viscoconv/dsp/conv"
)

func ExampleDirect() {
	result, err := conv.Direct([]float64{1, 2, 3}, []float64{1, 1, 1})
	if err != nil {
		panic(err)
	}
	fmt.Println(result)

	// Output:
	// [1 3 6 5 3]
}

func ExampleCausal() {
	kernel := []float64{1, 0.5, 0.25}
	rate := []float64{0, 1, 0, 0}
	step := []float64{2, 2, 2, 2}

	stress, err := conv.Causal(kernel, rate, step, conv.MethodDirect)
	if err != nil {
		panic(err)
	}
	fmt.Println(stress)

	// Output:
	// [0 2 1 0.5]
}

func ExampleSliding_Window() {
	s, err := conv.NewSliding([]float64{1, 2, 3, 4})
	if err != nil {
		panic(err)
	}
	for i := 1; i < s.Len(); i++ {
		fmt.Println(i, s.Window(i))
	}

	// Output:
	// 1 [1 0 0 0]
	// 2 [2 1 0 0]
	// 3 [3 2 1 0]
}
