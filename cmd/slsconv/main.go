// Command slsconv animates the convolution of a standard linear solid
// relaxation kernel with a sigmoid strain-rate pulse.
//
// Usage:
//
//	slsconv [play] [flags]
//	slsconv report [flags]
//
// Examples:
//
//	slsconv
//	slsconv --preset short --backend term
//	slsconv --samples 4000 --tau 50 --tail slide
//	slsconv report --rows 20
package main

func main() {
	Execute()
}
