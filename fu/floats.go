package fu

import (
	"gonum.org/v1/gonum/floats/scalar"
	"strconv"
)

/*
Round rounds x to prec decimal places, halves go to the even neighbour.
Zero results never carry the sign bit, so "-0" can't reach the output.
*/
func Round(x float64, prec int) float64 {
	return scalar.RoundEven(x, prec)
}

// Roundv rounds every element of a in place and returns it
func Roundv(a []float64, prec int) []float64 {
	for i, x := range a {
		a[i] = Round(x, prec)
	}
	return a
}

/*
Ftoa formats x in the shortest form that parses back to the same value,
so 0.5 is "0.5" and 1 is "1"
*/
func Ftoa(x float64) string {
	return strconv.FormatFloat(x, 'f', -1, 64)
}

// Fnzi returns the first non zero value or 0
func Fnzi(a ...int) int {
	for _, x := range a {
		if x != 0 {
			return x
		}
	}
	return 0
}
