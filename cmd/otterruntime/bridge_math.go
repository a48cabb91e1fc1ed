package main

import "C"

import "github.com/Ottrlang/otterlang/internal/runtimestd"

//export otter_std_math_sqrt
func otter_std_math_sqrt(v C.double) C.double { return C.double(runtimestd.Sqrt(float64(v))) }

//export otter_std_math_pow
func otter_std_math_pow(base, exponent C.double) C.double {
	return C.double(runtimestd.Pow(float64(base), float64(exponent)))
}

//export otter_std_math_sin
func otter_std_math_sin(v C.double) C.double { return C.double(runtimestd.Sin(float64(v))) }

//export otter_std_math_cos
func otter_std_math_cos(v C.double) C.double { return C.double(runtimestd.Cos(float64(v))) }
