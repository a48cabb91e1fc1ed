package runtimestd

import "math"

// Sqrt implements std.math.sqrt.
func Sqrt(v float64) float64 { return math.Sqrt(v) }

// Pow implements std.math.pow.
func Pow(base, exponent float64) float64 { return math.Pow(base, exponent) }

// Sin implements std.math.sin.
func Sin(v float64) float64 { return math.Sin(v) }

// Cos implements std.math.cos.
func Cos(v float64) float64 { return math.Cos(v) }
