package gridsearch

import "golang.org/x/exp/constraints"

// Number is a type that can be used in math functions.
type Number interface {
	constraints.Float | constraints.Integer
}

// Sum returns the sum of the numbers.
func Sum[T Number](nums ...T) T {
	var sum T
	for _, v := range nums {
		sum += v
	}
	return sum
}

// Max returns the largest of the numbers, or zero if there are none.
func Max[T Number](nums ...T) T {
	var m T
	for i, v := range nums {
		if i == 0 || v > m {
			m = v
		}
	}
	return m
}

// Min returns the smallest of the numbers, or zero if there are none.
func Min[T Number](nums ...T) T {
	var m T
	for i, v := range nums {
		if i == 0 || v < m {
			m = v
		}
	}
	return m
}

// AbsDiff returns the absolute difference between x and y. It is safe for
// unsigned types.
func AbsDiff[T Number](x, y T) T {
	if x < y {
		return y - x
	}
	return x - y
}
