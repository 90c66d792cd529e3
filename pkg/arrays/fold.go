package arrays

import "errors"

// ErrEmpty is returned by Reduce when there is no first element to seed the fold.
var ErrEmpty = errors.New("reduce of empty slice")

// Number is the set of types Sum can add.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Fold combines xs from left to right, starting with init.
func Fold[T, A any](xs []T, init A, fn func(A, T) A) A {
	acc := init
	for _, x := range xs {
		acc = fn(acc, x)
	}
	return acc
}

// Reduce folds xs[1:] into xs[0].
func Reduce[T any](xs []T, fn func(T, T) T) (T, error) {
	if len(xs) == 0 {
		var zero T
		return zero, ErrEmpty
	}
	return Fold(xs[1:], xs[0], fn), nil
}

// Sum adds xs with a strict left fold. The empty sum is zero.
func Sum[T Number](xs ...T) T {
	total, err := Reduce(xs, func(a, b T) T { return a + b })
	if err != nil {
		return 0
	}
	return total
}
