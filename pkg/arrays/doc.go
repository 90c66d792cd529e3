/*
Package arrays provides left folds over slices.

Fold threads an accumulator through a slice from left to right. Reduce is
the seedless variant that starts from the first element, and Sum is Reduce
with addition.

	total := arrays.Sum(12, 3, 4, 15) // 34
*/
package arrays
