package utils

import "math/rand/v2"

// Picker returns an index in [0, n). n is always greater than zero.
type Picker func(n int) int

func RandomPicker() Picker {
	return rand.IntN
}

func PickOne[T any](items []T, pick Picker) (T, bool) {
	var zero T
	if len(items) == 0 {
		return zero, false
	}
	if pick == nil {
		pick = rand.IntN
	}
	return items[pick(len(items))], true
}
