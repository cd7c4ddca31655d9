// Package test provides sequence and channel helpers shared by gather
// tests.
package test

import "iter"

// Naturals returns the infinite sequence 0, 1, 2, ...
func Naturals() iter.Seq[int] {
	return func(yield func(int) bool) {
		for i := 0; ; i++ {
			if !yield(i) {
				return
			}
		}
	}
}

// Take collects at most n values from seq, consuming exactly as many as
// it returns.
func Take[T any](seq iter.Seq[T], n int) []T {
	if n <= 0 {
		return nil
	}
	out := make([]T, 0, n)
	for val := range seq {
		out = append(out, val)
		if len(out) == n {
			break
		}
	}
	return out
}

// Chan sends each value into the returned channel and closes it.
func Chan[T any](values ...T) <-chan T {
	out := make(chan T, len(values))
	for _, val := range values {
		out <- val
	}
	close(out)
	return out
}
