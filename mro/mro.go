// Package mro computes C3 linearizations of class hierarchies.
//
// The algorithm is generic over any comparable element. Elements are compared
// with ==, so pointer elements are compared by identity: two distinct classes
// that share a name are never confused.
package mro

import (
	"errors"
	"slices"
)

// ErrInconsistent is returned when the sequences cannot be merged into one
// order that respects every sequence's precedence.
var ErrInconsistent = errors.New("inconsistent hierarchy")

// Merge performs a C3 merge of the given sequences.
//
// Each step selects the head of the first sequence that does not appear in
// the tail of any sequence, removes it from the head of every sequence that
// starts with it, and appends it to the result. The merge succeeds when all
// sequences are exhausted and fails with ErrInconsistent when no head
// qualifies. The input slices are not modified.
func Merge[T comparable](seqs [][]T) ([]T, error) {
	work := make([][]T, 0, len(seqs))
	total := 0
	for _, seq := range seqs {
		if len(seq) > 0 {
			work = append(work, seq)
			total += len(seq)
		}
	}
	result := make([]T, 0, total)
	for len(work) > 0 {
		head, ok := nextHead(work)
		if !ok {
			return nil, ErrInconsistent
		}
		result = append(result, head)
		work = removeHead(work, head)
	}
	return result, nil
}

// Linearize returns the merge of every base's full linearization (as reported
// by full, the base itself first) followed by the base list itself. The
// result does not include the class being linearized.
func Linearize[T comparable](bases []T, full func(T) []T) ([]T, error) {
	seqs := make([][]T, 0, len(bases)+1)
	for _, base := range bases {
		seqs = append(seqs, full(base))
	}
	seqs = append(seqs, bases)
	return Merge(seqs)
}

func nextHead[T comparable](work [][]T) (T, bool) {
	for _, seq := range work {
		candidate := seq[0]
		if !inAnyTail(work, candidate) {
			return candidate, true
		}
	}
	var zero T
	return zero, false
}

func inAnyTail[T comparable](work [][]T, candidate T) bool {
	for _, seq := range work {
		if slices.Contains(seq[1:], candidate) {
			return true
		}
	}
	return false
}

// removeHead drops head from the front of every sequence that starts with it
// and discards sequences that become empty. Sequences are resliced, never
// written to.
func removeHead[T comparable](work [][]T, head T) [][]T {
	out := work[:0]
	for _, seq := range work {
		if seq[0] == head {
			seq = seq[1:]
		}
		if len(seq) > 0 {
			out = append(out, seq)
		}
	}
	return out
}
