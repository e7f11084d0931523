package internal

import (
	"iter"
)

// IterSeq2Concat concatenates multiple key/value iterators into a single
// iterator sequence. Only the first value seen for a key is yielded.
func IterSeq2Concat[K comparable, V any](seqs ...iter.Seq2[K, V]) iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		seen := map[K]bool{}
		for _, seq := range seqs {
			for key, val := range seq {
				if seen[key] {
					continue
				}
				seen[key] = true
				if !yield(key, val) {
					return
				}
			}
		}
	}
}
