// core/lenstats/histogram.go
package lenstats

import (
	"context"
	"sort"

	"flatfile-core/seqio"
)

// Histogram maps a sequence length to the number of records with that length.
type Histogram map[int]int

func (h Histogram) Add(length int) { h[length]++ }

// Max returns the largest length seen; ok is false for an empty histogram.
func (h Histogram) Max() (max int, ok bool) {
	for l := range h {
		if !ok || l > max {
			max, ok = l, true
		}
	}
	return max, ok
}

// Records is the total number of records counted.
func (h Histogram) Records() int {
	n := 0
	for _, c := range h {
		n += c
	}
	return n
}

// Lengths returns the distinct lengths in ascending order.
func (h Histogram) Lengths() []int {
	out := make([]int, 0, len(h))
	for l := range h {
		out = append(out, l)
	}
	sort.Ints(out)
	return out
}

// Count reads every record from r into a new Histogram.
func Count(ctx context.Context, r seqio.Reader) (Histogram, error) {
	h := Histogram{}
	err := seqio.Each(ctx, r, func(rec seqio.Record) error {
		h.Add(len(rec.Seq))
		return nil
	})
	return h, err
}
