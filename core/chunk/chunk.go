// core/chunk/chunk.go
package chunk

import (
	"errors"
	"fmt"

	"flatfile-core/seqio"
)

// ErrInvalidSize is returned by Spec.Validate for sizes below 1.
var ErrInvalidSize = errors.New("chunk size must be at least 1")

// Spec selects the block size and whether blocks overlap.
//
// Fixed blocks tile the sequence (the last one may be shorter); sliding
// blocks start at every offset 0..len-Size and all have length Size.
type Spec struct {
	Size    int
	Sliding bool
}

func (s Spec) Validate() error {
	if s.Size < 1 {
		return fmt.Errorf("%w (got %d)", ErrInvalidSize, s.Size)
	}
	return nil
}

// Block is one piece of a record. Index is 0-based within the record.
// Qual is nil when the record has no quality string.
type Block struct {
	Index int
	Seq   []byte
	Qual  []byte
}

// Split cuts rec into blocks according to s and calls emit for each, in order.
// Quality is cut at the same offsets as the sequence. Block slices alias rec.
func Split(rec seqio.Record, s Spec, emit func(Block) error) error {
	if err := s.Validate(); err != nil {
		return err
	}
	seq := rec.Seq
	if s.Sliding {
		for i := 0; i+s.Size <= len(seq); i++ {
			if err := emit(block(rec, i, i, i+s.Size)); err != nil {
				return err
			}
		}
		return nil
	}
	for off, idx := 0, 0; off < len(seq); off, idx = off+s.Size, idx+1 {
		end := off + s.Size
		if end > len(seq) {
			end = len(seq)
		}
		if err := emit(block(rec, idx, off, end)); err != nil {
			return err
		}
	}
	return nil
}

func block(rec seqio.Record, idx, start, end int) Block {
	b := Block{Index: idx, Seq: rec.Seq[start:end]}
	if rec.Qual != nil {
		b.Qual = clamp(rec.Qual, start, end)
	}
	return b
}

// clamp slices q with both bounds capped at len(q), so a quality line shorter
// than its sequence yields short or empty blocks.
func clamp(q []byte, start, end int) []byte {
	if start > len(q) {
		start = len(q)
	}
	if end > len(q) {
		end = len(q)
	}
	return q[start:end]
}
