// core/lenstats/summary.go
package lenstats

import (
	"fmt"
	"io"

	"flatfile-core/seqio"
)

// Summary condenses one histogram.
type Summary struct {
	Name    string
	Format  seqio.Format
	Records int
	Bases   int
	Min     int
	Max     int
	Mean    float64
	N50     int
}

// SummaryTSVHeader is the header row written by WriteSummaryTSV.
const SummaryTSVHeader = "file\trecords\tbases\tmin_length\tmax_length\tmean_length\tn50"

// Summarize computes record and base totals, extremes, mean and N50 (the
// length L such that records of length >= L hold at least half the bases).
func Summarize(name string, h Histogram) Summary {
	s := Summary{Name: name}
	lengths := h.Lengths()
	if len(lengths) == 0 {
		return s
	}
	s.Min, s.Max = lengths[0], lengths[len(lengths)-1]
	for _, l := range lengths {
		s.Records += h[l]
		s.Bases += l * h[l]
	}
	s.Mean = float64(s.Bases) / float64(s.Records)

	acc := 0
	for i := len(lengths) - 1; i >= 0; i-- {
		l := lengths[i]
		acc += l * h[l]
		if 2*acc >= s.Bases {
			s.N50 = l
			break
		}
	}
	return s
}

// Summary summarizes the column, format included.
func (c Column) Summary() Summary {
	s := Summarize(c.Name, c.Hist)
	s.Format = c.Format
	return s
}

// Summaries returns one Summary per column.
func (r *Report) Summaries() []Summary {
	out := make([]Summary, 0, len(r.Columns))
	for _, c := range r.Columns {
		out = append(out, c.Summary())
	}
	return out
}

func WriteSummaryTSV(w io.Writer, list []Summary) error {
	if _, err := fmt.Fprintln(w, SummaryTSVHeader); err != nil {
		return err
	}
	for _, s := range list {
		if _, err := fmt.Fprintf(w, "%s\t%d\t%d\t%d\t%d\t%.2f\t%d\n",
			s.Name, s.Records, s.Bases, s.Min, s.Max, s.Mean, s.N50,
		); err != nil {
			return err
		}
	}
	return nil
}
