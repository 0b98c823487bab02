// internal/writers/jsonl.go
package writers

import (
	"encoding/json"
	"io"

	"flatfile-core/lenstats"

	"flatfile/internal/jsonlutil"
	"flatfile/pkg/api"
)

// ToAPISummary converts a length summary to its v1 wire form.
func ToAPISummary(s lenstats.Summary) api.LengthSummaryV1 {
	return api.LengthSummaryV1{
		File:       s.Name,
		Format:     s.Format.String(),
		Records:    s.Records,
		Bases:      s.Bases,
		MinLength:  s.Min,
		MaxLength:  s.Max,
		MeanLength: s.Mean,
		N50:        s.N50,
	}
}

// StartSummaryJSONLWriter streams each summary as one JSON line (v1).
func StartSummaryJSONLWriter(out io.Writer, bufSize int) *jsonlutil.Stream[lenstats.Summary] {
	return jsonlutil.Start[lenstats.Summary](out, bufSize,
		func(enc *json.Encoder, s lenstats.Summary) error {
			return enc.Encode(ToAPISummary(s))
		},
		IsBrokenPipe,
	)
}
