// pkg/api/summary_v1.go
package api

// LengthSummaryV1 is the stable JSONL schema for per-file length summaries.
// Keep fields, names, and types stable. Add new fields only with ",omitempty".
type LengthSummaryV1 struct {
	File       string  `json:"file"`
	Format     string  `json:"format"` // "fasta" | "fastq"
	Records    int     `json:"records"`
	Bases      int     `json:"bases"`
	MinLength  int     `json:"min_length"`
	MaxLength  int     `json:"max_length"`
	MeanLength float64 `json:"mean_length"`
	N50        int     `json:"n50"`
}
