package seqio

// Record is one FASTA or FASTQ entry. Header keeps its '>' or '@' marker.
// Qual is nil for FASTA. Seq and Qual are allocated per record.
type Record struct {
	Header string
	Seq    []byte
	Qual   []byte
}
