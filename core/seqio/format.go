package seqio

// Format is the sequence file format detected by Sniff.
type Format int

const (
	Invalid Format = iota
	FASTA
	FASTQ
)

func (f Format) String() string {
	switch f {
	case FASTA:
		return "fasta"
	case FASTQ:
		return "fastq"
	case Invalid:
		return "invalid"
	default:
		return "unknown"
	}
}
