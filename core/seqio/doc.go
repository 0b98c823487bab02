// Package seqio reads FASTA and FASTQ records from plain, gzip or zstd
// streams. Sniff decides the format from the first content line and pushes
// what it read back onto the LineReader, so detection never needs to seek.
package seqio
