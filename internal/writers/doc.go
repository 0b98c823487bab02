// Package writers holds the output plumbing shared by the tools: buffered
// stdout flushing, exit codes for write failures, and broken-pipe handling
// for pipelines like `seqchunk reads.fq -c 50 | head`.
package writers
