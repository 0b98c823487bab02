// cmd/seqchunk/main.go
package main

import (
	"flatfile/internal/appshell"
	"flatfile/internal/chunkapp"
)

func main() { appshell.Main(chunkapp.RunContext) }
