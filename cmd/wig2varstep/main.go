// cmd/wig2varstep/main.go
package main

import (
	"flatfile/internal/appshell"
	"flatfile/internal/wigapp"
)

func main() { appshell.Main(wigapp.RunContext) }
