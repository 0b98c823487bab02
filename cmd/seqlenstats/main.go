// cmd/seqlenstats/main.go
package main

import (
	"flatfile/internal/appshell"
	"flatfile/internal/lenstatsapp"
)

func main() { appshell.Main(lenstatsapp.RunContext) }
