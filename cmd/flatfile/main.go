// cmd/flatfile/main.go
package main

import (
	"flatfile/internal/appshell"
	"flatfile/internal/flatfilecmd"
)

func main() { appshell.Main(flatfilecmd.Execute) }
