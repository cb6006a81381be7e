package main

import (
	"authform/internal/cli"
	"embed"
)

//go:embed static
var staticFS embed.FS

func main() {
	cli.Execute(staticFS)
}
