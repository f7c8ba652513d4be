package main

import (
	"context"
	"os"

	"github.com/charmbracelet/fang"
)

var version = "dev"

func main() {
	ctx := context.Background()
	cmd := newRootCmd()

	if err := fang.Execute(ctx, cmd,
		fang.WithVersion(version),
	); err != nil {
		os.Exit(1)
	}
}
