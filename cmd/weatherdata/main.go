package main

import (
	"context"
	"fmt"
	"os"
)

// Version is set by ldflags during build.
var Version = "dev"

func main() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
