package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/kneto/nlcmd/internal/infrastructure/cli"
)

func main() {
	ctx := context.Background()
	opts := cli.Options{
		Verbose: envBool("NLCMD_DEBUG"),
		DryRun:  envBool("NLCMD_DRY_RUN"),
	}

	root, err := cli.NewRootCmd(ctx, opts)
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}

	if err := root.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func envBool(name string) bool {
	value := os.Getenv(name)
	return strings.EqualFold(value, "1") || strings.EqualFold(value, "true")
}
