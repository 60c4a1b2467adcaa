package main

import (
	"fmt"
	"os"

	"rentorbuy/internal/cli"
	"rentorbuy/internal/logger"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	env := os.Getenv("ENV")
	if env == "" {
		env = "production"
	}
	logger.Init(env)
	defer logger.Sync()

	if err := cli.NewRootCommand(version).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		logger.Sync()
		os.Exit(1)
	}
}
