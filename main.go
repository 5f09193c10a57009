package main

import (
	"fmt"
	"os"

	"github.com/KirkDiggler/initiative/internal/cli"
	"github.com/KirkDiggler/initiative/internal/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	rootCmd := cli.NewRootCommand(cfg, cli.RedisConnector(cfg))
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
