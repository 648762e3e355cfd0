// Package main generates the demo transaction corpus as JSON files.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"fraudguard/internal/generator"
)

func main() {
	cfg := generator.DefaultConfig()
	var (
		random      = flag.Int("random", cfg.RandomCount, "number of randomized filler transactions")
		seed        = flag.Int64("seed", cfg.Seed, "random seed for reproducible generation")
		outputDir   = flag.String("output-dir", "data", "directory to write the corpus files")
		writeStdout = flag.Bool("stdout", false, "write the combined dataset to stdout instead of files")
	)
	flag.Parse()

	cfg.RandomCount = *random
	cfg.Seed = *seed

	dataset := generator.New(cfg).Generate()

	if *writeStdout {
		if err := json.NewEncoder(os.Stdout).Encode(dataset); err != nil {
			fmt.Fprintf(os.Stderr, "failed to write dataset to stdout: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if err := generator.WriteDataset(dataset, *outputDir); err != nil {
		fmt.Fprintf(os.Stderr, "failed to write dataset: %v\n", err)
		os.Exit(1)
	}

	total := len(dataset.Legitimate) + len(dataset.Suspicious) + len(dataset.Fraudulent) + len(dataset.Random)
	fmt.Printf("Generated %d transactions and %d profiles into %s\n", total, len(dataset.Profiles), *outputDir)
}
