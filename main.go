// main is the entry point for the topsis CLI.
package main

import (
	"github.com/huangsam/topsis/cmd"
	"github.com/huangsam/topsis/internal/contract"
)

func main() {
	if err := cmd.Execute(); err != nil {
		contract.LogFatal("Error starting CLI", err)
	}
	if err := cmd.StopProfiling(); err != nil {
		contract.LogWarn("Failed to stop profiling", err)
	}
}
