// main is the entry point for the heatgrid CLI.
package main

import (
	"github.com/huangsam/heatgrid/cmd"
	"github.com/huangsam/heatgrid/internal/contract"
)

func main() {
	err := cmd.Execute()
	if stopErr := cmd.StopProfiling(); stopErr != nil {
		contract.LogWarn("Cannot stop profiling", stopErr)
	}
	if err != nil {
		contract.LogFatal("Cannot render heatmap", err)
	}
}
