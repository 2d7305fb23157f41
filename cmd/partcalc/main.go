// Package main provides the partcalc CLI, which lays out scene files with
// the part calculation engine.
//
// Usage:
//
//	partcalc solve [scene.yaml...]     Print the solved geometry of every part
//	partcalc frames scene.yaml         Step the scene's transitions frame by frame
//	partcalc minsize scene.yaml        Print the smallest container size that fits
//	partcalc render scene.yaml         Draw the scene in the terminal
//
// Examples:
//
//	partcalc solve -o json dialog.yaml
//	partcalc frames --frames 10 dialog.yaml
//	partcalc render --snapshot --width 40 --height 12 dialog.yaml
package main

import (
	"fmt"
	"os"

	"github.com/grindlemire/go-parts/internal/debug"
)

const version = "0.1.0"

func main() {
	err := newRootCmd().Execute()
	_ = debug.Sync()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
