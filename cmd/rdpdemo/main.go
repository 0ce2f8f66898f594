// Command rdpdemo samples a waveform, simplifies it with the
// Ramer-Douglas-Peucker algorithm and reports or plots the result.
//
// Usage:
//
//	rdpdemo --epsilon 0.01 --output wave.png
//	rdpdemo --shape triangle --cycles 3 --svg wave.svg -v
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
