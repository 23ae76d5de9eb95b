// Command aoc runs the puzzle solvers against an input file.
//
//	aoc distance --input day1.txt
//	aoc reports  --input day2.txt --max-step 3
//	aoc mul      --input day3.txt
package main

import (
	"fmt"
	"os"

	"github.com/katalvlaran/aoc2024/internal/cli"
)

func main() {
	if err := cli.NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
