// Package aoc2024 collects three small puzzle solvers that read a text
// file, pull integers out of it and reduce them to one number.
//
// Under the hood the work is split into subpackages:
//
//	reports/   — step-safety classification of integer sequences
//	distance/  — sum of gaps between two sorted columns
//	mulscan/   — extraction of mul(a,b) instructions and their product sum
//	lineparse/ — permissive whitespace tokenizer shared by the solvers
//	cmd/aoc    — command line driver (distance | reports | mul)
//
// Quick example:
//
//	reports.IsSafe([]int{7, 6, 4, 2, 1})       // true: steps -1 -2 -2 -1
//	reports.IsSafe([]int{1, 3, 2, 4, 5})       // false: direction changes
//
//	go install github.com/katalvlaran/aoc2024/cmd/aoc@latest
package aoc2024
