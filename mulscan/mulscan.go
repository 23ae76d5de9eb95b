// Package mulscan finds well-formed mul(a,b) instructions in corrupted text
// and sums their products.
//
// Only the exact form mul(<digits>,<digits>) counts: no spaces, no signs,
// square brackets or other delimiters. Operands that do not fit in 32 bits
// are dropped along with their instruction.
package mulscan

import (
	"regexp"
	"strconv"
)

var mulPattern = regexp.MustCompile(`mul\((\d+),(\d+)\)`)

// Pair is one extracted mul(A,B) instruction.
type Pair struct {
	A, B int
}

// Product returns A*B.
func (p Pair) Product() int {
	return p.A * p.B
}

// Extract returns every mul(a,b) instruction in input, left to right.
// The result is never nil.
func Extract(input string) []Pair {
	matches := mulPattern.FindAllStringSubmatch(input, -1)
	out := make([]Pair, 0, len(matches))
	for _, m := range matches {
		a, err := strconv.ParseInt(m[1], 10, 32)
		if err != nil {
			continue
		}
		b, err := strconv.ParseInt(m[2], 10, 32)
		if err != nil {
			continue
		}
		out = append(out, Pair{A: int(a), B: int(b)})
	}

	return out
}

// MultiplyAndSum returns Σ A*B over pairs; 0 for none.
func MultiplyAndSum(pairs []Pair) int {
	sum := 0
	for _, p := range pairs {
		sum += p.Product()
	}

	return sum
}
