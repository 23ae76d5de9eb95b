package lineparse_test

import (
	"testing"

	"github.com/katalvlaran/aoc2024/lineparse"
	"github.com/stretchr/testify/assert"
)

// TestParseLine covers spacing, junk tokens and the 32-bit range.
func TestParseLine(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want []int
	}{
		{"plain", "1 3 5 7 9", []int{1, 3, 5, 7, 9}},
		{"extra spaces", "  1   3   5  ", []int{1, 3, 5}},
		{"tabs", "4\t5\t\t6", []int{4, 5, 6}},
		{"junk dropped", "1 x 2 3.5 -4 +5", []int{1, 2, -4, 5}},
		{"out of range dropped", "2147483647 2147483648 -2147483648 -2147483649", []int{2147483647, -2147483648}},
		{"empty", "", []int{}},
		{"only junk", "a b c", []int{}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, lineparse.ParseLine(tc.in))
		})
	}
}

// TestParseLines checks regular and irregular multi-line input.
func TestParseLines(t *testing.T) {
	got := lineparse.ParseLines("1 3 5 7 9\n2 4 6 8 10\n3 6 9 12 15")
	assert.Equal(t, [][]int{{1, 3, 5, 7, 9}, {2, 4, 6, 8, 10}, {3, 6, 9, 12, 15}}, got)

	got = lineparse.ParseLines("1 2 3\n  4  5  \n6 7 8 9")
	assert.Equal(t, [][]int{{1, 2, 3}, {4, 5}, {6, 7, 8, 9}}, got)

	got = lineparse.ParseLines("1 2\r\n\r\n3 4\n")
	assert.Equal(t, [][]int{{1, 2}, {}, {3, 4}}, got, "blank lines are kept, trailing newline is not")

	assert.Nil(t, lineparse.ParseLines(""))
}

// TestParsePairs skips short lines and ignores extra columns.
func TestParsePairs(t *testing.T) {
	left, right := lineparse.ParsePairs("3   4\n4 3\nbad\n7\n2 5 99\n")
	assert.Equal(t, []int{3, 4, 2}, left)
	assert.Equal(t, []int{4, 3, 5}, right)

	left, right = lineparse.ParsePairs("")
	assert.Empty(t, left)
	assert.Empty(t, right)
}
