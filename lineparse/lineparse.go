// Package lineparse turns puzzle input text into integer sequences.
//
// Parsing is permissive: tokens that are not base-10 integers in the
// signed 32-bit range are dropped silently and the rest are kept in order.
// None of the functions return an error.
package lineparse

import (
	"bufio"
	"strconv"
	"strings"
)

// ParseLine splits line on whitespace and returns every token that parses
// as a 32-bit signed integer. The result is never nil.
func ParseLine(line string) []int {
	fields := strings.Fields(line)
	out := make([]int, 0, len(fields))
	for _, f := range fields {
		v, err := strconv.ParseInt(f, 10, 32)
		if err != nil {
			continue
		}
		out = append(out, int(v))
	}

	return out
}

// ParseLines returns ParseLine for every line of text. Blank lines yield
// empty sequences; a trailing newline does not add a line. "\r\n" endings
// are accepted.
func ParseLines(text string) [][]int {
	var out [][]int
	forEachLine(text, func(line string) {
		out = append(out, ParseLine(line))
	})

	return out
}

// ParsePairs collects the first two integers of every line into left and
// right. Lines with fewer than two integers are skipped; extra integers are
// ignored.
func ParsePairs(text string) (left, right []int) {
	forEachLine(text, func(line string) {
		nums := ParseLine(line)
		if len(nums) < 2 {
			return
		}
		left = append(left, nums[0])
		right = append(right, nums[1])
	})

	return left, right
}

// forEachLine calls fn for every line of text, without line terminators.
func forEachLine(text string, fn func(string)) {
	sc := bufio.NewScanner(strings.NewReader(text))
	sc.Buffer(make([]byte, 0, 64*1024), len(text)+1)
	for sc.Scan() {
		fn(sc.Text())
	}
}
