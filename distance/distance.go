// Package distance sums the pairwise gaps between two sorted integer lists.
//
// Both lists are sorted ascending and paired by rank: the smallest left
// value with the smallest right value, and so on. The total distance is
// Σ |left[i] - right[i]| over the shorter of the two lengths.
//
// Complexity: O(n log n) time, O(n) memory for the sorted copies.
package distance

import "slices"

// TotalDistance returns the sum of |l - r| over rank-matched pairs of left
// and right. The inputs are not modified. Unpaired trailing values of the
// longer list are ignored.
func TotalDistance(left, right []int) int {
	l, r := slices.Clone(left), slices.Clone(right)
	slices.Sort(l)
	slices.Sort(r)

	n := min(len(l), len(r))
	sum := 0
	for i := 0; i < n; i++ {
		sum += abs(l[i] - r[i])
	}

	return sum
}

// abs returns the absolute value of an int.
func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
