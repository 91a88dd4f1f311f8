// SPDX-License-Identifier: EPL-2.0

package utils

// RoundUpToMultiple rounds n up to the nearest multiple of m.
// Returns n unchanged when m is not positive.
func RoundUpToMultiple(n, m int) int {
	if m <= 0 {
		return n
	}
	return ((n + m - 1) / m) * m
}
