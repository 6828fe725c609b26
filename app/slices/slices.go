/* Apache v2 license
*  Copyright (C) <2019> Intel Corporation
*
*  SPDX-License-Identifier: Apache-2.0
 */

package slices

// Index returns the element index of the string in the array
func Index(vs []string, t string) int {
	for i, v := range vs {
		if v == t {
			return i
		}
	}
	return -1
}

// Contains returns true if the target string t is in the slice, and false otherwise.
func Contains(vs []string, t string) bool {
	return Index(vs, t) >= 0
}

// Map returns a new slice holding f applied to each element of vs.
func Map(vs []string, f func(string) string) []string {
	vsm := make([]string, len(vs))
	for i, v := range vs {
		vsm[i] = f(v)
	}
	return vsm
}
