// utils.go
// Copyright (C) 2023 Vilhjálmur Þorsteinsson / Miðeind ehf.

// This file contains general utility functions.

package skrafl

// Return true if a slice of runes contains a given rune.
func ContainsRune(s []rune, r rune) bool {
	for _, c := range s {
		if c == r {
			return true
		}
	}
	return false
}
