// errors.go
// Copyright (C) 2024 Vilhjálmur Þorsteinsson / Miðeind ehf.

// This file declares the sentinel error kinds surfaced by the
// DawgBuilder and the text DAWG reader.

/*

This program is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

This program is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with this program.  If not, see <http://www.gnu.org/licenses/>.

*/

package skrafl

import "errors"

// Builder-time errors. ErrDuplicateWord is informational: the word
// is silently skipped and building continues. The others indicate a
// rejected word or, for the reader errors, a corrupt file.
var (
	// ErrOutOfOrder is returned when a word is not strictly greater
	// than its predecessor under the Alphabet's collation.
	ErrOutOfOrder = errors.New("word is not strictly greater than the previous word")

	// ErrDuplicateWord is returned when a word is identical to its
	// predecessor. The builder does not fail; the word is skipped.
	ErrDuplicateWord = errors.New("word is identical to the previous word")

	// ErrTooLong is returned when a word exceeds the builder's
	// maximum word length.
	ErrTooLong = errors.New("word exceeds the maximum word length")

	// ErrUnknownLetter is returned when a word contains a rune that
	// is neither an Alphabet letter nor the wildcard symbol.
	ErrUnknownLetter = errors.New("word contains a letter outside the alphabet")

	// ErrBuilderFinished is returned when AddWord is called on a
	// builder that has already been finalized via Finish.
	ErrBuilderFinished = errors.New("builder has already been finalized")

	// ErrMalformedLine is returned by the text DAWG reader when a
	// line does not parse according to the node grammar.
	ErrMalformedLine = errors.New("malformed DAWG text line")

	// ErrDanglingReference is returned by the text DAWG reader when
	// an edge refers to a node id with no corresponding line.
	ErrDanglingReference = errors.New("edge references a node id with no corresponding line")
)
