// alphabet.go
// Copyright (C) 2024 Vilhjálmur Þorsteinsson / Miðeind ehf.

// This file implements the Alphabet: an ordered list of letters, a
// dense index for each, a one-bit-per-letter assignment, and a
// collation key used to validate and merge sorted word streams.

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

// IcelandicAlphabet contains the Icelandic letters as indexed in
// Icelandic DAWGs. The Icelandic alphabet does not contain 'c', 'q',
// 'w' or 'z'.
const IcelandicAlphabet = "aábdðeéfghiíjklmnoóprstuúvxyýþæö"

// EnglishAlphabet is used for the OTCWL and SOWPODS word lists.
const EnglishAlphabet = "abcdefghijklmnopqrstuvwxyz"

// PolishAlphabet is used for the OSPS word list.
const PolishAlphabet = "aąbcćdeęfghijklłmnńoóprsśtuwyzźż"

// NorwegianAlphabet is used for the NSF (Bokmål) word list.
const NorwegianAlphabet = "aäbcdefghijklmnoöpqrstuüvwxyzæøå"

// Wildcard is the reserved symbol standing for a blank rack tile. It
// is never itself a letter of an Alphabet.
const Wildcard rune = '?'

// FinalMarker is the reserved symbol embedded within a collapsed
// edge label to denote "a word ends here, mid-chain". It is never
// itself a letter of an Alphabet and never appears in input words.
const FinalMarker rune = '|'

// Alphabet is an ordered set of up to 32 distinct letters, each with
// a dense index and a one-bit assignment, used throughout the DAWG
// and move generator to avoid repeated rune comparisons.
type Alphabet struct {
	letters []rune
	index   map[rune]int
	bit     map[rune]uint32
	allSet  uint32
}

// NewAlphabet builds an Alphabet from an ordered, duplicate-free
// string of letters. It panics if the alphabet has more than 32
// letters (a bit-per-letter assignment cannot address more), or if
// the wildcard or final-marker symbols appear among the letters.
func NewAlphabet(letters string) *Alphabet {
	a := &Alphabet{}
	a.init(letters)
	return a
}

func (a *Alphabet) init(letters string) {
	runes := []rune(letters)
	if len(runes) > 32 {
		panic("Alphabet cannot have more than 32 letters")
	}
	a.letters = runes
	a.index = make(map[rune]int, len(runes))
	a.bit = make(map[rune]uint32, len(runes))
	a.allSet = 0
	for i, r := range runes {
		if r == Wildcard || r == FinalMarker {
			panic("Alphabet letter collides with a reserved symbol")
		}
		if _, dup := a.index[r]; dup {
			panic("Alphabet contains a duplicate letter")
		}
		bit := uint32(1) << uint(i)
		a.index[r] = i
		a.bit[r] = bit
		a.allSet |= bit
	}
}

// Len returns the number of letters in the Alphabet.
func (a *Alphabet) Len() int {
	return len(a.letters)
}

// Index returns the dense 0-based index of a letter, and whether it
// is a member of the Alphabet at all.
func (a *Alphabet) Index(r rune) (int, bool) {
	i, ok := a.index[r]
	return i, ok
}

// Letter returns the letter at a given dense index.
func (a *Alphabet) Letter(i int) rune {
	return a.letters[i]
}

// IsLetter returns true if r is a member letter of the Alphabet
// (the wildcard and final marker are never members).
func (a *Alphabet) IsLetter(r rune) bool {
	_, ok := a.index[r]
	return ok
}

// Bit returns the single-bit mask assigned to a letter, or zero if
// the rune is not a member of the Alphabet.
func (a *Alphabet) Bit(r rune) uint32 {
	return a.bit[r]
}

// AllSet returns a bitmask with every letter's bit set.
func (a *Alphabet) AllSet() uint32 {
	return a.allSet
}

// MakeSet converts a slice of runes to a bitmask of their letters. If
// any rune is the Wildcard, the Alphabet's full bitmask is returned,
// since a blank tile can stand for any letter.
func (a *Alphabet) MakeSet(runes []rune) uint32 {
	var s uint32
	for _, r := range runes {
		if r == Wildcard {
			return a.allSet
		}
		s |= a.bit[r]
	}
	return s
}

// Member returns true if r's bit is set in the given bitmask.
func (a *Alphabet) Member(r rune, set uint32) bool {
	return a.bit[r]&set != 0
}

// Compare implements the Alphabet's collation order between two
// words: it compares rune-by-rune using each rune's dense Alphabet
// index (not its Unicode code point), so that locale-specific
// letter ordering is respected consistently across input
// validation, stream merging, and duplicate detection (see
// spec.md §9's "Open question" on collation). It returns -1, 0, or 1
// the way strings.Compare does. A rune outside the Alphabet sorts
// after every Alphabet letter, so malformed words still compare
// deterministically; UnknownLetter is rejected earlier by the
// caller in any case.
func (a *Alphabet) Compare(w1, w2 []rune) int {
	n := len(w1)
	if len(w2) < n {
		n = len(w2)
	}
	for i := 0; i < n; i++ {
		k1, k2 := a.collationKey(w1[i]), a.collationKey(w2[i])
		if k1 != k2 {
			if k1 < k2 {
				return -1
			}
			return 1
		}
	}
	switch {
	case len(w1) < len(w2):
		return -1
	case len(w1) > len(w2):
		return 1
	default:
		return 0
	}
}

// collationKey maps a rune to its sort key: its dense Alphabet index
// if it is a letter, or a key beyond the Alphabet's range otherwise.
func (a *Alphabet) collationKey(r rune) int {
	if i, ok := a.index[r]; ok {
		return i
	}
	return len(a.letters) + int(r)
}
