// rack.go
// Copyright (C) 2024 Vilhjálmur Þorsteinsson / Miðeind ehf.

// This file implements Rack, a player's set of letters available for
// placing on the board. A rack is a bare multiset of runes: it carries
// no score, no bag coupling and no slot positions, since none of
// those are needed to generate candidate moves.

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


// DefaultRackSize is the conventional number of tiles on a full rack.
// It is only a hint: Rack itself imposes no capacity limit, since a
// move generator has no reason to reject an oversized or undersized
// rack.
const DefaultRackSize = 7

// Rack is a player's available letters, including any blank tiles
// (represented by Wildcard).
type Rack struct {
	letters []rune
}

// NewRack creates a Rack holding the given letters.
func NewRack(letters []rune) *Rack {
	r := &Rack{letters: append([]rune(nil), letters...)}
	return r
}

// NewRackFromString creates a Rack from a string of letters, with '?'
// denoting a blank tile.
func NewRackFromString(s string) *Rack {
	return NewRack([]rune(s))
}

// String returns the rack's letters as a string, in the order they
// were given.
func (rack *Rack) String() string {
	return rack.AsString()
}

// AsRunes returns the rack's letters as a slice of runes.
func (rack *Rack) AsRunes() []rune {
	if rack == nil {
		return nil
	}
	return append([]rune(nil), rack.letters...)
}

// AsString returns the rack's letters as a contiguous string.
func (rack *Rack) AsString() string {
	if rack == nil {
		return ""
	}
	return string(rack.letters)
}

// AsSet returns the rack as a bit-mapped set of letters. If the rack
// contains a blank tile, the bitmap has every bit set, since a blank
// can stand for any letter.
func (rack *Rack) AsSet(alphabet *Alphabet) uint32 {
	if rack == nil {
		return 0
	}
	return alphabet.MakeSet(rack.letters)
}

// IsEmpty returns true if the rack holds no tiles.
func (rack *Rack) IsEmpty() bool {
	return rack == nil || len(rack.letters) == 0
}

// Len returns the number of tiles on the rack.
func (rack *Rack) Len() int {
	if rack == nil {
		return 0
	}
	return len(rack.letters)
}

// HasTile returns true if the rack contains at least one tile of the
// given letter (blanks count only when letter is Wildcard itself).
func (rack *Rack) HasTile(letter rune) bool {
	return ContainsRune(rack.letters, letter)
}

// Without returns a new Rack with a single occurrence of letter
// removed, or an unchanged copy if the letter isn't present. It
// leaves the receiver untouched.
//
// This removes only one occurrence: a rack holding two 'a' tiles
// must lose exactly one when a single 'a' is played.
func (rack *Rack) Without(letter rune) *Rack {
	if rack == nil {
		return nil
	}
	removed := false
	out := make([]rune, 0, len(rack.letters))
	for _, r := range rack.letters {
		if !removed && r == letter {
			removed = true
			continue
		}
		out = append(out, r)
	}
	return &Rack{letters: out}
}
