// navigator_extendright.go
// Copyright (C) 2018 Vilhjálmur Þorsteinsson

// This file implements ExtendRightNavigator, the core of the
// Appel-Jacobson algorithm. It proceeds along an Axis, covering empty
// Squares with tiles from a rack while obeying constraints from the
// Dawg and the cross-check sets. As final nodes in the Dawg are
// encountered, candidate tile moves are generated and saved.

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

import (
	"strings"
)

// Matching constants returned by ExtendRightNavigator.check.
const (
	mNo        = 1
	mBoardTile = 2
	mRackTile  = 3
)

// ExtendRightNavigator implements steps 4-7 of the Appel-Jacobson
// algorithm: given a starting point (either the Dawg root, or a
// resumed state after a left part already on the board), it lays
// tiles down left-to-right from an anchor square, stopping whenever
// the rack, the board, or the Dawg's edges disallow the next letter.
type ExtendRightNavigator struct {
	axis           *Axis
	anchor         int
	index          int
	rack           string
	stack          []ernItem
	lastCheck      int
	wildcardInRack bool
	// moves accumulates the candidate tile moves found.
	moves []*TileMove
}

type ernItem struct {
	rack           string
	index          int
	wildcardInRack bool
}

// Init initializes a fresh ExtendRightNavigator for an axis, starting
// from the given anchor, using the indicated rack.
func (ern *ExtendRightNavigator) Init(axis *Axis, anchor int, rack string) {
	ern.axis = axis
	ern.anchor = anchor
	ern.index = anchor
	ern.rack = rack
	ern.wildcardInRack = strings.ContainsRune(rack, Wildcard)
	ern.stack = make([]ernItem, 0, DefaultRackSize)
	ern.moves = make([]*TileMove, 0)
}

func (ern *ExtendRightNavigator) check(letter rune) int {
	tileAtSq := ern.axis.sq[ern.index].Tile
	if tileAtSq != nil {
		// There is a tile in the square: must match the letter it
		// stands for (a blank tile's Letter is the Wildcard)
		if letter == tileAtSq.Meaning {
			return mBoardTile
		}
		return mNo
	}
	// Does the current rack allow this letter?
	if !ern.wildcardInRack && !strings.ContainsRune(ern.rack, letter) {
		return mNo
	}
	// Finally, test the cross-checks
	if ern.axis.Allows(ern.index, letter) {
		return mRackTile
	}
	return mNo
}

func (ern *ExtendRightNavigator) PushEdge(letter rune) bool {
	ern.lastCheck = ern.check(letter)
	if ern.lastCheck == mNo {
		return false
	}
	ern.stack = append(ern.stack, ernItem{ern.rack, ern.index, ern.wildcardInRack})
	return true
}

func (ern *ExtendRightNavigator) PopEdge() bool {
	last := len(ern.stack) - 1
	sp := &ern.stack[last]
	ern.rack, ern.index, ern.wildcardInRack = sp.rack, sp.index, sp.wildcardInRack
	ern.stack = ern.stack[:last]
	// We need to visit all outgoing edges, so return true
	return true
}

func (ern *ExtendRightNavigator) Done() {}

func (ern *ExtendRightNavigator) IsAccepting() bool {
	if ern.index >= BoardSize {
		// Gone off the board edge
		return false
	}
	return len(ern.rack) > 0 || ern.axis.sq[ern.index].Tile != nil
}

func (ern *ExtendRightNavigator) Accepts(letter rune) bool {
	match := ern.lastCheck
	if match == 0 {
		match = ern.check(letter)
	}
	ern.lastCheck = 0
	if match == mNo {
		return false
	}
	ern.index++
	if match == mRackTile {
		if strings.ContainsRune(ern.rack, letter) {
			ern.rack = strings.Replace(ern.rack, string(letter), "", 1)
		} else {
			ern.rack = strings.Replace(ern.rack, string(Wildcard), "", 1)
		}
		ern.wildcardInRack = strings.ContainsRune(ern.rack, Wildcard)
	}
	return true
}

func (ern *ExtendRightNavigator) Accept(matched []rune, final bool, state *navState) {
	if state != nil {
		panic("ExtendRightNavigator should not be resumable")
	}
	if !final ||
		(ern.index < BoardSize && ern.axis.sq[ern.index].Tile != nil) {
		// Not a complete word, or ends on an occupied square:
		// not a legal tile move
		return
	}
	if len(matched) < 2 {
		// Less than 2 letters long: not a legal tile move
		return
	}
	covers := make(Covers)
	start := ern.index - len(matched)
	rack := ern.axis.rackString
	for i, meaning := range matched {
		sq := ern.axis.sq[start+i]
		if sq.Tile == nil {
			letter := meaning
			if strings.ContainsRune(rack, meaning) {
				rack = strings.Replace(rack, string(meaning), "", 1)
			} else {
				// Must be using a blank tile
				letter = Wildcard
				rack = strings.Replace(rack, string(Wildcard), "", 1)
			}
			covers[Coordinate{sq.Row, sq.Col}] = Cover{letter, meaning}
		}
	}
	tileMove := NewTileMove(ern.axis.board, covers)
	ern.moves = append(ern.moves, tileMove)
}
