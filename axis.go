// axis.go
// Copyright (C) 2018 Vilhjálmur Þorsteinsson

// This file implements Axis, which holds the per-row or per-column
// state the Appel-Jacobson algorithm needs: the squares along the
// axis, each square's cross-check letter set, and which squares are
// anchors. MoveGenerator drives one Axis per row and per column.

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

// Axis stores information about a row or column on the board being
// searched for valid moves.
type Axis struct {
	dawg       *Dawg
	board      *Board
	horizontal bool
	// rackSet is a bitmap of the letters in the rack, having all
	// bits set if the rack has a blank tile in it.
	rackSet uint32
	// rackString is the original rack, stored as a string.
	rackString string
	// sq holds convenience pointers to the board squares on this axis.
	sq [BoardSize]*Square
	// crossCheck is a bitmap of the letters allowed on each square,
	// intersected with the current rack.
	crossCheck [BoardSize]uint32
	// isAnchor marks which squares are anchor squares.
	isAnchor [BoardSize]bool
}

// Init initializes a fresh Axis, associating it with a board row or
// column.
func (axis *Axis) Init(dawg *Dawg, board *Board, rack *Rack, index int, horizontal bool) {
	axis.dawg = dawg
	axis.board = board
	axis.horizontal = horizontal
	axis.rackSet = rack.AsSet(dawg.alphabet)
	axis.rackString = rack.AsString()
	for i := 0; i < BoardSize; i++ {
		if horizontal {
			axis.sq[i] = board.Sq(index, i)
		} else {
			axis.sq[i] = board.Sq(i, index)
		}
	}
	// Mark all empty squares having at least one occupied adjacent
	// square as anchors.
	for i := 0; i < BoardSize; i++ {
		sq := axis.sq[i]
		if sq.Tile != nil {
			// Already have a tile here: not an anchor and no
			// cross-check set needed
			continue
		}
		var isAnchor bool
		if board.NumTiles == 0 {
			// Special case: if no tile has yet been placed on the
			// board, mark the center square of the center column as
			// the sole anchor
			isAnchor = (index == BoardSize/2) && (i == BoardSize/2) && !horizontal
		} else {
			isAnchor = board.NumAdjacentTiles(sq.Row, sq.Col) > 0
		}
		if !isAnchor {
			// Empty square with no adjacent tiles: not an anchor,
			// and any letter from the rack can be placed here
			axis.crossCheck[i] = axis.rackSet
		} else {
			// Anchor square: its cross-check set may still be zero,
			// if no tile from the rack can be placed here due to
			// cross-words
			axis.isAnchor[i] = true
			axis.crossCheck[i] = axis.rackSet & axis.crossSet(sq)
		}
	}
}

func (axis *Axis) crossSet(sq *Square) uint32 {
	left, right := axis.board.CrossWords(sq.Row, sq.Col, !axis.horizontal)
	if len(left) == 0 && len(right) == 0 {
		// No cross word, so no cross-check constraint
		return axis.dawg.alphabet.AllSet()
	}
	return axis.dawg.CrossSet([]rune(left), []rune(right))
}

// IsAnchor returns true if the given square within the Axis is an
// anchor square.
func (axis *Axis) IsAnchor(index int) bool {
	return axis.isAnchor[index]
}

// IsOpen returns true if the given square within the Axis is open
// for a new tile from the rack.
func (axis *Axis) IsOpen(index int) bool {
	return axis.sq[index].Tile == nil && axis.crossCheck[index] > 0
}

// Allows returns true if the given letter can be placed in the
// indexed square within the Axis, in compliance with the cross
// checks.
func (axis *Axis) Allows(index int, letter rune) bool {
	if axis == nil || axis.sq[index].Tile != nil {
		return false
	}
	return axis.dawg.alphabet.Member(letter, axis.crossCheck[index])
}

// genMovesFromAnchor returns the moves available that use the given
// square within the Axis as an anchor.
func (axis *Axis) genMovesFromAnchor(anchor int, maxLeft int, leftParts [][]*LeftPart) []*TileMove {
	dawg, board := axis.dawg, axis.board
	sq := axis.sq[anchor]

	// Do we have a left part already on the board?
	if maxLeft == 0 && anchor > 0 && axis.sq[anchor-1].Tile != nil {
		// Yes: try to complete it
		var direction int
		if axis.horizontal {
			direction = LEFT
		} else {
			direction = ABOVE
		}
		fragment := board.Fragment(sq.Row, sq.Col, direction)
		// The fragment list is backwards; reverse it into reading order
		left := make([]rune, len(fragment))
		for i, tile := range fragment {
			left[len(fragment)-1-i] = tile.Meaning
		}
		var lfn LeftFindNavigator
		lfn.Init(left)
		dawg.NavigateResumable(&lfn)
		if lfn.state == nil {
			// No matching prefix found: there cannot be any valid
			// completions of the left part that is already there
			return nil
		}
		// Found a matching prefix in the graph: extend right from
		// there, using the whole rack
		var ern ExtendRightNavigator
		ern.Init(axis, anchor, axis.rackString)
		dawg.Resume(&ern, lfn.state, left)
		return ern.moves
	}

	// We are not completing an existing left part. Begin by
	// extending an empty prefix to the right, i.e. placing tiles on
	// the anchor square itself and to its right.
	moves := make([]*TileMove, 0)
	var ern ExtendRightNavigator
	ern.Init(axis, anchor, axis.rackString)
	dawg.Navigate(&ern)
	moves = append(moves, ern.moves...)

	// Follow this by permuting left prefixes into the open space to
	// the left of the anchor square, if any.
	for leftLen := 1; leftLen <= maxLeft; leftLen++ {
		leftList := leftParts[leftLen-1]
		for _, leftPart := range leftList {
			var ern ExtendRightNavigator
			ern.Init(axis, anchor, leftPart.rack)
			dawg.Resume(&ern, leftPart.state, leftPart.matched)
			moves = append(moves, ern.moves...)
		}
	}

	return moves
}

func minInt(i1, i2 int) int {
	if i1 <= i2 {
		return i1
	}
	return i2
}

// GenerateMoves returns all legal moves along this Axis, given the
// length of the rack it was initialized with and the left parts that
// rack can form.
func (axis *Axis) GenerateMoves(lenRack int, leftParts [][]*LeftPart) []*TileMove {
	moves := make([]*TileMove, 0)
	lastAnchor := -1
	// Process the anchors, one by one, from left to right
	for i := 0; i < BoardSize; i++ {
		if !axis.IsAnchor(i) {
			continue
		}
		if axis.crossCheck[i] > 0 {
			// A tile from the rack can actually be placed here:
			// count open squares to the anchor's left, up to but not
			// including the previous anchor, if any.
			openCnt := 0
			left := i
			for left > 0 && left > (lastAnchor+1) && axis.IsOpen(left-1) {
				openCnt++
				left--
			}
			moves = append(moves,
				axis.genMovesFromAnchor(i, minInt(openCnt, lenRack-1), leftParts)...,
			)
		}
		lastAnchor = i
	}
	return moves
}
