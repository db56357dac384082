// move.go
// Copyright (C) 2018 Vilhjálmur Þorsteinsson

// This file implements TileMove, a candidate placement of tiles on
// the board, along with the bookkeeping that assembles the word it
// spells out of the covered squares and whatever was already on the
// board around them.

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

// TileMove represents a candidate move: one or more board squares
// covered by tiles drawn from a rack. It carries no score and is not
// tied to a particular game; a caller that owns a scoring table and
// move history decides whether and how to apply it.
type TileMove struct {
	TopLeft     Coordinate
	BottomRight Coordinate
	Covers      Covers
	Horizontal  bool
	Word        string
}

// Coordinate stores a Board co-ordinate as a row, col tuple.
type Coordinate struct {
	Row, Col int
}

// Cover is a part of a TileMove, describing the covering of a single
// Square by a letter. The Letter may be Wildcard, denoting a blank
// tile, in which case Meaning gives the letter it stands for.
type Cover struct {
	Letter  rune
	Meaning rune
}

// Covers is a map of board coordinates to a tile covering.
type Covers map[Coordinate]Cover

// NewTileMove creates a new TileMove from a set of Covers against a
// Board, computing its bounding box, orientation and the word it
// spells.
func NewTileMove(board *Board, covers Covers) *TileMove {
	move := &TileMove{}
	move.Init(board, covers)
	return move
}

// String returns a coordinate-prefixed description of a TileMove,
// e.g. "H8 WORD".
func (move *TileMove) String() string {
	var coord string
	if move.Horizontal {
		coord = rowIds[move.TopLeft.Row] + colIds[move.TopLeft.Col]
	} else {
		coord = colIds[move.TopLeft.Col] + rowIds[move.TopLeft.Row]
	}
	return coord + " " + move.Word
}

// IllegalMoveWord is the move.Word of an illegal move.
const IllegalMoveWord = "[???]"

// Init initializes a TileMove for a particular Board using a map of
// Coordinate to Cover: it determines the move's bounding box and
// orientation, then walks from TopLeft to BottomRight assembling the
// word out of newly-covered letters and whatever tiles were already
// on the board, including any prefix or suffix fragment already
// present.
func (move *TileMove) Init(board *Board, covers Covers) {
	move.Covers = covers
	top, left := BoardSize, BoardSize
	bottom, right := -1, -1
	for coord := range covers {
		if coord.Row < top {
			top = coord.Row
		}
		if coord.Col < left {
			left = coord.Col
		}
		if coord.Row > bottom {
			bottom = coord.Row
		}
		if coord.Col > right {
			right = coord.Col
		}
	}
	move.TopLeft = Coordinate{top, left}
	move.BottomRight = Coordinate{bottom, right}
	if len(covers) >= 2 {
		// This is horizontal if all covers are in the same row
		move.Horizontal = top == bottom
	} else {
		// Single cover: get smart and figure out whether the
		// horizontal cross is longer than the vertical cross
		hcross := len(board.Fragment(top, left, LEFT)) +
			len(board.Fragment(top, left, RIGHT))
		vcross := len(board.Fragment(top, left, ABOVE)) +
			len(board.Fragment(top, left, BELOW))
		move.Horizontal = hcross >= vcross
	}
	// Collect the entire word that is being laid down
	var direction, reverse int
	if move.Horizontal {
		direction = RIGHT
		reverse = LEFT
	} else {
		direction = BELOW
		reverse = ABOVE
	}
	sq := board.Sq(top, left)
	if sq == nil {
		move.Word = IllegalMoveWord
		return
	}
	// Start with any left prefix that is being extended
	word := board.WordFragment(top, left, reverse)
	// Next, traverse the covering line from top left to bottom right
	for {
		if cover, ok := covers[Coordinate{sq.Row, sq.Col}]; ok {
			// This square is being covered by the tile move
			word += string(cover.Meaning)
		} else {
			// This square must be covered by a previously laid tile
			if sq.Tile == nil {
				move.Word = IllegalMoveWord
				return
			}
			word += string(sq.Tile.Meaning)
		}
		if sq.Row == bottom && sq.Col == right {
			// This was the last tile laid down in the move:
			// the loop is done
			break
		}
		// Move to the next adjacent square, in the direction of the move
		sq = board.Adjacents[sq.Row][sq.Col][direction]
		if sq == nil {
			move.Word = IllegalMoveWord
			return
		}
	}
	// Add any suffix that may already have been on the board
	word += board.WordFragment(bottom, right, direction)
	move.Word = word
}
