// movegen.go
// Copyright (C) 2018 Vilhjálmur Þorsteinsson
// This file contains code to generate all valid tile moves
// on a SCRABBLE(tm)-like board, given a player's rack.
// It is a part of the Go 'skrafl' package.

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

/*

The code herein finds all legal moves on a SCRABBLE(tm)-like board.

The algorithm is based on the classic paper by Appel & Jacobson,
"The World's Fastest Scrabble Program",
http://www.cs.cmu.edu/afs/cs/academic/class/15451-s06/www/lectures/scrabble.pdf

The main entry point is MoveGenerator.GenerateMoves(). Given a board
and a rack, plus the vocabulary word graph (Dawg) the generator was
built with, it returns every legal tile move.

Moves are found by examining each one-dimensional Axis of the board
in turn, i.e. 15 rows and 15 columns for a total of 30 axes. For each
axis, the cross-check set of each empty square is calculated, i.e.
the set of letters that form valid words by connecting with word
parts across the square's axis. The cross-check sets are intersected
with the letters in the rack, unless the rack contains a blank tile.

Any empty square adjacent to a covered square, along the axis or
across it, is an anchor square; on an empty board the center square
of the center column is the sole anchor. Each anchor square with a
non-null cross-check set is examined in turn, from "left" to "right":

1) Count the number of empty non-anchor squares to the left of the
	anchor, which may be zero. Call the number 'maxleft'.
2) Generate all permutations of rack tiles found by navigating from
	the root of the Dawg, of length 1..maxleft, i.e. all possible
	word beginnings from the rack. (These permutation lists are
	calculated only once for the entire move generation phase.)
3) For each such permutation, attempt to complete the word by
	placing the rest of the available tiles on the anchor square and
	to its right.
4) In any case, even if maxleft=0, place a starting tile on the
	anchor square and attempt to complete a word to its right.
5) When placing a tile on the anchor square or to its right, do so
	under three constraints: (a) the cross-check set of the square in
	question; (b) a path in the Dawg corresponding to the tiles laid
	down so far; (c) a matching tile still available in the rack
	(with blank tiles always matching).
6) If extending to the right and coming to a tile that is already on
	the board, it must correspond to the Dawg path being followed.
7) If we run off the edge of the axis, or come to an empty square,
	and are at a final node in the Dawg indicating a completed word,
	we have a candidate move.

Steps 1)-3) above are implemented in LeftPermutationNavigator and
LeftFindNavigator, while steps 4)-7) are in ExtendRightNavigator.
These correspond to the Appel & Jacobson LeftPart and ExtendRight
functions.

Note: SCRABBLE is a registered trademark. This software or its author
are in no way affiliated with or endorsed by the owners or licensees
of the SCRABBLE trademark.

*/

package skrafl

// MoveGenerator produces candidate tile moves for a board and rack,
// using a fixed Dawg as its vocabulary.
type MoveGenerator struct {
	dawg *Dawg
}

// NewMoveGenerator creates a MoveGenerator backed by the given Dawg.
func NewMoveGenerator(dawg *Dawg) *MoveGenerator {
	return &MoveGenerator{dawg: dawg}
}

// GenerateMoves returns every legal tile move given a board and a
// rack. The work is divided into 30 sub-tasks, one per row and one
// per column, run concurrently by 30 goroutines and funneled through
// a single result channel.
func (mg *MoveGenerator) GenerateMoves(board *Board, rack *Rack) []*TileMove {
	lenRack := rack.Len()
	leftParts := FindLeftParts(mg.dawg, rack.AsString())

	resultMoves := make(chan []*TileMove, BoardSize*2)
	kickOffAxis := func(index int, horizontal bool) {
		var axis Axis
		axis.Init(mg.dawg, board, rack, index, horizontal)
		resultMoves <- axis.GenerateMoves(lenRack, leftParts)
	}
	for i := 0; i < BoardSize; i++ {
		go kickOffAxis(i, true)
	}
	for i := 0; i < BoardSize; i++ {
		go kickOffAxis(i, false)
	}
	moves := make([]*TileMove, 0)
	for i := 0; i < BoardSize*2; i++ {
		moves = append(moves, (<-resultMoves)...)
	}
	return moves
}
