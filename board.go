// board.go
// Copyright (C) 2018 Vilhjálmur Þorsteinsson

// This file implements the Board, together with its Squares and the
// Tiles that may occupy them.

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
	"fmt"
	"strings"
)

// BoardSize is the size of the board.
const BoardSize = 15

// colIds are the column identifiers of a board
var colIds = [BoardSize]string{
	"1", "2", "3", "4", "5",
	"6", "7", "8", "9", "10",
	"11", "12", "13", "14", "15",
}

// rowIds are the row identifiers of a board
var rowIds = [BoardSize]string{
	"A", "B", "C", "D", "E",
	"F", "G", "H", "I", "J",
	"L", "M", "N", "O", "P",
}

// Board represents the board as a matrix of Squares, and caches an
// adjacency matrix for each Square, consisting of pointers to
// adjacent Squares. It carries no premium-square or scoring
// information: a generated move is scored, if at all, by a caller
// that knows the board's premium layout.
type Board struct {
	Squares   [BoardSize][BoardSize]Square
	Adjacents [BoardSize][BoardSize]AdjSquares
	// NumTiles is the number of tiles on the board.
	NumTiles int
}

// Indices into AdjSquares
const (
	ABOVE = 0
	LEFT  = 1
	RIGHT = 2
	BELOW = 3
)

// AdjSquares is a list of four Square pointers, with a nil if the
// corresponding adjacent Square does not exist.
type AdjSquares [4]*Square

// Tile is a single letter tile occupying a Square.
type Tile struct {
	Letter  rune
	Meaning rune // Meaning of a blank tile (if Letter == Wildcard)
}

// Square is a single Board square that can hold a Tile.
type Square struct {
	Tile *Tile
	Row  int
	Col  int
}

// String represents a Square as a string. An empty Square is
// indicated by a dot ('.').
func (square *Square) String() string {
	if square.Tile == nil {
		return "."
	}
	if square.Tile.Letter == Wildcard {
		return string(square.Tile.Meaning)
	}
	return string(square.Tile.Letter)
}

// String represents a Tile as a string.
func (tile *Tile) String() string {
	if tile == nil {
		return "."
	}
	return string(tile.Letter)
}

// Sq returns a pointer to a Board square, or nil if out of bounds.
func (board *Board) Sq(row, col int) *Square {
	if board == nil || row < 0 || row >= BoardSize ||
		col < 0 || col >= BoardSize {
		return nil
	}
	return &board.Squares[row][col]
}

// TileAt returns a pointer to the Tile in a given Square, or nil.
func (board *Board) TileAt(row, col int) *Tile {
	if board == nil || row < 0 || row >= BoardSize ||
		col < 0 || col >= BoardSize {
		return nil
	}
	return board.Squares[row][col].Tile
}

// PlaceTile places a tile in a board square, if the square exists.
func (board *Board) PlaceTile(row, col int, tile *Tile) bool {
	sq := board.Sq(row, col)
	if sq == nil {
		return false
	}
	sq.Tile = tile
	board.NumTiles++
	return true
}

// String represents a Board as a string.
func (board *Board) String() string {
	var sb strings.Builder
	sb.WriteString("  ")
	for i := 0; i < BoardSize; i++ {
		sb.WriteString(fmt.Sprintf("%2s ", colIds[i]))
	}
	sb.WriteString("\n")
	for i := 0; i < BoardSize; i++ {
		sb.WriteString(fmt.Sprintf("%s ", rowIds[i]))
		for j := 0; j < BoardSize; j++ {
			sb.WriteString(fmt.Sprintf(" %v ", board.Sq(i, j)))
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

// NumAdjacentTiles returns the number of tiles on the board that are
// adjacent to the given coordinate.
func (board *Board) NumAdjacentTiles(row, col int) int {
	adj := &board.Adjacents[row][col]
	var count = 0
	for _, sq := range adj {
		if sq != nil && sq.Tile != nil {
			count++
		}
	}
	return count
}

// Fragment returns a list of the tiles that extend from the square at
// row, col in the direction specified (ABOVE/BELOW/LEFT/RIGHT).
func (board *Board) Fragment(row, col int, direction int) []*Tile {
	if row < 0 || col < 0 || row >= BoardSize || col >= BoardSize {
		return nil
	}
	if direction < ABOVE || direction > BELOW {
		return nil
	}
	frag := make([]*Tile, 0, BoardSize-1)
	for {
		sq := board.Adjacents[row][col][direction]
		if sq == nil || sq.Tile == nil {
			break
		}
		frag = append(frag, sq.Tile)
		row, col = sq.Row, sq.Col
	}
	return frag
}

// WordFragment returns the word formed by the tile sequence emanating
// from the given square in the indicated direction, not including the
// square itself.
func (board *Board) WordFragment(row, col int, direction int) (result string) {
	frag := board.Fragment(row, col, direction)
	if direction == LEFT || direction == ABOVE {
		// We need to reverse the order of the fragment
		for _, tile := range frag {
			result = string(tile.Meaning) + result
		}
	} else {
		// The fragment is in correct reading order
		for _, tile := range frag {
			result += string(tile.Meaning)
		}
	}
	return // result
}

// CrossWords returns the word fragments above and below, or to the
// left and right of, the given co-ordinate on the board.
func (board *Board) CrossWords(row, col int, horizontal bool) (left, right string) {
	var direction int
	if horizontal {
		direction = LEFT
	} else {
		direction = ABOVE
	}
	for _, tile := range board.Fragment(row, col, direction) {
		left = string(tile.Meaning) + left
	}
	if horizontal {
		direction = RIGHT
	} else {
		direction = BELOW
	}
	for _, tile := range board.Fragment(row, col, direction) {
		right += string(tile.Meaning)
	}
	return // left, right
}

// Init initializes an empty board, setting each square's coordinates
// and the cached adjacency matrix.
func (board *Board) Init() {
	for i := 0; i < BoardSize; i++ {
		for j := 0; j < BoardSize; j++ {
			sq := board.Sq(i, j)
			sq.Row = i
			sq.Col = j
		}
	}
	for row := 0; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			var adj = &board.Adjacents[row][col]
			if row > 0 {
				adj[ABOVE] = board.Sq(row-1, col)
			}
			if row < BoardSize-1 {
				adj[BELOW] = board.Sq(row+1, col)
			}
			if col > 0 {
				adj[LEFT] = board.Sq(row, col-1)
			}
			if col < BoardSize-1 {
				adj[RIGHT] = board.Sq(row, col+1)
			}
		}
	}
}

// NewBoard creates and initializes an empty board.
func NewBoard() *Board {
	board := &Board{}
	board.Init()
	return board
}
