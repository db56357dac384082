package skrafl

import "testing"

func TestBoardPlaceTileAndTileAt(t *testing.T) {
	board := NewBoard()
	tile := &Tile{Letter: 'x', Meaning: 'x'}
	if !board.PlaceTile(3, 4, tile) {
		t.Fatal("PlaceTile within bounds should succeed")
	}
	if board.TileAt(3, 4) != tile {
		t.Fatal("TileAt should return the tile just placed")
	}
	if board.NumTiles != 1 {
		t.Fatalf("NumTiles = %d; want 1", board.NumTiles)
	}
}

func TestBoardPlaceTileOutOfBounds(t *testing.T) {
	board := NewBoard()
	if board.PlaceTile(-1, 0, &Tile{Letter: 'a'}) {
		t.Fatal("PlaceTile should fail for a negative row")
	}
	if board.PlaceTile(0, BoardSize, &Tile{Letter: 'a'}) {
		t.Fatal("PlaceTile should fail for a column past the edge")
	}
}

func TestBoardNumAdjacentTiles(t *testing.T) {
	board := NewBoard()
	board.PlaceTile(5, 5, &Tile{Letter: 'a', Meaning: 'a'})
	if board.NumAdjacentTiles(5, 6) != 1 {
		t.Fatalf("NumAdjacentTiles(5,6) = %d; want 1", board.NumAdjacentTiles(5, 6))
	}
	if board.NumAdjacentTiles(5, 5) != 0 {
		t.Fatalf("NumAdjacentTiles(5,5) = %d; want 0 (the square itself is occupied, not adjacent to itself)", board.NumAdjacentTiles(5, 5))
	}
	if board.NumAdjacentTiles(10, 10) != 0 {
		t.Fatalf("NumAdjacentTiles far from any tile should be 0")
	}
}

func TestBoardWordFragmentAndCrossWords(t *testing.T) {
	board := NewBoard()
	row := 7
	for i, r := range []rune("cat") {
		board.PlaceTile(row, 5+i, &Tile{Letter: r, Meaning: r})
	}
	if got := board.WordFragment(row, 8, LEFT); got != "cat" {
		t.Fatalf("WordFragment(LEFT of the square after \"cat\") = %q; want \"cat\"", got)
	}
	left, right := board.CrossWords(row, 8, true)
	if left != "cat" || right != "" {
		t.Fatalf("CrossWords = (%q, %q); want (\"cat\", \"\")", left, right)
	}
}

func TestBoardSquareStringRepresentsBlank(t *testing.T) {
	board := NewBoard()
	board.PlaceTile(0, 0, &Tile{Letter: Wildcard, Meaning: 'q'})
	if got := board.Sq(0, 0).String(); got != "q" {
		t.Fatalf("String() of a blank tile standing for 'q' = %q; want %q", got, "q")
	}
	if got := board.Sq(1, 1).String(); got != "." {
		t.Fatalf("String() of an empty square = %q; want \".\"", got)
	}
}
