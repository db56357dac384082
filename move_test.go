package skrafl

import "testing"

func TestNewTileMoveSingleWordOnEmptyBoard(t *testing.T) {
	board := NewBoard()
	covers := Covers{
		{7, 7}: {Letter: 'c', Meaning: 'c'},
		{7, 8}: {Letter: 'a', Meaning: 'a'},
		{7, 9}: {Letter: 't', Meaning: 't'},
	}
	move := NewTileMove(board, covers)
	if move.Word != "cat" {
		t.Fatalf("Word = %q; want \"cat\"", move.Word)
	}
	if !move.Horizontal {
		t.Fatal("a move spanning one row should be Horizontal")
	}
	if move.TopLeft != (Coordinate{7, 7}) || move.BottomRight != (Coordinate{7, 9}) {
		t.Fatalf("bounding box = %v..%v; want (7,7)..(7,9)", move.TopLeft, move.BottomRight)
	}
}

func TestNewTileMoveExtendsExistingPrefix(t *testing.T) {
	board := NewBoard()
	row := 7
	for i, r := range []rune("cat") {
		board.PlaceTile(row, 5+i, &Tile{Letter: r, Meaning: r})
	}
	covers := Covers{
		{row, 8}: {Letter: 's', Meaning: 's'},
	}
	move := NewTileMove(board, covers)
	if move.Word != "cats" {
		t.Fatalf("Word = %q; want \"cats\" (extending the existing \"cat\")", move.Word)
	}
}

func TestNewTileMoveSingleCoverPicksLongerCross(t *testing.T) {
	board := NewBoard()
	// A vertical run of two tiles crossing the single new cover.
	board.PlaceTile(4, 4, &Tile{Letter: 'a', Meaning: 'a'})
	board.PlaceTile(6, 4, &Tile{Letter: 'a', Meaning: 'a'})
	covers := Covers{
		{5, 4}: {Letter: 't', Meaning: 't'},
	}
	move := NewTileMove(board, covers)
	if move.Horizontal {
		t.Fatal("with a longer vertical cross than horizontal, the move should not be Horizontal")
	}
	if move.Word != "ata" {
		t.Fatalf("Word = %q; want \"ata\"", move.Word)
	}
}

func TestTileMoveStringFormatsCoordinate(t *testing.T) {
	board := NewBoard()
	covers := Covers{
		{0, 0}: {Letter: 'a', Meaning: 'a'},
		{0, 1}: {Letter: 't', Meaning: 't'},
	}
	move := NewTileMove(board, covers)
	want := rowIds[0] + colIds[0] + " at"
	if move.String() != want {
		t.Fatalf("String() = %q; want %q", move.String(), want)
	}
}
