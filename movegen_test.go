package skrafl

import "testing"

func boardWithWord(t *testing.T, word string, row, col int, horizontal bool) *Board {
	t.Helper()
	board := NewBoard()
	for i, r := range []rune(word) {
		tr, tc := row, col
		if horizontal {
			tc += i
		} else {
			tr += i
		}
		if !board.PlaceTile(tr, tc, &Tile{Letter: r, Meaning: r}) {
			t.Fatalf("PlaceTile(%d, %d) failed", tr, tc)
		}
	}
	return board
}

func hasMoveWord(moves []*TileMove, word string) bool {
	for _, m := range moves {
		if m.Word == word {
			return true
		}
	}
	return false
}

func TestGenerateMovesOnEmptyBoardUsesCenterAnchor(t *testing.T) {
	alphabet := NewAlphabet(EnglishAlphabet)
	dawg := buildFrom(t, alphabet, []string{"cat", "cats", "at", "car", "care", "dog"})
	board := NewBoard()
	rack := NewRackFromString("cat")
	mg := NewMoveGenerator(dawg)
	moves := mg.GenerateMoves(board, rack)
	if !hasMoveWord(moves, "cat") {
		t.Fatalf("expected a move spelling \"cat\" through the empty board's center; got %v", describeMoves(moves))
	}
	for _, m := range moves {
		mid := BoardSize / 2
		if _, ok := m.Covers[Coordinate{mid, mid}]; !ok {
			t.Errorf("move %q does not cover the center square, illegal on an empty board", m.Word)
		}
	}
}

func TestGenerateMovesExtendsExistingWord(t *testing.T) {
	alphabet := NewAlphabet(EnglishAlphabet)
	dawg := buildFrom(t, alphabet, []string{"cat", "cats", "at", "car", "care", "dog"})
	mid := BoardSize / 2
	board := boardWithWord(t, "cat", mid, mid-1, true)
	rack := NewRackFromString("s")
	mg := NewMoveGenerator(dawg)
	moves := mg.GenerateMoves(board, rack)
	if !hasMoveWord(moves, "cats") {
		t.Fatalf("expected \"cats\" to be generated by extending \"cat\" with an \"s\"; got %v", describeMoves(moves))
	}
}

func TestGenerateMovesRespectsCrossChecks(t *testing.T) {
	alphabet := NewAlphabet(EnglishAlphabet)
	// "ox" exists but nothing crosses into a legal word with a "z" above it.
	dawg := buildFrom(t, alphabet, []string{"ox", "oz"})
	mid := BoardSize / 2
	board := boardWithWord(t, "ox", mid, mid-1, true)
	rack := NewRackFromString("z")
	mg := NewMoveGenerator(dawg)
	moves := mg.GenerateMoves(board, rack)
	// "oz" is a valid word, so extending "o" with "z" should be offered.
	if !hasMoveWord(moves, "oz") {
		t.Fatalf("expected \"oz\" among generated moves; got %v", describeMoves(moves))
	}
}

func TestGenerateMovesNoLegalPlayReturnsEmpty(t *testing.T) {
	alphabet := NewAlphabet(EnglishAlphabet)
	dawg := buildFrom(t, alphabet, []string{"cat"})
	board := NewBoard()
	rack := NewRackFromString("xqz")
	mg := NewMoveGenerator(dawg)
	moves := mg.GenerateMoves(board, rack)
	if len(moves) != 0 {
		t.Fatalf("expected no legal moves for a rack with no matching words; got %v", describeMoves(moves))
	}
}

func describeMoves(moves []*TileMove) []string {
	words := make([]string, len(moves))
	for i, m := range moves {
		words[i] = m.String()
	}
	return words
}
