// main.go
// Copyright (C) 2024 Vilhjálmur Þorsteinsson / Miðeind ehf.

// Command movegen runs a compact HTTP server that loads a text DAWG
// and, given a board and a rack as JSON, returns the candidate tile
// moves the Appel-Jacobson generator finds -- without scores, since
// scoring a move requires a premium-square layout and a tile value
// table that this module does not carry.

package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"unicode"

	skrafl "github.com/torfaskrafl/wordgraph"
)

// MovesRequest mirrors the shape of a /moves request: a board given
// as BoardSize rows of BoardSize characters each ('.' for an empty
// square, a lowercase letter for a tile, an uppercase letter for a
// blank tile standing for that letter), and a rack string ('?' for a
// blank tile).
type MovesRequest struct {
	Board []string `json:"board"`
	Rack  string   `json:"rack"`
	Limit int      `json:"limit"`
}

// MovesResponse is the JSON response: the candidate moves found, each
// described by its coordinate string and the word it spells.
type MovesResponse struct {
	Count int      `json:"count"`
	Moves []string `json:"moves"`
}

var dawg *skrafl.Dawg

func parseBoard(rows []string) (*skrafl.Board, error) {
	if len(rows) != skrafl.BoardSize {
		return nil, fmt.Errorf("board must have %d rows", skrafl.BoardSize)
	}
	board := skrafl.NewBoard()
	for r, rowString := range rows {
		row := []rune(rowString)
		if len(row) != skrafl.BoardSize {
			return nil, fmt.Errorf("row %d must be %d characters long", r, skrafl.BoardSize)
		}
		for c, letter := range row {
			if letter == '.' || letter == ' ' {
				continue
			}
			meaning := letter
			if unicode.IsUpper(letter) {
				meaning = unicode.ToLower(letter)
				letter = skrafl.Wildcard
			}
			tile := &skrafl.Tile{Letter: letter, Meaning: meaning}
			if !board.PlaceTile(r, c, tile) {
				return nil, fmt.Errorf("square out of bounds: %d,%d", r, c)
			}
		}
	}
	return board, nil
}

func handler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "invalid request method", http.StatusMethodNotAllowed)
		return
	}
	var req MovesRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	rackRunes := []rune(req.Rack)
	if len(rackRunes) == 0 {
		http.Error(w, "empty rack", http.StatusBadRequest)
		return
	}
	board, err := parseBoard(req.Board)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	rack := skrafl.NewRack(rackRunes)
	mg := skrafl.NewMoveGenerator(dawg)
	moves := mg.GenerateMoves(board, rack)
	if req.Limit > 0 && req.Limit < len(moves) {
		moves = moves[:req.Limit]
	}
	words := make([]string, len(moves))
	for i, m := range moves {
		words[i] = m.String()
	}
	resp := MovesResponse{Count: len(words), Moves: words}
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func main() {
	dawgPath := flag.String("dawg", "", "Path to a text DAWG file")
	alphabetFlag := flag.String("alphabet", "ice", "Alphabet the DAWG was built with: ice, en, pl, no, or a literal letter string")
	flag.Parse()

	if *dawgPath == "" {
		log.Fatal("usage: movegen -dawg path/to/dictionary.txt")
	}
	bundled := map[string]string{
		"ice": skrafl.IcelandicAlphabet,
		"en":  skrafl.EnglishAlphabet,
		"pl":  skrafl.PolishAlphabet,
		"no":  skrafl.NorwegianAlphabet,
	}
	letters, ok := bundled[*alphabetFlag]
	if !ok {
		letters = *alphabetFlag
	}
	alphabet := skrafl.NewAlphabet(letters)

	var err error
	dawg, err = skrafl.ReadTextDawgFile(*dawgPath, alphabet)
	if err != nil {
		log.Fatalf("loading DAWG: %v", err)
	}
	log.Printf("loaded DAWG with %d nodes", dawg.NumNodes())

	http.HandleFunc("/moves", handler)
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Printf("listening on port %s", port)
	if err := http.ListenAndServe(":"+port, nil); err != nil {
		log.Fatal(err)
	}
}
