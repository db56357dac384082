// main.go
// Copyright (C) 2024 Vilhjálmur Þorsteinsson / Miðeind ehf.

// Command dawgbuild reads one or more sorted word list files, merges
// them under a chosen Alphabet's collation order, builds a minimized
// DAWG, and writes it out in the text DAWG format.

package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	skrafl "github.com/torfaskrafl/wordgraph"
)

var bundledAlphabets = map[string]string{
	"ice": skrafl.IcelandicAlphabet,
	"en":  skrafl.EnglishAlphabet,
	"pl":  skrafl.PolishAlphabet,
	"no":  skrafl.NorwegianAlphabet,
}

func resolveAlphabet(name string) (*skrafl.Alphabet, error) {
	if letters, ok := bundledAlphabets[name]; ok {
		return skrafl.NewAlphabet(letters), nil
	}
	if len([]rune(name)) >= 2 {
		// Treat anything else as a literal letter string
		return skrafl.NewAlphabet(name), nil
	}
	return nil, fmt.Errorf("unknown alphabet %q (use ice, en, pl, no, or a literal letter string)", name)
}

func main() {
	alphabetFlag := flag.String("alphabet", "ice", "Alphabet: ice, en, pl, no, or a literal letter string")
	maxLen := flag.Int("maxlen", skrafl.MaxWordLength, "Maximum accepted word length")
	out := flag.String("o", "", "Output text DAWG file (default: stdout)")
	flag.Parse()

	alphabet, err := resolveAlphabet(*alphabetFlag)
	if err != nil {
		log.Fatal(err)
	}

	wordFiles := flag.Args()
	if len(wordFiles) == 0 {
		log.Fatal("usage: dawgbuild [flags] wordlist.txt [wordlist2.txt ...]")
	}
	streams := make([]io.Reader, 0, len(wordFiles))
	for _, path := range wordFiles {
		f, err := os.Open(path)
		if err != nil {
			log.Fatalf("opening %s: %v", path, err)
		}
		defer f.Close()
		streams = append(streams, f)
	}

	words := skrafl.MergeWordStreams(alphabet, streams...)

	builder := skrafl.NewDawgBuilder(alphabet, skrafl.WithMaxWordLength(*maxLen))
	for _, word := range words {
		if err := builder.AddWord(word); err != nil {
			log.Printf("skipping %q: %v", word, err)
		}
	}
	dawg := builder.Finish()
	log.Printf("built DAWG from %d words, %d unique nodes", builder.NumWords(), builder.NumUniqueNodes())

	w := os.Stdout
	if *out != "" {
		f, err := os.Create(*out)
		if err != nil {
			log.Fatalf("creating %s: %v", *out, err)
		}
		defer f.Close()
		w = f
	}
	if err := skrafl.WriteTextDawg(w, dawg); err != nil {
		log.Fatalf("writing DAWG: %v", err)
	}
}
