package skrafl

import (
	"sort"
	"testing"
)

func buildFrom(t *testing.T, alphabet *Alphabet, words []string) *Dawg {
	t.Helper()
	sorted := append([]string(nil), words...)
	sort.Slice(sorted, func(i, j int) bool {
		return alphabet.Compare([]rune(sorted[i]), []rune(sorted[j])) < 0
	})
	b := NewDawgBuilder(alphabet)
	for _, w := range sorted {
		if err := b.AddWord(w); err != nil {
			t.Fatalf("AddWord(%q): %v", w, err)
		}
	}
	return b.Finish()
}

func TestBuilderFindsAddedWords(t *testing.T) {
	alphabet := NewAlphabet(EnglishAlphabet)
	words := []string{"cat", "cats", "car", "card", "care", "dog", "do"}
	dawg := buildFrom(t, alphabet, words)
	for _, w := range words {
		if !dawg.Find(w) {
			t.Errorf("Find(%q) = false; want true", w)
		}
	}
	for _, absent := range []string{"ca", "caar", "doge", "z"} {
		if dawg.Find(absent) {
			t.Errorf("Find(%q) = true; want false", absent)
		}
	}
}

func TestBuilderCollapsesSharedSuffixes(t *testing.T) {
	alphabet := NewAlphabet(EnglishAlphabet)
	// "card" and "ward" share the suffix "ard", which should collapse
	// into shared structure rather than two separate chains.
	b := NewDawgBuilder(alphabet)
	for _, w := range []string{"card", "ward"} {
		if err := b.AddWord(w); err != nil {
			t.Fatalf("AddWord(%q): %v", w, err)
		}
	}
	dawg := b.Finish()
	if !dawg.Find("card") || !dawg.Find("ward") {
		t.Fatal("both words must be present after Finish")
	}
	if dawg.Find("card") == dawg.Find("carz") {
		t.Fatal("sanity check on Find failed")
	}
}

func TestBuilderRejectsOutOfOrderAndDuplicates(t *testing.T) {
	alphabet := NewAlphabet(EnglishAlphabet)
	b := NewDawgBuilder(alphabet)
	if err := b.AddWord("cat"); err != nil {
		t.Fatalf("AddWord(cat): %v", err)
	}
	if err := b.AddWord("bat"); err != ErrOutOfOrder {
		t.Fatalf("AddWord(bat) after cat: got %v; want ErrOutOfOrder", err)
	}
	if err := b.AddWord("cat"); err != ErrDuplicateWord {
		t.Fatalf("AddWord(cat) twice: got %v; want ErrDuplicateWord", err)
	}
}

func TestBuilderRejectsUnknownLetterAndOverlong(t *testing.T) {
	alphabet := NewAlphabet(EnglishAlphabet)
	// maxLen must be at least the length of every word below, or the
	// length check (builder.go's len(runes) > b.maxLen) fires first
	// and masks the unknown-letter check this test means to exercise.
	b := NewDawgBuilder(alphabet, WithMaxWordLength(5))
	if err := b.AddWord("cat?"); err != nil {
		t.Fatalf("AddWord with a wildcard letter should be accepted: %v", err)
	}
	if err := b.AddWord("cat1"); err != ErrUnknownLetter {
		t.Fatalf("AddWord(cat1): got %v; want ErrUnknownLetter", err)
	}
}

func TestBuilderFinishedRejectsFurtherWords(t *testing.T) {
	alphabet := NewAlphabet(EnglishAlphabet)
	b := NewDawgBuilder(alphabet)
	_ = b.AddWord("cat")
	b.Finish()
	if err := b.AddWord("dog"); err != ErrBuilderFinished {
		t.Fatalf("AddWord after Finish: got %v; want ErrBuilderFinished", err)
	}
}

func TestBuilderMaxWordLength(t *testing.T) {
	alphabet := NewAlphabet(EnglishAlphabet)
	b := NewDawgBuilder(alphabet, WithMaxWordLength(5))
	longWord := "catfish"
	if err := b.AddWord(longWord); err != ErrTooLong {
		t.Fatalf("AddWord(%q) with maxlen 5: got %v; want ErrTooLong", longWord, err)
	}
}
