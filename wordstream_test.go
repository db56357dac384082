package skrafl

import (
	"strings"
	"testing"
)

func TestMergeWordStreamsOrdersAndDedupes(t *testing.T) {
	alphabet := NewAlphabet(EnglishAlphabet)
	a := strings.NewReader("cat\ncow\ndog\n")
	b := strings.NewReader("cat\ncot\nfox\n")
	got := MergeWordStreams(alphabet, a, b)
	want := []string{"cat", "cot", "cow", "dog", "fox"}
	if len(got) != len(want) {
		t.Fatalf("MergeWordStreams = %v; want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("MergeWordStreams[%d] = %q; want %q (full: %v)", i, got[i], want[i], got)
		}
	}
}

func TestMergeWordStreamsSkipsBlankAndOverlongLines(t *testing.T) {
	alphabet := NewAlphabet(EnglishAlphabet)
	overlong := strings.Repeat("a", MaxWordLength+1)
	r := strings.NewReader("cat\n\ndog\n" + overlong + "\n")
	got := MergeWordStreams(alphabet, r)
	want := []string{"cat", "dog"}
	if len(got) != len(want) {
		t.Fatalf("MergeWordStreams = %v; want %v", got, want)
	}
}

func TestMergeWordStreamsSingleSource(t *testing.T) {
	alphabet := NewAlphabet(EnglishAlphabet)
	r := strings.NewReader("ant\nbee\ncow\n")
	got := MergeWordStreams(alphabet, r)
	want := []string{"ant", "bee", "cow"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("MergeWordStreams[%d] = %q; want %q", i, got[i], want[i])
		}
	}
}

func TestMergeWordStreamsNoSources(t *testing.T) {
	alphabet := NewAlphabet(EnglishAlphabet)
	got := MergeWordStreams(alphabet)
	if len(got) != 0 {
		t.Fatalf("MergeWordStreams with no sources = %v; want empty", got)
	}
}
