package skrafl

import "testing"

func TestFindNavigatorExactMatch(t *testing.T) {
	alphabet := NewAlphabet(EnglishAlphabet)
	dawg := buildFrom(t, alphabet, []string{"cat", "cats", "car"})
	var fn FindNavigator
	fn.Init("cat")
	dawg.Navigate(&fn)
	if !fn.found {
		t.Fatal("FindNavigator should find \"cat\"")
	}
}

func TestFindNavigatorRejectsPrefixOfAWord(t *testing.T) {
	alphabet := NewAlphabet(EnglishAlphabet)
	dawg := buildFrom(t, alphabet, []string{"cats"})
	var fn FindNavigator
	fn.Init("cat")
	dawg.Navigate(&fn)
	if fn.found {
		t.Fatal("\"cat\" is only a prefix of \"cats\", not itself a word; FindNavigator should not report it found")
	}
}

func TestLeftFindNavigatorResumesExtension(t *testing.T) {
	alphabet := NewAlphabet(EnglishAlphabet)
	dawg := buildFrom(t, alphabet, []string{"cat", "cats", "car"})

	var lfn LeftFindNavigator
	lfn.Init([]rune("ca"))
	dawg.NavigateResumable(&lfn)
	if lfn.state == nil {
		t.Fatal("expected a resumable state after finding the prefix \"ca\"")
	}

	var fn FindNavigator
	fn.Init("t")
	dawg.Resume(&fn, lfn.state, []rune("ca"))
	if !fn.found {
		t.Fatal("resuming from \"ca\" and matching \"t\" should find \"cat\"")
	}
}

func TestLeftFindNavigatorNoStateWhenPrefixAbsent(t *testing.T) {
	alphabet := NewAlphabet(EnglishAlphabet)
	dawg := buildFrom(t, alphabet, []string{"cat"})
	var lfn LeftFindNavigator
	lfn.Init([]rune("do"))
	dawg.NavigateResumable(&lfn)
	if lfn.state != nil {
		t.Fatal("expected no resumable state for an absent prefix")
	}
}

func TestFindLeftPartsGroupsByLength(t *testing.T) {
	alphabet := NewAlphabet(EnglishAlphabet)
	dawg := buildFrom(t, alphabet, []string{"cat", "cats", "car", "care"})
	leftParts := FindLeftParts(dawg, "cat")
	// maxLeft = len(rack)-1 = 2, so only lengths 1 and 2 are populated.
	if len(leftParts) != 2 {
		t.Fatalf("FindLeftParts(\"cat\") returned %d length groups; want 2", len(leftParts))
	}
	foundC := false
	for _, lp := range leftParts[0] {
		if string(lp.matched) == "c" {
			foundC = true
		}
	}
	if !foundC {
		t.Error("expected a length-1 left part \"c\"")
	}
	foundCA := false
	for _, lp := range leftParts[1] {
		if string(lp.matched) == "ca" {
			foundCA = true
		}
	}
	if !foundCA {
		t.Error("expected a length-2 left part \"ca\"")
	}
}

func TestFindLeftPartsEmptyForSingleTileRack(t *testing.T) {
	alphabet := NewAlphabet(EnglishAlphabet)
	dawg := buildFrom(t, alphabet, []string{"cat"})
	leftParts := FindLeftParts(dawg, "c")
	if len(leftParts) != 0 {
		t.Fatalf("a single-tile rack leaves no room for a left part; got %d groups", len(leftParts))
	}
}
