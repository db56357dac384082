package skrafl

import "testing"

func TestRackAsStringAndRunes(t *testing.T) {
	rack := NewRackFromString("cat?")
	if rack.AsString() != "cat?" {
		t.Fatalf("AsString() = %q; want %q", rack.AsString(), "cat?")
	}
	if len(rack.AsRunes()) != 4 {
		t.Fatalf("AsRunes() has %d runes; want 4", len(rack.AsRunes()))
	}
}

func TestRackIsEmptyAndLen(t *testing.T) {
	empty := NewRack(nil)
	if !empty.IsEmpty() {
		t.Error("an empty rack should report IsEmpty() true")
	}
	if empty.Len() != 0 {
		t.Errorf("Len() = %d; want 0", empty.Len())
	}
	full := NewRackFromString("abc")
	if full.IsEmpty() {
		t.Error("a non-empty rack should report IsEmpty() false")
	}
	if full.Len() != 3 {
		t.Errorf("Len() = %d; want 3", full.Len())
	}
}

func TestRackHasTile(t *testing.T) {
	rack := NewRackFromString("cat")
	if !rack.HasTile('a') {
		t.Error("HasTile('a') should be true")
	}
	if rack.HasTile('z') {
		t.Error("HasTile('z') should be false")
	}
}

func TestRackAsSetWildcardMeansEverything(t *testing.T) {
	alphabet := NewAlphabet(EnglishAlphabet)
	rack := NewRackFromString("a?")
	if rack.AsSet(alphabet) != alphabet.AllSet() {
		t.Fatal("a rack with a blank tile should produce the full alphabet bitmask")
	}
}

func TestRackWithoutRemovesSingleOccurrence(t *testing.T) {
	rack := NewRackFromString("aab")
	without := rack.Without('a')
	if without.AsString() != "ab" {
		t.Fatalf("Without('a') = %q; want %q", without.AsString(), "ab")
	}
	// The original rack must be left untouched.
	if rack.AsString() != "aab" {
		t.Fatalf("Without must not mutate the receiver; rack is now %q", rack.AsString())
	}
}

func TestRackWithoutAbsentLetterLeavesRackUnchanged(t *testing.T) {
	rack := NewRackFromString("cat")
	without := rack.Without('z')
	if without.AsString() != "cat" {
		t.Fatalf("Without('z') = %q; want %q unchanged", without.AsString(), "cat")
	}
}
