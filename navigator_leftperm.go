// navigator_leftperm.go
// Copyright (C) 2018 Vilhjálmur Þorsteinsson

// This file implements LeftPermutationNavigator, which enumerates
// every left part -- a word beginning -- that a rack can form,
// grouped by length. It is run once per move-generation pass; the
// resulting LeftPart list is then reused across every anchor square
// on every axis that has open space to its left.

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

// LeftPart stores the navigation state after matching a particular
// left part within the Dawg, so ExtendRightNavigator can resume
// navigation from that point to complete an anchor square followed
// by a right part.
type LeftPart struct {
	matched []rune
	rack    string
	state   *navState
}

// String returns a string representation of a LeftPart, for debugging.
func (lp *LeftPart) String() string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("LeftPart: matched %q from rack %q", string(lp.matched), lp.rack))
	return sb.String()
}

// LeftPermutationNavigator finds all left parts of words that are
// possible with a particular rack, and accumulates them by length.
// This is done once at the start of move generation.
type LeftPermutationNavigator struct {
	rack      string
	stack     []leftPermItem
	maxLeft   int
	leftParts [][]*LeftPart
	index     int
}

type leftPermItem struct {
	rack  string
	index int
}

// FindLeftParts returns all left part permutations that can be
// generated from the given rack, grouped by length.
func FindLeftParts(dawg *Dawg, rack string) [][]*LeftPart {
	var lpn LeftPermutationNavigator
	lpn.Init(rack)
	dawg.NavigateResumable(&lpn)
	return lpn.leftParts
}

// Init initializes a fresh LeftPermutationNavigator using the given rack.
func (lpn *LeftPermutationNavigator) Init(rack string) {
	lpn.rack = rack
	// One tile from the rack will be put on the anchor square; the
	// rest is available to be played to the left of the anchor. We
	// thus find all permutations involving all rack tiles except one.
	lenRack := len([]rune(rack))
	if lenRack <= 1 {
		lpn.maxLeft = 0
	} else {
		lpn.maxLeft = lenRack - 1
	}
	lpn.stack = make([]leftPermItem, 0)
	lpn.leftParts = make([][]*LeftPart, lpn.maxLeft)
	for i := 0; i < lpn.maxLeft; i++ {
		lpn.leftParts[i] = make([]*LeftPart, 0)
	}
}

// LeftParts returns the left parts of the given length found in the rack.
func (lpn *LeftPermutationNavigator) LeftParts(length int) []*LeftPart {
	if length < 1 || length > lpn.maxLeft {
		return nil
	}
	return lpn.leftParts[length-1]
}

func (lpn *LeftPermutationNavigator) PushEdge(chr rune) bool {
	if !strings.ContainsRune(lpn.rack, chr) && !strings.ContainsRune(lpn.rack, Wildcard) {
		return false
	}
	lpn.stack = append(lpn.stack, leftPermItem{lpn.rack, lpn.index})
	return true
}

func (lpn *LeftPermutationNavigator) PopEdge() bool {
	last := len(lpn.stack) - 1
	lpn.rack, lpn.index = lpn.stack[last].rack, lpn.stack[last].index
	lpn.stack = lpn.stack[:last]
	return true
}

func (lpn *LeftPermutationNavigator) Done() {}

func (lpn *LeftPermutationNavigator) IsAccepting() bool {
	return lpn.index < lpn.maxLeft
}

func (lpn *LeftPermutationNavigator) Accepts(chr rune) bool {
	exactMatch := strings.ContainsRune(lpn.rack, chr)
	if !exactMatch && !strings.ContainsRune(lpn.rack, Wildcard) {
		return false
	}
	lpn.index++
	if exactMatch {
		lpn.rack = strings.Replace(lpn.rack, string(chr), "", 1)
	} else {
		lpn.rack = strings.Replace(lpn.rack, string(Wildcard), "", 1)
	}
	return true
}

func (lpn *LeftPermutationNavigator) Accept(matched []rune, final bool, state *navState) {
	ix := len(matched) - 1
	lpn.leftParts[ix] = append(lpn.leftParts[ix],
		&LeftPart{matched: append([]rune(nil), matched...), rack: lpn.rack, state: state},
	)
}
