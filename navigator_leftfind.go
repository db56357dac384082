// navigator_leftfind.go
// Copyright (C) 2018 Vilhjálmur Þorsteinsson

// This file implements LeftFindNavigator, which locates a specific
// left part within the Dawg -- the word fragment already sitting on
// the board to the left of (or above) an anchor square -- and saves
// the navigation state at that point so ExtendRightNavigator can
// resume from there.

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

// LeftFindNavigator is similar to FindNavigator, but instead of
// returning only a bool result, it returns the full navigation state
// as it is when the requested prefix is found. This makes it possible
// to continue the navigation later with further constraints.
type LeftFindNavigator struct {
	prefix []rune
	lenP   int
	index  int
	// state is the result of the navigation: the point to resume
	// from after the left part has been found on the board.
	state *navState
}

// Init initializes a LeftFindNavigator with the prefix to search for.
func (lfn *LeftFindNavigator) Init(prefix []rune) {
	lfn.prefix = prefix
	lfn.lenP = len(prefix)
}

func (lfn *LeftFindNavigator) PushEdge(chr rune) bool {
	// If the edge matches our place in the sought prefix, go for it
	return lfn.prefix[lfn.index] == chr
}

func (lfn *LeftFindNavigator) PopEdge() bool {
	// There can only be one correct outgoing edge for an exact
	// prefix search, so we return false to prevent other edges
	// from being tried
	return false
}

func (lfn *LeftFindNavigator) Done() {}

func (lfn *LeftFindNavigator) IsAccepting() bool {
	return lfn.index < lfn.lenP
}

func (lfn *LeftFindNavigator) Accepts(chr rune) bool {
	// PushEdge only checks an edge's first letter; the rest of a
	// multi-letter label must match the prefix too
	if chr != lfn.prefix[lfn.index] {
		return false
	}
	lfn.index++
	return true
}

func (lfn *LeftFindNavigator) Accept(matched []rune, final bool, state *navState) {
	if lfn.index == lfn.lenP {
		// Found the whole left part; save its position
		lfn.state = state
	}
}
