// navigators.go
// Copyright (C) 2024 Vilhjálmur Þorsteinsson / Miðeind ehf.

// This file contains the Navigator interface and the Navigation
// engine that drives it over a Dawg, plus the two simplest
// navigators: FindNavigator (exact word lookup) and MatchNavigator
// (wildcard pattern matching). The left-part and extend-right
// navigators used by move generation live alongside Axis in their
// own files.

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

// Navigator is an interface that describes behaviors that control
// the navigation of a Dawg.
type Navigator interface {
	IsAccepting() bool
	Accepts(rune) bool
	Accept(matched []rune, final bool, state *navState)
	PushEdge(rune) bool
	PopEdge() bool
	Done()
}

// navState holds a navigation state, i.e. a position partway through
// (or at the end of) an edge label, together with the node the edge
// leads to. It lets a navigator save its position in the graph and
// resume from there later, without retracing the path already
// walked -- this is what lets move generation complete a left part
// found on the board without re-navigating from the root.
type navState struct {
	prefix   []rune
	nextNode uint32
}

// Navigation contains the state of a single navigation that is
// underway within a Dawg.
type Navigation struct {
	dawg      *Dawg
	navigator Navigator
	// isResumable is set to true if we should call navigator.Accept()
	// with the full state of the navigation in the last parameter.
	// If the navigation doesn't require this, leave isResumable set
	// to false for best performance.
	isResumable bool
}

// FromNode continues a navigation from a node in the Dawg,
// enumerating through outgoing edges until the navigator is
// satisfied.
func (nav *Navigation) FromNode(id uint32, matched []rune) {
	node := nav.dawg.node(id)
	for i := range node.edges {
		edge := &node.edges[i]
		if nav.navigator.PushEdge(edge.label[0]) {
			// The navigator wants us to enter this edge
			nav.FromEdge(edge, matched)
			if !nav.navigator.PopEdge() {
				// The navigator doesn't want to visit other edges,
				// so we're done with this node
				break
			}
		}
	}
}

// FromEdge navigates along an edge in the Dawg. An edge label may be
// longer than one letter, and may contain an embedded FinalMarker.
func (nav *Navigation) FromEdge(edge *dawgEdge, alreadyMatched []rune) {
	label := edge.label
	lenL := len(label)
	j := 0
	navigator := nav.navigator
	var matched []rune
	if n := len(alreadyMatched); n > 0 {
		matched = make([]rune, n, n+lenL)
		copy(matched, alreadyMatched)
	}
	for j < lenL && navigator.IsAccepting() {
		if !navigator.Accepts(label[j]) {
			// The navigator doesn't want this letter: we're done
			return
		}
		matched = append(matched, label[j])
		j++
		final := false
		if j < lenL {
			// An embedded final marker means a word ends here,
			// mid-label
			if label[j] == FinalMarker {
				final = true
				j++
			}
		} else if edge.target == SinkNode || nav.dawg.node(edge.target).final {
			// The label is exhausted: a word ends here if there is
			// no further node, or the next node is itself final
			final = true
		}
		if nav.isResumable {
			navigator.Accept(matched, final, &navState{prefix: label[j:], nextNode: edge.target})
		} else {
			navigator.Accept(matched, final, nil)
		}
	}
	if j >= lenL && edge.target != SinkNode && navigator.IsAccepting() {
		// Completed the whole label and the navigator still has
		// appetite: continue to the following node
		nav.FromNode(edge.target, matched)
	}
}

// Go starts a navigation on the underlying Dawg using the given
// Navigator.
func (nav *Navigation) Go(dawg *Dawg, navigator Navigator) {
	nav.dawg = dawg
	nav.navigator = navigator
	if navigator.IsAccepting() {
		nav.FromNode(RootNode, nil)
	}
	navigator.Done()
}

// Resume continues a navigation on the underlying Dawg using the
// given Navigator, from a previously saved navState.
func (nav *Navigation) Resume(dawg *Dawg, navigator Navigator, state *navState, matched []rune) {
	if state == nil {
		return
	}
	nav.dawg = dawg
	nav.navigator = navigator
	if navigator.IsAccepting() {
		nav.FromEdge(&dawgEdge{label: state.prefix, target: state.nextNode}, matched)
	}
	navigator.Done()
}

// FindNavigator stores the state for a plain word search in the
// Dawg, and implements the Navigator interface.
type FindNavigator struct {
	word    []rune
	lenWord int
	index   int
	found   bool
}

// Init initializes a FindNavigator with the word to search for.
func (fn *FindNavigator) Init(word string) {
	fn.word = []rune(word)
	fn.lenWord = len(fn.word)
}

func (fn *FindNavigator) PushEdge(chr rune) bool {
	return fn.word[fn.index] == chr
}

func (fn *FindNavigator) PopEdge() bool {
	// There can only be one correct outgoing edge for a plain word
	// search, so we return false to prevent other edges being tried
	return false
}

func (fn *FindNavigator) Done() {}

func (fn *FindNavigator) IsAccepting() bool {
	return fn.index < fn.lenWord
}

func (fn *FindNavigator) Accepts(chr rune) bool {
	// PushEdge only checks an edge's first letter; the rest of a
	// multi-letter label must be checked here
	if chr != fn.word[fn.index] {
		return false
	}
	fn.index++
	return true
}

func (fn *FindNavigator) Accept(matched []rune, final bool, state *navState) {
	if final && fn.index == fn.lenWord {
		fn.found = true
	}
}

// MatchNavigator stores the state for a wildcard pattern matching
// navigation of a Dawg, and implements the Navigator interface.
type MatchNavigator struct {
	pattern    []rune
	lenP       int
	index      int
	chMatch    rune
	isWildcard bool
	stack      []matchItem
	results    []string
}

type matchItem struct {
	index      int
	chMatch    rune
	isWildcard bool
}

// Init initializes a MatchNavigator with the pattern to match.
func (mn *MatchNavigator) Init(pattern []rune) {
	mn.pattern = pattern
	mn.lenP = len(mn.pattern)
	mn.chMatch = mn.pattern[0]
	mn.isWildcard = mn.chMatch == Wildcard
	mn.stack = make([]matchItem, 0, 8)
	mn.results = make([]string, 0, 16)
}

func (mn *MatchNavigator) PushEdge(chr rune) bool {
	if chr != mn.chMatch && !mn.isWildcard {
		return false
	}
	mn.stack = append(mn.stack, matchItem{mn.index, mn.chMatch, mn.isWildcard})
	return true
}

func (mn *MatchNavigator) PopEdge() bool {
	last := len(mn.stack) - 1
	mt := &mn.stack[last]
	mn.index, mn.chMatch, mn.isWildcard = mt.index, mt.chMatch, mt.isWildcard
	mn.stack = mn.stack[:last]
	return mn.isWildcard
}

func (mn *MatchNavigator) Done() {}

func (mn *MatchNavigator) IsAccepting() bool {
	return mn.index < mn.lenP
}

func (mn *MatchNavigator) Accepts(chr rune) bool {
	if chr != mn.chMatch && !mn.isWildcard {
		return false
	}
	mn.index++
	if mn.index < mn.lenP {
		mn.chMatch = mn.pattern[mn.index]
		mn.isWildcard = mn.chMatch == Wildcard
	}
	return true
}

func (mn *MatchNavigator) Accept(matched []rune, final bool, state *navState) {
	if final && mn.index == mn.lenP {
		mn.results = append(mn.results, string(matched))
	}
}
