// dawg.go
// Copyright (C) 2024 Vilhjálmur Þorsteinsson / Miðeind ehf.

// This file implements the read-only Directed Acyclic Word Graph
// (Dawg): the node/edge model produced by DawgBuilder.Finish or
// loaded by ReadTextDawgFile, and the Find/Match/CrossSet operations
// built on top of the Navigator protocol in navigators.go.

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
	"sync"

	"github.com/hashicorp/golang-lru/simplelru"
	"golang.org/x/exp/slices"
)

// SinkNode is the implicit, un-materialized terminal node that an
// edge points to when it leads to a pure final state with no further
// continuations. It never appears in Dawg.nodes.
const SinkNode uint32 = 0

// RootNode is the id of the Dawg's root node, always 1 -- both in
// memory and in the text file format (see textdawg.go), where the
// root is always the first line.
const RootNode uint32 = 1

// dawgEdge is a single outgoing edge of a dawgNode. label may be
// several runes long (a collapsed chain) and may contain an embedded
// FinalMarker denoting that a word ends partway through the label.
// target is SinkNode if the edge leads straight to a final state
// with no outgoing edges of its own.
type dawgEdge struct {
	label  []rune
	target uint32
}

// dawgNode is a single node of a finished Dawg.
type dawgNode struct {
	final bool
	edges []dawgEdge
}

// Dawg is a minimized, read-only Directed Acyclic Word Graph: the
// compiled form of a word list, as produced by DawgBuilder.Finish or
// ReadTextDawgFile.
type Dawg struct {
	alphabet *Alphabet
	nodes    []dawgNode // indexed by node id; nodes[0] is unused

	crossCache crossCache
}

// Alphabet returns the Alphabet the Dawg's vocabulary is built from.
func (d *Dawg) Alphabet() *Alphabet {
	return d.alphabet
}

// NumNodes returns the number of nodes in the graph, the root
// included.
func (d *Dawg) NumNodes() int {
	return len(d.nodes) - 1
}

func (d *Dawg) node(id uint32) *dawgNode {
	return &d.nodes[id]
}

// Navigate performs a navigation through the Dawg under the control
// of a Navigator.
func (d *Dawg) Navigate(navigator Navigator) {
	var nav Navigation
	nav.Go(d, navigator)
}

// NavigateResumable performs a navigation through the Dawg under the
// control of a Navigator, passing the full resumption state to every
// Accept call so the traversal can later be continued with Resume.
func (d *Dawg) NavigateResumable(navigator Navigator) {
	var nav Navigation
	nav.isResumable = true
	nav.Go(d, navigator)
}

// Resume continues a navigation through the Dawg under the control
// of a Navigator, from a previously saved navState.
func (d *Dawg) Resume(navigator Navigator, state *navState, matched []rune) {
	var nav Navigation
	nav.Resume(d, navigator, state, matched)
}

// Find returns true if word is present in the Dawg.
func (d *Dawg) Find(word string) bool {
	var fn FindNavigator
	fn.Init(word)
	d.Navigate(&fn)
	return fn.found
}

// Match returns every word in the Dawg that matches pattern, which
// may contain Wildcard ('?') characters standing for any single
// letter.
func (d *Dawg) Match(pattern string) []string {
	return d.MatchRunes([]rune(pattern))
}

// MatchRunes is the same as Match, taking the pattern as runes. The
// results are returned in the Dawg's Alphabet collation order. Edges
// are normally collapsed in that order already, since AddWord
// requires its input sorted, but a Dawg loaded from a hand-edited or
// foreign-tool text file carries no such guarantee, so the order is
// enforced explicitly here rather than assumed.
func (d *Dawg) MatchRunes(pattern []rune) []string {
	var mn MatchNavigator
	mn.Init(pattern)
	d.Navigate(&mn)
	slices.SortFunc(mn.results, func(a, b string) bool {
		return d.alphabet.Compare([]rune(a), []rune(b)) < 0
	})
	return mn.results
}

// CrossSet calculates a bit-mapped set of the letters that may
// legally complete a cross-word, given the run of letters
// immediately before (left) and after (right) the square being
// checked. The result is memoized in crossCache, since the same
// left/right pair recurs across many rack permutations during move
// generation.
func (d *Dawg) CrossSet(left, right []rune) uint32 {
	if len(left) == 0 && len(right) == 0 {
		// No cross word, so no cross-check constraint
		return d.alphabet.AllSet()
	}
	lenLeft := len(left)
	key := string(left) + string(Wildcard) + string(right)
	fetch := func(key string) uint32 {
		// Find every word of the form left + one letter + right,
		// e.g. "f?lt" for left="f", right="lt", yielding a result
		// set such as {"falt", "filt", "fúlt"}. The middle letters
		// are the legal cross-check set.
		matches := d.MatchRunes([]rune(key))
		runes := make([]rune, 0, len(matches))
		for _, m := range matches {
			rm := []rune(m)
			runes = append(runes, rm[lenLeft])
		}
		return d.alphabet.MakeSet(runes)
	}
	return d.crossCache.Lookup(key, fetch)
}

// crossCache is a simple LRU-memoized map from a cross-check pattern
// ("af?a") to its resulting bitmapped letter set.
type crossCache struct {
	mux  sync.Mutex
	lru  *simplelru.LRU
	once sync.Once
}

const crossCacheSize = 2048

func (cc *crossCache) Lookup(key string, fetch func(string) uint32) uint32 {
	cc.once.Do(func() {
		cc.lru, _ = simplelru.NewLRU(crossCacheSize, nil)
	})
	cc.mux.Lock()
	defer cc.mux.Unlock()
	if v, ok := cc.lru.Get(key); ok {
		return v.(uint32)
	}
	v := fetch(key)
	cc.lru.Add(key, v)
	return v
}
