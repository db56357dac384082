// wordstream.go
// Copyright (C) 2024 Vilhjálmur Þorsteinsson / Miðeind ehf.

// This file implements reading and k-way merging of sorted word
// streams, so a DawgBuilder never has to pre-concatenate and sort its
// inputs itself -- callers can feed it several already-sorted word
// list files (e.g. one per source dictionary) and let MergeWordStreams
// produce the single ascending, duplicate-free sequence AddWord needs.

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
	"bufio"
	"container/heap"
	"io"
	"log"
	"strings"
)

// WordReader reads words, one per line, from a sorted source. Blank
// lines are skipped; lines of MaxWordLength runes or more are skipped
// with a warning logged.
type WordReader struct {
	scanner *bufio.Scanner
	maxLen  int
}

// NewWordReader wraps r as a WordReader, trimming trailing CR/LF from
// each line and discarding blank or over-length lines.
func NewWordReader(r io.Reader) *WordReader {
	return &WordReader{scanner: bufio.NewScanner(r), maxLen: MaxWordLength}
}

// Next returns the next usable word, or "", false at end of stream.
func (wr *WordReader) Next() (string, bool) {
	for wr.scanner.Scan() {
		line := strings.TrimRight(wr.scanner.Text(), "\r\n")
		if line == "" {
			continue
		}
		if len([]rune(line)) >= wr.maxLen {
			log.Printf("wordstream: skipping overlong word %q", line)
			continue
		}
		return line, true
	}
	return "", false
}

// mergeSource is one input stream being merged, together with its
// most recently read, not-yet-emitted word.
type mergeSource struct {
	reader *WordReader
	word   string
	index  int // source index, used only to break ties deterministically
}

// mergeHeap is a min-heap of mergeSources ordered by their current
// word under the Alphabet's collation.
type mergeHeap struct {
	sources  []*mergeSource
	alphabet *Alphabet
}

func (h *mergeHeap) Len() int { return len(h.sources) }
func (h *mergeHeap) Less(i, j int) bool {
	cmp := h.alphabet.Compare([]rune(h.sources[i].word), []rune(h.sources[j].word))
	if cmp != 0 {
		return cmp < 0
	}
	return h.sources[i].index < h.sources[j].index
}
func (h *mergeHeap) Swap(i, j int) { h.sources[i], h.sources[j] = h.sources[j], h.sources[i] }
func (h *mergeHeap) Push(x any)    { h.sources = append(h.sources, x.(*mergeSource)) }
func (h *mergeHeap) Pop() any {
	old := h.sources
	n := len(old)
	item := old[n-1]
	h.sources = old[:n-1]
	return item
}

// MergeWordStreams performs a k-way merge of already-sorted word
// streams under the given Alphabet's collation order, returning the
// ascending union with exact duplicates discarded. Each stream must
// already be sorted; MergeWordStreams does not itself validate that.
func MergeWordStreams(alphabet *Alphabet, streams ...io.Reader) []string {
	h := &mergeHeap{alphabet: alphabet}
	heap.Init(h)
	for i, s := range streams {
		wr := NewWordReader(s)
		if word, ok := wr.Next(); ok {
			heap.Push(h, &mergeSource{reader: wr, word: word, index: i})
		}
	}
	result := make([]string, 0)
	var last string
	haveLast := false
	for h.Len() > 0 {
		top := h.sources[0]
		word := top.word
		if !haveLast || alphabet.Compare([]rune(word), []rune(last)) != 0 {
			result = append(result, word)
			last = word
			haveLast = true
		}
		if next, ok := top.reader.Next(); ok {
			top.word = next
			heap.Fix(h, 0)
		} else {
			heap.Pop(h)
		}
	}
	return result
}
