// textdawg.go
// Copyright (C) 2024 Vilhjálmur Þorsteinsson / Miðeind ehf.

// This file implements the text DAWG file format: one node per line,
// nodes numbered by line number starting at 1 for the root, following
// the grammar:
//
//	node     = [ "|" ] | [ "|" "_" ] edge ( "_" edge )*
//	edge     = label ":" child-id
//	label    = ( letter | "|" )+   ; no leading "|"; no trailing "|"
//	child-id = decimal integer; 0 denotes the sink
//
// A line's parts -- the leading "|" if the node is final, then one
// part per edge -- are joined with "_", so a final node with at
// least one edge reads "|_edge_edge...": the separator appears
// between "|" and the first edge exactly as it does between any two
// edges. A final node with no edges is just "|".
//
// This is the format dawgbuilder.py's write_text emits, not the
// teacher's embedded binary .dawg assets.

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
	"fmt"
	"io"
	"strconv"
	"strings"

	"golang.org/x/exp/mmap"
)

// WriteTextDawg writes dawg to w in the text DAWG format, one node
// per line, starting at the root (always line 1).
func WriteTextDawg(w io.Writer, dawg *Dawg) error {
	bw := bufio.NewWriter(w)
	for id := RootNode; id < uint32(len(dawg.nodes)); id++ {
		node := dawg.node(id)
		parts := make([]string, 0, len(node.edges)+1)
		if node.final {
			parts = append(parts, "|")
		}
		for _, edge := range node.edges {
			parts = append(parts, string(edge.label)+":"+strconv.FormatUint(uint64(edge.target), 10))
		}
		var sb strings.Builder
		sb.WriteString(strings.Join(parts, "_"))
		sb.WriteByte('\n')
		if _, err := bw.WriteString(sb.String()); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// ReadTextDawgFile reads a text DAWG file through a read-only memory
// map. The whole mapped contents are copied into a byte slice before
// parsing, so the file is still read fully into memory.
func ReadTextDawgFile(path string, alphabet *Alphabet) (*Dawg, error) {
	rd, err := mmap.Open(path)
	if err != nil {
		return nil, err
	}
	defer rd.Close()

	data := make([]byte, rd.Len())
	if _, err := rd.ReadAt(data, 0); err != nil && err != io.EOF {
		return nil, err
	}
	return parseTextDawg(data, alphabet)
}

// ParseTextDawg parses a text DAWG already held in memory. It is
// exposed separately from ReadTextDawgFile so callers that already
// have the bytes (e.g. from an embedded asset) don't need to round
// trip through a file.
func ParseTextDawg(data []byte, alphabet *Alphabet) (*Dawg, error) {
	return parseTextDawg(data, alphabet)
}

func parseTextDawg(data []byte, alphabet *Alphabet) (*Dawg, error) {
	lines := strings.Split(strings.TrimRight(string(data), "\n"), "\n")
	nodes := make([]dawgNode, len(lines)+1) // nodes[0] unused (sink)
	for i, line := range lines {
		id := uint32(i) + 1
		node, err := parseTextDawgLine(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", id, err)
		}
		nodes[id] = node
	}
	maxID := uint32(len(nodes) - 1)
	for id := RootNode; id <= maxID; id++ {
		for _, edge := range nodes[id].edges {
			if edge.target != SinkNode && edge.target > maxID {
				return nil, fmt.Errorf("line %d: %w", id, ErrDanglingReference)
			}
		}
	}
	return &Dawg{alphabet: alphabet, nodes: nodes}, nil
}

func parseTextDawgLine(line string) (dawgNode, error) {
	var node dawgNode
	if line == "" {
		return node, nil
	}
	if line[0] == byte(FinalMarker) {
		node.final = true
		line = line[1:]
		if line == "" {
			// "|" alone: a final node with no outgoing edges.
			return node, nil
		}
		if line[0] != '_' {
			return dawgNode{}, ErrMalformedLine
		}
		line = line[1:]
		if line == "" {
			// "|_" with nothing after: the writer never emits a
			// trailing separator with no edge to follow it.
			return dawgNode{}, ErrMalformedLine
		}
	}
	parts := strings.Split(line, "_")
	node.edges = make([]dawgEdge, 0, len(parts))
	for _, part := range parts {
		sep := strings.LastIndex(part, ":")
		if sep <= 0 || sep == len(part)-1 {
			return dawgNode{}, ErrMalformedLine
		}
		label := part[:sep]
		if label == "" || label[0] == byte(FinalMarker) || label[len(label)-1] == byte(FinalMarker) {
			return dawgNode{}, ErrMalformedLine
		}
		target, err := strconv.ParseUint(part[sep+1:], 10, 32)
		if err != nil {
			return dawgNode{}, ErrMalformedLine
		}
		node.edges = append(node.edges, dawgEdge{label: []rune(label), target: uint32(target)})
	}
	return node, nil
}
