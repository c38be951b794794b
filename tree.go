package huffman

import (
	"container/heap"
	"fmt"
)

// Node is one node of a Huffman tree.  A leaf carries a Symbol and its
// frequency; an internal node carries the sum of its two children's
// frequencies and owns exactly two children.  Nodes are never mutated after
// Build returns, so a finished tree may be read concurrently without
// synchronization.
type Node struct {
	Sym   Symbol
	Freq  int
	Left  *Node
	Right *Node
}

// IsLeaf reports whether n carries a Symbol.
func (n *Node) IsLeaf() bool {
	return n.Left == nil && n.Right == nil
}

// Build constructs the Huffman tree for a nonempty frequency table by
// repeatedly removing the two lowest-frequency nodes from a min-priority
// queue and inserting their merge, until a single node remains.  The first
// node removed in a round becomes the left child.
//
// Ties between equal frequencies are broken by sequence number: leaves keep
// the table's first-observation order and every merged node takes the next
// number, so older nodes are consumed first.  The same input always yields
// the same tree.
//
// A single-entry table produces a tree whose root is the sole leaf.  An
// empty table fails with ErrEmptyAlphabet.
func Build(ft *FrequencyTable) (*Node, error) {
	if ft.Len() == 0 {
		return nil, fmt.Errorf("building tree: %w", ErrEmptyAlphabet)
	}

	h := &nodeHeap{list: make([]rankedNode, 0, ft.Len())}
	for seq, sym := range ft.Symbols() {
		h.list = append(h.list, rankedNode{&Node{Sym: sym, Freq: ft.Of(sym)}, seq})
	}
	h.Init()

	seq := h.Len()
	for h.Len() > 1 {
		left := heap.Pop(h).(rankedNode)
		right := heap.Pop(h).(rankedNode)
		merged := &Node{
			Freq:  left.node.Freq + right.node.Freq,
			Left:  left.node,
			Right: right.node,
		}
		heap.Push(h, rankedNode{merged, seq})
		seq++
	}
	return heap.Pop(h).(rankedNode).node, nil
}

// type rankedNode + type nodeHeap {{{

// rankedNode pairs a tree node with its insertion sequence number, the
// tie-break key for equal frequencies.
type rankedNode struct {
	node *Node
	seq  int
}

type nodeHeap struct {
	list []rankedNode
}

func (h *nodeHeap) Init() {
	heap.Init(h)
}

func (h *nodeHeap) Len() int {
	return len(h.list)
}

func (h *nodeHeap) Swap(i, j int) {
	h.list[i], h.list[j] = h.list[j], h.list[i]
}

func (h *nodeHeap) Less(i, j int) bool {
	a, b := h.list[i], h.list[j]
	if a.node.Freq != b.node.Freq {
		return a.node.Freq < b.node.Freq
	}
	return a.seq < b.seq
}

func (h *nodeHeap) Push(x interface{}) {
	h.list = append(h.list, x.(rankedNode))
}

func (h *nodeHeap) Pop() interface{} {
	last := len(h.list) - 1
	x := h.list[last]
	h.list = h.list[:last]
	return x
}

var _ heap.Interface = (*nodeHeap)(nil)

// }}}
