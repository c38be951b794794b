package huffman

import (
	"github.com/chronos-tachyon/assert"
)

// CodeTable maps each Symbol present in one Huffman tree to its Code.  The
// table is prefix-free by construction: leaves are the only code-bearing
// nodes, and no leaf is an ancestor of another leaf.
type CodeTable map[Symbol]Code

// NewCodeTable derives the code table from one depth-first traversal of the
// tree rooted at root, accumulating '0' for each left edge and '1' for each
// right edge descended and binding the path on reaching a leaf.
//
// A single-leaf root has no edges to accumulate, so its sole symbol
// receives the fixed code "0".  A nil root yields an empty table.
func NewCodeTable(root *Node) CodeTable {
	table := make(CodeTable)
	if root == nil {
		return table
	}
	if root.IsLeaf() {
		table[root.Sym] = "0"
		return table
	}

	type frame struct {
		node *Node
		path Code
	}

	stack := make([]frame, 0, 16)
	stack = append(stack, frame{root, ""})
	for len(stack) != 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if top.node.IsLeaf() {
			table[top.node.Sym] = top.path
			continue
		}

		assert.Assertf(top.node.Left != nil && top.node.Right != nil,
			"internal node with frequency %d must own exactly two children", top.node.Freq)

		// Left is pushed last so the walk descends left edges first.
		stack = append(stack, frame{top.node.Right, top.path + "1"})
		stack = append(stack, frame{top.node.Left, top.path + "0"})
	}
	return table
}
