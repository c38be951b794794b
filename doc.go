// Package huffman implements a minimum-redundancy prefix codec over single
// characters.  It counts symbol frequencies, builds a Huffman tree by greedy
// merging of the two lowest-frequency nodes, assigns prefix-free bit-strings
// by tree traversal, and encodes and decodes text against the retained tree.
//
// References:
//
//	<https://en.wikipedia.org/wiki/Huffman_coding>
package huffman
