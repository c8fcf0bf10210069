package huffman

// maxNodes returns the number of nodes in a full binary tree with the given
// number of leaves.
func maxNodes(leaves int) int {
	if leaves <= 1 {
		return 1
	}
	return 2*leaves - 1
}
