package wordsplit

// Node is one task of the split tree.
// Leaf nodes are tokenized directly, inner nodes merge their children.
type Node struct {
	Range Range
	Left  *Node
	Right *Node
}

// Leaf reports whether the node is tokenized without further splitting.
func (n *Node) Leaf() bool {
	return n.Left == nil && n.Right == nil
}

// Leaves returns the leaf ranges in left-to-right order.
func (n *Node) Leaves() []Range {
	var leaves []Range
	n.walk(func(node *Node) {
		if node.Leaf() {
			leaves = append(leaves, node.Range)
		}
	})
	return leaves
}

// Depth returns the number of levels in the tree.
func (n *Node) Depth() int {
	if n.Leaf() {
		return 1
	}
	return 1 + max(n.Left.Depth(), n.Right.Depth())
}

// walk visits nodes in pre-order, left before right.
func (n *Node) walk(f func(*Node)) {
	if n == nil {
		return
	}
	f(n)
	n.Left.walk(f)
	n.Right.walk(f)
}

// PlanTree returns the task tree the scheduler builds for a buffer of n characters
// when leaves are bounded by threshold. It returns nil for an empty buffer.
func PlanTree(n, threshold int) *Node {
	if n < 1 {
		return nil
	}
	return plan(Range{0, n - 1}, threshold)
}

func plan(r Range, threshold int) *Node {
	node := &Node{Range: r}
	if r.End-r.Begin > threshold {
		left, right := r.halve()
		node.Left = plan(left, threshold)
		node.Right = plan(right, threshold)
	}
	return node
}
