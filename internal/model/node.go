package model

import "math"

// DOFsPerNode is the number of global degrees of freedom carried by each node:
// x-translation, y-translation and rotation.
const DOFsPerNode = 3

// Node is a point of the 2D model. Coordinates cannot change after construction.
type Node struct {
	index int
	x, y  float64
}

// NewNode creates a node at (x, y). The index is assigned by the caller.
func NewNode(index int, x, y float64) *Node {
	return &Node{index: index, x: x, y: y}
}

// Index returns the node number
func (n *Node) Index() int { return n.index }

// X returns the global x-coordinate
func (n *Node) X() float64 { return n.x }

// Y returns the global y-coordinate
func (n *Node) Y() float64 { return n.y }

// Distance returns the Euclidean distance to another node
func (n *Node) Distance(other *Node) float64 {
	return math.Hypot(n.x-other.x, n.y-other.y)
}

// IsSameLocation reports whether other lies within DefaultCoincidence of n
func (n *Node) IsSameLocation(other *Node) bool {
	return n.IsSameLocationTol(other, DefaultCoincidence)
}

// IsSameLocationTol reports whether other lies strictly closer than tol
func (n *Node) IsSameLocationTol(other *Node, tol float64) bool {
	return n.Distance(other) < tol
}

// DOFs returns the global degrees of freedom (ux, uy, rz) of the node.
// The numbering assumes node indices are dense and start at zero.
func (n *Node) DOFs() [DOFsPerNode]int {
	base := DOFsPerNode * n.index
	return [DOFsPerNode]int{base, base + 1, base + 2}
}
