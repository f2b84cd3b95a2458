package block

import (
	"github.com/arloliu/rsconv/format"
	"github.com/arloliu/rsconv/section"
)

// Node is one block of a Tree. Nodes are stored in sequence order, so the
// node at index i describes the block at index i of the sequence.
type Node struct {
	Parent   int // -1 for top-level nodes
	Depth    int
	Children []int
}

// Tree is an explicit view of a flat sequence.
//
// Containment follows the sentinel rules: HEAD and BODY open regions that
// hold the blocks after them, HEAD closing at BODY or "END ". Every other
// block, HEAD and BODY included, belongs to the innermost open AQFT. "END "
// closes everything, so it and anything after it are top-level.
type Tree struct {
	Seq   Sequence
	Nodes []Node
	Roots []int
}

// BuildTree materializes the tree of seq. It never fails; blocks that appear
// outside any container become top-level nodes.
func BuildTree(seq Sequence) *Tree {
	t := &Tree{Seq: seq, Nodes: make([]Node, len(seq))}

	root, region := -1, -1
	for i := range seq {
		code := seq[i].Code
		parent := -1

		switch code {
		case format.CodeEND:
			root, region = -1, -1
		case format.CodeAQFT:
			parent = root
			if region >= 0 {
				parent = region
			}
		case format.CodeHEAD, format.CodeBODY:
			parent = root
		default:
			parent = region
			if parent < 0 {
				parent = root
			}
		}

		t.attach(i, parent)

		switch code {
		case format.CodeAQFT:
			root, region = i, -1
		case format.CodeHEAD, format.CodeBODY:
			region = i
		}
	}

	return t
}

func (t *Tree) attach(i, parent int) {
	t.Nodes[i].Parent = parent
	if parent < 0 {
		t.Roots = append(t.Roots, i)
		return
	}
	t.Nodes[i].Depth = t.Nodes[parent].Depth + 1
	t.Nodes[parent].Children = append(t.Nodes[parent].Children, i)
}

// Span returns the number of payload bytes of node i counted from its
// descendants: the sum of their payloads plus headers. For leaves it is
// the declared size.
func (t *Tree) Span(i int) uint64 {
	if len(t.Nodes[i].Children) == 0 && !t.Seq[i].IsContainer() {
		return uint64(t.Seq[i].Size)
	}

	var total uint64
	for _, child := range t.Nodes[i].Children {
		total += t.Span(child) + section.HeaderSize
	}

	return total
}

// Walk visits the nodes depth first in sequence order.
func (t *Tree) Walk(fn func(i int, n *Node)) {
	var visit func(i int)
	visit = func(i int) {
		fn(i, &t.Nodes[i])
		for _, child := range t.Nodes[i].Children {
			visit(child)
		}
	}
	for _, r := range t.Roots {
		visit(r)
	}
}

// Mismatch describes a container whose declared size differs from the size
// the sizing rules produce.
type Mismatch struct {
	Index    int
	Code     format.FourCC
	Declared uint32
	Computed uint32
}

// Check compares the declared sizes of the first AQFT, HEAD and BODY blocks
// with the sizes RegionSizes derives for them.
func (t *Tree) Check() ([]Mismatch, error) {
	sizes, err := RegionSizes(t.Seq)
	if err != nil {
		return nil, err
	}

	var mismatches []Mismatch
	for _, c := range []struct {
		at   int
		want uint32
	}{
		{sizes.RootAt, sizes.Root},
		{sizes.HeadAt, sizes.Head},
		{sizes.BodyAt, sizes.Body},
	} {
		blk := t.Seq[c.at]
		if blk.Size != c.want {
			mismatches = append(mismatches, Mismatch{
				Index:    c.at,
				Code:     blk.Code,
				Declared: blk.Size,
				Computed: c.want,
			})
		}
	}

	return mismatches, nil
}
