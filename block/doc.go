// Package block implements the Range Series block model.
//
// A Range Series file is a tree of blocks, but rsconv keeps it as a flat
// Sequence in preorder: every container is immediately followed by its
// descendants. Containment is recovered by scanning for the four sentinel
// codes (AQFT, HEAD, BODY and "END ").
//
// The package provides:
//   - Kind, a closed enumeration of the known block types
//   - Record types holding decoded leaf values in host representation
//   - Handler, the per-type codec looked up through the registry
//   - TextWriter and Cursor, the line-oriented text primitives used by handlers
//   - Reconcile and RegionSizes, which derive container sizes from a Sequence
//   - BuildTree, an explicit arena tree used for inspection and checks
package block
