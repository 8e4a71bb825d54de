// Package speakeasy2 clusters a graph into communities by label
// propagation.
//
// A run takes a neighbor.View - a node's incoming neighbours plus an
// optional parallel weight list - and repeatedly lets each node adopt the
// label that's most "specific" to it: the one it hears from its neighbours
// disproportionately more than the graph as a whole. Clustering alternates
// between that typical propagation step, bursting oversized communities
// apart, merging well-connected ones back together, and nurturing the
// worst-fit nodes, until enough independent bootstrap runs agree on a
// partition.
//
// Subpackages:
//
//	neighbor/  — adjacency view and edge-weight reweighing
//	partition/ — membership store, label allocator, traversal iterators
//	seed/      — initial label assignment
//	label/     — the four propagation/restructuring operations
//	tracker/   — mode-selection state machine
//	nmi/       — partition similarity scoring
//	engine/    — bootstrap, representative selection, hierarchical driver
//
// Run wires all of the above together; most callers only need this
// package and neighbor.
package speakeasy2
