package network

// RemovableNetwork augments Network with soft node hiding (used by
// contraction to "remove" a node from search without disturbing the
// underlying adjacency slices) and permanent node removal.
type RemovableNetwork[T any] struct {
	*Network[T]
	hidden map[int64]struct{}
}

// NewRemovable returns an empty RemovableNetwork.
func NewRemovable[T any]() *RemovableNetwork[T] {
	return &RemovableNetwork[T]{Network: New[T](), hidden: make(map[int64]struct{})}
}

// FromNetwork wraps an existing Network for hiding/removal. The wrapped
// Network is not copied.
func FromNetwork[T any](n *Network[T]) *RemovableNetwork[T] {
	return &RemovableNetwork[T]{Network: n, hidden: make(map[int64]struct{})}
}

// HideNode marks id as hidden: it disappears from every AdjOut/AdjIn view
// (its own and its neighbors') without touching any adjacency slice.
func (r *RemovableNetwork[T]) HideNode(id int64) { r.hidden[id] = struct{}{} }

// UnhideNode reverses HideNode.
func (r *RemovableNetwork[T]) UnhideNode(id int64) { delete(r.hidden, id) }

// IsHidden reports whether id is currently hidden.
func (r *RemovableNetwork[T]) IsHidden(id int64) bool {
	_, ok := r.hidden[id]
	return ok
}

// AdjOut returns id's outgoing edges filtered against the hidden set. It
// always recomputes the filtered view rather than caching it, so toggling
// Hide/Unhide is reflected immediately.
func (r *RemovableNetwork[T]) AdjOut(id int64) []Edge {
	if r.IsHidden(id) {
		return nil
	}
	edges := r.Network.AdjOut(id)
	out := make([]Edge, 0, len(edges))
	for _, e := range edges {
		if !r.IsHidden(e.Dest()) {
			out = append(out, e)
		}
	}
	return out
}

// AdjIn returns id's incoming edges filtered against the hidden set.
func (r *RemovableNetwork[T]) AdjIn(id int64) []Edge {
	if r.IsHidden(id) {
		return nil
	}
	edges := r.Network.AdjIn(id)
	out := make([]Edge, 0, len(edges))
	for _, e := range edges {
		if !r.IsHidden(e.Src()) {
			out = append(out, e)
		}
	}
	return out
}

// RemoveNode permanently deletes id and every edge incident to it. Unlike
// HideNode, this mutates the underlying adjacency slices and cannot be
// undone.
func (r *RemovableNetwork[T]) RemoveNode(id int64) {
	for _, e := range r.Network.adjs[id] {
		r.Network.adjsRev[e.Dest()] = removeEdge(r.Network.adjsRev[e.Dest()], e)
	}
	for _, e := range r.Network.adjsRev[id] {
		r.Network.adjs[e.Src()] = removeEdge(r.Network.adjs[e.Src()], e)
	}
	delete(r.Network.adjs, id)
	delete(r.Network.adjsRev, id)
	delete(r.Network.nodes, id)
	delete(r.hidden, id)
}

func removeEdge(edges []Edge, target Edge) []Edge {
	for i, e := range edges {
		if e == target {
			return append(edges[:i], edges[i+1:]...)
		}
	}
	return edges
}
