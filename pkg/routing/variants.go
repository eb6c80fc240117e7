package routing

// NewSingleDestination returns a Dijkstra that stops as soon as dest itself
// is settled, without relaxing dest's neighbors.
func NewSingleDestination(net AdjacencyProvider, src, dest int64) *Dijkstra {
	d := NewDijkstra(net, src)
	d.IsTerminated = func(node int64, _ float64) bool { return node == dest }
	return d
}

// NewLocalSteps returns a Dijkstra bounded to settling at most limit nodes —
// used by Contraction Hierarchies' witness search, where only a small local
// neighborhood around a contracted node needs exploring.
func NewLocalSteps(net AdjacencyProvider, src int64, limit int) *Dijkstra {
	d := NewDijkstra(net, src)
	steps := 0
	d.IsTerminated = func(int64, float64) bool { return steps >= limit }
	d.UpdatePerIteration = func(int64, float64) { steps++ }
	return d
}

// NewLocalDistance returns a Dijkstra bounded to settling nodes within
// limit distance of src.
func NewLocalDistance(net AdjacencyProvider, src int64, limit float64) *Dijkstra {
	d := NewDijkstra(net, src)
	d.IsTerminated = func(_ int64, dist float64) bool { return dist >= limit }
	return d
}
