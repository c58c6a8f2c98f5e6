package domain

// Neighborhood is the set of selected elements together with their immediate
// neighbours. Node and edge IDs share one set; edge IDs contain ':' separators,
// which keeps them apart from plain host names in practice.
type Neighborhood struct {
	members map[string]struct{}
}

// ComputeNeighborhood builds the neighbourhood of the selected element IDs.
// For a selected node it adds the adjacent edges and their endpoints; for a
// selected edge it adds both endpoints. Unknown IDs are ignored.
func ComputeNeighborhood(g *Graph, selected []string) Neighborhood {
	nb := Neighborhood{members: make(map[string]struct{})}
	for _, id := range selected {
		if _, ok := g.Node(id); ok {
			nb.add(id)
			for e := range g.EdgesOf(id) {
				nb.add(e.ID)
				nb.add(e.Source)
				nb.add(e.Target)
			}
			continue
		}
		if e, ok := g.Edge(id); ok {
			nb.add(e.ID)
			nb.add(e.Source)
			nb.add(e.Target)
		}
	}
	return nb
}

func (nb *Neighborhood) add(id string) {
	nb.members[id] = struct{}{}
}

// Has reports whether id belongs to the neighbourhood.
func (nb Neighborhood) Has(id string) bool {
	_, ok := nb.members[id]
	return ok
}

// Empty reports whether nothing is selected.
func (nb Neighborhood) Empty() bool {
	return len(nb.members) == 0
}

// Emphasized reports whether an element is drawn at full opacity: either
// nothing is selected or the element is part of the neighbourhood.
func (nb Neighborhood) Emphasized(id string) bool {
	return nb.Empty() || nb.Has(id)
}

// IDs returns the members of the neighbourhood in no particular order.
func (nb Neighborhood) IDs() []string {
	ids := make([]string, 0, len(nb.members))
	for id := range nb.members {
		ids = append(ids, id)
	}
	return ids
}
